package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByDocument(documentID string) ([]*entity.StockMovement, error)
}

package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// TripRepository define el puerto de persistencia para viajes de transporte.
type TripRepository interface {
	Create(trip *entity.TransportTrip) error
	GetByID(id string) (*entity.TransportTrip, error)
	ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.TransportTrip, error)
	Update(trip *entity.TransportTrip) error
	Delete(id string) error
}

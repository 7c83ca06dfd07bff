package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// DocumentFilter filtros de listado de documentos.
type DocumentFilter struct {
	Type       string // vacío = todos
	Status     string
	CustomerID string
	From       *time.Time // sobre Document.Date, inclusive
	To         *time.Time // inclusive
}

// DocumentRepository define el puerto de persistencia tipado para
// documentos y sus líneas (reemplaza el acceso genérico por tabla).
type DocumentRepository interface {
	Create(doc *entity.Document) error
	CreateItem(item *entity.DocumentItem) error
	GetByID(id string) (*entity.Document, error)
	// GetByIDForUpdate obtiene el documento bloqueando la fila (FOR UPDATE).
	// Solo tiene sentido dentro de una transacción; serializa conversiones
	// concurrentes del mismo documento origen.
	GetByIDForUpdate(id string) (*entity.Document, error)
	GetItems(documentID string) ([]*entity.DocumentItem, error)
	ListByCompany(companyID string, filter DocumentFilter, limit, offset int) ([]*entity.Document, error)
	UpdateHeader(doc *entity.Document) error
	// UpdateStatus cambia el estado solo si el actual coincide con expected
	// (guarda optimista); devuelve domain.ErrConflict si otro actor lo cambió.
	UpdateStatus(id, expected, next, convertedToID string, updatedAt time.Time) error
	ReplaceItems(documentID string, items []*entity.DocumentItem) error
	// Delete elimina el documento y sus líneas.
	Delete(id string) error
}

package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// PaymentMethodRepository define el puerto de persistencia para medios de pago.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	ListByCompany(companyID string, onlyActive bool) ([]*entity.PaymentMethod, error)
	Update(method *entity.PaymentMethod) error
	Delete(id string) error
}

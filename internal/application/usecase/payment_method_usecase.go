package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// PaymentMethodUseCase casos de uso de medios de pago.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create registra un medio de pago activo de la empresa.
func (uc *PaymentMethodUseCase) Create(companyID string, in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	now := time.Now()
	method := &entity.PaymentMethod{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		BankAccount: in.BankAccount,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return entityToPaymentMethodResponse(method), nil
}

// List lista los medios de pago de la empresa; onlyActive filtra los inactivos.
func (uc *PaymentMethodUseCase) List(companyID string, onlyActive bool) ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *entityToPaymentMethodResponse(m))
	}
	return items, nil
}

// Update actualiza los campos presentes de un medio de pago.
func (uc *PaymentMethodUseCase) Update(companyID, id string, in dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		method.Name = *in.Name
	}
	if in.Description != nil {
		method.Description = *in.Description
	}
	if in.BankAccount != nil {
		method.BankAccount = *in.BankAccount
	}
	if in.IsActive != nil {
		method.IsActive = *in.IsActive
	}
	method.UpdatedAt = time.Now()
	if err := uc.repo.Update(method); err != nil {
		return nil, err
	}
	return entityToPaymentMethodResponse(method), nil
}

// Delete elimina un medio de pago de la empresa.
func (uc *PaymentMethodUseCase) Delete(companyID, id string) error {
	if _, err := uc.getOwned(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *PaymentMethodUseCase) getOwned(companyID, id string) (*entity.PaymentMethod, error) {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}
	if method.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return method, nil
}

func entityToPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Description: m.Description,
		BankAccount: m.BankAccount,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

package dto

import "time"

// CreatePaymentMethodRequest entrada para crear un medio de pago.
type CreatePaymentMethodRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	BankAccount string `json:"bank_account" validate:"omitempty,max=50"`
}

// UpdatePaymentMethodRequest entrada para actualizar un medio de pago.
type UpdatePaymentMethodRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	BankAccount *string `json:"bank_account" validate:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
}

// PaymentMethodResponse salida de un medio de pago.
type PaymentMethodResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BankAccount string    `json:"bank_account,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

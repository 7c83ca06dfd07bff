package entity

import "time"

// PaymentMethod representa un medio de pago configurado por la empresa
// (transferencia, efectivo, tarjeta...). Se referencia desde los documentos.
type PaymentMethod struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	BankAccount string // IBAN o número de cuenta si aplica
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

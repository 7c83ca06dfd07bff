package entity

import "time"

// Customer representa un cliente de la empresa.
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string // NIT o cédula
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

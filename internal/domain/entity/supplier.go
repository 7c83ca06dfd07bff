package entity

import "time"

// Supplier representa un proveedor de la empresa (compras y logística).
type Supplier struct {
	ID            string
	CompanyID     string
	Name          string
	TaxID         string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

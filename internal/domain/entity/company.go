package entity

import "time"

// Company representa una organización/tenant del sistema.
// Los ajustes de empresa (logo, moneda, pie de página de documentos)
// se editan desde el módulo de configuración.
type Company struct {
	ID             string
	Name           string
	TaxID          string
	Address        string
	Phone          string
	Email          string
	Currency       string // código ISO 4217, ej: "EUR", "COP"
	DocumentFooter string // texto legal al pie de cotizaciones/facturas
	Status         string // active, suspended, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

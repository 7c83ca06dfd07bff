package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentItemRequest línea de documento en creación/actualización.
// Los campos numéricos usan decimal.Decimal y aceptan número o string
// JSON (clientes antiguos envían "5" en lugar de 5).
type DocumentItemRequest struct {
	ProductID          string          `json:"product_id" validate:"omitempty,uuid"`
	Description        string          `json:"description" validate:"required,min=1,max=500"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	UnitCost           decimal.Decimal `json:"unit_cost"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
}

// CreateDocumentRequest entrada para crear una cotización, proforma o factura.
// El número NO se envía: lo asigna el consecutivo de la empresa.
type CreateDocumentRequest struct {
	CustomerID      string                `json:"customer_id" validate:"required,uuid"`
	Type            string                `json:"type" validate:"required,oneof=quotation proforma invoice"`
	Date            time.Time             `json:"date"`
	ValidUntil      *time.Time            `json:"valid_until"`
	DueDate         *time.Time            `json:"due_date"`
	Notes           string                `json:"notes" validate:"omitempty,max=2000"`
	PaymentMethodID string                `json:"payment_method_id" validate:"omitempty,uuid"`
	Items           []DocumentItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateDocumentRequest entrada para actualizar la cabecera y/o las líneas
// de un documento en borrador. Items nil deja las líneas intactas;
// una lista (incluso vacía ⇒ inválida) las reemplaza por completo.
type UpdateDocumentRequest struct {
	CustomerID      *string               `json:"customer_id" validate:"omitempty,uuid"`
	Date            *time.Time            `json:"date"`
	ValidUntil      *time.Time            `json:"valid_until"`
	DueDate         *time.Time            `json:"due_date"`
	Notes           *string               `json:"notes" validate:"omitempty,max=2000"`
	PaymentMethodID *string               `json:"payment_method_id" validate:"omitempty,uuid"`
	Items           []DocumentItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}

// ChangeStatusRequest entrada para transicionar el estado de un documento.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// DocumentItemResponse línea de documento en respuestas.
type DocumentItemResponse struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"product_id,omitempty"`
	Description        string          `json:"description"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	UnitCost           decimal.Decimal `json:"unit_cost"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	LineTotal          decimal.Decimal `json:"line_total"`
}

// DocumentResponse documento con detalle.
type DocumentResponse struct {
	ID              string                 `json:"id"`
	CompanyID       string                 `json:"company_id"`
	CustomerID      string                 `json:"customer_id"`
	CustomerName    string                 `json:"customer_name,omitempty"`
	Type            string                 `json:"type"`
	Number          string                 `json:"number"`
	Date            time.Time              `json:"date"`
	ValidUntil      *time.Time             `json:"valid_until,omitempty"`
	DueDate         *time.Time             `json:"due_date,omitempty"`
	Status          string                 `json:"status"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	TaxAmount       decimal.Decimal        `json:"tax_amount"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	Notes           string                 `json:"notes,omitempty"`
	PaymentMethodID string                 `json:"payment_method_id,omitempty"`
	SourceID        string                 `json:"source_id,omitempty"`
	ConvertedToID   string                 `json:"converted_to_id,omitempty"`
	Items           []DocumentItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// DocumentListResponse lista paginada de documentos (sin líneas).
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// NextNumberResponse vista previa del próximo número de un tipo de documento.
// El número real se asigna al crear; este valor es solo orientativo.
type NextNumberResponse struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// ListDocumentsRequest filtros de listado vía query string.
type ListDocumentsRequest struct {
	Type       string `query:"type" validate:"omitempty,oneof=quotation proforma invoice"`
	Status     string `query:"status"`
	CustomerID string `query:"customer_id" validate:"omitempty,uuid"`
	From       string `query:"from"` // YYYY-MM-DD
	To         string `query:"to"`   // YYYY-MM-DD
	PageRequest
}

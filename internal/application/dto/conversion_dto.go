package dto

import "github.com/shopspring/decimal"

// ConvertDocumentRequest entrada para convertir un documento en otro
// (cotización→proforma, cotización→factura, proforma→factura).
// Items nil copia las líneas del origen tal cual; una lista las
// reemplaza por completo en el documento destino.
type ConvertDocumentRequest struct {
	TargetType    string                `json:"target_type" validate:"required,oneof=proforma invoice"`
	Items         []DocumentItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Notes         string                `json:"notes" validate:"omitempty,max=2000"`
	RegisterStock bool                  `json:"register_stock"` // solo aplica al convertir a factura
}

// ConversionPreviewResponse resumen de lo que ocurrirá al confirmar
// la conversión, para mostrar al usuario antes de ejecutarla.
type ConversionPreviewResponse struct {
	SourceID     string          `json:"source_id"`
	SourceNumber string          `json:"source_number"`
	SourceType   string          `json:"source_type"`
	CustomerName string          `json:"customer_name,omitempty"`
	TargetType   string          `json:"target_type"`
	ItemCount    int             `json:"item_count"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Effects      []string        `json:"effects"` // ej: "Se creará una factura", "El origen quedará convertido"
}

// ConversionResponse resultado de una conversión confirmada.
type ConversionResponse struct {
	Source DocumentResponse `json:"source"`
	Target DocumentResponse `json:"target"`
}

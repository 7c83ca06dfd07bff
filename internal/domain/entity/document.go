package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento comercial.
const (
	DocTypeQuotation = "quotation" // cotización
	DocTypeProforma  = "proforma"  // factura proforma
	DocTypeInvoice   = "invoice"   // factura de venta
)

// Estados del ciclo de vida de un documento.
// La tabla de transiciones válidas por tipo vive en internal/domain/lifecycle.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusExpired   = "expired"
	StatusConverted = "converted" // terminal: el documento originó otro documento
	StatusPaid      = "paid"      // solo facturas
	StatusCancelled = "cancelled" // solo facturas
)

// Document representa la cabecera de un documento comercial
// (cotización, proforma o factura). El número es único por
// (empresa, tipo, año); lo garantiza el asignador de consecutivos.
type Document struct {
	ID              string
	CompanyID       string
	CustomerID      string
	Type            string // ver constantes DocType*
	Number          string // ej: "PF-2025-0004"
	Date            time.Time
	ValidUntil      *time.Time // cotizaciones y proformas; nil = sin vencimiento
	DueDate         *time.Time // facturas
	Status          string     // ver constantes Status*
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal // == Subtotal + TaxAmount (derivado de las líneas)
	Notes           string
	PaymentMethodID string // opcional
	SourceID        string // documento origen si nació por conversión
	ConvertedToID   string // documento destino una vez convertido
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

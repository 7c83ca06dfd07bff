package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn     = "in"     // entrada
	MovementTypeOut    = "out"    // salida (ej: venta facturada)
	MovementTypeAdjust = "adjust" // ajuste manual
)

// StockMovement representa un movimiento de stock. Cuando nace de una
// conversión a factura, DocumentID referencia la factura generada.
type StockMovement struct {
	ID         string
	CompanyID  string
	ProductID  string
	Type       string          // ver constantes MovementType*
	Quantity   decimal.Decimal // positiva; el signo lo da el tipo
	DocumentID string          // referencia al documento que lo originó, vacío si es manual
	Notes      string
	Date       time.Time
	CreatedAt  time.Time
	CreatedBy  string // UserID
}

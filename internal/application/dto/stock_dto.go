package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockMovementRequest entrada para registrar un movimiento manual.
type CreateStockMovementRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Type      string          `json:"type" validate:"required,oneof=in out adjust"`
	Quantity  decimal.Decimal `json:"quantity"`
	Notes     string          `json:"notes" validate:"omitempty,max=2000"`
	Date      time.Time       `json:"date"`
}

// StockMovementResponse salida de un movimiento de stock.
type StockMovementResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	ProductID  string          `json:"product_id"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	DocumentID string          `json:"document_id,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"created_at"`
	CreatedBy  string          `json:"created_by,omitempty"`
}

// StockMovementListResponse lista paginada de movimientos.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

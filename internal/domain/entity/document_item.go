package entity

import "github.com/shopspring/decimal"

// DocumentItem representa una línea de un documento comercial.
// Pertenece exclusivamente a su Document; se elimina con él.
// LineTotal = Quantity*UnitPrice − DiscountAmount + TaxAmount.
type DocumentItem struct {
	ID                 string
	DocumentID         string
	ProductID          string // opcional: línea libre si va vacío
	Description        string
	Quantity           decimal.Decimal
	UnitPrice          decimal.Decimal
	UnitCost           decimal.Decimal // costo de adquisición; alimenta el COGS del P&L
	DiscountPercentage decimal.Decimal // 0–100
	DiscountAmount     decimal.Decimal
	TaxPercentage      decimal.Decimal // 0–100
	TaxAmount          decimal.Decimal
	LineTotal          decimal.Decimal
}

// Recalculate deriva descuento, impuesto y total de línea a partir de
// cantidad, precio unitario y porcentajes. El impuesto se aplica sobre
// la base ya descontada.
func (i *DocumentItem) Recalculate() {
	gross := i.Quantity.Mul(i.UnitPrice)
	i.DiscountAmount = gross.Mul(i.DiscountPercentage).Div(decimal.NewFromInt(100)).Round(2)
	base := gross.Sub(i.DiscountAmount)
	i.TaxAmount = base.Mul(i.TaxPercentage).Div(decimal.NewFromInt(100)).Round(2)
	i.LineTotal = base.Add(i.TaxAmount).Round(2)
}

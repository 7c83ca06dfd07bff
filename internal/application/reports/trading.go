package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// Invoice factura con sus líneas, entrada del P&L comercial.
type Invoice struct {
	Document *entity.Document
	Items    []*entity.DocumentItem
}

// percentOf calcula (part/whole)*100 con guarda explícita de divisor
// cero: denominador 0 devuelve 0, nunca propaga una división inválida.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2)
}

// inWindow pertenencia a la ventana [start, end], ambos extremos inclusive.
func inWindow(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// CalculateTradingPLMetrics agrega el P&L comercial de un conjunto de
// facturas dentro de la ventana [start, end] inclusive: ingresos (base
// gravable), costo de ventas (cantidad × costo unitario), utilidad bruta
// y margen. Facturas canceladas no cuentan. Función pura: con entrada
// vacía devuelve métricas en cero, y la suma sobre ventanas disjuntas
// equivale a la ventana completa.
func CalculateTradingPLMetrics(invoices []Invoice, start, end time.Time) dto.TradingPLResponse {
	resp := dto.TradingPLResponse{
		From: start.Format("2006-01-02"),
		To:   end.Format("2006-01-02"),
	}
	monthly := make(map[string]*dto.MonthlyTradingRow)
	products := make(map[string]*dto.ProductTradingRow)

	for _, inv := range invoices {
		doc := inv.Document
		if doc == nil || doc.Type != entity.DocTypeInvoice || doc.Status == entity.StatusCancelled {
			continue
		}
		if !inWindow(doc.Date, start, end) {
			continue
		}
		resp.InvoiceCount++

		var revenue, cogs decimal.Decimal
		for _, it := range inv.Items {
			base := it.Quantity.Mul(it.UnitPrice).Sub(it.DiscountAmount)
			cost := it.Quantity.Mul(it.UnitCost)
			revenue = revenue.Add(base)
			cogs = cogs.Add(cost)

			key := it.ProductID
			if key == "" {
				key = it.Description
			}
			row, ok := products[key]
			if !ok {
				row = &dto.ProductTradingRow{ProductID: it.ProductID, Description: it.Description}
				products[key] = row
			}
			row.Quantity = row.Quantity.Add(it.Quantity)
			row.Revenue = row.Revenue.Add(base)
			row.COGS = row.COGS.Add(cost)
			row.GrossProfit = row.Revenue.Sub(row.COGS)
		}

		resp.Revenue = resp.Revenue.Add(revenue)
		resp.COGS = resp.COGS.Add(cogs)

		month := doc.Date.Format("2006-01")
		mrow, ok := monthly[month]
		if !ok {
			mrow = &dto.MonthlyTradingRow{Month: month}
			monthly[month] = mrow
		}
		mrow.Revenue = mrow.Revenue.Add(revenue)
		mrow.COGS = mrow.COGS.Add(cogs)
		mrow.GrossProfit = mrow.Revenue.Sub(mrow.COGS)
	}

	resp.Revenue = resp.Revenue.Round(2)
	resp.COGS = resp.COGS.Round(2)
	resp.GrossProfit = resp.Revenue.Sub(resp.COGS)
	resp.GrossMarginPct = percentOf(resp.GrossProfit, resp.Revenue)

	for _, row := range monthly {
		resp.Monthly = append(resp.Monthly, *row)
	}
	sort.Slice(resp.Monthly, func(i, j int) bool { return resp.Monthly[i].Month < resp.Monthly[j].Month })

	for _, row := range products {
		resp.Products = append(resp.Products, *row)
	}
	sort.Slice(resp.Products, func(i, j int) bool { return resp.Products[i].Revenue.GreaterThan(resp.Products[j].Revenue) })

	return resp
}

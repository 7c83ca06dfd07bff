package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

var (
	enero   = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	finJun  = time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	finMar  = time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	abril   = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
)

func invoice(date time.Time, status string, items ...*entity.DocumentItem) reports.Invoice {
	doc := &entity.Document{
		ID:     "inv-" + date.Format("20060102"),
		Type:   entity.DocTypeInvoice,
		Status: status,
		Date:   date,
	}
	for _, it := range items {
		it.Recalculate()
	}
	return reports.Invoice{Document: doc, Items: items}
}

func line(qty, price, cost int64) *entity.DocumentItem {
	return &entity.DocumentItem{
		Description: "línea",
		Quantity:    decimal.NewFromInt(qty),
		UnitPrice:   decimal.NewFromInt(price),
		UnitCost:    decimal.NewFromInt(cost),
	}
}

// Entrada vacía: todas las métricas en cero, sin pánico ni NaN.
func TestTradingPL_PeriodoVacio(t *testing.T) {
	m := reports.CalculateTradingPLMetrics(nil, enero, finJun)

	assert.True(t, m.Revenue.IsZero())
	assert.True(t, m.COGS.IsZero())
	assert.True(t, m.GrossProfit.IsZero())
	assert.True(t, m.GrossMarginPct.IsZero(), "divisor cero ⇒ margen 0, nunca NaN")
	assert.Zero(t, m.InvoiceCount)
	assert.Empty(t, m.Monthly)
}

// Ingresos, costo de ventas y margen de un periodo con ventas.
func TestTradingPL_Metricas(t *testing.T) {
	invoices := []reports.Invoice{
		invoice(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), entity.StatusPaid, line(10, 100, 60)),
		invoice(time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), entity.StatusSent, line(5, 200, 120)),
	}
	m := reports.CalculateTradingPLMetrics(invoices, enero, finJun)

	// ingresos 1000+1000=2000; COGS 600+600=1200; utilidad 800; margen 40%
	assert.True(t, m.Revenue.Equal(decimal.NewFromInt(2000)), "revenue: %s", m.Revenue)
	assert.True(t, m.COGS.Equal(decimal.NewFromInt(1200)))
	assert.True(t, m.GrossProfit.Equal(decimal.NewFromInt(800)))
	assert.True(t, m.GrossMarginPct.Equal(decimal.NewFromInt(40)), "margen: %s", m.GrossMarginPct)
	assert.Equal(t, 2, m.InvoiceCount)
	require.Len(t, m.Monthly, 2)
	assert.Equal(t, "2025-02", m.Monthly[0].Month)
	assert.Equal(t, "2025-05", m.Monthly[1].Month)
}

// La ventana es inclusiva en ambos extremos.
func TestTradingPL_VentanaInclusiva(t *testing.T) {
	exacta := invoice(enero, entity.StatusPaid, line(1, 100, 0))
	fuera := invoice(enero.Add(-time.Second), entity.StatusPaid, line(1, 100, 0))
	m := reports.CalculateTradingPLMetrics([]reports.Invoice{exacta, fuera}, enero, finJun)

	assert.Equal(t, 1, m.InvoiceCount, "el límite inferior exacto cuenta; un segundo antes no")
}

// Facturas canceladas no suman al P&L.
func TestTradingPL_IgnoraCanceladas(t *testing.T) {
	invoices := []reports.Invoice{
		invoice(abril, entity.StatusPaid, line(1, 500, 300)),
		invoice(abril.AddDate(0, 0, 1), entity.StatusCancelled, line(1, 9999, 1)),
	}
	m := reports.CalculateTradingPLMetrics(invoices, enero, finJun)

	assert.Equal(t, 1, m.InvoiceCount)
	assert.True(t, m.Revenue.Equal(decimal.NewFromInt(500)))
}

// Sumar dos ventanas disjuntas equivale a la ventana completa.
func TestTradingPL_Aditividad(t *testing.T) {
	invoices := []reports.Invoice{
		invoice(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), entity.StatusPaid, line(3, 100, 40)),
		invoice(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), entity.StatusPaid, line(2, 250, 100)),
		invoice(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), entity.StatusPaid, line(7, 80, 30)),
	}
	total := reports.CalculateTradingPLMetrics(invoices, enero, finJun)
	primera := reports.CalculateTradingPLMetrics(invoices, enero, finMar)
	segunda := reports.CalculateTradingPLMetrics(invoices, abril, finJun)

	assert.True(t, total.Revenue.Equal(primera.Revenue.Add(segunda.Revenue)))
	assert.True(t, total.COGS.Equal(primera.COGS.Add(segunda.COGS)))
	assert.True(t, total.GrossProfit.Equal(primera.GrossProfit.Add(segunda.GrossProfit)))
	assert.Equal(t, total.InvoiceCount, primera.InvoiceCount+segunda.InvoiceCount)
}

// El descuento de línea reduce el ingreso (base gravable), no el costo.
func TestTradingPL_DescuentoReduceIngreso(t *testing.T) {
	it := line(10, 100, 50)
	it.DiscountPercentage = decimal.NewFromInt(20)
	m := reports.CalculateTradingPLMetrics([]reports.Invoice{invoice(abril, entity.StatusPaid, it)}, enero, finJun)

	assert.True(t, m.Revenue.Equal(decimal.NewFromInt(800)), "revenue: %s", m.Revenue)
	assert.True(t, m.COGS.Equal(decimal.NewFromInt(500)))
}

// Desglose por producto: líneas sin producto se agrupan por descripción.
func TestTradingPL_DesglosePorProducto(t *testing.T) {
	conProducto := line(2, 100, 60)
	conProducto.ProductID = "p-1"
	libre := line(1, 50, 0)
	libre.Description = "servicio"

	m := reports.CalculateTradingPLMetrics([]reports.Invoice{
		invoice(abril, entity.StatusPaid, conProducto, libre),
	}, enero, finJun)

	require.Len(t, m.Products, 2)
	assert.Equal(t, "p-1", m.Products[0].ProductID, "ordenado por ingreso descendente")
	assert.True(t, m.Products[0].Revenue.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "servicio", m.Products[1].Description)
}

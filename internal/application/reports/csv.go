package reports

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// WriteTradingCSV exporta el P&L comercial como CSV (RFC 4180: comillas
// y comas dentro de celdas quedan correctamente escapadas).
func WriteTradingCSV(w io.Writer, r dto.TradingPLResponse) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"from", "to", "revenue", "cogs", "gross_profit", "gross_margin_pct", "invoice_count"},
		{r.From, r.To, r.Revenue.StringFixed(2), r.COGS.StringFixed(2),
			r.GrossProfit.StringFixed(2), r.GrossMarginPct.StringFixed(2), strconv.Itoa(r.InvoiceCount)},
		{},
		{"month", "revenue", "cogs", "gross_profit"},
	}
	for _, m := range r.Monthly {
		rows = append(rows, []string{m.Month, m.Revenue.StringFixed(2), m.COGS.StringFixed(2), m.GrossProfit.StringFixed(2)})
	}
	rows = append(rows, []string{}, []string{"product_id", "description", "quantity", "revenue", "cogs", "gross_profit"})
	for _, p := range r.Products {
		rows = append(rows, []string{p.ProductID, p.Description, p.Quantity.String(),
			p.Revenue.StringFixed(2), p.COGS.StringFixed(2), p.GrossProfit.StringFixed(2)})
	}
	return cw.WriteAll(rows)
}

// WriteTransportCSV exporta el P&L de transporte como CSV.
func WriteTransportCSV(w io.Writer, r dto.TransportPLResponse) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"from", "to", "revenue", "fuel_cost", "driver_cost", "maintenance_cost", "other_expenses",
			"total_expenses", "operating_profit", "operating_margin_pct", "trip_count"},
		{r.From, r.To, r.Revenue.StringFixed(2), r.FuelCost.StringFixed(2), r.DriverCost.StringFixed(2),
			r.MaintenanceCost.StringFixed(2), r.OtherExpenses.StringFixed(2), r.TotalExpenses.StringFixed(2),
			r.OperatingProfit.StringFixed(2), r.OperatingMarginPct.StringFixed(2), strconv.Itoa(r.TripCount)},
		{},
		{"vehicle_plate", "trip_count", "revenue", "total_expenses", "operating_profit"},
	}
	for _, v := range r.Vehicles {
		rows = append(rows, []string{v.VehiclePlate, strconv.Itoa(v.TripCount), v.Revenue.StringFixed(2),
			v.TotalExpenses.StringFixed(2), v.OperatingProfit.StringFixed(2)})
	}
	rows = append(rows, []string{}, []string{"month", "revenue", "total_expenses", "operating_profit"})
	for _, m := range r.Monthly {
		rows = append(rows, []string{m.Month, m.Revenue.StringFixed(2), m.TotalExpenses.StringFixed(2), m.OperatingProfit.StringFixed(2)})
	}
	return cw.WriteAll(rows)
}

package dto

import "github.com/shopspring/decimal"

// ReportPeriodRequest ventana [from, to] inclusiva vía query string.
type ReportPeriodRequest struct {
	From   string `query:"from"`   // YYYY-MM-DD
	To     string `query:"to"`     // YYYY-MM-DD
	Format string `query:"format"` // "csv" para exportar, vacío = JSON
}

// MonthlyTradingRow desglose mensual del P&L comercial.
type MonthlyTradingRow struct {
	Month       string          `json:"month"` // YYYY-MM
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

// ProductTradingRow desglose por producto del P&L comercial.
type ProductTradingRow struct {
	ProductID   string          `json:"product_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

// TradingPLResponse P&L comercial: ingresos de facturas menos costo de ventas.
type TradingPLResponse struct {
	From           string              `json:"from"`
	To             string              `json:"to"`
	Revenue        decimal.Decimal     `json:"revenue"`
	COGS           decimal.Decimal     `json:"cogs"`
	GrossProfit    decimal.Decimal     `json:"gross_profit"`
	GrossMarginPct decimal.Decimal     `json:"gross_margin_pct"`
	InvoiceCount   int                 `json:"invoice_count"`
	Monthly        []MonthlyTradingRow `json:"monthly,omitempty"`
	Products       []ProductTradingRow `json:"products,omitempty"`
}

// VehicleTransportRow desglose por vehículo del P&L de transporte.
type VehicleTransportRow struct {
	VehiclePlate    string          `json:"vehicle_plate"`
	TripCount       int             `json:"trip_count"`
	Revenue         decimal.Decimal `json:"revenue"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	OperatingProfit decimal.Decimal `json:"operating_profit"`
}

// MonthlyTransportRow desglose mensual del P&L de transporte.
type MonthlyTransportRow struct {
	Month           string          `json:"month"` // YYYY-MM
	Revenue         decimal.Decimal `json:"revenue"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	OperatingProfit decimal.Decimal `json:"operating_profit"`
}

// TransportPLResponse P&L de transporte: ingresos de viajes menos gastos operativos.
type TransportPLResponse struct {
	From               string                `json:"from"`
	To                 string                `json:"to"`
	Revenue            decimal.Decimal       `json:"revenue"`
	FuelCost           decimal.Decimal       `json:"fuel_cost"`
	DriverCost         decimal.Decimal       `json:"driver_cost"`
	MaintenanceCost    decimal.Decimal       `json:"maintenance_cost"`
	OtherExpenses      decimal.Decimal       `json:"other_expenses"`
	TotalExpenses      decimal.Decimal       `json:"total_expenses"`
	OperatingProfit    decimal.Decimal       `json:"operating_profit"`
	OperatingMarginPct decimal.Decimal       `json:"operating_margin_pct"`
	TripCount          int                   `json:"trip_count"`
	Vehicles           []VehicleTransportRow `json:"vehicles,omitempty"`
	Monthly            []MonthlyTransportRow `json:"monthly,omitempty"`
}

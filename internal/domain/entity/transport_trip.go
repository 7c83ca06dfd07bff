package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransportTrip representa un viaje de transporte (logística).
// Alimenta el reporte de P&L de transporte: ingreso del viaje menos
// combustible, conductor, mantenimiento y otros gastos.
type TransportTrip struct {
	ID              string
	CompanyID       string
	VehicleID       string
	VehiclePlate    string
	DriverName      string
	Origin          string
	Destination     string
	Date            time.Time
	Revenue         decimal.Decimal
	FuelCost        decimal.Decimal
	DriverCost      decimal.Decimal
	MaintenanceCost decimal.Decimal
	OtherExpenses   decimal.Decimal
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

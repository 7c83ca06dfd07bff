package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTripRequest entrada para registrar un viaje de transporte.
type CreateTripRequest struct {
	VehicleID       string          `json:"vehicle_id" validate:"omitempty,uuid"`
	VehiclePlate    string          `json:"vehicle_plate" validate:"required,min=1,max=20"`
	DriverName      string          `json:"driver_name" validate:"omitempty,max=200"`
	Origin          string          `json:"origin" validate:"required,min=1,max=200"`
	Destination     string          `json:"destination" validate:"required,min=1,max=200"`
	Date            time.Time       `json:"date"`
	Revenue         decimal.Decimal `json:"revenue"`
	FuelCost        decimal.Decimal `json:"fuel_cost"`
	DriverCost      decimal.Decimal `json:"driver_cost"`
	MaintenanceCost decimal.Decimal `json:"maintenance_cost"`
	OtherExpenses   decimal.Decimal `json:"other_expenses"`
	Notes           string          `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateTripRequest entrada para actualizar un viaje (campos opcionales).
type UpdateTripRequest struct {
	VehiclePlate    *string          `json:"vehicle_plate" validate:"omitempty,min=1,max=20"`
	DriverName      *string          `json:"driver_name" validate:"omitempty,max=200"`
	Origin          *string          `json:"origin" validate:"omitempty,min=1,max=200"`
	Destination     *string          `json:"destination" validate:"omitempty,min=1,max=200"`
	Date            *time.Time       `json:"date"`
	Revenue         *decimal.Decimal `json:"revenue"`
	FuelCost        *decimal.Decimal `json:"fuel_cost"`
	DriverCost      *decimal.Decimal `json:"driver_cost"`
	MaintenanceCost *decimal.Decimal `json:"maintenance_cost"`
	OtherExpenses   *decimal.Decimal `json:"other_expenses"`
	Notes           *string          `json:"notes" validate:"omitempty,max=2000"`
}

// TripResponse salida de un viaje con su margen calculado.
type TripResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	VehicleID       string          `json:"vehicle_id,omitempty"`
	VehiclePlate    string          `json:"vehicle_plate"`
	DriverName      string          `json:"driver_name,omitempty"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	Date            time.Time       `json:"date"`
	Revenue         decimal.Decimal `json:"revenue"`
	FuelCost        decimal.Decimal `json:"fuel_cost"`
	DriverCost      decimal.Decimal `json:"driver_cost"`
	MaintenanceCost decimal.Decimal `json:"maintenance_cost"`
	OtherExpenses   decimal.Decimal `json:"other_expenses"`
	Profit          decimal.Decimal `json:"profit"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TripListResponse lista paginada de viajes.
type TripListResponse struct {
	Items []TripResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

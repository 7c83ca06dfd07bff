package reports

import (
	"sort"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// CalculateTransportPLMetrics agrega el P&L de transporte de un conjunto
// de viajes dentro de la ventana [start, end] inclusive: ingresos menos
// combustible, conductor, mantenimiento y otros gastos. Función pura con
// las mismas garantías que el P&L comercial (cero ante entrada vacía,
// aditiva sobre ventanas disjuntas, sin división por cero).
func CalculateTransportPLMetrics(trips []*entity.TransportTrip, start, end time.Time) dto.TransportPLResponse {
	resp := dto.TransportPLResponse{
		From: start.Format("2006-01-02"),
		To:   end.Format("2006-01-02"),
	}
	vehicles := make(map[string]*dto.VehicleTransportRow)
	monthly := make(map[string]*dto.MonthlyTransportRow)

	for _, trip := range trips {
		if trip == nil || !inWindow(trip.Date, start, end) {
			continue
		}
		resp.TripCount++

		expenses := trip.FuelCost.Add(trip.DriverCost).Add(trip.MaintenanceCost).Add(trip.OtherExpenses)
		resp.Revenue = resp.Revenue.Add(trip.Revenue)
		resp.FuelCost = resp.FuelCost.Add(trip.FuelCost)
		resp.DriverCost = resp.DriverCost.Add(trip.DriverCost)
		resp.MaintenanceCost = resp.MaintenanceCost.Add(trip.MaintenanceCost)
		resp.OtherExpenses = resp.OtherExpenses.Add(trip.OtherExpenses)

		vrow, ok := vehicles[trip.VehiclePlate]
		if !ok {
			vrow = &dto.VehicleTransportRow{VehiclePlate: trip.VehiclePlate}
			vehicles[trip.VehiclePlate] = vrow
		}
		vrow.TripCount++
		vrow.Revenue = vrow.Revenue.Add(trip.Revenue)
		vrow.TotalExpenses = vrow.TotalExpenses.Add(expenses)
		vrow.OperatingProfit = vrow.Revenue.Sub(vrow.TotalExpenses)

		month := trip.Date.Format("2006-01")
		mrow, ok := monthly[month]
		if !ok {
			mrow = &dto.MonthlyTransportRow{Month: month}
			monthly[month] = mrow
		}
		mrow.Revenue = mrow.Revenue.Add(trip.Revenue)
		mrow.TotalExpenses = mrow.TotalExpenses.Add(expenses)
		mrow.OperatingProfit = mrow.Revenue.Sub(mrow.TotalExpenses)
	}

	resp.Revenue = resp.Revenue.Round(2)
	resp.TotalExpenses = resp.FuelCost.Add(resp.DriverCost).Add(resp.MaintenanceCost).Add(resp.OtherExpenses).Round(2)
	resp.OperatingProfit = resp.Revenue.Sub(resp.TotalExpenses)
	resp.OperatingMarginPct = percentOf(resp.OperatingProfit, resp.Revenue)

	for _, row := range vehicles {
		resp.Vehicles = append(resp.Vehicles, *row)
	}
	sort.Slice(resp.Vehicles, func(i, j int) bool { return resp.Vehicles[i].VehiclePlate < resp.Vehicles[j].VehiclePlate })

	for _, row := range monthly {
		resp.Monthly = append(resp.Monthly, *row)
	}
	sort.Slice(resp.Monthly, func(i, j int) bool { return resp.Monthly[i].Month < resp.Monthly[j].Month })

	return resp
}

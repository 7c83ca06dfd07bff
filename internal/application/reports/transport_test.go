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

func trip(plate string, date time.Time, revenue, fuel, driver, maint, other int64) *entity.TransportTrip {
	return &entity.TransportTrip{
		VehiclePlate:    plate,
		Date:            date,
		Revenue:         decimal.NewFromInt(revenue),
		FuelCost:        decimal.NewFromInt(fuel),
		DriverCost:      decimal.NewFromInt(driver),
		MaintenanceCost: decimal.NewFromInt(maint),
		OtherExpenses:   decimal.NewFromInt(other),
	}
}

// Entrada vacía: métricas en cero, margen 0 sin división inválida.
func TestTransportPL_PeriodoVacio(t *testing.T) {
	m := reports.CalculateTransportPLMetrics(nil, enero, finJun)

	assert.True(t, m.Revenue.IsZero())
	assert.True(t, m.TotalExpenses.IsZero())
	assert.True(t, m.OperatingProfit.IsZero())
	assert.True(t, m.OperatingMarginPct.IsZero())
	assert.Zero(t, m.TripCount)
}

// Ingresos menos los cuatro rubros de gasto dan la utilidad operativa.
func TestTransportPL_Metricas(t *testing.T) {
	trips := []*entity.TransportTrip{
		trip("ABC-123", time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), 1000, 200, 150, 50, 100),
		trip("XYZ-789", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), 500, 100, 100, 0, 0),
	}
	m := reports.CalculateTransportPLMetrics(trips, enero, finJun)

	// ingresos 1500; gastos 200+150+50+100 + 100+100 = 700; utilidad 800
	assert.True(t, m.Revenue.Equal(decimal.NewFromInt(1500)))
	assert.True(t, m.FuelCost.Equal(decimal.NewFromInt(300)))
	assert.True(t, m.TotalExpenses.Equal(decimal.NewFromInt(700)), "gastos: %s", m.TotalExpenses)
	assert.True(t, m.OperatingProfit.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 2, m.TripCount)

	require.Len(t, m.Vehicles, 2)
	assert.Equal(t, "ABC-123", m.Vehicles[0].VehiclePlate)
	assert.True(t, m.Vehicles[0].OperatingProfit.Equal(decimal.NewFromInt(500)))
}

// Viajes fuera de la ventana no cuentan; los extremos sí.
func TestTransportPL_Ventana(t *testing.T) {
	trips := []*entity.TransportTrip{
		trip("ABC-123", enero, 100, 0, 0, 0, 0),
		trip("ABC-123", finJun, 100, 0, 0, 0, 0),
		trip("ABC-123", finJun.Add(time.Second), 9999, 0, 0, 0, 0),
	}
	m := reports.CalculateTransportPLMetrics(trips, enero, finJun)

	assert.Equal(t, 2, m.TripCount)
	assert.True(t, m.Revenue.Equal(decimal.NewFromInt(200)))
}

// Las ventanas disjuntas suman lo mismo que la ventana completa.
func TestTransportPL_Aditividad(t *testing.T) {
	trips := []*entity.TransportTrip{
		trip("ABC-123", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 800, 100, 100, 0, 0),
		trip("XYZ-789", time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), 600, 50, 80, 20, 0),
	}
	total := reports.CalculateTransportPLMetrics(trips, enero, finJun)
	primera := reports.CalculateTransportPLMetrics(trips, enero, finMar)
	segunda := reports.CalculateTransportPLMetrics(trips, abril, finJun)

	assert.True(t, total.Revenue.Equal(primera.Revenue.Add(segunda.Revenue)))
	assert.True(t, total.TotalExpenses.Equal(primera.TotalExpenses.Add(segunda.TotalExpenses)))
	assert.Equal(t, total.TripCount, primera.TripCount+segunda.TripCount)
}

package reports_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
)

// Celdas con comas y comillas quedan escapadas según RFC 4180 y un
// parser CSV estándar recupera el valor original.
func TestWriteTradingCSV_EscapaComasYComillas(t *testing.T) {
	r := dto.TradingPLResponse{
		From:    "2025-01-01",
		To:      "2025-06-30",
		Revenue: decimal.NewFromInt(100),
		Products: []dto.ProductTradingRow{
			{Description: `Doe, "Big" Corp`, Quantity: decimal.NewFromInt(1), Revenue: decimal.NewFromInt(100)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, reports.WriteTradingCSV(&buf, r))

	out := buf.String()
	assert.Contains(t, out, `"Doe, ""Big"" Corp"`, "celda con coma y comillas escapada")

	// round-trip: un lector estándar recupera la cadena original
	reader := csv.NewReader(strings.NewReader(out))
	reader.FieldsPerRecord = -1 // el export mezcla secciones con anchos distintos
	records, err := reader.ReadAll()
	require.NoError(t, err)
	var found bool
	for _, rec := range records {
		for _, cell := range rec {
			if cell == `Doe, "Big" Corp` {
				found = true
			}
		}
	}
	assert.True(t, found, "el valor original debe sobrevivir el round-trip")
}

// El CSV de transporte lleva el resumen y los desgloses.
func TestWriteTransportCSV_Estructura(t *testing.T) {
	r := dto.TransportPLResponse{
		From:            "2025-01-01",
		To:              "2025-06-30",
		Revenue:         decimal.NewFromInt(1500),
		TotalExpenses:   decimal.NewFromInt(700),
		OperatingProfit: decimal.NewFromInt(800),
		TripCount:       2,
		Vehicles: []dto.VehicleTransportRow{
			{VehiclePlate: "ABC-123", TripCount: 1, Revenue: decimal.NewFromInt(1000)},
		},
		Monthly: []dto.MonthlyTransportRow{
			{Month: "2025-02", Revenue: decimal.NewFromInt(1000)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, reports.WriteTransportCSV(&buf, r))

	reader := csv.NewReader(strings.NewReader(buf.String()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(records), 6)
	assert.Equal(t, "from", records[0][0])
	assert.Equal(t, "1500.00", records[1][2])
	assert.Contains(t, buf.String(), "ABC-123")
	assert.Contains(t, buf.String(), "2025-02")
}

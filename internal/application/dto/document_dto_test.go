package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// Los clientes antiguos envían los numéricos como string ("5") y los nuevos
// como número (5). Ambas formas deben deserializar al mismo decimal.
func TestDocumentItemRequest_NumericosComoStringONumero(t *testing.T) {
	conString := []byte(`{"description":"Panel","quantity":"5","unit_price":"100.50","discount_percentage":"10","tax_percentage":"21"}`)
	conNumero := []byte(`{"description":"Panel","quantity":5,"unit_price":100.50,"discount_percentage":10,"tax_percentage":21}`)

	var desdeString, desdeNumero dto.DocumentItemRequest
	require.NoError(t, json.Unmarshal(conString, &desdeString))
	require.NoError(t, json.Unmarshal(conNumero, &desdeNumero))

	assert.True(t, desdeString.Quantity.Equal(decimal.NewFromInt(5)),
		"quantity como string debe valer 5, vale %s", desdeString.Quantity)
	assert.True(t, desdeNumero.Quantity.Equal(decimal.NewFromInt(5)),
		"quantity como número debe valer 5, vale %s", desdeNumero.Quantity)

	// Ambas formas producen exactamente los mismos valores.
	assert.True(t, desdeString.Quantity.Equal(desdeNumero.Quantity))
	assert.True(t, desdeString.UnitPrice.Equal(desdeNumero.UnitPrice))
	assert.True(t, desdeString.DiscountPercentage.Equal(desdeNumero.DiscountPercentage))
	assert.True(t, desdeString.TaxPercentage.Equal(desdeNumero.TaxPercentage))
}

// Normalizar dos veces es lo mismo que normalizar una: serializar y volver a
// deserializar una petición ya normalizada no cambia ningún valor.
func TestDocumentItemRequest_NormalizacionIdempotente(t *testing.T) {
	original := []byte(`{"description":"Transporte","quantity":"2","unit_price":"50","tax_percentage":"0"}`)

	var primera dto.DocumentItemRequest
	require.NoError(t, json.Unmarshal(original, &primera))

	renormalizado, err := json.Marshal(primera)
	require.NoError(t, err)

	var segunda dto.DocumentItemRequest
	require.NoError(t, json.Unmarshal(renormalizado, &segunda))

	assert.True(t, primera.Quantity.Equal(segunda.Quantity))
	assert.True(t, primera.UnitPrice.Equal(segunda.UnitPrice))
	assert.True(t, primera.TaxPercentage.Equal(segunda.TaxPercentage))
	assert.Equal(t, primera.Description, segunda.Description)
}

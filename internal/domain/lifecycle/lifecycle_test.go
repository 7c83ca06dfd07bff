package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/lifecycle"
)

// Flujo feliz de una cotización: draft → sent → accepted → converted.
func TestCotizacion_FlujoCompleto(t *testing.T) {
	assert.True(t, lifecycle.CanTransition(entity.DocTypeQuotation, entity.StatusDraft, entity.StatusSent))
	assert.True(t, lifecycle.CanTransition(entity.DocTypeQuotation, entity.StatusSent, entity.StatusAccepted))
	assert.True(t, lifecycle.CanTransition(entity.DocTypeQuotation, entity.StatusAccepted, entity.StatusConverted))
}

// Una cotización expirada no puede convertirse; una rechazada sí.
func TestCotizacion_ConvertibilidadPorEstado(t *testing.T) {
	assert.True(t, lifecycle.CanConvert(entity.DocTypeQuotation, entity.StatusSent))
	assert.True(t, lifecycle.CanConvert(entity.DocTypeQuotation, entity.StatusAccepted))
	assert.True(t, lifecycle.CanConvert(entity.DocTypeQuotation, entity.StatusRejected))
	assert.False(t, lifecycle.CanConvert(entity.DocTypeQuotation, entity.StatusExpired))
	assert.False(t, lifecycle.CanConvert(entity.DocTypeQuotation, entity.StatusDraft))
	assert.False(t, lifecycle.CanConvert(entity.DocTypeQuotation, entity.StatusConverted))
}

// "converted" es terminal: ningún tipo de documento tiene salidas desde él.
func TestConvertido_EsTerminal(t *testing.T) {
	for _, docType := range []string{entity.DocTypeQuotation, entity.DocTypeProforma, entity.DocTypeInvoice} {
		for _, to := range []string{
			entity.StatusDraft, entity.StatusSent, entity.StatusAccepted,
			entity.StatusRejected, entity.StatusExpired, entity.StatusPaid,
		} {
			assert.False(t, lifecycle.CanTransition(docType, entity.StatusConverted, to),
				"converted no debe tener salida %s -> %s", docType, to)
		}
	}
}

// La proforma no admite "rejected"; su vocabulario es draft/sent/accepted/expired/converted.
func TestProforma_SinRechazo(t *testing.T) {
	assert.False(t, lifecycle.CanTransition(entity.DocTypeProforma, entity.StatusSent, entity.StatusRejected))
	assert.True(t, lifecycle.CanTransition(entity.DocTypeProforma, entity.StatusSent, entity.StatusConverted))
}

// La factura se paga o se anula desde "sent"; nunca se convierte.
func TestFactura_Estados(t *testing.T) {
	assert.True(t, lifecycle.CanTransition(entity.DocTypeInvoice, entity.StatusSent, entity.StatusPaid))
	assert.True(t, lifecycle.CanTransition(entity.DocTypeInvoice, entity.StatusSent, entity.StatusCancelled))
	assert.False(t, lifecycle.CanConvert(entity.DocTypeInvoice, entity.StatusSent))
}

// Pares de conversión soportados.
func TestParesDeConversion(t *testing.T) {
	assert.True(t, lifecycle.CanConvertTo(entity.DocTypeQuotation, entity.DocTypeProforma))
	assert.True(t, lifecycle.CanConvertTo(entity.DocTypeQuotation, entity.DocTypeInvoice))
	assert.True(t, lifecycle.CanConvertTo(entity.DocTypeProforma, entity.DocTypeInvoice))
	assert.False(t, lifecycle.CanConvertTo(entity.DocTypeProforma, entity.DocTypeQuotation))
	assert.False(t, lifecycle.CanConvertTo(entity.DocTypeInvoice, entity.DocTypeProforma))
	assert.False(t, lifecycle.CanConvertTo(entity.DocTypeInvoice, entity.DocTypeInvoice))
}

// Transition envuelve ErrInvalidTransition para poder clasificarlo con errors.Is.
func TestTransition_ErrorTipado(t *testing.T) {
	err := lifecycle.Transition(entity.DocTypeQuotation, entity.StatusConverted, entity.StatusSent)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	assert.NoError(t, lifecycle.Transition(entity.DocTypeQuotation, entity.StatusDraft, entity.StatusSent))
}

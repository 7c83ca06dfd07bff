// Package lifecycle define la máquina de estados de los documentos
// comerciales como tabla de transiciones por tipo. Es el único punto
// donde se decide si un cambio de estado es válido; los handlers y la
// UI solo consultan, nunca deciden.
package lifecycle

import (
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// transitions: para cada tipo de documento, los estados alcanzables
// desde cada estado actual. Ausencia en el mapa = sin salidas (terminal).
//
// "converted" solo se alcanza a través del flujo de conversión y es
// terminal: no existe camino de vuelta a ningún estado anterior.
var transitions = map[string]map[string][]string{
	entity.DocTypeQuotation: {
		entity.StatusDraft:    {entity.StatusSent},
		entity.StatusSent:     {entity.StatusAccepted, entity.StatusRejected, entity.StatusExpired, entity.StatusConverted},
		entity.StatusAccepted: {entity.StatusConverted},
		entity.StatusRejected: {entity.StatusConverted},
	},
	entity.DocTypeProforma: {
		entity.StatusDraft:    {entity.StatusSent},
		entity.StatusSent:     {entity.StatusAccepted, entity.StatusExpired, entity.StatusConverted},
		entity.StatusAccepted: {entity.StatusConverted},
	},
	entity.DocTypeInvoice: {
		entity.StatusDraft: {entity.StatusSent},
		entity.StatusSent:  {entity.StatusPaid, entity.StatusCancelled},
	},
}

// conversionTargets: tipos de documento destino válidos por tipo origen.
var conversionTargets = map[string][]string{
	entity.DocTypeQuotation: {entity.DocTypeProforma, entity.DocTypeInvoice},
	entity.DocTypeProforma:  {entity.DocTypeInvoice},
}

// CanTransition indica si el documento de tipo docType puede pasar de from a to.
func CanTransition(docType, from, to string) bool {
	for _, s := range transitions[docType][from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition valida el cambio de estado. Devuelve ErrInvalidTransition
// (envuelto con el detalle) si la transición no está en la tabla.
func Transition(docType, from, to string) error {
	if !CanTransition(docType, from, to) {
		return fmt.Errorf("%w: %s %s -> %s", domain.ErrInvalidTransition, docType, from, to)
	}
	return nil
}

// CanConvert indica si un documento en el estado dado puede ser origen
// de una conversión (es decir, si puede transicionar a "converted").
func CanConvert(docType, status string) bool {
	return CanTransition(docType, status, entity.StatusConverted)
}

// CanConvertTo indica si el par (tipo origen, tipo destino) es una
// conversión soportada: cotización→proforma, cotización→factura,
// proforma→factura.
func CanConvertTo(sourceType, targetType string) bool {
	for _, t := range conversionTargets[sourceType] {
		if t == targetType {
			return true
		}
	}
	return false
}

// ValidStatuses devuelve los estados que aparecen en la tabla para un
// tipo (como origen o destino), útil para validar entrada.
func ValidStatuses(docType string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for from, tos := range transitions[docType] {
		add(from)
		for _, to := range tos {
			add(to)
		}
	}
	return out
}

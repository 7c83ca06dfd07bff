// Package numbering genera los números legibles de documento a partir
// de una plantilla y un consecutivo ya asignado. Es puro: sin efectos,
// sin acceso a base de datos, completamente determinista. La asignación
// del consecutivo es responsabilidad del repositorio de secuencias.
package numbering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

// Plantillas por defecto por tipo de documento.
const (
	DefaultQuotationTemplate = "Q-{YYYY}-{SEQ4}"
	DefaultProformaTemplate  = "PF-{YYYY}-{SEQ4}"
	DefaultInvoiceTemplate   = "INV-{YYYY}-{SEQ4}"
)

// DefaultTemplate devuelve la plantilla por defecto para un tipo de documento.
func DefaultTemplate(docType string) string {
	switch docType {
	case entity.DocTypeQuotation:
		return DefaultQuotationTemplate
	case entity.DocTypeProforma:
		return DefaultProformaTemplate
	case entity.DocTypeInvoice:
		return DefaultInvoiceTemplate
	}
	return ""
}

// Format construye el número de documento reemplazando los tokens de la
// plantilla: {YYYY} {YY} {MM} {DD} de la fecha de emisión, {SEQ} el
// consecutivo sin relleno y {SEQn} con relleno de ceros a n dígitos.
//
// Falla si la plantilla está vacía, el consecutivo no es positivo o
// quedan tokens sin resolver.
func Format(template string, issuedAt time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("plantilla de numeración vacía")
	}
	if seq <= 0 {
		return "", fmt.Errorf("consecutivo inválido: %d", seq)
	}

	out := template
	out = strings.ReplaceAll(out, "{YYYY}", issuedAt.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", issuedAt.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", issuedAt.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", issuedAt.Format("02"))
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))

	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		if len(match) != 2 {
			return m
		}
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.Contains(out, "{") || strings.Contains(out, "}") {
		return "", fmt.Errorf("token sin resolver en la plantilla: %s", out)
	}
	return out, nil
}

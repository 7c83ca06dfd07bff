package entity

import "time"

// DocumentSequence representa el consecutivo de numeración de documentos.
// Hay una fila por (empresa, tipo de documento, año); LastValue es el
// último número asignado. El repositorio lo incrementa de forma atómica.
type DocumentSequence struct {
	ID        string
	CompanyID string
	DocType   string
	Year      int
	LastValue int64
	UpdatedAt time.Time
}

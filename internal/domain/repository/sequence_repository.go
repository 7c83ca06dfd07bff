package repository

// SequenceRepository define el puerto del asignador de consecutivos.
type SequenceRepository interface {
	// Next incrementa y devuelve el consecutivo de (empresa, tipo, año)
	// de forma atómica. Ejecutado dentro de la transacción del caller,
	// dos creaciones concurrentes nunca observan el mismo valor.
	Next(companyID, docType string, year int) (int64, error)
	// Current devuelve el último consecutivo asignado (0 si aún no hay fila).
	// Solo lectura; sirve para previsualizar el próximo número.
	Current(companyID, docType string, year int) (int64, error)
}

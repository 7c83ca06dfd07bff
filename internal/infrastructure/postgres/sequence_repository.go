package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implementación de SequenceRepository (usable con pool o tx).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo de (empresa, tipo, año).
// El upsert con RETURNING es atómico: bajo concurrencia cada llamada
// observa un valor distinto y estrictamente creciente.
func (r *SequenceRepo) Next(companyID, docType string, year int) (int64, error) {
	query := `
		INSERT INTO document_sequences (id, company_id, doc_type, year, last_value, updated_at)
		VALUES ($1, $2, $3, $4, 1, now())
		ON CONFLICT (company_id, doc_type, year)
		DO UPDATE SET last_value = document_sequences.last_value + 1, updated_at = now()
		RETURNING last_value`
	var next int64
	err := r.q.QueryRow(context.Background(), query, uuid.New().String(), companyID, docType, year).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s/%s/%d: %w", companyID, docType, year, err)
	}
	return next, nil
}

// Current devuelve el último consecutivo asignado, 0 si no existe la fila.
func (r *SequenceRepo) Current(companyID, docType string, year int) (int64, error) {
	query := `
		SELECT last_value FROM document_sequences
		WHERE company_id = $1 AND doc_type = $2 AND year = $3`
	var current int64
	err := r.q.QueryRow(context.Background(), query, companyID, docType, year).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("current sequence %s/%s/%d: %w", companyID, docType, year, err)
	}
	return current, nil
}

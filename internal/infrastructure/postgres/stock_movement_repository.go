package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación de StockMovementRepository (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const stockMovementColumns = `id, company_id, product_id, type, quantity, document_id, notes, date, created_at, created_by`

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + stockMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.ProductID, movement.Type, movement.Quantity,
		nullIfEmpty(movement.DocumentID), movement.Notes, movement.Date, movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + stockMovementColumns + ` FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var documentID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.ProductID, &m.Type, &m.Quantity,
		&documentID, &m.Notes, &m.Date, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	m.DocumentID = derefStr(documentID)
	return &m, nil
}

// ListByCompany lista movimientos de la empresa, opcionalmente acotados por fecha.
func (r *StockMovementRepo) ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + stockMovementColumns + ` FROM stock_movements WHERE company_id = $1`)
	args := []any{companyID}
	if from != nil {
		args = append(args, *from)
		sb.WriteString(" AND date >= $" + strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		sb.WriteString(" AND date <= $" + strconv.Itoa(len(args)))
	}
	args = append(args, limit, offset)
	sb.WriteString(fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	return r.list(sb.String(), args...)
}

// ListByDocument lista los movimientos generados por un documento (ej: factura convertida).
func (r *StockMovementRepo) ListByDocument(documentID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockMovementColumns + ` FROM stock_movements WHERE document_id = $1 ORDER BY created_at`
	return r.list(query, documentID)
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var documentID *string
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ProductID, &m.Type, &m.Quantity,
			&documentID, &m.Notes, &m.Date, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.DocumentID = derefStr(documentID)
		list = append(list, &m)
	}
	return list, rows.Err()
}

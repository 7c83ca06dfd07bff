package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, company_id, customer_id, type, number, date,
	valid_until, due_date, status, subtotal, tax_amount, total_amount,
	notes, payment_method_id, source_id, converted_to_id, created_at, updated_at`

// Create persiste la cabecera del documento.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.CompanyID, doc.CustomerID, doc.Type, doc.Number, doc.Date,
		doc.ValidUntil, doc.DueDate, doc.Status, doc.Subtotal, doc.TaxAmount, doc.TotalAmount,
		doc.Notes, nullIfEmpty(doc.PaymentMethodID), nullIfEmpty(doc.SourceID), nullIfEmpty(doc.ConvertedToID),
		doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Único por (company_id, type, number): el asignador de consecutivos
			// ya lo garantiza; llegar aquí indica un número asignado fuera de él.
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del documento.
func (r *DocumentRepo) CreateItem(item *entity.DocumentItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO document_items (id, document_id, product_id, description, quantity,
			unit_price, unit_cost, discount_percentage, discount_amount, tax_percentage, tax_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.DocumentID, nullIfEmpty(item.ProductID), item.Description, item.Quantity,
		item.UnitPrice, item.UnitCost, item.DiscountPercentage, item.DiscountAmount, item.TaxPercentage,
		item.TaxAmount, item.LineTotal,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert document item: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID (sin líneas).
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate obtiene el documento bloqueando la fila. Usar solo
// dentro de una transacción: dos conversiones concurrentes del mismo
// origen se serializan aquí y la segunda verá el estado ya convertido.
func (r *DocumentRepo) GetByIDForUpdate(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *DocumentRepo) getOne(query, id string) (*entity.Document, error) {
	var d entity.Document
	var paymentMethodID, sourceID, convertedToID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.CompanyID, &d.CustomerID, &d.Type, &d.Number, &d.Date,
		&d.ValidUntil, &d.DueDate, &d.Status, &d.Subtotal, &d.TaxAmount, &d.TotalAmount,
		&d.Notes, &paymentMethodID, &sourceID, &convertedToID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	d.PaymentMethodID = derefStr(paymentMethodID)
	d.SourceID = derefStr(sourceID)
	d.ConvertedToID = derefStr(convertedToID)
	return &d, nil
}

// GetItems obtiene todas las líneas de un documento.
func (r *DocumentRepo) GetItems(documentID string) ([]*entity.DocumentItem, error) {
	query := `
		SELECT id, document_id, product_id, description, quantity, unit_price, unit_cost,
		       discount_percentage, discount_amount, tax_percentage, tax_amount, line_total
		FROM document_items WHERE document_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentItem
	for rows.Next() {
		var it entity.DocumentItem
		var productID *string
		if err := rows.Scan(&it.ID, &it.DocumentID, &productID, &it.Description, &it.Quantity,
			&it.UnitPrice, &it.UnitCost, &it.DiscountPercentage, &it.DiscountAmount, &it.TaxPercentage,
			&it.TaxAmount, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.ProductID = derefStr(productID)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByCompany lista documentos de la empresa con filtros y paginación.
func (r *DocumentRepo) ListByCompany(companyID string, filter repository.DocumentFilter, limit, offset int) ([]*entity.Document, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + documentColumns + ` FROM documents WHERE company_id = $1`)
	args := []any{companyID}
	add := func(cond string, v any) {
		args = append(args, v)
		sb.WriteString(" AND " + cond + "$" + strconv.Itoa(len(args)))
	}
	if filter.Type != "" {
		add("type = ", filter.Type)
	}
	if filter.Status != "" {
		add("status = ", filter.Status)
	}
	if filter.CustomerID != "" {
		add("customer_id = ", filter.CustomerID)
	}
	if filter.From != nil {
		add("date >= ", *filter.From)
	}
	if filter.To != nil {
		add("date <= ", *filter.To)
	}
	args = append(args, limit, offset)
	sb.WriteString(fmt.Sprintf(" ORDER BY date DESC, number DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		var paymentMethodID, sourceID, convertedToID *string
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.CustomerID, &d.Type, &d.Number, &d.Date,
			&d.ValidUntil, &d.DueDate, &d.Status, &d.Subtotal, &d.TaxAmount, &d.TotalAmount,
			&d.Notes, &paymentMethodID, &sourceID, &convertedToID, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.PaymentMethodID = derefStr(paymentMethodID)
		d.SourceID = derefStr(sourceID)
		d.ConvertedToID = derefStr(convertedToID)
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateHeader actualiza los campos editables de la cabecera.
func (r *DocumentRepo) UpdateHeader(doc *entity.Document) error {
	query := `
		UPDATE documents
		SET customer_id = $2, date = $3, valid_until = $4, due_date = $5,
		    subtotal = $6, tax_amount = $7, total_amount = $8, notes = $9,
		    payment_method_id = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.CustomerID, doc.Date, doc.ValidUntil, doc.DueDate,
		doc.Subtotal, doc.TaxAmount, doc.TotalAmount, doc.Notes,
		nullIfEmpty(doc.PaymentMethodID), doc.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado con guarda optimista sobre el estado actual.
// Si ninguna fila coincide (otro actor cambió el estado, o el ID no existe)
// devuelve domain.ErrConflict.
func (r *DocumentRepo) UpdateStatus(id, expected, next, convertedToID string, updatedAt time.Time) error {
	query := `
		UPDATE documents
		SET status = $3, converted_to_id = COALESCE($4, converted_to_id), updated_at = $5
		WHERE id = $1 AND status = $2`
	tag, err := r.q.Exec(context.Background(), query,
		id, expected, next, nullIfEmpty(convertedToID), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// ReplaceItems borra las líneas actuales e inserta las nuevas (edición completa).
func (r *DocumentRepo) ReplaceItems(documentID string, items []*entity.DocumentItem) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM document_items WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("delete document items: %w", err)
	}
	for _, it := range items {
		it.DocumentID = documentID
		if err := r.CreateItem(it); err != nil {
			return err
		}
	}
	return nil
}

// Delete elimina el documento y sus líneas.
func (r *DocumentRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM document_items WHERE document_id = $1`, id); err != nil {
		return fmt.Errorf("delete document items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

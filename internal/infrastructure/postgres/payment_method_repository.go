package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación de PaymentMethodRepository (usable con pool o tx).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

const paymentMethodColumns = `id, company_id, name, description, bank_account, is_active, created_at, updated_at`

// Create persiste un nuevo medio de pago.
func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		method.ID, method.CompanyID, method.Name, method.Description, method.BankAccount,
		method.IsActive, method.CreatedAt, method.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene un medio de pago por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE id = $1`
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.Name, &m.Description, &m.BankAccount,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

// ListByCompany lista medios de pago de la empresa; onlyActive filtra los inactivos.
func (r *PaymentMethodRepo) ListByCompany(companyID string, onlyActive bool) ([]*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE company_id = $1`
	if onlyActive {
		query += ` AND is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Name, &m.Description, &m.BankAccount,
			&m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza un medio de pago.
func (r *PaymentMethodRepo) Update(method *entity.PaymentMethod) error {
	query := `
		UPDATE payment_methods SET name = $2, description = $3, bank_account = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		method.ID, method.Name, method.Description, method.BankAccount, method.IsActive, method.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// Delete elimina un medio de pago por ID.
func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}

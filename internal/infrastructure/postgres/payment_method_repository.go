package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementation of the PaymentMethodRepository port over PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository builds the persistence adapter for payment methods.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

const paymentColumns = `id, name, number, status, created_at, updated_at`

// Create persists a payout destination. Names carry a unique constraint.
func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (id, name, number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		method.ID, method.Name, method.Number, method.Status, method.CreatedAt, method.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID fetches a method by id.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_methods WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName fetches a method by its unique name.
func (r *PaymentMethodRepo) GetByName(name string) (*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_methods WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// List returns every method, oldest first.
func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_methods ORDER BY created_at`
	return r.listQuery(query)
}

// ListActive returns the methods offered at checkout.
func (r *PaymentMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_methods WHERE status = $1 ORDER BY created_at`
	return r.listQuery(query, entity.PaymentActive)
}

// UpdateStatus activates or deactivates a method.
func (r *PaymentMethodRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE payment_methods SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update payment method status: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) listQuery(query string, args ...any) ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Number, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *PaymentMethodRepo) scanOne(row pgx.Row) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := row.Scan(&m.ID, &m.Name, &m.Number, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementation of the OrderRepository port over PostgreSQL (usable with pool or tx).
// An order row carries the contact snapshot; its item snapshot lives in order_items.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the persistence adapter for orders. Pass pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, user_id, total, payment_method, transaction_id, status,
	customer_name, customer_address, customer_phone, created_at, updated_at`

// Create persists the order header and one row per snapshot line. Callers run
// this inside a transaction so header and lines land together.
func (r *OrderRepo) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (id, user_id, total, payment_method, transaction_id, status,
			customer_name, customer_address, customer_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, order.Total, order.PaymentMethod, order.TransactionID,
		order.Status, order.CustomerName, order.CustomerAddress, order.CustomerPhone,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	itemQuery := `
		INSERT INTO order_items (order_id, position, product_id, name, price, category, image_url, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, item := range order.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			order.ID, i, item.ProductID, item.Name, item.Price, item.Category, item.ImageURL, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID fetches an order with its item snapshot.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.Total, &o.PaymentMethod, &o.TransactionID, &o.Status,
		&o.CustomerName, &o.CustomerAddress, &o.CustomerPhone, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsFor([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// ListByUser returns a user's orders, newest first, with item snapshots.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(query, userID)
}

// List returns orders for the back office: exact status filter plus a free
// search over id, customer name and phone, newest first.
func (r *OrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR id::text ILIKE '%' || $2 || '%'
		       OR customer_name ILIKE '%' || $2 || '%'
		       OR customer_phone ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, f.Status, f.Search, f.Limit, f.Offset)
}

// ListAll returns every order with item snapshots, for the sales report.
func (r *OrderRepo) ListAll() ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.list(query)
}

// UpdateStatus sets an order's status.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.PaymentMethod, &o.TransactionID,
			&o.Status, &o.CustomerName, &o.CustomerAddress, &o.CustomerPhone,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = items[o.ID]
	}
	return list, nil
}

// itemsFor loads item snapshots for a set of orders, preserving line order.
func (r *OrderRepo) itemsFor(orderIDs []string) (map[string][]entity.CartItem, error) {
	query := `
		SELECT order_id, product_id, name, price, category, image_url, quantity
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.CartItem, len(orderIDs))
	for rows.Next() {
		var orderID string
		var item entity.CartItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.Name, &item.Price,
			&item.Category, &item.ImageURL, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[orderID] = append(out[orderID], item)
	}
	return out, rows.Err()
}

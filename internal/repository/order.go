package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/averko/premium-store/internal/domain/order"
)

const (
	insertOrderSQL = `INSERT INTO orders (
			order_number, email, product_id, product_name, quantity,
			original_price, discount_code, discount_percent, final_price,
			status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	getOrderByNumberSQL = `SELECT order_number, email, product_id, product_name, quantity,
			original_price, discount_code, discount_percent, final_price,
			status, created_at
		FROM orders WHERE order_number = $1`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL. Each
// order is a single row, so inserts are atomic without explicit transactions.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Insert persists a new order. An empty discount code is stored as NULL.
func (r *OrderRepository) Insert(ctx context.Context, o *order.Order) error {
	var code *string
	if o.DiscountCode != "" {
		code = &o.DiscountCode
	}

	_, err := r.pool.Exec(ctx, insertOrderSQL,
		o.Number, o.Email, o.ProductID, o.ProductName, o.Quantity,
		o.OriginalPrice, code, o.DiscountPercent, o.FinalPrice,
		o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order %q: %w", o.Number, err)
	}

	return nil
}

// GetByNumber returns the order with the given number, or order.ErrNotFound.
func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	var (
		o    order.Order
		code *string
	)
	err := r.pool.QueryRow(ctx, getOrderByNumberSQL, number).Scan(
		&o.Number, &o.Email, &o.ProductID, &o.ProductName, &o.Quantity,
		&o.OriginalPrice, &code, &o.DiscountPercent, &o.FinalPrice,
		&o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %q: %w", number, err)
	}
	if code != nil {
		o.DiscountCode = *code
	}
	return &o, nil
}

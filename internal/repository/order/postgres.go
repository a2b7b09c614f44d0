package order

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tableside/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) CreateWithItems(ctx context.Context, in CreateOrderInput, items []CreateOrderItemInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const orderQuery = `
INSERT INTO orders (restaurant_id, table_id, table_number, subtotal, tax, tip, total, payment_method, payment_status, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), 'completed', 'completed')
RETURNING id::text, restaurant_id::text, table_id::text, table_number, status, subtotal, tax, tip, total, COALESCE(payment_method, ''), payment_status, created_at
`
	var o domain.Order
	var tableID *string
	var tableNumber *int
	if err := tx.QueryRow(ctx, orderQuery,
		in.RestaurantID, in.TableID, in.TableNumber,
		in.Subtotal, in.Tax, in.Tip, in.Total, in.PaymentMethod,
	).Scan(
		&o.ID,
		&o.RestaurantID,
		&tableID,
		&tableNumber,
		&o.Status,
		&o.Subtotal,
		&o.Tax,
		&o.Tip,
		&o.Total,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.CreatedAt,
	); err != nil {
		r.logger.Printf("order repo: create restaurant_id=%s error=%v", in.RestaurantID, err)
		return nil, err
	}
	o.TableID = tableID
	o.TableNumber = tableNumber

	const itemQuery = `
INSERT INTO order_items (order_id, menu_item_id, menu_item_name, price, quantity, subtotal)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text, order_id::text, menu_item_id::text, menu_item_name, price, quantity, subtotal, created_at
`
	for _, item := range items {
		var oi domain.OrderItem
		var menuItemID *string
		lineSubtotal := item.Price * float64(item.Quantity)
		if err := tx.QueryRow(ctx, itemQuery, o.ID, item.MenuItemID, item.Name, item.Price, item.Quantity, lineSubtotal).Scan(
			&oi.ID,
			&oi.OrderID,
			&menuItemID,
			&oi.Name,
			&oi.Price,
			&oi.Quantity,
			&oi.Subtotal,
			&oi.CreatedAt,
		); err != nil {
			r.logger.Printf("order repo: create item order_id=%s error=%v", o.ID, err)
			return nil, err
		}
		oi.MenuItemID = menuItemID
		o.Items = append(o.Items, oi)
		o.ItemCount += oi.Quantity
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByDateRange(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.Order, error) {
	const q = `
SELECT o.id::text, o.restaurant_id::text, o.table_id::text, o.table_number, o.status,
       o.subtotal, o.tax, o.tip, o.total, COALESCE(o.payment_method, ''), o.payment_status,
       o.created_at, COALESCE(SUM(oi.quantity), 0)::int
FROM orders o
LEFT JOIN order_items oi ON o.id = oi.order_id
WHERE o.restaurant_id = $1
  AND o.created_at >= $2
  AND o.created_at < $3
GROUP BY o.id
ORDER BY o.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, restaurantID, from, to)
	if err != nil {
		r.logger.Printf("order repo: list restaurant_id=%s error=%v", restaurantID, err)
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var tableID *string
		var tableNumber *int
		if err := rows.Scan(
			&o.ID,
			&o.RestaurantID,
			&tableID,
			&tableNumber,
			&o.Status,
			&o.Subtotal,
			&o.Tax,
			&o.Tip,
			&o.Total,
			&o.PaymentMethod,
			&o.PaymentStatus,
			&o.CreatedAt,
			&o.ItemCount,
		); err != nil {
			return nil, err
		}
		o.TableID = tableID
		o.TableNumber = tableNumber
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

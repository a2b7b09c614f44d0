package order

import (
	"context"
	"time"

	"tableside/internal/domain"
)

type CreateOrderInput struct {
	RestaurantID  string
	TableID       *string
	TableNumber   *int
	Subtotal      float64
	Tax           float64
	Tip           float64
	Total         float64
	PaymentMethod string
}

type CreateOrderItemInput struct {
	MenuItemID *string
	Name       string
	Price      float64
	Quantity   int
}

type Repository interface {
	// CreateWithItems inserts the order row and one row per item inside a
	// single transaction, so a failed item insert never leaves a
	// partially-populated order behind.
	CreateWithItems(ctx context.Context, in CreateOrderInput, items []CreateOrderItemInput) (*domain.Order, error)
	// ListByDateRange returns the restaurant's orders created in [from, to),
	// newest first, each carrying its item count.
	ListByDateRange(ctx context.Context, restaurantID string, from, to time.Time) ([]domain.Order, error)
}

package order

import (
	"context"
	"strings"
	"time"

	"tableside/internal/billing"
	"tableside/internal/domain"
	orderrepo "tableside/internal/repository/order"
)

// Service creates orders at checkout and aggregates them for the owner
// dashboard.
type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateItemInput struct {
	MenuItemID *string `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type CreateInput struct {
	RestaurantID  string            `json:"restaurantId"`
	TableID       *string           `json:"tableId"`
	TableNumber   *int              `json:"tableNumber"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Tip           float64           `json:"tip"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	Items         []CreateItemInput `json:"items"`
}

// Create persists one order plus its item snapshots. The order row is the
// sole record of the amounts; clients never mutate it afterwards.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if strings.TrimSpace(in.RestaurantID) == "" {
		return nil, domain.Invalidf("restaurantId required")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalidf("items required")
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, domain.Invalidf("items[%d]: name required", i)
		}
		if item.Price < 0 {
			return nil, domain.Invalidf("items[%d]: price must not be negative", i)
		}
		if item.Quantity <= 0 {
			return nil, domain.Invalidf("items[%d]: quantity must be positive", i)
		}
	}

	items := make([]orderrepo.CreateOrderItemInput, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, orderrepo.CreateOrderItemInput{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return s.repo.CreateWithItems(ctx, orderrepo.CreateOrderInput{
		RestaurantID:  in.RestaurantID,
		TableID:       in.TableID,
		TableNumber:   in.TableNumber,
		Subtotal:      billing.Round(in.Subtotal),
		Tax:           billing.Round(in.Tax),
		Tip:           billing.Round(in.Tip),
		Total:         billing.Round(in.Total),
		PaymentMethod: in.PaymentMethod,
	}, items)
}

// Stats aggregates the dashboard headline numbers over a set of orders.
type Stats struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
	TotalItems   int     `json:"totalItems"`
}

// ListForDashboard returns the restaurant's orders for the period anchored
// at date, plus their aggregate stats.
func (s *Service) ListForDashboard(ctx context.Context, restaurantID string, date time.Time, period string) ([]domain.Order, Stats, error) {
	from, to, err := PeriodRange(date, period)
	if err != nil {
		return nil, Stats{}, err
	}
	orders, err := s.repo.ListByDateRange(ctx, restaurantID, from, to)
	if err != nil {
		return nil, Stats{}, err
	}

	var stats Stats
	for _, o := range orders {
		stats.TotalRevenue += o.Total
		stats.TotalOrders++
		stats.TotalItems += o.ItemCount
	}
	stats.TotalRevenue = billing.Round(stats.TotalRevenue)
	return orders, stats, nil
}

// PeriodRange computes the half-open [from, to) range containing date for
// a day, month or year period.
func PeriodRange(date time.Time, period string) (time.Time, time.Time, error) {
	y, m, d := date.Date()
	loc := date.Location()
	switch period {
	case "", "day":
		from := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 0, 1), nil
	case "month":
		from := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 1, 0), nil
	case "year":
		from := time.Date(y, 1, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, time.Time{}, domain.Invalidf("invalid period %q", period)
	}
}

package payment

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tableside/internal/billing"
	"tableside/internal/domain"
	"tableside/internal/tips"
)

var processedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tableside_payments_processed_total",
	Help: "Completed simulated payments by method.",
}, []string{"method"})

// DefaultProcessingDelay mirrors the pause the payment sheet shows while
// "contacting" the processor.
const DefaultProcessingDelay = 1500 * time.Millisecond

// Service simulates payment processing. There is no real processor behind
// it; every well-formed request succeeds after a fixed delay.
type Service struct {
	tips  *tips.Tracker
	delay time.Duration
}

func New(tracker *tips.Tracker) *Service {
	return &Service{tips: tracker, delay: DefaultProcessingDelay}
}

// NewWithDelay exists for tests that cannot afford the real delay.
func NewWithDelay(tracker *tips.Tracker, delay time.Duration) *Service {
	return &Service{tips: tracker, delay: delay}
}

type ProcessInput struct {
	RestaurantID string  `json:"restaurantId"`
	Method       string  `json:"method"`
	Amount       float64 `json:"amount"`
	// TipOption is the tip choice id ("10", "15", "20", "custom", "none");
	// empty means the customer skipped the tip screen entirely.
	TipOption string  `json:"tipOption"`
	TipAmount float64 `json:"tipAmount"`
}

type Result struct {
	Success   bool      `json:"success"`
	Method    string    `json:"method"`
	Amount    float64   `json:"amount"`
	TipAmount float64   `json:"tipAmount"`
	PaidAt    time.Time `json:"paidAt"`
}

// Process validates the request, waits out the simulated processing delay
// and records which tip option was chosen.
func (s *Service) Process(ctx context.Context, in ProcessInput) (*Result, error) {
	if strings.TrimSpace(in.RestaurantID) == "" {
		return nil, domain.Invalidf("restaurantId required")
	}
	method := strings.TrimSpace(in.Method)
	if method == "" {
		return nil, domain.Invalidf("method required")
	}
	if in.Amount <= 0 {
		return nil, domain.Invalidf("amount must be positive")
	}
	if in.TipAmount < 0 {
		return nil, domain.Invalidf("tipAmount must not be negative")
	}

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if in.TipOption != "" {
		if err := s.tips.Record(ctx, in.RestaurantID, in.TipOption); err != nil {
			return nil, err
		}
	}

	processedTotal.WithLabelValues(method).Inc()
	return &Result{
		Success:   true,
		Method:    method,
		Amount:    billing.Round(in.Amount),
		TipAmount: billing.Round(in.TipAmount),
		PaidAt:    time.Now(),
	}, nil
}

// PopularTip exposes the tracker's most-selected option for the payment
// sheet's "Popular" badge.
func (s *Service) PopularTip(ctx context.Context, restaurantID string) (string, error) {
	return s.tips.Popular(ctx, restaurantID)
}

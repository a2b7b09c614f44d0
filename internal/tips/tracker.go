// Package tips tracks how often each tip option is chosen so the payment
// screen can mark one option as "Popular".
package tips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableside/internal/domain"
	"tableside/internal/kvstore"
)

// DefaultOption is surfaced as popular when no history exists yet.
const DefaultOption = "10"

// OptionCount is one tip option's running selection count. Counts are kept
// as an ordered list so the first-seen option wins ties.
type OptionCount struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

type Tracker struct {
	store kvstore.Store
}

func NewTracker(store kvstore.Store) *Tracker {
	return &Tracker{store: store}
}

// Record increments the count for the tip option chosen on a completed
// payment.
func (t *Tracker) Record(ctx context.Context, restaurantID, optionID string) error {
	counts, err := t.Counts(ctx, restaurantID)
	if err != nil {
		return err
	}

	found := false
	for i := range counts {
		if counts[i].ID == optionID {
			counts[i].Count++
			found = true
			break
		}
	}
	if !found {
		counts = append(counts, OptionCount{ID: optionID, Count: 1})
	}

	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("marshal tip counts: %w", err)
	}
	return t.store.Set(ctx, key(restaurantID), string(data))
}

// Popular returns the most-selected tip option id, breaking ties in favor of
// the option seen first. Without any history it falls back to DefaultOption.
func (t *Tracker) Popular(ctx context.Context, restaurantID string) (string, error) {
	counts, err := t.Counts(ctx, restaurantID)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return DefaultOption, nil
	}

	best := counts[0]
	for _, c := range counts[1:] {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.ID, nil
}

// Counts returns the selection counts in first-seen order.
func (t *Tracker) Counts(ctx context.Context, restaurantID string) ([]OptionCount, error) {
	raw, err := t.store.Get(ctx, key(restaurantID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var counts []OptionCount
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		return nil, fmt.Errorf("decode tip counts: %w", err)
	}
	return counts, nil
}

func key(restaurantID string) string {
	return "tips:" + restaurantID
}

package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableside/internal/domain"
	"tableside/internal/kvstore"
	"tableside/internal/tips"
)

func newTestService(t *testing.T) (*Service, *tips.Tracker) {
	t.Helper()
	tracker := tips.NewTracker(kvstore.NewMemory())
	return NewWithDelay(tracker, time.Millisecond), tracker
}

func TestProcessValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name string
		in   ProcessInput
	}{
		{"missing restaurant", ProcessInput{Method: "card", Amount: 10}},
		{"missing method", ProcessInput{RestaurantID: "r1", Amount: 10}},
		{"zero amount", ProcessInput{RestaurantID: "r1", Method: "card"}},
		{"negative tip", ProcessInput{RestaurantID: "r1", Method: "card", Amount: 10, TipAmount: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Process(context.Background(), tc.in); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestProcessSucceedsAndRecordsTip(t *testing.T) {
	svc, tracker := newTestService(t)

	res, err := svc.Process(context.Background(), ProcessInput{
		RestaurantID: "r1",
		Method:       "card",
		Amount:       23.648,
		TipOption:    "15",
		TipAmount:    3.00,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Amount != 23.65 {
		t.Fatalf("expected rounded amount 23.65, got %v", res.Amount)
	}

	popular, err := tracker.Popular(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if popular != "15" {
		t.Fatalf("expected 15 to be popular, got %s", popular)
	}
}

func TestProcessSkipsTipWhenNoOption(t *testing.T) {
	svc, tracker := newTestService(t)

	if _, err := svc.Process(context.Background(), ProcessInput{
		RestaurantID: "r1",
		Method:       "apple",
		Amount:       10,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts, err := tracker.Counts(context.Background(), "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected no tip counts, got %v", counts)
	}
}

type failingStore struct {
	err error
}

func (s *failingStore) Get(_ context.Context, _ string) (string, error) { return "", s.err }
func (s *failingStore) Set(_ context.Context, _, _ string) error        { return s.err }
func (s *failingStore) Subscribe(_ context.Context, _ string) (<-chan string, func()) {
	ch := make(chan string)
	close(ch)
	return ch, func() {}
}

func TestProcessStoreFailureIsNotValidation(t *testing.T) {
	wantErr := errors.New("store down")
	tracker := tips.NewTracker(&failingStore{err: wantErr})
	svc := NewWithDelay(tracker, time.Millisecond)

	_, err := svc.Process(context.Background(), ProcessInput{
		RestaurantID: "r1",
		Method:       "card",
		Amount:       10,
		TipOption:    "15",
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		t.Fatal("store error must not look like a validation error")
	}
}

func TestProcessHonorsContextCancel(t *testing.T) {
	tracker := tips.NewTracker(kvstore.NewMemory())
	svc := NewWithDelay(tracker, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Process(ctx, ProcessInput{RestaurantID: "r1", Method: "card", Amount: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMethodsFirstSavedBecomesDefault(t *testing.T) {
	m := NewMethods(kvstore.NewMemory())
	ctx := context.Background()

	first, err := m.Add(ctx, "dev1", AddMethodInput{Type: domain.PaymentTypeCard, Last4: "4242", Brand: "visa", Name: "Personal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.IsDefault {
		t.Fatal("expected first method to be default")
	}

	second, err := m.Add(ctx, "dev1", AddMethodInput{Type: domain.PaymentTypeApple, Name: "Apple Pay"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.IsDefault {
		t.Fatal("expected second method to not be default")
	}
}

func TestMethodsSetDefaultClearsOthers(t *testing.T) {
	m := NewMethods(kvstore.NewMemory())
	ctx := context.Background()

	first, _ := m.Add(ctx, "dev1", AddMethodInput{Type: domain.PaymentTypeCard, Name: "A"})
	second, _ := m.Add(ctx, "dev1", AddMethodInput{Type: domain.PaymentTypeCard, Name: "B"})

	if err := m.SetDefault(ctx, "dev1", second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	methods, _ := m.List(ctx, "dev1")
	for _, method := range methods {
		want := method.ID == second.ID
		if method.IsDefault != want {
			t.Fatalf("method %s default=%v, want %v", method.Name, method.IsDefault, want)
		}
	}

	if err := m.SetDefault(ctx, "dev1", "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_ = first
}

func TestMethodsRemovePromotesNewDefault(t *testing.T) {
	m := NewMethods(kvstore.NewMemory())
	ctx := context.Background()

	first, _ := m.Add(ctx, "dev1", AddMethodInput{Type: domain.PaymentTypeCard, Name: "A"})
	second, _ := m.Add(ctx, "dev1", AddMethodInput{Type: domain.PaymentTypeCard, Name: "B"})

	if err := m.Remove(ctx, "dev1", first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	methods, _ := m.List(ctx, "dev1")
	if len(methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(methods))
	}
	if methods[0].ID != second.ID || !methods[0].IsDefault {
		t.Fatalf("expected %s promoted to default, got %+v", second.ID, methods[0])
	}

	if err := m.Remove(ctx, "dev1", "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMethodsRejectsUnknownType(t *testing.T) {
	m := NewMethods(kvstore.NewMemory())
	if _, err := m.Add(context.Background(), "dev1", AddMethodInput{Type: "cash", Name: "X"}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

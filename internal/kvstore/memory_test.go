package kvstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableside/internal/domain"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.Get(ctx, "theme"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := store.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "dark" {
		t.Fatalf("got %q, want dark", v)
	}
}

func TestMemorySubscribeReceivesWrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	ch, cancel := store.Subscribe(ctx, "theme")
	defer cancel()

	if err := store.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case v := <-ch:
		if v != "light" {
			t.Fatalf("got %q, want light", v)
		}
	case <-time.After(time.Second):
		t.Fatalf("subscriber did not receive the write")
	}
}

func TestMemorySubscribeCancelStopsDelivery(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	ch, cancel := store.Subscribe(ctx, "theme")
	cancel()

	if err := store.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel after cancel")
	}
}

func TestMemorySubscribeOtherKeyIgnored(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	ch, cancel := store.Subscribe(ctx, "theme")
	defer cancel()

	if err := store.Set(ctx, "font", "serif"); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case v := <-ch:
		t.Fatalf("unexpected delivery %q for unrelated key", v)
	case <-time.After(50 * time.Millisecond):
	}
}

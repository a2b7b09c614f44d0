package session

import (
	"context"
	"time"
)

type Session struct {
	Token        string
	RestaurantID string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

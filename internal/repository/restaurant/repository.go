package restaurant

import (
	"context"

	"tableside/internal/domain"
)

type CreateInput struct {
	AccessID     string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	GetByAccessID(ctx context.Context, accessID string) (*domain.Restaurant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Restaurant, error)
	// GetByEmailOrAccessID resolves the login identifier, which may be
	// either the registered email or the human-chosen access id.
	GetByEmailOrAccessID(ctx context.Context, identifier string) (*domain.Restaurant, error)
}

package menu

import (
	"context"

	"tableside/internal/domain"
)

type CreateItemInput struct {
	RestaurantID string
	CategoryID   *string
	Name         string
	Description  string
	Price        float64
	ImageURL     string
	DisplayOrder int
}

// UpdateItemInput carries a partial update; nil fields are left unchanged.
type UpdateItemInput struct {
	CategoryID   *string
	Name         *string
	Description  *string
	Price        *float64
	ImageURL     *string
	IsAvailable  *bool
	DisplayOrder *int
}

type CreateCategoryInput struct {
	RestaurantID string
	Name         string
	DisplayOrder int
}

type Repository interface {
	ListItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, restaurantID, id string) (*domain.MenuItem, error)
	CreateItem(ctx context.Context, in CreateItemInput) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, restaurantID, id string, in UpdateItemInput) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, restaurantID, id string) error
	ListCategories(ctx context.Context, restaurantID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
}

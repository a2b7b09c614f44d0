package menu

import (
	"context"
	"errors"
	"strings"

	"tableside/internal/domain"
	menurepo "tableside/internal/repository/menu"
)

// Service is the owner-facing menu management surface.
type Service struct {
	repo menurepo.Repository
}

func New(repo menurepo.Repository) *Service {
	return &Service{repo: repo}
}

type ItemInput struct {
	CategoryID   *string  `json:"categoryId"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	ImageURL     string   `json:"imageUrl"`
	IsAvailable  *bool    `json:"isAvailable"`
	DisplayOrder *int     `json:"displayOrder"`
}

type CategoryInput struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

func (s *Service) ListItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	return s.repo.ListItems(ctx, restaurantID)
}

func (s *Service) GetItem(ctx context.Context, restaurantID, id string) (*domain.MenuItem, error) {
	return s.repo.GetItem(ctx, restaurantID, id)
}

func (s *Service) AddItem(ctx context.Context, restaurantID string, in ItemInput) (*domain.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalidf("name required")
	}
	if in.Price == nil {
		return nil, domain.Invalidf("price required")
	}
	if *in.Price < 0 {
		return nil, domain.Invalidf("price must not be negative")
	}
	displayOrder := 0
	if in.DisplayOrder != nil {
		displayOrder = *in.DisplayOrder
	}
	return s.repo.CreateItem(ctx, menurepo.CreateItemInput{
		RestaurantID: restaurantID,
		CategoryID:   in.CategoryID,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Price:        *in.Price,
		ImageURL:     strings.TrimSpace(in.ImageURL),
		DisplayOrder: displayOrder,
	})
}

// UpdateItem applies a partial update; absent fields keep their stored value.
func (s *Service) UpdateItem(ctx context.Context, restaurantID, id string, in ItemInput) (*domain.MenuItem, error) {
	update := menurepo.UpdateItemInput{
		CategoryID:   in.CategoryID,
		Price:        in.Price,
		IsAvailable:  in.IsAvailable,
		DisplayOrder: in.DisplayOrder,
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		update.Name = &name
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		update.Description = &desc
	}
	if url := strings.TrimSpace(in.ImageURL); url != "" {
		update.ImageURL = &url
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, domain.Invalidf("price must not be negative")
	}
	return s.repo.UpdateItem(ctx, restaurantID, id, update)
}

func (s *Service) DeleteItem(ctx context.Context, restaurantID, id string) error {
	return s.repo.DeleteItem(ctx, restaurantID, id)
}

func (s *Service) ListCategories(ctx context.Context, restaurantID string) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx, restaurantID)
}

// AddCategory appends an owner-defined category. Category deletion is
// deliberately not offered; categories are seed data plus appended entries.
func (s *Service) AddCategory(ctx context.Context, restaurantID string, in CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalidf("name required")
	}
	cat, err := s.repo.CreateCategory(ctx, menurepo.CreateCategoryInput{
		RestaurantID: restaurantID,
		Name:         name,
		DisplayOrder: in.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.Invalidf("category already exists")
		}
		return nil, err
	}
	return cat, nil
}

package domain

import "time"

type Category struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"-"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

type MenuItem struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"-"`
	CategoryID   *string   `json:"categoryId,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	IsAvailable  bool      `json:"isAvailable"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

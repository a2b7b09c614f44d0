package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type itemSeed struct {
	Category    string
	Name        string
	Description string
	Price       float64
	Order       int
}

// Apply inserts a demo restaurant with a populated menu for manual testing.
// It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	restaurantID, err := ensureRestaurant(ctx, pool, "demo", "The Demo Bistro", "owner@demobistro.test", "demo-password")
	if err != nil {
		return fmt.Errorf("ensure restaurant: %w", err)
	}

	categories := []string{"Starters", "Mains", "Drinks", "Desserts"}
	categoryIDs := make(map[string]string, len(categories))
	for i, name := range categories {
		id, err := ensureCategory(ctx, pool, restaurantID, name, i)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", name, err)
		}
		categoryIDs[name] = id
	}

	items := []itemSeed{
		{"Starters", "Bruschetta", "Grilled bread with tomatoes, garlic and basil", 8.50, 0},
		{"Starters", "Crispy Calamari", "Lightly fried squid with lemon aioli", 12.00, 1},
		{"Starters", "Caprese Salad", "Fresh mozzarella, tomatoes and basil", 10.50, 2},
		{"Mains", "Grilled Salmon", "Atlantic salmon with seasonal vegetables", 24.00, 0},
		{"Mains", "Ribeye Steak", "12oz ribeye with garlic butter", 32.00, 1},
		{"Mains", "Mushroom Risotto", "Creamy arborio rice with wild mushrooms", 18.00, 2},
		{"Mains", "Chicken Parmesan", "Breaded chicken breast with marinara and mozzarella", 20.00, 3},
		{"Drinks", "Fresh Lemonade", "House-made with mint", 4.50, 0},
		{"Drinks", "Sparkling Water", "San Pellegrino 500ml", 3.50, 1},
		{"Drinks", "House Red Wine", "Glass of Chianti", 9.00, 2},
		{"Desserts", "Tiramisu", "Classic espresso-soaked ladyfingers", 8.00, 0},
		{"Desserts", "Panna Cotta", "Vanilla cream with berry coulis", 7.50, 1},
	}

	for _, item := range items {
		if err := upsertMenuItem(ctx, pool, restaurantID, categoryIDs[item.Category], item); err != nil {
			return fmt.Errorf("upsert menu item %s: %w", item.Name, err)
		}
	}

	for n := 1; n <= 8; n++ {
		if err := ensureTable(ctx, pool, restaurantID, n); err != nil {
			return fmt.Errorf("ensure table %d: %w", n, err)
		}
	}

	return nil
}

func ensureRestaurant(ctx context.Context, pool *pgxpool.Pool, accessID, name, email, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	const q = `
INSERT INTO restaurants (access_id, name, email, password_hash)
VALUES ($1, $2, $3, $4)
ON CONFLICT (access_id) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, accessID, name, email, string(hashed)).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, restaurantID, name string, order int) (string, error) {
	const q = `
INSERT INTO categories (restaurant_id, name, display_order)
VALUES ($1, $2, $3)
ON CONFLICT (restaurant_id, name) DO UPDATE SET display_order = EXCLUDED.display_order
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, restaurantID, name, order).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertMenuItem(ctx context.Context, pool *pgxpool.Pool, restaurantID, categoryID string, item itemSeed) error {
	// menu_items has no natural unique key, so look up by name first.
	const existsQ = `
SELECT 1 FROM menu_items WHERE restaurant_id = $1 AND name = $2 LIMIT 1
`
	var one int
	err := pool.QueryRow(ctx, existsQ, restaurantID, item.Name).Scan(&one)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	const q = `
INSERT INTO menu_items (restaurant_id, category_id, name, description, price, display_order)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err = pool.Exec(ctx, q, restaurantID, categoryID, item.Name, item.Description, item.Price, item.Order)
	return err
}

func ensureTable(ctx context.Context, pool *pgxpool.Pool, restaurantID string, number int) error {
	const q = `
INSERT INTO tables (restaurant_id, table_number)
VALUES ($1, $2)
ON CONFLICT (restaurant_id, table_number) DO NOTHING
`
	_, err := pool.Exec(ctx, q, restaurantID, number)
	return err
}

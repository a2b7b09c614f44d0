package menu

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tableside/internal/domain"
)

const itemColumns = `id::text, restaurant_id::text, category_id::text, name, COALESCE(description, ''), price, COALESCE(image_url, ''), is_available, display_order, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM menu_items
WHERE restaurant_id = $1
ORDER BY display_order ASC, created_at ASC
`
	rows, err := r.pool.Query(ctx, q, restaurantID)
	if err != nil {
		r.logger.Printf("menu repo: list items restaurant_id=%s error=%v", restaurantID, err)
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) GetItem(ctx context.Context, restaurantID, id string) (*domain.MenuItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM menu_items
WHERE restaurant_id = $1 AND id = $2
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, restaurantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) CreateItem(ctx context.Context, in CreateItemInput) (*domain.MenuItem, error) {
	const q = `
INSERT INTO menu_items (restaurant_id, category_id, name, description, price, image_url, display_order)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7)
RETURNING ` + itemColumns + `
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, in.RestaurantID, in.CategoryID, in.Name, in.Description, in.Price, in.ImageURL, in.DisplayOrder))
	if err != nil {
		r.logger.Printf("menu repo: create item restaurant_id=%s error=%v", in.RestaurantID, err)
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) UpdateItem(ctx context.Context, restaurantID, id string, in UpdateItemInput) (*domain.MenuItem, error) {
	const q = `
UPDATE menu_items
SET category_id   = COALESCE($3, category_id),
    name          = COALESCE($4, name),
    description   = COALESCE($5, description),
    price         = COALESCE($6, price),
    image_url     = COALESCE($7, image_url),
    is_available  = COALESCE($8, is_available),
    display_order = COALESCE($9, display_order),
    updated_at    = NOW()
WHERE restaurant_id = $1 AND id = $2
RETURNING ` + itemColumns + `
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, restaurantID, id,
		in.CategoryID, in.Name, in.Description, in.Price, in.ImageURL, in.IsAvailable, in.DisplayOrder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("menu repo: update item id=%s error=%v", id, err)
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) DeleteItem(ctx context.Context, restaurantID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE restaurant_id = $1 AND id = $2`, restaurantID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListCategories(ctx context.Context, restaurantID string) ([]domain.Category, error) {
	const q = `
SELECT id::text, restaurant_id::text, name, display_order, created_at
FROM categories
WHERE restaurant_id = $1
ORDER BY display_order ASC, created_at ASC
`
	rows, err := r.pool.Query(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.DisplayOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *postgresRepo) CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error) {
	const q = `
INSERT INTO categories (restaurant_id, name, display_order)
VALUES ($1, $2, $3)
RETURNING id::text, restaurant_id::text, name, display_order, created_at
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, in.RestaurantID, in.Name, in.DisplayOrder).Scan(
		&c.ID, &c.RestaurantID, &c.Name, &c.DisplayOrder, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("menu repo: create category restaurant_id=%s error=%v", in.RestaurantID, err)
		return nil, err
	}
	return &c, nil
}

func scanItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var categoryID *string
	if err := row.Scan(
		&item.ID,
		&item.RestaurantID,
		&categoryID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.IsAvailable,
		&item.DisplayOrder,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.CategoryID = categoryID
	return &item, nil
}

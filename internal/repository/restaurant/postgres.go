package restaurant

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

const restaurantColumns = `id::text, access_id, name, email, password_hash, COALESCE(phone, ''), COALESCE(address, ''), COALESCE(logo_url, ''), tax_rate, surcharge_rate, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Restaurant, error) {
	const q = `
INSERT INTO restaurants (access_id, name, email, password_hash, phone, address)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
RETURNING ` + restaurantColumns + `
`
	row := r.pool.QueryRow(ctx, q, in.AccessID, in.Name, in.Email, in.PasswordHash, in.Phone, in.Address)
	rest, err := scanRestaurant(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("restaurant repo: create access_id=%s error=%v", in.AccessID, err)
		return nil, err
	}
	return rest, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	const q = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`
	return r.fetch(ctx, q, id)
}

func (r *postgresRepo) GetByAccessID(ctx context.Context, accessID string) (*domain.Restaurant, error) {
	const q = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE access_id = $1`
	return r.fetch(ctx, q, accessID)
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Restaurant, error) {
	const q = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE email = $1`
	return r.fetch(ctx, q, email)
}

func (r *postgresRepo) GetByEmailOrAccessID(ctx context.Context, identifier string) (*domain.Restaurant, error) {
	const q = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE email = $1 OR access_id = $1 LIMIT 1`
	return r.fetch(ctx, q, identifier)
}

func (r *postgresRepo) fetch(ctx context.Context, query string, args ...interface{}) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}

func scanRestaurant(row pgx.Row) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := row.Scan(
		&rest.ID,
		&rest.AccessID,
		&rest.Name,
		&rest.Email,
		&rest.PasswordHash,
		&rest.Phone,
		&rest.Address,
		&rest.LogoURL,
		&rest.TaxRate,
		&rest.SurchargeRate,
		&rest.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rest, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
)

type postgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository connects to the database at dsn and makes
// sure the products table exists.
func NewPostgresProductRepository(ctx context.Context, dsn string) (ProductRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	r := &postgresProductRepository{pool: pool}
	if err := r.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *postgresProductRepository) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS products (
			id          BIGSERIAL PRIMARY KEY,
			product_id  TEXT NOT NULL,
			name        TEXT NOT NULL,
			price       DOUBLE PRECISION NOT NULL,
			description TEXT,
			stock       INTEGER NOT NULL
		);
	`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("creating products table: %w", err)
	}

	return nil
}

func (r *postgresProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postgresProductRepository) FindByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT id, product_id, name, price, COALESCE(description, ''), stock
		FROM products
		WHERE product_id = $1
		ORDER BY id
		LIMIT 1;
	`

	var p domain.Product
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&p.ID,
		&p.ProductID,
		&p.Name,
		&p.Price,
		&p.Description,
		&p.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *postgresProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, product_id, name, price, COALESCE(description, ''), stock
		FROM products
		ORDER BY id;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.ProductID,
			&p.Name,
			&p.Price,
			&p.Description,
			&p.Stock,
		); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}

	return result, rows.Err()
}

// Save inserts the product when it carries no id yet, and replaces the row
// in place when it does. A pre-assigned id that does not exist is inserted
// as given.
func (r *postgresProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	saved := *product

	if saved.ID == 0 {
		query := `
			INSERT INTO products (product_id, name, price, description, stock)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;
		`

		err := r.pool.QueryRow(ctx, query,
			saved.ProductID, saved.Name, saved.Price, saved.Description, saved.Stock,
		).Scan(&saved.ID)
		if err != nil {
			return nil, err
		}

		return &saved, nil
	}

	query := `
		INSERT INTO products (id, product_id, name, price, description, stock)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			product_id  = EXCLUDED.product_id,
			name        = EXCLUDED.name,
			price       = EXCLUDED.price,
			description = EXCLUDED.description,
			stock       = EXCLUDED.stock;
	`

	if _, err := r.pool.Exec(ctx, query,
		saved.ID, saved.ProductID, saved.Name, saved.Price, saved.Description, saved.Stock,
	); err != nil {
		return nil, err
	}

	return &saved, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/domains/publisher"
	"library-catalog-backend/pkg/cache"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) publisher.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	publisherCacheKeyPrefix = "publisher:"
	cacheTTL                = 15 * time.Minute
)

const publisherColumns = "id, name, correspondence_address, phone, email, max_books_registered, created_at, updated_at"

func scanPublisher(row pgx.Row) (*publisher.Publisher, error) {
	var p publisher.Publisher
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.CorrespondenceAddress,
		&p.Phone,
		&p.Email,
		&p.MaxBooksRegistered,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	query := `
        INSERT INTO publishers (name, correspondence_address, phone, email, max_books_registered)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + publisherColumns

	created, err := scanPublisher(r.pool.QueryRow(
		ctx,
		query,
		p.Name,
		p.CorrespondenceAddress,
		p.Phone,
		p.Email,
		p.MaxBooksRegistered,
	))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, publisher.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	cacheKey := publisherCacheKeyPrefix + id.String()

	var cachedPublisher publisher.Publisher
	if found, err := r.cache.Get(ctx, cacheKey, &cachedPublisher); err == nil && found {
		return &cachedPublisher, nil
	}

	p, err := scanPublisher(r.pool.QueryRow(ctx, `SELECT `+publisherColumns+` FROM publishers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("failed to get publisher by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, p, cacheTTL)

	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]publisher.Publisher, int64, error) {
	query := `SELECT ` + publisherColumns + ` FROM publishers ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query publishers: %w", err)
	}
	defer rows.Close()

	var publishers []publisher.Publisher
	for rows.Next() {
		p, err := scanPublisher(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan publisher: %w", err)
		}
		publishers = append(publishers, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating publishers: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM publishers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count publishers: %w", err)
	}

	return publishers, total, nil
}

// FindByName returns nil without an error when no publisher matches.
func (r *postgresRepository) FindByName(ctx context.Context, name string) (*publisher.Publisher, error) {
	p, err := scanPublisher(r.pool.QueryRow(ctx, `SELECT `+publisherColumns+` FROM publishers WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find publisher by name: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *publisher.Publisher) (*publisher.Publisher, error) {
	query := `
        UPDATE publishers
        SET name = $1, correspondence_address = $2, phone = $3, email = $4, max_books_registered = $5, updated_at = NOW()
        WHERE id = $6
        RETURNING ` + publisherColumns

	updated, err := scanPublisher(r.pool.QueryRow(
		ctx,
		query,
		p.Name,
		p.CorrespondenceAddress,
		p.Phone,
		p.Email,
		p.MaxBooksRegistered,
		p.ID,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publisher.ErrPublisherNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, publisher.ErrDuplicateName
		}

		return nil, fmt.Errorf("failed to update publisher: %w", err)
	}

	r.cache.Delete(ctx, publisherCacheKeyPrefix+p.ID.String())

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return publisher.ErrPublisherHasBooks
		}
		return fmt.Errorf("failed to delete publisher: %w", err)
	}

	r.cache.Delete(ctx, publisherCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM publishers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check publisher existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM publishers WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check publisher name existence: %w", err)
	}

	return exists, nil
}

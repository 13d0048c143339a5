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

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/pkg/cache"
)

// postgresRepository implements author.Repository using pgxpool for
// PostgreSQL and Redis for read caching. Existence checks always hit the
// database directly.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Cache key constants
const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

const authorColumns = "id, full_name, birth_date, city_of_birth, email, created_at, updated_at"

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.BirthDate,
		&a.CityOfBirth,
		&a.Email,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new author. A unique-constraint violation on full_name is
// translated into ErrDuplicateName, which also covers the window between the
// service's pre-insert existence check and the insert itself.
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (full_name, birth_date, city_of_birth, email)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.FullName,
		a.BirthDate,
		a.CityOfBirth,
		a.Email,
	))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, author.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

// GetByID retrieves author by UUID with read-through caching.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var cachedAuthor author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cachedAuthor); err == nil && found {
		return &cachedAuthor, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return a, nil
}

// List retrieves one page of authors plus the total count.
func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]author.Author, int64, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

// FindByFullName retrieves all authors matching a full name exactly.
func (r *postgresRepository) FindByFullName(ctx context.Context, fullName string) ([]author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE full_name = $1`

	rows, err := r.pool.Query(ctx, query, fullName)
	if err != nil {
		return nil, fmt.Errorf("failed to find authors by name: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// Update replaces all fields of an existing author.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET full_name = $1, birth_date = $2, city_of_birth = $3, email = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.FullName,
		a.BirthDate,
		a.CityOfBirth,
		a.Email,
		a.ID,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, author.ErrDuplicateName
		}

		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.cache.Delete(ctx, authorCacheKeyPrefix+a.ID.String())

	return updated, nil
}

// Delete removes author by ID. A missing id is not an error; an author that
// books still reference is refused via the foreign key constraint.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return author.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())

	return nil
}

// ExistsByID checks if the author exists (lightweight query, never cached).
func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

// ExistsByFullName checks if a full name is taken (never cached).
func (r *postgresRepository) ExistsByFullName(ctx context.Context, fullName string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE full_name = $1)`, fullName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author name existence: %w", err)
	}

	return exists, nil
}

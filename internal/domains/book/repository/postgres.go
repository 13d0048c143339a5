package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/domains/book"
)

// postgresRepository implements book.Repository. Book reads join the
// authors and publishers tables so every result carries its expanded
// references.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = "id, title, year, genre, page_count, author_id, publisher_id, book_cover, book_description, created_at, updated_at"

const bookDetailQuery = `
    SELECT
        b.id, b.title, b.year, b.genre, b.page_count,
        b.book_cover, b.book_description, b.created_at, b.updated_at,
        a.id, a.full_name, a.birth_date, a.city_of_birth, a.email, a.created_at, a.updated_at,
        p.id, p.name, p.correspondence_address, p.phone, p.email, p.max_books_registered, p.created_at, p.updated_at
    FROM books b
    JOIN authors a ON a.id = b.author_id
    JOIN publishers p ON p.id = b.publisher_id
`

func scanBookDetail(row pgx.Row) (*book.BookDetail, error) {
	var d book.BookDetail
	err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Year,
		&d.Genre,
		&d.PageCount,
		&d.BookCover,
		&d.BookDescription,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Author.ID,
		&d.Author.FullName,
		&d.Author.BirthDate,
		&d.Author.CityOfBirth,
		&d.Author.Email,
		&d.Author.CreatedAt,
		&d.Author.UpdatedAt,
		&d.Publisher.ID,
		&d.Publisher.Name,
		&d.Publisher.CorrespondenceAddress,
		&d.Publisher.Phone,
		&d.Publisher.Email,
		&d.Publisher.MaxBooksRegistered,
		&d.Publisher.CreatedAt,
		&d.Publisher.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, year, genre, page_count, author_id, publisher_id, book_cover, book_description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + bookColumns

	var created book.Book
	err := r.pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.Year,
		b.Genre,
		b.PageCount,
		b.AuthorID,
		b.PublisherID,
		b.BookCover,
		b.BookDescription,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Year,
		&created.Genre,
		&created.PageCount,
		&created.AuthorID,
		&created.PublisherID,
		&created.BookCover,
		&created.BookDescription,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, book.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.BookDetail, error) {
	d, err := scanBookDetail(r.pool.QueryRow(ctx, bookDetailQuery+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return d, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]book.BookDetail, error) {
	rows, err := r.pool.Query(ctx, bookDetailQuery+` ORDER BY b.created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.BookDetail
	for rows.Next() {
		d, err := scanBookDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// FindOne builds an exact-match predicate from the non-empty filter fields.
func (r *postgresRepository) FindOne(ctx context.Context, filter book.SearchFilter) (*book.BookDetail, error) {
	var conditions []string
	var args []interface{}

	if filter.Title != "" {
		args = append(args, filter.Title)
		conditions = append(conditions, fmt.Sprintf("b.title = $%d", len(args)))
	}
	if filter.AuthorName != "" {
		args = append(args, filter.AuthorName)
		conditions = append(conditions, fmt.Sprintf("a.full_name = $%d", len(args)))
	}
	if filter.PublisherName != "" {
		args = append(args, filter.PublisherName)
		conditions = append(conditions, fmt.Sprintf("p.name = $%d", len(args)))
	}

	query := bookDetailQuery + ` WHERE ` + strings.Join(conditions, " AND ") + ` LIMIT 1`

	d, err := scanBookDetail(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book: %w", err)
	}

	return d, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.BookDetail, error) {
	query := `
        UPDATE books
        SET title = $1, year = $2, genre = $3, page_count = $4,
            author_id = $5, publisher_id = $6, book_cover = $7, book_description = $8,
            updated_at = NOW()
        WHERE id = $9
        RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.Year,
		b.Genre,
		b.PageCount,
		b.AuthorID,
		b.PublisherID,
		b.BookCover,
		b.BookDescription,
		b.ID,
	).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, book.ErrDuplicateTitle
		}

		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE title = $1)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book title existence: %w", err)
	}

	return exists, nil
}

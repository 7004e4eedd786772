package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aranruth94/book-social-network/internal/book/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the repositories need; pgxmock
// implements it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresBookRepository struct {
	db Querier
}

func NewPostgresBookRepository(db Querier) *PostgresBookRepository {
	return &PostgresBookRepository{db: db}
}

const bookColumns = `id, owner_id, title, author_name, isbn, synopsis, shareable, archived, rate, created_at, updated_at`

func (r *PostgresBookRepository) GetByID(ctx context.Context, id int) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1 LIMIT 1;`
	book, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return book, nil
}

func (r *PostgresBookRepository) Create(ctx context.Context, book *domain.Book) error {
	query := `
		INSERT INTO books (owner_id, title, author_name, isbn, synopsis, shareable, archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		book.OwnerID, book.Title, book.AuthorName, book.ISBN, book.Synopsis,
		book.Shareable, book.Archived, book.CreatedAt, book.UpdatedAt,
	).Scan(&book.ID)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

func (r *PostgresBookRepository) Update(ctx context.Context, book *domain.Book) error {
	query := `
		UPDATE books
		SET title = $2, author_name = $3, isbn = $4, synopsis = $5,
		    shareable = $6, archived = $7, updated_at = now()
		WHERE id = $1;
	`
	_, err := r.db.Exec(ctx, query,
		book.ID, book.Title, book.AuthorName, book.ISBN, book.Synopsis,
		book.Shareable, book.Archived)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	return nil
}

func (r *PostgresBookRepository) FindDisplayable(ctx context.Context, excludeOwnerID, limit, offset int) ([]domain.Book, int, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE shareable = true AND archived = false AND owner_id <> $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	books, err := r.queryBooks(ctx, query, excludeOwnerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.QueryRow(ctx, `
		SELECT count(*) FROM books
		WHERE shareable = true AND archived = false AND owner_id <> $1;
	`, excludeOwnerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count displayable books: %w", err)
	}
	return books, total, nil
}

func (r *PostgresBookRepository) FindByOwner(ctx context.Context, ownerID, limit, offset int) ([]domain.Book, int, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	books, err := r.queryBooks(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.QueryRow(ctx,
		`SELECT count(*) FROM books WHERE owner_id = $1;`, ownerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count books by owner: %w", err)
	}
	return books, total, nil
}

func (r *PostgresBookRepository) queryBooks(ctx context.Context, query string, args ...any) ([]domain.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var book domain.Book
		err := rows.Scan(&book.ID, &book.OwnerID, &book.Title, &book.AuthorName,
			&book.ISBN, &book.Synopsis, &book.Shareable, &book.Archived,
			&book.Rate, &book.CreatedAt, &book.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var book domain.Book
	err := row.Scan(&book.ID, &book.OwnerID, &book.Title, &book.AuthorName,
		&book.ISBN, &book.Synopsis, &book.Shareable, &book.Archived,
		&book.Rate, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

const bookColumns = `book_id, isbn13, title, author, genre, summary, cover_image_url,
	publication_date, page_count, average_rating, created_at, updated_at`

// BookReadRepository handles book read operations
type BookReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookReadRepository(db *sqlx.DB, txGetter TxGetter) *BookReadRepository {
	return &BookReadRepository{db: db, txGetter: txGetter}
}

func (r *BookReadRepository) GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE book_id = $1`

	var book models.BookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, bookID)
	logQuery(query, []any{bookID}, book.ISBN13, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &book, nil
}

func (r *BookReadRepository) GetByISBN(ctx context.Context, isbn13 string) (*models.BookDB, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn13 = $1`

	var book models.BookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, isbn13)
	logQuery(query, []any{isbn13}, book.BookID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &book, nil
}

// List returns every book ordered by title.
func (r *BookReadRepository) List(ctx context.Context) ([]models.BookDB, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY title, book_id`

	books := []models.BookDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &books, query)
	logQuery(query, nil, len(books), err)
	if err != nil {
		return nil, translateError(err)
	}
	return books, nil
}

// ListNotReviewedBy returns the books the user has not reviewed yet.
func (r *BookReadRepository) ListNotReviewedBy(ctx context.Context, userID uuid.UUID) ([]models.BookDB, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books b
		WHERE NOT EXISTS (
			SELECT 1 FROM reviews r
			WHERE r.book_id = b.book_id AND r.user_id = $1
		)
		ORDER BY title, book_id
	`

	books := []models.BookDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &books, query, userID)
	logQuery(query, []any{userID}, len(books), err)
	if err != nil {
		return nil, translateError(err)
	}
	return books, nil
}

// ListTitles returns id/title pairs ordered by title.
func (r *BookReadRepository) ListTitles(ctx context.Context) ([]models.BookTitle, error) {
	const query = `SELECT book_id, title FROM books ORDER BY title, book_id`

	titles := []models.BookTitle{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &titles, query)
	logQuery(query, nil, len(titles), err)
	if err != nil {
		return nil, translateError(err)
	}
	return titles, nil
}

// BookWriteRepository handles book write operations.
// average_rating is never written here; the reviews trigger owns it.
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookWriteRepository) Create(ctx context.Context, params models.BookParams) (*models.BookDB, error) {
	query := `
		INSERT INTO books (isbn13, title, author, genre, summary, cover_image_url, publication_date, page_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + bookColumns

	args := []any{params.ISBN13, params.Title, params.Author, params.Genre, params.Summary,
		params.CoverImageURL, params.PublicationDate, params.PageCount}

	var book models.BookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, args...)
	logQuery(query, args, book.BookID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &book, nil
}

func (r *BookWriteRepository) Update(ctx context.Context, bookID uuid.UUID, params models.BookParams) (*models.BookDB, error) {
	query := `
		UPDATE books
		SET isbn13 = $2, title = $3, author = $4, genre = $5, summary = $6,
		    cover_image_url = $7, publication_date = $8, page_count = $9, updated_at = NOW()
		WHERE book_id = $1
		RETURNING ` + bookColumns

	args := []any{bookID, params.ISBN13, params.Title, params.Author, params.Genre, params.Summary,
		params.CoverImageURL, params.PublicationDate, params.PageCount}

	var book models.BookDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, args...)
	logQuery(query, args, book.BookID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &book, nil
}

// Delete removes the book. Its reviews are cascaded and favorite references nulled.
func (r *BookWriteRepository) Delete(ctx context.Context, bookID uuid.UUID) error {
	const query = `DELETE FROM books WHERE book_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, bookID)
	rowsAffected := affected(res, err)
	logQuery(query, []any{bookID}, rowsAffected, err)
	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

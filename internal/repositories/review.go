package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

const reviewColumns = `review_id, user_id, book_id, rating, short_description,
	long_description, created_at, updated_at`

// ReviewReadRepository handles review read operations
type ReviewReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReviewReadRepository(db *sqlx.DB, txGetter TxGetter) *ReviewReadRepository {
	return &ReviewReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns a review joined with its book title.
func (r *ReviewReadRepository) GetByID(ctx context.Context, reviewID uuid.UUID) (*models.ReviewWithBook, error) {
	const query = `
		SELECT r.review_id, r.user_id, r.book_id, r.rating, r.short_description,
		       r.long_description, r.created_at, r.updated_at, b.title AS book_title
		FROM reviews r
		JOIN books b ON b.book_id = r.book_id
		WHERE r.review_id = $1
	`

	var review models.ReviewWithBook
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, reviewID)
	logQuery(query, []any{reviewID}, review.BookID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

// ListByUser returns the user's reviews joined with book titles, newest first.
func (r *ReviewReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ReviewWithBook, error) {
	const query = `
		SELECT r.review_id, r.user_id, r.book_id, r.rating, r.short_description,
		       r.long_description, r.created_at, r.updated_at, b.title AS book_title
		FROM reviews r
		JOIN books b ON b.book_id = r.book_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.review_id
	`

	reviews := []models.ReviewWithBook{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reviews, query, userID)
	logQuery(query, []any{userID}, len(reviews), err)
	if err != nil {
		return nil, translateError(err)
	}
	return reviews, nil
}

// ListByBook returns the book's reviews joined with reviewer names, newest first.
func (r *ReviewReadRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]models.ReviewWithAuthor, error) {
	const query = `
		SELECT r.review_id, r.user_id, r.book_id, r.rating, r.short_description,
		       r.long_description, r.created_at, r.updated_at,
		       u.first_name AS reviewer_first_name, u.last_name AS reviewer_last_name
		FROM reviews r
		JOIN users u ON u.user_id = r.user_id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC, r.review_id
	`

	reviews := []models.ReviewWithAuthor{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reviews, query, bookID)
	logQuery(query, []any{bookID}, len(reviews), err)
	if err != nil {
		return nil, translateError(err)
	}
	return reviews, nil
}

// ReviewWriteRepository handles review write operations. Every statement here
// fires the average rating trigger on books where applicable.
type ReviewWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReviewWriteRepository(db *sqlx.DB, txGetter TxGetter) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db, txGetter: txGetter}
}

func (r *ReviewWriteRepository) Create(ctx context.Context, userID uuid.UUID, params models.ReviewCreate) (*models.ReviewDB, error) {
	query := `
		INSERT INTO reviews (user_id, book_id, rating, short_description, long_description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns

	args := []any{userID, params.BookID, params.Rating, params.ShortDescription, params.LongDescription}

	var review models.ReviewDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, args...)
	logQuery(query, args, review.ReviewID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

// Update edits a review owned by userID.
func (r *ReviewWriteRepository) Update(ctx context.Context, reviewID, userID uuid.UUID, params models.ReviewUpdate) (*models.ReviewDB, error) {
	query := `
		UPDATE reviews
		SET rating = $3, short_description = $4, long_description = $5, updated_at = NOW()
		WHERE review_id = $1 AND user_id = $2
		RETURNING ` + reviewColumns

	args := []any{reviewID, userID, params.Rating, params.ShortDescription, params.LongDescription}

	var review models.ReviewDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, args...)
	logQuery(query, args, review.BookID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

// Delete removes a review owned by userID and returns the deleted row.
func (r *ReviewWriteRepository) Delete(ctx context.Context, reviewID, userID uuid.UUID) (*models.ReviewDB, error) {
	query := `
		DELETE FROM reviews
		WHERE review_id = $1 AND user_id = $2
		RETURNING ` + reviewColumns

	var review models.ReviewDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, reviewID, userID)
	logQuery(query, []any{reviewID, userID}, review.BookID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

const userColumns = `user_id, email, password_hash, first_name, last_name, bio,
	phone_number, favorite_color, favorite_book_id, created_at, updated_at`

const redacted = "[REDACTED]"

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail looks a user up by exact email match.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)
	logQuery(query, []any{email}, user.UserID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID)
	logQuery(query, []any{userID}, user.Email, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetProfile returns the user together with the title of their favorite book.
func (r *UserReadRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	const query = `
		SELECT u.user_id, u.email, u.password_hash, u.first_name, u.last_name, u.bio,
		       u.phone_number, u.favorite_color, u.favorite_book_id, u.created_at, u.updated_at,
		       b.title AS favorite_book_title
		FROM users u
		LEFT JOIN books b ON b.book_id = u.favorite_book_id
		WHERE u.user_id = $1
	`

	var profile models.UserProfile
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, userID)
	logQuery(query, []any{userID}, profile.Email, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user. A taken email surfaces as a violation of users_email_key.
func (r *UserWriteRepository) Create(ctx context.Context, params models.UserCreate) (*models.UserDB, error) {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, bio, phone_number, favorite_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query,
		params.Email, params.PasswordHash, params.FirstName, params.LastName,
		params.Bio, params.PhoneNumber, params.FavoriteColor,
	)
	logQuery(query, []any{params.Email, redacted, params.FirstName, params.LastName}, user.UserID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// Update overwrites the editable profile columns.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, params models.ProfileUpdate) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, bio = $4, phone_number = $5,
		    favorite_color = $6, favorite_book_id = $7, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	args := []any{userID, params.FirstName, params.LastName, params.Bio,
		params.PhoneNumber, params.FavoriteColor, params.FavoriteBookID}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.UserID, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, passwordHash)
	rowsAffected := affected(res, err)
	logQuery(query, []any{userID, redacted}, rowsAffected, err)
	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user. Their reviews go with them (ON DELETE CASCADE).
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM users WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	rowsAffected := affected(res, err)
	logQuery(query, []any{userID}, rowsAffected, err)
	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

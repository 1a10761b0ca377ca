package schema

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func insertUser(t *testing.T, db *sqlx.DB, email string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.Get(&id, `INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, 'hash', 'Test', 'User') RETURNING user_id`, email)
	require.NoError(t, err)
	return id
}

func insertBook(t *testing.T, db *sqlx.DB, isbn string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := db.Get(&id, `INSERT INTO books (isbn13, title, author, page_count)
		VALUES ($1, 'Effective Go', 'Someone', 416) RETURNING book_id`, isbn)
	require.NoError(t, err)
	return id
}

func averageRating(t *testing.T, db *sqlx.DB, bookID uuid.UUID) decimal.Decimal {
	t.Helper()
	var avg decimal.Decimal
	require.NoError(t, db.Get(&avg, `SELECT average_rating FROM books WHERE book_id = $1`, bookID))
	return avg
}

func TestApply_Idempotent(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	assert.NoError(t, Apply(context.Background(), db))
}

func TestTrigger_AverageRating(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	bookID := insertBook(t, db, "9780134190440")
	alice := insertUser(t, db, "alice@example.com")
	bob := insertUser(t, db, "bob@example.com")

	assert.True(t, decimal.Zero.Equal(averageRating(t, db, bookID)))

	_, err := db.Exec(`INSERT INTO reviews (user_id, book_id, rating, short_description) VALUES ($1, $2, 8, 'good')`, alice, bookID)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO reviews (user_id, book_id, rating, short_description) VALUES ($1, $2, 9, 'great')`, bob, bookID)
	require.NoError(t, err)
	assert.Equal(t, "8.50", averageRating(t, db, bookID).StringFixed(2))

	_, err = db.Exec(`UPDATE reviews SET rating = 4 WHERE user_id = $1`, alice)
	require.NoError(t, err)
	assert.Equal(t, "6.50", averageRating(t, db, bookID).StringFixed(2))

	_, err = db.Exec(`DELETE FROM reviews WHERE user_id = $1`, alice)
	require.NoError(t, err)
	assert.Equal(t, "9.00", averageRating(t, db, bookID).StringFixed(2))

	_, err = db.Exec(`DELETE FROM reviews WHERE user_id = $1`, bob)
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(averageRating(t, db, bookID)))
}

func TestTrigger_RoundsToTwoPlaces(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	bookID := insertBook(t, db, "9780262033848")
	for i, rating := range []int{10, 10, 9} {
		userID := insertUser(t, db, fmt.Sprintf("reader%d@example.com", i))
		_, err := db.Exec(`INSERT INTO reviews (user_id, book_id, rating, short_description) VALUES ($1, $2, $3, 'ok')`,
			userID, bookID, rating)
		require.NoError(t, err)
	}

	assert.Equal(t, "9.67", averageRating(t, db, bookID).StringFixed(2))
}

func TestTrigger_MovingReviewRecomputesBothBooks(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	first := insertBook(t, db, "9780134190440")
	second := insertBook(t, db, "9780262033848")
	userID := insertUser(t, db, "mover@example.com")

	_, err := db.Exec(`INSERT INTO reviews (user_id, book_id, rating, short_description) VALUES ($1, $2, 7, 'ok')`, userID, first)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE reviews SET book_id = $1 WHERE user_id = $2`, second, userID)
	require.NoError(t, err)

	assert.True(t, decimal.Zero.Equal(averageRating(t, db, first)))
	assert.Equal(t, "7.00", averageRating(t, db, second).StringFixed(2))
}

func TestConstraints(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	bookID := insertBook(t, db, "9780134190440")
	userID := insertUser(t, db, "carol@example.com")

	t.Run("page count must be positive", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO books (isbn13, title, author, page_count) VALUES ('9780000000001', 't', 'a', 0)`)
		assert.Error(t, err)
	})

	t.Run("isbn13 must be thirteen digits", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO books (isbn13, title, author, page_count) VALUES ('978-00000000', 't', 'a', 10)`)
		assert.Error(t, err)
	})

	t.Run("phone format", func(t *testing.T) {
		_, err := db.Exec(`UPDATE users SET phone_number = 'call me' WHERE user_id = $1`, userID)
		assert.Error(t, err)
		_, err = db.Exec(`UPDATE users SET phone_number = '+1 (555) 123-4567' WHERE user_id = $1`, userID)
		assert.NoError(t, err)
	})

	t.Run("rating bounds", func(t *testing.T) {
		for _, rating := range []int{0, 11} {
			_, err := db.Exec(`INSERT INTO reviews (user_id, book_id, rating, short_description) VALUES ($1, $2, $3, 'x')`,
				userID, bookID, rating)
			assert.Error(t, err, "rating %d", rating)
		}
	})

	t.Run("one review per user and book", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO reviews (user_id, book_id, rating, short_description) VALUES ($1, $2, 5, 'x')`, userID, bookID)
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO reviews (user_id, book_id, rating, short_description) VALUES ($1, $2, 6, 'y')`, userID, bookID)
		assert.Error(t, err)
	})
}

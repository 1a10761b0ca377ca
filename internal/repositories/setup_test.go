package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	require.NoError(t, schema.Apply(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func createUser(t *testing.T, repo *UserWriteRepository, email string) *models.UserDB {
	t.Helper()
	user, err := repo.Create(context.Background(), models.UserCreate{
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Test",
		LastName:     "User",
	})
	require.NoError(t, err)
	return user
}

func createBook(t *testing.T, repo *BookWriteRepository, isbn, title string) *models.BookDB {
	t.Helper()
	book, err := repo.Create(context.Background(), models.BookParams{
		ISBN13:    isbn,
		Title:     title,
		Author:    "Author",
		PageCount: 416,
	})
	require.NoError(t, err)
	return book
}

func bookAverage(t *testing.T, repo *BookReadRepository, bookID uuid.UUID) decimal.Decimal {
	t.Helper()
	book, err := repo.GetByID(context.Background(), bookID)
	require.NoError(t, err)
	return book.AverageRating
}

func strPtr(s string) *string { return &s }

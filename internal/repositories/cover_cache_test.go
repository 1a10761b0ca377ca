package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCoverCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewCoverCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get cover", func(t *testing.T) {
		isbn := "9780134190440"
		url := "https://covers.openlibrary.org/b/isbn/9780134190440-L.jpg"

		require.NoError(t, repo.SetCover(ctx, isbn, url))

		got, err := repo.GetCover(ctx, isbn)
		assert.NoError(t, err)
		assert.Equal(t, url, got)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := repo.GetCover(ctx, "9780000000000")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Expiration", func(t *testing.T) {
		isbn := "9780262033848"
		require.NoError(t, repo.SetCover(ctx, isbn, "https://example.com/cover.jpg"))

		time.Sleep(3 * time.Second)

		_, err := repo.GetCover(ctx, isbn)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

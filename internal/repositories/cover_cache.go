package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
)

// ErrCacheMiss is returned when no cover is cached for an ISBN.
var ErrCacheMiss = errors.New("cover not found in cache")

// CoverCacheRepository caches resolved cover image URLs by ISBN in Redis
type CoverCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached covers
}

func NewCoverCacheRepository(client *redis.Client, expiration time.Duration) *CoverCacheRepository {
	return &CoverCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func coverKey(isbn13 string) string {
	return fmt.Sprintf("isbn_cover:%s", isbn13)
}

// GetCover returns the cached cover URL for an ISBN
func (r *CoverCacheRepository) GetCover(ctx context.Context, isbn13 string) (string, error) {
	key := coverKey(isbn13)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("cache get",
		"key", key,
		"result", val,
		"error", err,
	)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}

	return val, nil
}

// SetCover caches a cover URL for an ISBN with expiration
func (r *CoverCacheRepository) SetCover(ctx context.Context, isbn13, coverURL string) error {
	key := coverKey(isbn13)
	err := r.client.Set(ctx, key, coverURL, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"value", coverURL,
		"error", err,
	)

	return err
}

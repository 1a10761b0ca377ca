package facades

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"golang.org/x/time/rate"
)

// DefaultCoversURL is the OpenLibrary covers endpoint.
const DefaultCoversURL = "https://covers.openlibrary.org"

var (
	ErrCoverNotFound  = errors.New("cover not found")
	ErrExternalLookup = errors.New("external isbn lookup failed")
)

// ISBNLookupFacade resolves cover image URLs by ISBN against OpenLibrary.
type ISBNLookupFacade struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewISBNLookupFacade creates a facade issuing at most rps requests per second.
// A non-positive rps disables the limiter.
func NewISBNLookupFacade(baseURL string, rps float64) *ISBNLookupFacade {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &ISBNLookupFacade{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// CoverURL returns the large cover URL for isbn if OpenLibrary has one.
func (f *ISBNLookupFacade) CoverURL(ctx context.Context, isbn string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalLookup, err)
	}

	// default=false turns the blank placeholder image into a 404.
	coverURL := fmt.Sprintf("%s/b/isbn/%s-L.jpg", f.baseURL, isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, coverURL+"?default=false", nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternalLookup, err)
	}
	req.Header.Set("User-Agent", "gw-bookshelf/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("isbn cover lookup failed", "isbn", isbn, "error", err)
		return "", fmt.Errorf("%w: %v", ErrExternalLookup, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return coverURL, nil
	case http.StatusNotFound:
		return "", ErrCoverNotFound
	default:
		logger.Log.Errorw("unexpected isbn cover lookup status", "isbn", isbn, "status", resp.StatusCode)
		return "", fmt.Errorf("%w: unexpected status %d", ErrExternalLookup, resp.StatusCode)
	}
}

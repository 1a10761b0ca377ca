package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISBNLookupFacade_CoverURL(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantURL bool
		wantErr error
	}{
		{name: "found", status: http.StatusOK, wantURL: true},
		{name: "missing", status: http.StatusNotFound, wantErr: ErrCoverNotFound},
		{name: "upstream failure", status: http.StatusBadGateway, wantErr: ErrExternalLookup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodHead, r.Method)
				assert.Equal(t, "/b/isbn/9780134190440-L.jpg", r.URL.Path)
				assert.Equal(t, "false", r.URL.Query().Get("default"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			f := NewISBNLookupFacade(srv.URL+"/", 0)
			url, err := f.CoverURL(context.Background(), "9780134190440")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, url)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, srv.URL+"/b/isbn/9780134190440-L.jpg", url)
		})
	}
}

func TestISBNLookupFacade_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	f := NewISBNLookupFacade(srv.URL, 0)
	_, err := f.CoverURL(context.Background(), "9780134190440")
	assert.ErrorIs(t, err, ErrExternalLookup)
}

func TestISBNLookupFacade_RateLimitHonoursContext(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewISBNLookupFacade(srv.URL, 0.01)

	_, err := f.CoverURL(context.Background(), "9780134190440")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = f.CoverURL(ctx, "9780134190440")
	assert.ErrorIs(t, err, ErrExternalLookup)
	assert.Equal(t, 1, calls)
}

package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestInfo is shared by every layer handling one request. AuthMiddleware
// runs inside LoggingMiddleware, so the caller id travels back through it.
type requestInfo struct {
	id     string
	userID uuid.UUID
}

type requestInfoKey struct{}

func requestInfoFromContext(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info
}

// RequestIDFromContext returns the id assigned by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	if info := requestInfoFromContext(ctx); info != nil {
		return info.id
	}
	return ""
}

// LoggingMiddleware writes one access line per request: the request id, the
// matched route, the authenticated user when there is one, the status and
// the timing. 4xx answers log at warn and 5xx at error.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := &requestInfo{id: uuid.New().String()}
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			w.Header().Set("X-Request-ID", info.id)

			r = r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info))
			next.ServeHTTP(rw, r)

			fields := []any{
				"request_id", info.id,
				"method", r.Method,
				"route", routePattern(r),
				"uri", r.RequestURI,
				"status", rw.statusCode,
				"response_bytes", rw.size,
				"duration", time.Since(start),
			}
			if info.userID != uuid.Nil {
				fields = append(fields, "user_id", info.userID.String())
			}

			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				log.Errorw("request served", fields...)
			case rw.statusCode >= http.StatusBadRequest:
				log.Warnw("request served", fields...)
			default:
				log.Infow("request served", fields...)
			}
		})
	}
}

// routePattern returns the chi pattern that matched, e.g.
// /api/v1/books/{book_id}, so log lines group by endpoint.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-bookshelf/internal/facades"
	"github.com/sbilibin2017/gw-bookshelf/internal/handlers"
	"github.com/sbilibin2017/gw-bookshelf/internal/jwt"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/middlewares"
	"github.com/sbilibin2017/gw-bookshelf/internal/ratelimit"
	"github.com/sbilibin2017/gw-bookshelf/internal/repositories"
	"github.com/sbilibin2017/gw-bookshelf/internal/schema"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-bookshelf/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment at startup.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	LogFile  string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	ISBNLookupURL string
	ISBNLookupRPS float64

	LoginRPS   float64
	LoginBurst int

	CORSAllowedOrigins []string
}

// @title gw-bookshelf API
// @version 1.0.0
// @description Book catalogue with user reviews and trigger-maintained average ratings
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file (when present) and
// returns the application configuration with defaults applied.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("invalid %s: %w", key, err)
		}
		return v
	}
	getFloat := func(key, defaultValue string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		if v, err = strconv.ParseFloat(getEnv(key, defaultValue), 64); err != nil {
			err = fmt.Errorf("invalid %s: %w", key, err)
		}
		return v
	}

	cfg := &config{
		// Application config
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		LogFile:  getEnv("APP_LOG_FILE", ""),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		RedisExpSecond:    getInt("REDIS_EXP_SECOND", "86400"),

		// Kafka config
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "review-events"),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExpSecond: getInt("JWT_EXP_SECOND", "3600"),

		// Cover lookup config
		ISBNLookupURL: getEnv("ISBN_LOOKUP_URL", facades.DefaultCoversURL),
		ISBNLookupRPS: getFloat("ISBN_LOOKUP_RPS", "5"),

		// Login throttling
		LoginRPS:   getFloat("LOGIN_RPS", "1"),
		LoginBurst: getInt("LOGIN_BURST", "5"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList splits a comma separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// newReviewEventWriter builds the Kafka writer for review events. Writes are
// asynchronous because they happen while the request transaction holds the
// book row lock; delivery failures are logged from the completion callback.
func newReviewEventWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("Failed to deliver review events to Kafka",
					"topic", topic,
					"count", len(messages),
					"error", err,
				)
			}
		},
	}
}

// run initializes the logger, database, optional Redis and Kafka clients,
// and the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := schema.Apply(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Connect to Redis. The cover cache is skipped when Redis is unreachable.
	var coverCache services.CoverCache
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unavailable, cover cache disabled", "error", err)
	} else {
		coverCache = repositories.NewCoverCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	}

	// Kafka writer for review events
	var reviewEvents services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := newReviewEventWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kw.Close()
		reviewEvents = kw
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, review events disabled")
	}

	// Cover lookup
	var coverLookup services.CoverLookup
	if cfg.ISBNLookupURL != "" {
		coverLookup = facades.NewISBNLookupFacade(cfg.ISBNLookupURL, cfg.ISBNLookupRPS)
	}

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	bookReadRepo := repositories.NewBookReadRepository(db, middlewares.GetTxFromContext)
	bookWriteRepo := repositories.NewBookWriteRepository(db, middlewares.GetTxFromContext)
	reviewReadRepo := repositories.NewReviewReadRepository(db, middlewares.GetTxFromContext)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, reviewReadRepo, coverLookup, coverCache)
	reviewService := services.NewReviewService(reviewReadRepo, reviewWriteRepo, reviewEvents)

	loginLimiter := ratelimit.New(cfg.LoginRPS, cfg.LoginBurst, 10*time.Minute)
	defer loginLimiter.Stop()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	tx := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.With(middlewares.RateLimitMiddleware(loginLimiter)).
			Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtService))

			r.Get("/profile", handlers.NewGetProfileHandler(userService))
			r.With(tx).Put("/profile", handlers.NewUpdateProfileHandler(userService))
			r.With(tx).Delete("/profile", handlers.NewDeleteProfileHandler(userService))

			r.Get("/books", handlers.NewListBooksHandler(bookService))
			r.Get("/books/titles", handlers.NewListBookTitlesHandler(bookService))
			r.Get("/books/unreviewed", handlers.NewListUnreviewedBooksHandler(bookService))
			r.Get("/books/{bookID}", handlers.NewGetBookHandler(bookService))
			r.Get("/books/{bookID}/reviews", handlers.NewListBookReviewsHandler(reviewService))
			r.With(tx).Post("/books", handlers.NewCreateBookHandler(bookService))
			r.With(tx).Put("/books/{bookID}", handlers.NewUpdateBookHandler(bookService))
			r.With(tx).Delete("/books/{bookID}", handlers.NewDeleteBookHandler(bookService))

			r.Get("/reviews", handlers.NewListMyReviewsHandler(reviewService))
			r.Get("/reviews/{reviewID}", handlers.NewGetReviewHandler(reviewService))
			r.With(tx).Post("/reviews", handlers.NewCreateReviewHandler(reviewService))
			r.With(tx).Put("/reviews/{reviewID}", handlers.NewUpdateReviewHandler(reviewService))
			r.With(tx).Delete("/reviews/{reviewID}", handlers.NewDeleteReviewHandler(reviewService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

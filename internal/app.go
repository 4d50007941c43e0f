// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	router "bankist/internal/api"
	"bankist/internal/api/handler"
	"bankist/internal/api/middleware"
	"bankist/internal/config"
	"bankist/internal/metrics"
	"bankist/internal/repository"
	"bankist/internal/repository/memory"
	"bankist/internal/repository/postgres"
	"bankist/internal/service"
	"bankist/internal/util"
	"bankist/pkg/db"
)

// seedLoadTimeout bounds the one-off roster load at startup.
const seedLoadTimeout = 10 * time.Second

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB // nil unless SEED_SOURCE=postgres

	// Repositories
	SeedSource repository.SeedSource
	Directory  repository.Directory

	// Services
	BankService service.BankService

	// Observability
	Registry *prometheus.Registry
	Metrics  *metrics.PrometheusMetrics

	// HTTP API
	RateLimiter *middleware.RateLimiter
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.", "seed_source", cfg.SeedSource)

	// 3. Pick the seed source, connecting to the database only when it is needed
	switch cfg.SeedSource {
	case config.SeedSourcePostgres:
		database, err := db.NewPostgresDB(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = database
		app.SeedSource = postgres.NewSeedRepository(app.DB)
		app.Logger.Info("Database connection established.")
	default:
		app.SeedSource = memory.NewStaticSeed()
	}

	// 4. Load the roster into the in-memory directory
	if err := app.loadDirectory(ctx); err != nil {
		return err
	}
	app.Logger.Info("Directory initialized.", "accounts", app.Directory.Len())

	// 5. Metrics
	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.Metrics = metrics.NewPrometheusMetrics(app.Registry)

	// 6. Initialize Services
	app.BankService = service.NewBankService(app.Directory, app.Metrics, app.Logger)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	app.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	bankHandler := handler.NewBankHandler(app.BankService, app.Logger)
	app.HTTPHandler = router.NewRouter(bankHandler, router.RouterOptions{
		Timeout:     cfg.RequestTimeout,
		RateLimiter: app.RateLimiter,
		Gatherer:    app.Registry,
	}, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// loadDirectory reads the roster from the seed source. On failure the
// database, if one was opened for the seed, is closed again.
func (app *Application) loadDirectory(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, seedLoadTimeout)
	defer cancel()

	accounts, err := app.SeedSource.LoadAccounts(loadCtx)
	if err != nil {
		if app.DB != nil {
			if closeErr := app.DB.Close(); closeErr != nil {
				app.Logger.Error("Failed to close database connection", "error", closeErr)
			}
			app.DB = nil
		}
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	app.Directory = memory.NewDirectory(accounts)
	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}

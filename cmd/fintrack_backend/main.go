package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fintrackr/finance_tracker_app/internal/adapters/cache/rediscache"
	"github.com/fintrackr/finance_tracker_app/internal/adapters/database/pgsql"
	"github.com/fintrackr/finance_tracker_app/internal/adapters/database/unavailable"
	cacheport "github.com/fintrackr/finance_tracker_app/internal/core/ports/cache"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackr/finance_tracker_app/internal/core/services"
	"github.com/fintrackr/finance_tracker_app/internal/handlers"
	"github.com/fintrackr/finance_tracker_app/internal/middleware"
	"github.com/fintrackr/finance_tracker_app/internal/platform/config"
	"github.com/fintrackr/finance_tracker_app/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Finance Tracker API
// @version 1.0
// @description Personal finance tracker backend: transactions, budgets and dashboard aggregations.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, dbPool := setupRepositories(cfg, logger)
	if dbPool != nil {
		defer dbPool.Close()
	}

	snapshotCache := setupCache(cfg, logger)

	serviceContainer := services.NewServiceContainer(repos, snapshotCache)

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, limiterInstance)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories connects to PostgreSQL when configured and reachable.
// Any failure downgrades to the unavailable repositories instead of aborting:
// the stores then serve from their in-memory replicas and every mutation
// reports memory_only durability.
func setupRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, *pgxpool.Pool) {
	degraded := portsrepo.RepositoryProvider{
		TransactionRepo: unavailable.TransactionRepository{},
		BudgetRepo:      unavailable.BudgetRepository{},
	}

	if cfg.DatabaseURL == "" {
		logger.Warn("No database configured, starting in memory-only mode")
		return degraded, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Warn("Failed to initialize database pool, starting in memory-only mode", slog.String("error", err.Error()))
		return degraded, nil
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(pingCtx); err != nil {
		// Keep the pool: the repositories pick the database back up once it
		// is reachable again.
		logger.Warn("Database unreachable at startup, serving from memory until it recovers", slog.String("error", err.Error()))
	} else if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Database connection pool established.")
	return portsrepo.RepositoryProvider{
		TransactionRepo: pgsql.NewPgxTransactionRepository(dbPool),
		BudgetRepo:      pgsql.NewPgxBudgetRepository(dbPool),
	}, dbPool
}

// runMigrations applies all pending "up" migrations from the migrations
// directory using a temporary database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// setupCache connects the dashboard snapshot cache when Redis is configured.
func setupCache(cfg *config.Config, logger *slog.Logger) cacheport.SnapshotCache {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("Invalid REDIS_URL, dashboard caching disabled", slog.String("error", err.Error()))
		return nil
	}

	client := redis.NewClient(opts)
	logger.Info("Dashboard snapshot cache enabled")
	return rediscache.NewSnapshotCache(client, logger)
}

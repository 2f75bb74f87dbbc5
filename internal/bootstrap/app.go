package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/analytics"
	"compliance-backend/internal/history"
	"compliance-backend/internal/providers"
	"compliance-backend/internal/shared/config"
	"compliance-backend/internal/shared/server"
	"compliance-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	ProvidersRepo    providers.Repo
	HistoryRepo      history.Repo
	ProvidersService *providers.Service
	AnalyticsService *analytics.Service
	ProvidersHandler *providers.Handler
	AnalyticsHandler *analytics.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if sqlDB != nil {
		app.ProvidersRepo = &providers.PGRepo{DB: sqlDB}
		app.HistoryRepo = &history.PGRepo{DB: sqlDB}
	} else {
		app.ProvidersRepo = providers.NewMemoryRepo()
		app.HistoryRepo = history.NewMemoryRepo()
	}

	app.ProvidersService = providers.NewService(app.ProvidersRepo)
	app.AnalyticsService = analytics.NewService(app.ProvidersRepo, app.HistoryRepo)
	app.ProvidersHandler = providers.NewHandler(app.ProvidersService)
	app.AnalyticsHandler = analytics.NewHandler(app.AnalyticsService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		ProviderHandler:  app.ProvidersHandler,
		AnalyticsHandler: app.AnalyticsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

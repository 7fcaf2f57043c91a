package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/remitfair/corridor-quote-service/internal/catalog"
	"github.com/remitfair/corridor-quote-service/internal/config"
	"github.com/remitfair/corridor-quote-service/internal/database"
	"github.com/remitfair/corridor-quote-service/internal/explain"
	"github.com/remitfair/corridor-quote-service/internal/handler"
	"github.com/remitfair/corridor-quote-service/internal/middleware"
	"github.com/remitfair/corridor-quote-service/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cat, pool := loadCatalog(ctx, cfg)
	if pool != nil {
		defer pool.Close()
	}
	log.Info().
		Str("source", cat.Source()).
		Int("corridors", len(cat.Corridors())).
		Int("quoted_pairs", cat.Rates().Len()).
		Msg("catalog loaded")

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(cat, pool)
	router.GET("/health", healthHandler.Health)

	setupAPIRoutes(router, cfg, cat)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// loadCatalog builds the immutable catalog from the configured source. The
// returned pool is non-nil only for the postgres source, where it stays open
// for health checks.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, *pgxpool.Pool) {
	switch cfg.CatalogSource {
	case config.SourceEmbedded:
		cat, err := catalog.LoadEmbedded()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load embedded catalog")
		}
		return cat, nil

	case config.SourceFile:
		cat, err := catalog.LoadDir(cfg.CatalogDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.CatalogDir).Msg("failed to load catalog files")
		}
		return cat, nil

	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		if cfg.AutoMigrate {
			if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
			if err := database.SeedCatalog(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("failed to seed catalog")
			}
		}
		cat, err := catalog.LoadPostgres(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load catalog from database")
		}
		return cat, pool

	default:
		log.Fatal().Str("source", cfg.CatalogSource).Msg("unknown catalog source")
		return nil, nil
	}
}

func setupAPIRoutes(router *gin.Engine, cfg *config.Config, cat *catalog.Catalog) {
	fallback := explain.NewTemplateExplainer()

	var generator explain.Explainer
	if cfg.ExplainAPIURL != "" {
		generator = explain.NewHTTPExplainer(cfg.ExplainAPIURL, cfg.ExplainTimeout)
		log.Info().Str("url", cfg.ExplainAPIURL).Dur("timeout", cfg.ExplainTimeout).Msg("external explanation generator enabled")
	}

	quoteService := service.NewQuoteService(cat, fallback, generator)
	corridorService := service.NewCorridorService(cat)

	quoteHandler := handler.NewQuoteHandler(quoteService)
	corridorHandler := handler.NewCorridorHandler(corridorService)

	api := router.Group("/api/v1")
	{
		api.POST("/quotes", quoteHandler.Create)
		api.GET("/corridors", corridorHandler.List)
		api.GET("/corridors/sources", corridorHandler.Sources)
	}
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Simplici0/pricing-calculator/internal/botcheck"
	"github.com/Simplici0/pricing-calculator/internal/config"
	"github.com/Simplici0/pricing-calculator/internal/db"
	"github.com/Simplici0/pricing-calculator/internal/icons"
	"github.com/Simplici0/pricing-calculator/internal/logging"
	"github.com/Simplici0/pricing-calculator/internal/migrations"
	"github.com/Simplici0/pricing-calculator/internal/regions"
	"github.com/Simplici0/pricing-calculator/internal/seed"
	"github.com/Simplici0/pricing-calculator/web"
)

type server struct {
	logger  *zap.Logger
	regions *regions.Store
	icons   *icons.Store
	widget  botcheck.Widget
}

func main() {
	cfg := config.Load()

	logger, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: cfg.IsDev(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	if err := prepareReferenceData(ctx, database, cfg, logger); err != nil {
		logger.Fatal("failed to prepare reference data", zap.Error(err))
	}

	srv := &server{
		logger:  logger,
		regions: regions.NewStore(database),
		icons:   icons.NewStore(database),
		widget:  botcheck.New(cfg.RecaptchaSiteKey, "calculate", cfg.IsDev()),
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", httpServer.Addr), zap.String("env", cfg.Env))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server stopped")
}

func prepareReferenceData(ctx context.Context, database *sql.DB, cfg config.Config, logger *zap.Logger) error {
	applied, err := migrations.Up(ctx, database, logger)
	if err != nil {
		return err
	}
	logger.Info("migrations complete", zap.Int("applied", applied))

	if !cfg.SeedOnStart {
		return nil
	}
	stats, err := seed.Run(ctx, database, seed.DefaultDataset())
	if err != nil {
		return err
	}
	logger.Info("reference data seeded", zap.Int("inserts", stats.Inserts), zap.Int("updates", stats.Updates))
	return nil
}

func (s *server) routes() http.Handler {
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Get("/", s.handleCalculatorForm)
	r.Post("/", s.handleCalculatorSubmit)
	r.Post("/api/breakdown", s.handleBreakdownAPI)

	r.Route("/api/countries", func(r chi.Router) {
		r.Get("/", s.handleCountries)
		r.Get("/{country}/subdivisions", s.handleSubdivisions)
		r.Get("/{country}/subdivisions/{code}", s.handleSubdivision)
	})
	r.Get("/icons/{name}.svg", s.handleIcon)

	return r
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/VolkofAndrey/micro-rest-app/internal/catalog"
	"github.com/VolkofAndrey/micro-rest-app/internal/cli"
	"github.com/VolkofAndrey/micro-rest-app/internal/config"
	"github.com/VolkofAndrey/micro-rest-app/internal/db"
	"github.com/VolkofAndrey/micro-rest-app/internal/recommend"
	"github.com/VolkofAndrey/micro-rest-app/internal/service"
	"github.com/VolkofAndrey/micro-rest-app/internal/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	level := slog.LevelWarn
	if cfg.LogUseCases {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// Broken state on disk is reset rather than blocking the app.
	database, dbPath, err := db.OpenOrReset(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	if dbPath != cfg.DBPath {
		logger.Warn("state_not_persisted", "path", cfg.DBPath)
	}

	store, err := state.Open(ctx, database,
		state.WithLocation(cfg.Location),
		state.WithLogger(logger),
		state.WithSystemTheme(lipgloss.HasDarkBackground),
	)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	app := &cli.App{
		Recommend:  service.NewRecommendService(c, store, recommend.NewSource(cfg.Seed), observers...),
		Complete:   service.NewCompletionService(c, store, observers...),
		History:    service.NewHistoryService(c, store, observers...),
		Favorites:  service.NewFavoriteService(c, store, observers...),
		Profile:    service.NewProfileService(c, store),
		Settings:   service.NewSettingsService(store, observers...),
		Activities: service.NewActivityService(c),
		Now:        store.Now,
	}

	// Detect interactive terminal for the picker and the countdown.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	c, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", cfg.CatalogPath, err)
	}
	return c, nil
}

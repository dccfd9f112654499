package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/services"
	"github.com/ersonp/dex/internal/infrastructure/catalogapi"
	"github.com/ersonp/dex/internal/infrastructure/config"
	"github.com/ersonp/dex/internal/infrastructure/logging"
)

// errLoadFailed is returned when a one-shot command ends in the Error state.
// The cause is in the log.
var errLoadFailed = errors.New("loading catalog failed")

// Deps holds high-level dependencies for commands.
// Only the controller is exposed - the client and repository are internal.
type Deps struct {
	Config     *config.Config
	Logger     *slog.Logger
	Controller *handlers.CatalogController
}

type depsOptions struct {
	// interactive sends logs to the default log file unless one is configured,
	// so they don't draw over the browser.
	interactive bool
	controller  []handlers.ControllerOption
}

// loadConfig loads the config for cwd and applies the global flags.
func loadConfig(cwd string) (*config.Config, error) {
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	globalFlags.apply(cfg)
	return cfg, nil
}

// withDeps loads config and builds dependencies, then calls the provided function.
// The controller has already dispatched its first fetch when fn runs.
// It handles cleanup automatically.
func withDeps(ctx context.Context, opts depsOptions, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := loadConfig(cwd)
	if err != nil {
		return err
	}
	if opts.interactive && cfg.Log.File == "" {
		cfg.Log.File = config.LogFilePath(cwd)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer closer.Close()

	client, err := catalogapi.NewClient(cfg.Catalog, logger)
	if err != nil {
		return fmt.Errorf("creating catalog client: %w", err)
	}
	repo := services.NewNetworkRecordRepository(client)

	controllerOpts := append([]handlers.ControllerOption{handlers.WithLogger(logger)}, opts.controller...)
	controller := handlers.NewCatalogController(ctx, repo, controllerOpts...)
	defer controller.Close()

	return fn(&Deps{
		Config:     cfg,
		Logger:     logger,
		Controller: controller,
	})
}

// fetchOnce waits for the controller's first fetch and returns its batch.
func fetchOnce(ctx context.Context, d *Deps) ([]entities.Record, error) {
	state, err := d.Controller.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("waiting for catalog: %w", err)
	}

	switch {
	case state.IsSuccess():
		return state.Records(), nil
	case state.IsError():
		return nil, errLoadFailed
	default:
		return nil, fmt.Errorf("catalog still %s: %w", state.Status(), context.Cause(ctx))
	}
}

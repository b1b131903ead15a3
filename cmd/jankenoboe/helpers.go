package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jankenoboe/jankenoboe/internal/client"
	"github.com/jankenoboe/jankenoboe/internal/config"
	"github.com/jankenoboe/jankenoboe/internal/database"
	"github.com/jankenoboe/jankenoboe/internal/service"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newService talks to the configured server when client.server_url is set and
// to the database otherwise. A sqlite database is migrated on open.
func newService(ctx context.Context, cfg *config.Config) (service.Service, func() error, error) {
	if cfg.Client.ServerURL != "" {
		slog.Default().Debug("using remote server", slog.String("url", cfg.Client.ServerURL))
		c := client.NewClient(cfg.Client.ServerURL, time.Duration(cfg.Client.TimeoutSeconds)*time.Second)
		return c, c.Close, nil
	}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Connect() > %w", err)
	}
	if cfg.Database.Driver == config.DriverSQLite {
		if _, err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("database.Migrate() > %w", err)
		}
	}
	return service.NewLocal(db, cfg.Learning), db.Close, nil
}

func runWithService(cmd *cobra.Command, run func(ctx context.Context, cfg *config.Config, svc service.Service) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := cmd.Context()
	svc, closeService, err := newService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeService(); err != nil {
			slog.Default().Warn("failed to close the service", slog.Any("error", err))
		}
	}()

	return run(ctx, cfg, svc)
}

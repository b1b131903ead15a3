package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jankenoboe/jankenoboe/internal/bootstrap"
	"github.com/jankenoboe/jankenoboe/internal/config"
	"github.com/jankenoboe/jankenoboe/internal/database"
	"github.com/jankenoboe/jankenoboe/internal/server"
	"github.com/jankenoboe/jankenoboe/internal/service"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "jankenoboe-server",
		Short:         "Jankenoboe learning HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	srv, err := newServer(ctx, app, cfg)
	if err != nil {
		return err
	}

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

// newServer connects the database and registers the database and the server for shutdown.
func newServer(ctx context.Context, app *bootstrap.App, cfg *config.Config) (*http.Server, error) {
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Connect() > %w", err)
	}
	if cfg.Database.Driver == config.DriverSQLite {
		if _, err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("database.Migrate() > %w", err)
		}
	}
	app.AddCloser("database", db)

	handler := server.NewHandler(service.NewLocal(db, cfg.Learning), cfg.Learning)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.NewHTTPHandler(handler, cfg.Server.AllowedOrigins),
	}
	app.AddShutdownHook("http server", srv.Shutdown)
	return srv, nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

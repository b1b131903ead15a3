package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/jankenoboe/jankenoboe/schemas"
)

// Migrate applies the pending embedded migrations for the pool's dialect and
// returns the versions it applied.
func Migrate(ctx context.Context, db *sqlx.DB) ([]int64, error) {
	dialect, err := DialectOf(db)
	if err != nil {
		return nil, err
	}

	migrationsFS, err := fs.Sub(schemas.Migrations, "migrations/"+string(dialect))
	if err != nil {
		return nil, fmt.Errorf("fs.Sub(%s) > %w", dialect, err)
	}

	provider, err := goose.NewProvider(dialect.gooseDialect(), db.DB, migrationsFS)
	if err != nil {
		return nil, fmt.Errorf("goose.NewProvider() > %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("provider.Up() > %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		slog.Default().Info("applied migration",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

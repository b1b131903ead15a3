// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jankenoboe/jankenoboe/internal/config"
)

// Open opens a connection pool for the configured driver without contacting the server.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := dataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if dialect == SQLite {
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		return db, nil
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Connect opens the pool and pings it, retrying while the server comes up.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	attempts := cfg.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}
	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Warn("database ping failed",
				slog.String("driver", cfg.Driver),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.PingContext() > %w", err)
	}
	return db, nil
}

// RunInTx runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise, it is committed.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// BuildMultiRowInsert returns an INSERT statement with rowCount tuples of ? placeholders.
// Callers rebind it for their dialect.
func BuildMultiRowInsert(table string, columns []string, rowCount int) string {
	placeholder := "(" + strings.Repeat("?, ", len(columns)-1) + "?)"
	values := strings.Repeat(placeholder+", ", rowCount-1) + placeholder
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(columns, ", "), values)
}

func dataSourceName(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		if cfg.Path == "" {
			return "", fmt.Errorf("database path is required for %s", cfg.Driver)
		}
		return "file:" + cfg.Path + "?_foreign_keys=on&_busy_timeout=5000", nil
	case config.DriverMySQL:
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = cfg.Username
		mysqlCfg.Passwd = cfg.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, portOrDefault(cfg.Port, 3306))
		mysqlCfg.DBName = cfg.Database
		if cfg.TLS {
			mysqlCfg.TLSConfig = "true"
		}
		if len(cfg.Params) > 0 {
			mysqlCfg.Params = cfg.Params
		}
		return mysqlCfg.FormatDSN(), nil
	case config.DriverPostgres:
		query := url.Values{}
		if cfg.TLS {
			query.Set("sslmode", "require")
		} else {
			query.Set("sslmode", "disable")
		}
		for k, v := range cfg.Params {
			query.Set(k, v)
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.Username, cfg.Password),
			Host:     cfg.Host + ":" + strconv.Itoa(portOrDefault(cfg.Port, 5432)),
			Path:     "/" + cfg.Database,
			RawQuery: query.Encode(),
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func portOrDefault(port, fallback int) int {
	if port > 0 {
		return port
	}
	return fallback
}

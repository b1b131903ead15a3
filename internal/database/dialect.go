package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/jankenoboe/jankenoboe/internal/config"
)

// Dialect names a supported SQL backend. Its value is the database/sql driver name.
type Dialect string

const (
	SQLite   Dialect = config.DriverSQLite
	MySQL    Dialect = config.DriverMySQL
	Postgres Dialect = config.DriverPostgres
)

// DialectFor returns the dialect for a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch d := Dialect(driver); d {
	case SQLite, MySQL, Postgres:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// DialectOf returns the dialect of an open connection pool.
func DialectOf(db sqlx.ExtContext) (Dialect, error) {
	return DialectFor(db.DriverName())
}

func (d Dialect) DriverName() string {
	return string(d)
}

// Quote quotes an identifier that collides with a keyword, such as the show table.
func (d Dialect) Quote(ident string) string {
	if d == MySQL {
		return "`" + ident + "`"
	}
	return `"` + ident + `"`
}

// JSONArrayInt renders an expression reading the integer at position indexExpr of
// the JSON array stored as text in column arrayExpr. Out-of-range positions yield NULL.
func (d Dialect) JSONArrayInt(arrayExpr, indexExpr string) string {
	switch d {
	case MySQL:
		return fmt.Sprintf("CAST(JSON_EXTRACT(%s, CONCAT('$[', %s, ']')) AS SIGNED)", arrayExpr, indexExpr)
	case Postgres:
		return fmt.Sprintf("((%s)::jsonb ->> (%s))::bigint", arrayExpr, indexExpr)
	default:
		return fmt.Sprintf("json_extract(%s, '$[' || %s || ']')", arrayExpr, indexExpr)
	}
}

func (d Dialect) gooseDialect() goose.Dialect {
	switch d {
	case MySQL:
		return goose.DialectMySQL
	case Postgres:
		return goose.DialectPostgres
	default:
		return goose.DialectSQLite3
	}
}

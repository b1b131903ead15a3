package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	for _, driver := range []string{"sqlite3", "mysql", "postgres"} {
		got, err := DialectFor(driver)
		require.NoError(t, err)
		assert.Equal(t, driver, got.DriverName())
	}

	_, err := DialectFor("sqlite")
	assert.EqualError(t, err, `unsupported database driver: "sqlite"`)
}

func TestDialect_Quote(t *testing.T) {
	assert.Equal(t, "`show`", MySQL.Quote("show"))
	assert.Equal(t, `"show"`, Postgres.Quote("show"))
	assert.Equal(t, `"show"`, SQLite.Quote("show"))
}

func TestDialect_JSONArrayInt(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{dialect: SQLite, want: "json_extract(l.level_up_path, '$[' || l.level || ']')"},
		{dialect: MySQL, want: "CAST(JSON_EXTRACT(l.level_up_path, CONCAT('$[', l.level, ']')) AS SIGNED)"},
		{dialect: Postgres, want: "((l.level_up_path)::jsonb ->> (l.level))::bigint"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dialect.JSONArrayInt("l.level_up_path", "l.level"))
		})
	}
}

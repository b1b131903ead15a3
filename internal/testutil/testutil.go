// Package testutil provides shared test helpers for creating config files and database fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/jankenoboe/jankenoboe/internal/config"
	"github.com/jankenoboe/jankenoboe/internal/database"
)

// DefaultLevelUpPath is the stored path of a record created with 20 levels.
const DefaultLevelUpPath = "[1,1,1,1,1,1,1,2,3,5,7,13,19,32,52,84,135,220,355,574]"

// SetupTestConfig creates a minimal config file with a sqlite database in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`database:
  driver: sqlite3
  path: %s
learning:
  max_level: 20
  relearn_start_level: 7
`, filepath.Join(tmpDir, "jankenoboe.db"))

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithServer creates a config file whose client talks to serverURL.
func SetupTestConfigWithServer(t *testing.T, tmpDir, serverURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("client:\n  server_url: %s\n  timeout_seconds: 5\n", serverURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// NewSQLiteDB opens a migrated sqlite database in a temporary directory.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return OpenSQLiteDB(t, filepath.Join(t.TempDir(), "jankenoboe.db"))
}

// OpenSQLiteDB opens and migrates the sqlite database at path. It is closed when the test ends.
func OpenSQLiteDB(t *testing.T, path string) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Connect(ctx, config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            path,
		ConnectAttempts: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = database.Migrate(ctx, db)
	require.NoError(t, err)
	return db
}

// CreateArtist inserts an artist and returns its id.
func CreateArtist(t *testing.T, db *sqlx.DB, name string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().Unix()
	_, err := db.Exec(db.Rebind("INSERT INTO artist (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)"),
		id, name, now, now)
	require.NoError(t, err)
	return id
}

// CreateSong inserts a song by the artist and returns its id.
func CreateSong(t *testing.T, db *sqlx.DB, name, artistID string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().Unix()
	_, err := db.Exec(db.Rebind("INSERT INTO song (id, name, artist_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"),
		id, name, artistID, now, now)
	require.NoError(t, err)
	return id
}

// CreateShow inserts a show and returns its id.
func CreateShow(t *testing.T, db *sqlx.DB, name string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().Unix()
	_, err := db.Exec(db.Rebind(`INSERT INTO "show" (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`),
		id, name, now, now)
	require.NoError(t, err)
	return id
}

// LinkShowSong relates a song to a show. createdAt orders the links of a song.
func LinkShowSong(t *testing.T, db *sqlx.DB, showID, songID, mediaURL string, createdAt int64) {
	t.Helper()

	_, err := db.Exec(db.Rebind("INSERT INTO rel_show_song (show_id, song_id, media_url, created_at) VALUES (?, ?, ?, ?)"),
		showID, songID, mediaURL, createdAt)
	require.NoError(t, err)
}

// CreatePlayHistory records a play of the song in the show and returns its id.
func CreatePlayHistory(t *testing.T, db *sqlx.DB, showID, songID, mediaURL string, status int) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(db.Rebind("INSERT INTO play_history (id, show_id, song_id, created_at, media_url, status) VALUES (?, ?, ?, ?, ?, ?)"),
		id, showID, songID, time.Now().Unix(), mediaURL, status)
	require.NoError(t, err)
	return id
}

// LearningOption configures optional fields when creating a learning record fixture.
type LearningOption func(*learningConfig)

type learningConfig struct {
	level         int
	createdAt     int64
	updatedAt     int64
	lastLevelUpAt int64
	levelUpPath   string
	graduated     bool
}

// WithLevel sets the record's level.
func WithLevel(level int) LearningOption {
	return func(cfg *learningConfig) {
		cfg.level = level
	}
}

// WithUpdatedAt sets both created_at and updated_at.
func WithUpdatedAt(at int64) LearningOption {
	return func(cfg *learningConfig) {
		cfg.createdAt = at
		cfg.updatedAt = at
	}
}

func WithLastLevelUpAt(at int64) LearningOption {
	return func(cfg *learningConfig) {
		cfg.lastLevelUpAt = at
	}
}

func WithLevelUpPath(path string) LearningOption {
	return func(cfg *learningConfig) {
		cfg.levelUpPath = path
	}
}

func WithGraduated() LearningOption {
	return func(cfg *learningConfig) {
		cfg.graduated = true
	}
}

// CreateLearning inserts a learning record for the song and returns its id.
// By default the record is at level 0, never leveled up, and updated now.
func CreateLearning(t *testing.T, db *sqlx.DB, songID string, opts ...LearningOption) string {
	t.Helper()

	now := time.Now().Unix()
	cfg := learningConfig{
		createdAt:   now,
		updatedAt:   now,
		levelUpPath: DefaultLevelUpPath,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	graduated := 0
	if cfg.graduated {
		graduated = 1
	}

	id := uuid.NewString()
	_, err := db.Exec(db.Rebind(`INSERT INTO learning (id, song_id, level, created_at, updated_at, last_level_up_at, level_up_path, graduated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		id, songID, cfg.level, cfg.createdAt, cfg.updatedAt, cfg.lastLevelUpAt, cfg.levelUpPath, graduated)
	require.NoError(t, err)
	return id
}

// CountLearning returns the number of learning records of the song.
func CountLearning(t *testing.T, db *sqlx.DB, songID string) int {
	t.Helper()

	var count int
	require.NoError(t, db.Get(&count, db.Rebind("SELECT COUNT(*) FROM learning WHERE song_id = ?"), songID))
	return count
}

// Package learning schedules spaced-repetition review of songs.
package learning

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jankenoboe/jankenoboe/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/learning/mock_repository.go -package=mock_learning

// SongState counts the learning records of a song by state.
type SongState struct {
	Active    int `db:"active"`
	Graduated int `db:"graduated"`
}

// Repository defines the persistence operations of the scheduler.
// Every method runs on the given querier so that a batch shares one transaction.
type Repository interface {
	FindDue(ctx context.Context, q sqlx.ExtContext, reference int64, limit int) ([]DueRecord, error)
	FindBySongIDs(ctx context.Context, q sqlx.ExtContext, songIDs []string) ([]SongRecord, error)
	FindByIDs(ctx context.Context, q sqlx.ExtContext, ids []string) ([]Record, error)
	SongExists(ctx context.Context, q sqlx.ExtContext, songID string) (bool, error)
	FindSongState(ctx context.Context, q sqlx.ExtContext, songID string) (SongState, error)
	Insert(ctx context.Context, q sqlx.ExtContext, records []Record) error
	LevelUp(ctx context.Context, q sqlx.ExtContext, id string, level int, now int64) error
	Graduate(ctx context.Context, q sqlx.ExtContext, id string, now int64) error
}

// DBRepository implements Repository on sqlite3, MySQL, and PostgreSQL.
type DBRepository struct{}

// NewDBRepository creates a new DBRepository.
func NewDBRepository() *DBRepository {
	return &DBRepository{}
}

// FindDue returns the records due at reference, highest level first.
func (r *DBRepository) FindDue(ctx context.Context, q sqlx.ExtContext, reference int64, limit int) ([]DueRecord, error) {
	dialect, err := database.DialectOf(q)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT l.*, s.name AS song_name, s.artist_id AS artist_id, COALESCE(%s, 0) AS wait_days
		FROM learning l
		JOIN song s ON l.song_id = s.id
		WHERE %s
		ORDER BY l.level DESC, l.id
		LIMIT ?`, waitDaysExpr(dialect), dueCondition(dialect))

	var records []DueRecord
	if err := sqlx.SelectContext(ctx, q, &records, q.Rebind(query), reference, reference, reference, limit); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(due learning) > %w", err)
	}
	return records, nil
}

// FindBySongIDs returns every record of the songs, graduated or not, highest level first.
func (r *DBRepository) FindBySongIDs(ctx context.Context, q sqlx.ExtContext, songIDs []string) ([]SongRecord, error) {
	if len(songIDs) == 0 {
		return nil, nil
	}
	dialect, err := database.DialectOf(q)
	if err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(fmt.Sprintf(`SELECT l.*, s.name AS song_name, COALESCE(%s, 0) AS wait_days
		FROM learning l
		JOIN song s ON l.song_id = s.id
		WHERE l.song_id IN (?)
		ORDER BY l.level DESC, l.id`, waitDaysExpr(dialect)), songIDs)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(learning by song) > %w", err)
	}

	var records []SongRecord
	if err := sqlx.SelectContext(ctx, q, &records, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(learning by song) > %w", err)
	}
	return records, nil
}

// FindByIDs returns the records with the given ids. Unknown ids are absent from the result.
func (r *DBRepository) FindByIDs(ctx context.Context, q sqlx.ExtContext, ids []string) ([]Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM learning WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(learning) > %w", err)
	}

	var records []Record
	if err := sqlx.SelectContext(ctx, q, &records, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("sqlx.SelectContext(learning) > %w", err)
	}
	return records, nil
}

func (r *DBRepository) SongExists(ctx context.Context, q sqlx.ExtContext, songID string) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, q, &count, q.Rebind("SELECT COUNT(*) FROM song WHERE id = ?"), songID); err != nil {
		return false, fmt.Errorf("sqlx.GetContext(song count) > %w", err)
	}
	return count > 0, nil
}

// FindSongState counts the active and graduated records of a song.
func (r *DBRepository) FindSongState(ctx context.Context, q sqlx.ExtContext, songID string) (SongState, error) {
	var state SongState
	if err := sqlx.GetContext(ctx, q, &state, q.Rebind(`SELECT
			COALESCE(SUM(CASE WHEN graduated = 0 THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN graduated = 0 THEN 0 ELSE 1 END), 0) AS graduated
		FROM learning WHERE song_id = ?`), songID); err != nil {
		return SongState{}, fmt.Errorf("sqlx.GetContext(learning state) > %w", err)
	}
	return state, nil
}

// Insert creates records in a single statement.
func (r *DBRepository) Insert(ctx context.Context, q sqlx.ExtContext, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	columns := []string{"id", "song_id", "level", "created_at", "updated_at", "last_level_up_at", "level_up_path", "graduated"}
	query := database.BuildMultiRowInsert("learning", columns, len(records))

	args := make([]interface{}, 0, len(records)*len(columns))
	for _, rec := range records {
		args = append(args, rec.ID, rec.SongID, rec.Level, rec.CreatedAt, rec.UpdatedAt,
			rec.LastLevelUpAt, rec.LevelUpPath, boolToInt(rec.Graduated))
	}
	if _, err := q.ExecContext(ctx, q.Rebind(query), args...); err != nil {
		return fmt.Errorf("db.ExecContext(insert learning) > %w", err)
	}
	return nil
}

func (r *DBRepository) LevelUp(ctx context.Context, q sqlx.ExtContext, id string, level int, now int64) error {
	if _, err := q.ExecContext(ctx,
		q.Rebind("UPDATE learning SET level = ?, updated_at = ?, last_level_up_at = ? WHERE id = ?"),
		level, now, now, id); err != nil {
		return fmt.Errorf("db.ExecContext(level up learning %s) > %w", id, err)
	}
	return nil
}

// Graduate marks a record graduated and leaves its level unchanged.
func (r *DBRepository) Graduate(ctx context.Context, q sqlx.ExtContext, id string, now int64) error {
	if _, err := q.ExecContext(ctx,
		q.Rebind("UPDATE learning SET graduated = 1, updated_at = ?, last_level_up_at = ? WHERE id = ?"),
		now, now, id); err != nil {
		return fmt.Errorf("db.ExecContext(graduate learning %s) > %w", id, err)
	}
	return nil
}

// graduated is stored as an integer on every dialect.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

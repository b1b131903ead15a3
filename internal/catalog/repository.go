// Package catalog reads songs, artists, shows, and play history.
package catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jankenoboe/jankenoboe/internal/database"
)

// playStatusActive is the play_history status of a play that was not removed.
const playStatusActive = 0

// ShowLink is a show a song appears in.
type ShowLink struct {
	ShowID   string `db:"show_id"`
	ShowName string `db:"show_name"`
	MediaURL string `db:"media_url"`
}

// DBRepository reads the catalog tables. It never writes.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// ArtistName returns the display name of the artist.
// A missing artist is reported as sql.ErrNoRows wrapped.
func (r *DBRepository) ArtistName(ctx context.Context, artistID string) (string, error) {
	var name string
	if err := r.db.GetContext(ctx, &name, r.db.Rebind("SELECT name FROM artist WHERE id = ?"), artistID); err != nil {
		return "", fmt.Errorf("db.GetContext(artist %s) > %w", artistID, err)
	}
	return name, nil
}

// ShowLinks returns the shows linked to the song in the order they were linked.
func (r *DBRepository) ShowLinks(ctx context.Context, songID string) ([]ShowLink, error) {
	dialect, err := database.DialectOf(r.db)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT rs.show_id, sh.name AS show_name, COALESCE(rs.media_url, '') AS media_url
		FROM rel_show_song rs
		JOIN %s sh ON rs.show_id = sh.id
		WHERE rs.song_id = ?
		ORDER BY rs.created_at, rs.show_id`, dialect.Quote("show"))

	var links []ShowLink
	if err := r.db.SelectContext(ctx, &links, r.db.Rebind(query), songID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(show links %s) > %w", songID, err)
	}
	return links, nil
}

// PlayHistoryMediaURLs returns the non-empty media URLs of the song's active plays, oldest first.
func (r *DBRepository) PlayHistoryMediaURLs(ctx context.Context, songID string) ([]string, error) {
	var urls []string
	if err := r.db.SelectContext(ctx, &urls, r.db.Rebind(`SELECT media_url FROM play_history
		WHERE song_id = ? AND media_url != '' AND status = ?
		ORDER BY created_at, id`), songID, playStatusActive); err != nil {
		return nil, fmt.Errorf("db.SelectContext(play history %s) > %w", songID, err)
	}
	return urls, nil
}

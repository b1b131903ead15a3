package learning

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Record is the scheduling state of one attempt at memorizing one song.
// Timestamps are seconds since the Unix epoch; LastLevelUpAt is 0 until the first level-up.
type Record struct {
	ID            string `db:"id" json:"id" yaml:"id"`
	SongID        string `db:"song_id" json:"song_id" yaml:"song_id"`
	Level         int    `db:"level" json:"level" yaml:"level"`
	CreatedAt     int64  `db:"created_at" json:"created_at" yaml:"created_at"`
	UpdatedAt     int64  `db:"updated_at" json:"updated_at" yaml:"updated_at"`
	LastLevelUpAt int64  `db:"last_level_up_at" json:"last_level_up_at" yaml:"last_level_up_at"`
	LevelUpPath   Path   `db:"level_up_path" json:"level_up_path" yaml:"level_up_path"`
	Graduated     bool   `db:"graduated" json:"graduated" yaml:"graduated"`
}

// WaitDays returns the number of days the record waits at its current level,
// or 0 when the level is outside its path.
func (r Record) WaitDays() int {
	if r.Level < 0 || r.Level >= len(r.LevelUpPath) {
		return 0
	}
	return r.LevelUpPath[r.Level]
}

// DueRecord is a record selected by the due listing, joined with its song.
type DueRecord struct {
	Record   `yaml:",inline"`
	SongName string `db:"song_name" json:"song_name" yaml:"song_name"`
	ArtistID string `db:"artist_id" json:"artist_id" yaml:"artist_id"`
	WaitDays int    `db:"wait_days" json:"wait_days" yaml:"wait_days"`
}

// SongRecord is a record of any state returned by a lookup by song.
type SongRecord struct {
	Record   `yaml:",inline"`
	SongName string `db:"song_name" json:"song_name" yaml:"song_name"`
	WaitDays int    `db:"wait_days" json:"wait_days" yaml:"wait_days"`
	Due      bool   `db:"-" json:"due" yaml:"due"`
}

// Path is the per-level wait in days, stored as a JSON array.
type Path []int

func (p Path) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]int(p))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(level_up_path) > %w", err)
	}
	return string(b), nil
}

func (p *Path) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("unsupported level_up_path type %T", src)
	}

	var days []int
	if err := json.Unmarshal(b, &days); err != nil {
		return fmt.Errorf("json.Unmarshal(level_up_path) > %w", err)
	}
	*p = days
	return nil
}

// EnrollRequest lists the songs to enroll. Songs that already graduated are
// re-enrolled at RelearnStartLevel only when they are also in RelearnSongIDs.
type EnrollRequest struct {
	SongIDs           []string `json:"song_ids" yaml:"song_ids" validate:"required,min=1,dive,required"`
	RelearnSongIDs    []string `json:"relearn_song_ids" yaml:"relearn_song_ids" validate:"dive,required"`
	RelearnStartLevel int      `json:"relearn_start_level" yaml:"relearn_start_level" validate:"gte=0"`
}

type EnrollResult struct {
	CreatedIDs              []string `json:"created_ids" yaml:"created_ids"`
	SkippedSongIDs          []string `json:"skipped_song_ids" yaml:"skipped_song_ids"`
	AlreadyGraduatedSongIDs []string `json:"already_graduated_song_ids" yaml:"already_graduated_song_ids"`
}

type AdvanceResult struct {
	LeveledUpCount int `json:"leveled_up_count" yaml:"leveled_up_count"`
	GraduatedCount int `json:"graduated_count" yaml:"graduated_count"`
	TotalProcessed int `json:"total_processed" yaml:"total_processed"`
}

package learning

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jankenoboe/jankenoboe/internal/database"
)

// Scheduler lists due records, enrolls songs, and advances records through their levels.
// Each mutating call runs in a single transaction and leaves no partial state on failure.
type Scheduler struct {
	db       *sqlx.DB
	repo     Repository
	maxLevel int
	now      func() time.Time
	newID    func() string
}

type Option func(*Scheduler)

// WithMaxLevel sets the number of levels before graduation.
func WithMaxLevel(maxLevel int) Option {
	return func(s *Scheduler) {
		s.maxLevel = maxLevel
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Scheduler) {
		s.newID = newID
	}
}

func WithRepository(repo Repository) Option {
	return func(s *Scheduler) {
		s.repo = repo
	}
}

func NewScheduler(db *sqlx.DB, opts ...Option) *Scheduler {
	s := &Scheduler{
		db:       db,
		repo:     NewDBRepository(),
		maxLevel: DefaultMaxLevel,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the scheduler's current instant.
func (s *Scheduler) Now() time.Time {
	return s.now()
}

// Due returns up to limit records due within lookahead of now, highest level first.
func (s *Scheduler) Due(ctx context.Context, limit int, lookahead time.Duration) ([]DueRecord, error) {
	if limit <= 0 {
		return nil, invalidInput("limit must be positive: %d", limit)
	}
	if lookahead < 0 {
		return nil, invalidInput("offset must not be negative: %s", lookahead)
	}

	reference := s.now().Unix() + int64(lookahead/time.Second)
	records, err := s.repo.FindDue(ctx, s.db, reference, limit)
	if err != nil {
		return nil, fmt.Errorf("find due learning records: %w", err)
	}
	if records == nil {
		records = []DueRecord{}
	}
	return records, nil
}

// Enroll creates learning records for songs that have none.
// A song with an active record is skipped. A graduated song is re-enrolled at
// RelearnStartLevel only when it is also listed in RelearnSongIDs.
// An unknown song aborts the whole batch.
func (s *Scheduler) Enroll(ctx context.Context, req EnrollRequest) (*EnrollResult, error) {
	songIDs := uniqueIDs(req.SongIDs)
	if len(songIDs) == 0 {
		return nil, invalidInput("song_ids cannot be empty")
	}
	if req.RelearnStartLevel < 0 || req.RelearnStartLevel >= s.maxLevel {
		return nil, invalidInput("relearn_start_level must be between 0 and %d: %d", s.maxLevel-1, req.RelearnStartLevel)
	}
	relearn := make(map[string]struct{}, len(req.RelearnSongIDs))
	for _, id := range uniqueIDs(req.RelearnSongIDs) {
		relearn[id] = struct{}{}
	}

	now := s.now().Unix()
	path := LevelUpPath(s.maxLevel)
	result := &EnrollResult{
		CreatedIDs:              []string{},
		SkippedSongIDs:          []string{},
		AlreadyGraduatedSongIDs: []string{},
	}

	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var records []Record
		for _, songID := range songIDs {
			exists, err := s.repo.SongExists(ctx, tx, songID)
			if err != nil {
				return err
			}
			if !exists {
				return notFound("song not found: %s", songID)
			}

			state, err := s.repo.FindSongState(ctx, tx, songID)
			if err != nil {
				return err
			}

			switch {
			case state.Active > 0:
				result.SkippedSongIDs = append(result.SkippedSongIDs, songID)
			case state.Graduated > 0:
				if _, ok := relearn[songID]; !ok {
					result.AlreadyGraduatedSongIDs = append(result.AlreadyGraduatedSongIDs, songID)
					continue
				}
				records = append(records, s.newRecord(songID, req.RelearnStartLevel, now, now, path))
			default:
				records = append(records, s.newRecord(songID, 0, now, 0, path))
			}
		}

		for _, rec := range records {
			result.CreatedIDs = append(result.CreatedIDs, rec.ID)
		}
		return s.repo.Insert(ctx, tx, records)
	})
	if err != nil {
		return nil, err
	}

	slog.Default().Info("enrolled songs",
		slog.Int("created", len(result.CreatedIDs)),
		slog.Int("skipped", len(result.SkippedSongIDs)),
		slog.Int("already_graduated", len(result.AlreadyGraduatedSongIDs)),
	)
	return result, nil
}

func (s *Scheduler) newRecord(songID string, level int, now, lastLevelUpAt int64, path Path) Record {
	return Record{
		ID:            s.newID(),
		SongID:        songID,
		Level:         level,
		CreatedAt:     now,
		UpdatedAt:     now,
		LastLevelUpAt: lastLevelUpAt,
		LevelUpPath:   path,
	}
}

// Advance levels up each record by one, graduating those already at the last level.
// The batch is rejected as a whole when a record is graduated or missing.
func (s *Scheduler) Advance(ctx context.Context, ids []string) (*AdvanceResult, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, invalidInput("ids cannot be empty")
	}

	now := s.now().Unix()
	var result AdvanceResult

	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		found, err := s.repo.FindByIDs(ctx, tx, ids)
		if err != nil {
			return err
		}
		byID := make(map[string]Record, len(found))
		for _, rec := range found {
			byID[rec.ID] = rec
		}

		var missing []string
		records := make([]Record, 0, len(ids))
		for _, id := range ids {
			rec, ok := byID[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			if rec.Graduated {
				return invalidState("learning record already graduated: %s", id)
			}
			records = append(records, rec)
		}
		if len(missing) > 0 {
			return notFound("learning record(s) not found: %s", strings.Join(missing, ", "))
		}

		for _, rec := range records {
			if rec.Level >= s.maxLevel-1 {
				if err := s.repo.Graduate(ctx, tx, rec.ID, now); err != nil {
					return err
				}
				result.GraduatedCount++
				continue
			}
			if err := s.repo.LevelUp(ctx, tx, rec.ID, rec.Level+1, now); err != nil {
				return err
			}
			result.LeveledUpCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.TotalProcessed = result.LeveledUpCount + result.GraduatedCount
	slog.Default().Info("advanced learning records",
		slog.Int("leveled_up", result.LeveledUpCount),
		slog.Int("graduated", result.GraduatedCount),
	)
	return &result, nil
}

// BySongIDs returns every record of the songs, each marked with whether it is due now.
func (s *Scheduler) BySongIDs(ctx context.Context, songIDs []string) ([]SongRecord, error) {
	songIDs = uniqueIDs(songIDs)
	if len(songIDs) == 0 {
		return nil, invalidInput("song_ids cannot be empty")
	}

	records, err := s.repo.FindBySongIDs(ctx, s.db, songIDs)
	if err != nil {
		return nil, fmt.Errorf("find learning records by song: %w", err)
	}

	now := s.now()
	for i := range records {
		records[i].Due = IsDue(records[i].Record, now, 0)
	}
	if records == nil {
		records = []SongRecord{}
	}
	return records, nil
}

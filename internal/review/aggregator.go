// Package review builds the review report of the learning records that are due.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jankenoboe/jankenoboe/internal/catalog"
	"github.com/jankenoboe/jankenoboe/internal/learning"
)

//go:generate mockgen -source=aggregator.go -destination=../mocks/review/mock_aggregator.go -package=mock_review

// UnknownArtist labels an entry whose artist could not be looked up.
const UnknownArtist = "Unknown"

// DueLister selects the due records.
type DueLister interface {
	Due(ctx context.Context, limit int, lookahead time.Duration) ([]learning.DueRecord, error)
	Now() time.Time
}

// Catalog looks up the names and media used to enrich an entry.
type Catalog interface {
	ArtistName(ctx context.Context, artistID string) (string, error)
	ShowLinks(ctx context.Context, songID string) ([]catalog.ShowLink, error)
	PlayHistoryMediaURLs(ctx context.Context, songID string) ([]string, error)
}

// Entry is a due record enriched for review.
type Entry struct {
	LearningID string   `json:"learning_id" yaml:"learning_id"`
	SongID     string   `json:"song_id" yaml:"song_id"`
	SongName   string   `json:"song_name" yaml:"song_name"`
	ArtistName string   `json:"artist_name" yaml:"artist_name"`
	Level      int      `json:"level" yaml:"level"`
	WaitDays   int      `json:"wait_days" yaml:"wait_days"`
	ShowNames  []string `json:"show_names" yaml:"show_names"`
	MediaURLs  []string `json:"media_urls" yaml:"media_urls"`
}

// LevelCount is one bucket of the level histogram.
type LevelCount struct {
	Level int `json:"level" yaml:"level"`
	Count int `json:"count" yaml:"count"`
}

type Report struct {
	Count          int          `json:"count" yaml:"count"`
	Entries        []Entry      `json:"entries" yaml:"entries"`
	LevelHistogram []LevelCount `json:"level_histogram" yaml:"level_histogram"`
	LearningIDs    []string     `json:"learning_ids" yaml:"learning_ids"`
	GeneratedAt    time.Time    `json:"generated_at" yaml:"generated_at"`
}

type Aggregator struct {
	dueLister DueLister
	catalog   Catalog
}

func NewAggregator(dueLister DueLister, catalog Catalog) *Aggregator {
	return &Aggregator{
		dueLister: dueLister,
		catalog:   catalog,
	}
}

// BuildReport enriches up to limit due records with their artist, shows, and media.
// Only a failure of the due query fails the report; enrichment lookups fall back
// to UnknownArtist or empty lists.
func (a *Aggregator) BuildReport(ctx context.Context, limit int, lookahead time.Duration) (*Report, error) {
	due, err := a.dueLister.Due(ctx, limit, lookahead)
	if err != nil {
		return nil, fmt.Errorf("list due records: %w", err)
	}

	report := &Report{
		Count:          len(due),
		Entries:        make([]Entry, 0, len(due)),
		LevelHistogram: levelHistogram(due),
		LearningIDs:    make([]string, 0, len(due)),
		GeneratedAt:    a.dueLister.Now(),
	}
	for _, rec := range due {
		report.Entries = append(report.Entries, a.enrich(ctx, rec))
		report.LearningIDs = append(report.LearningIDs, rec.ID)
	}
	return report, nil
}

func (a *Aggregator) enrich(ctx context.Context, rec learning.DueRecord) Entry {
	entry := Entry{
		LearningID: rec.ID,
		SongID:     rec.SongID,
		SongName:   rec.SongName,
		ArtistName: UnknownArtist,
		Level:      rec.Level,
		WaitDays:   rec.WaitDays,
		ShowNames:  []string{},
		MediaURLs:  []string{},
	}

	name, err := a.catalog.ArtistName(ctx, rec.ArtistID)
	if err != nil {
		slog.Default().Warn("failed to look up artist",
			slog.String("song_id", rec.SongID),
			slog.String("artist_id", rec.ArtistID),
			slog.Any("error", err),
		)
	} else {
		entry.ArtistName = name
	}

	shows := newOrderedSet()
	media := newOrderedSet()

	links, err := a.catalog.ShowLinks(ctx, rec.SongID)
	if err != nil {
		slog.Default().Warn("failed to look up shows",
			slog.String("song_id", rec.SongID),
			slog.Any("error", err),
		)
	}
	for _, link := range links {
		shows.add(link.ShowName)
		media.add(link.MediaURL)
	}

	urls, err := a.catalog.PlayHistoryMediaURLs(ctx, rec.SongID)
	if err != nil {
		slog.Default().Warn("failed to look up play history",
			slog.String("song_id", rec.SongID),
			slog.Any("error", err),
		)
	}
	for _, url := range urls {
		media.add(url)
	}

	entry.ShowNames = shows.values
	entry.MediaURLs = media.values
	return entry
}

// levelHistogram counts the records per level in ascending level order.
func levelHistogram(due []learning.DueRecord) []LevelCount {
	counts := make(map[int]int)
	for _, rec := range due {
		counts[rec.Level]++
	}

	histogram := make([]LevelCount, 0, len(counts))
	for level, count := range counts {
		histogram = append(histogram, LevelCount{Level: level, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		return histogram[i].Level < histogram[j].Level
	})
	return histogram
}

// orderedSet keeps the first occurrence of each non-empty string.
type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{
		seen:   make(map[string]struct{}),
		values: []string{},
	}
}

func (s *orderedSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}

// Package service exposes the learning operations behind one interface,
// served either from the database or from a remote server.
package service

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jankenoboe/jankenoboe/internal/catalog"
	"github.com/jankenoboe/jankenoboe/internal/config"
	"github.com/jankenoboe/jankenoboe/internal/learning"
	"github.com/jankenoboe/jankenoboe/internal/review"
)

//go:generate mockgen -source=service.go -destination=../mocks/service/mock_service.go -package=mock_service

type Service interface {
	Due(ctx context.Context, limit int, lookahead time.Duration) ([]learning.DueRecord, error)
	Enroll(ctx context.Context, req learning.EnrollRequest) (*learning.EnrollResult, error)
	Advance(ctx context.Context, ids []string) (*learning.AdvanceResult, error)
	BySongIDs(ctx context.Context, songIDs []string) ([]learning.SongRecord, error)
	BuildReport(ctx context.Context, limit int, lookahead time.Duration) (*review.Report, error)
}

// Local runs the operations against a database.
type Local struct {
	scheduler  *learning.Scheduler
	aggregator *review.Aggregator
}

func NewLocal(db *sqlx.DB, cfg config.LearningConfig, opts ...learning.Option) *Local {
	opts = append([]learning.Option{learning.WithMaxLevel(cfg.MaxLevel)}, opts...)
	scheduler := learning.NewScheduler(db, opts...)
	return &Local{
		scheduler:  scheduler,
		aggregator: review.NewAggregator(scheduler, catalog.NewDBRepository(db)),
	}
}

func (s *Local) Due(ctx context.Context, limit int, lookahead time.Duration) ([]learning.DueRecord, error) {
	return s.scheduler.Due(ctx, limit, lookahead)
}

func (s *Local) Enroll(ctx context.Context, req learning.EnrollRequest) (*learning.EnrollResult, error) {
	return s.scheduler.Enroll(ctx, req)
}

func (s *Local) Advance(ctx context.Context, ids []string) (*learning.AdvanceResult, error) {
	return s.scheduler.Advance(ctx, ids)
}

func (s *Local) BySongIDs(ctx context.Context, songIDs []string) ([]learning.SongRecord, error) {
	return s.scheduler.BySongIDs(ctx, songIDs)
}

func (s *Local) BuildReport(ctx context.Context, limit int, lookahead time.Duration) (*review.Report, error) {
	return s.aggregator.BuildReport(ctx, limit, lookahead)
}

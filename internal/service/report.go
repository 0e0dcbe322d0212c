package service

import (
	"context"
	"time"

	"github.com/aburaya/english-trainer-bot/internal/domain/entities"
)

const (
	reportWindow = 7 * 24 * time.Hour
	reportTail   = 5
)

type AttemptReader interface {
	ListSince(ctx context.Context, userID int64, since time.Time) ([]*entities.Attempt, error)
}

// ReportService aggregates a user's recent attempts into a progress
// summary.
type ReportService struct {
	attempts AttemptReader
	now      func() time.Time
}

func NewReportService(attempts AttemptReader) *ReportService {
	return &ReportService{
		attempts: attempts,
		now:      time.Now,
	}
}

// ReportSummary is the windowed aggregate over a user's attempts.
type ReportSummary struct {
	Since        time.Time
	Count        int
	AverageScore float64 // meaningful only when Count > 0
	Recent       []*entities.Attempt
}

// Empty reports whether the window contains no attempts.
func (s *ReportSummary) Empty() bool {
	return s.Count == 0
}

// GetSummary returns count, mean score and the chronological tail of
// the user's attempts over the last seven days. An empty window yields
// an explicit empty summary, never a zero-attempt average.
func (s *ReportService) GetSummary(ctx context.Context, userID int64) (*ReportSummary, error) {
	since := s.now().UTC().Add(-reportWindow)

	attempts, err := s.attempts.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{Since: since, Count: len(attempts)}
	if len(attempts) == 0 {
		return summary, nil
	}

	var total float64
	for _, a := range attempts {
		total += a.Score
	}
	summary.AverageScore = total / float64(len(attempts))

	tail := attempts
	if len(tail) > reportTail {
		tail = tail[len(tail)-reportTail:]
	}
	summary.Recent = tail

	return summary, nil
}

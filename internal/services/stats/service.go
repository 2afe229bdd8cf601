package stats

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/storage"
)

// Compute aggregates score records. It returns nil when there are none.
func Compute(records []model.ScoreRecord) *model.Stats {
	if len(records) == 0 {
		return nil
	}

	scores := lo.Map(records, func(r model.ScoreRecord, _ int) float64 {
		return float64(r.Score)
	})
	words := lo.Map(records, func(r model.ScoreRecord, _ int) float64 {
		return float64(r.WordsFound)
	})

	total := lo.SumBy(records, func(r model.ScoreRecord) int { return r.Score })
	_, stdDev := stat.PopMeanStdDev(scores, nil)

	return &model.Stats{
		GamesPlayed:    len(records),
		HighestScore:   int(floats.Max(scores)),
		AverageScore:   floorDiv(total, len(records)),
		MeanWordsFound: stat.Mean(words, nil),
		ScoreStdDev:    stdDev,
	}
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Service reads the score log and summarises it
type Service struct {
	log    storage.ScoreLog
	logger *slog.Logger
}

// New creates a new stats Service
func New(log storage.ScoreLog, logger *slog.Logger) *Service {
	return &Service{
		log:    log,
		logger: logger,
	}
}

// Summary returns aggregate statistics over every recorded round, or nil if
// nothing has been recorded yet
func (s *Service) Summary(ctx context.Context) (*model.Stats, error) {
	records, err := s.log.ListScores(ctx)
	if err != nil {
		return nil, err
	}
	return Compute(records), nil
}

// Record appends a finished round to the score log
func (s *Service) Record(ctx context.Context, record model.ScoreRecord) error {
	if err := s.log.AppendScore(ctx, record); err != nil {
		return err
	}
	s.logger.Debug("score recorded",
		slog.Int("score", record.Score),
		slog.Int("words_found", record.WordsFound),
	)
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Summary(ctx context.Context) (*model.Stats, error)
	Record(ctx context.Context, record model.ScoreRecord) error
}

var _ ServiceInterface = (*Service)(nil)

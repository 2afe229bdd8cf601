package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/avast/retry-go/v4"

	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/model"
)

// Config controls board generation
type Config struct {
	// Size is the grid dimension
	Size int
	// LetterCap is the most times any one letter may appear on a board
	LetterCap int
	// MaxCellDraws is how many draws a single cell gets before the whole
	// board is abandoned and regenerated
	MaxCellDraws int
	// MaxRestarts bounds whole-board regenerations. Zero means unbounded.
	MaxRestarts uint
	// Distribution is the weighted letter table to draw from
	Distribution []LetterWeight
}

// DefaultConfig returns the standard 4x4 generation settings
func DefaultConfig() Config {
	return Config{
		Size:         model.BoardSize,
		LetterCap:    3,
		MaxCellDraws: 100,
		MaxRestarts:  0,
		Distribution: EnglishDistribution,
	}
}

// Service generates letter boards
type Service struct {
	random random.Random
	cfg    Config
	pool   []rune
	logger *slog.Logger
}

// New creates a new board Service
func New(rnd random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.Distribution == nil {
		cfg.Distribution = EnglishDistribution
	}
	return &Service{
		random: rnd,
		cfg:    cfg,
		pool:   BuildPool(cfg.Distribution),
		logger: logger,
	}
}

// Generate produces a fully populated board. A cell that cannot be filled
// within MaxCellDraws abandons the attempt and the whole board starts over.
func (s *Service) Generate(ctx context.Context) (*model.Board, error) {
	failures := 0

	board, err := retry.DoWithData(
		s.attempt,
		retry.Context(ctx),
		retry.Attempts(s.attempts()),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, model.ErrCellExhausted)
		}),
		retry.OnRetry(func(n uint, err error) {
			failures++
		}),
	)
	if err != nil {
		if errors.Is(err, model.ErrCellExhausted) {
			s.logger.Error("board generation gave up",
				slog.Int("failed_attempts", failures),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%w after %d failed attempts: %w", model.ErrGenerationFailed, failures, err)
		}
		return nil, err
	}

	if failures > 0 {
		s.logger.Debug("board generated after restarts", slog.Int("restarts", failures))
	}
	return board, nil
}

// attempts converts MaxRestarts into retry-go's attempt count, where 0 means forever
func (s *Service) attempts() uint {
	if s.cfg.MaxRestarts == 0 {
		return 0
	}
	return s.cfg.MaxRestarts + 1
}

// attempt fills one board in row-major order, or fails on the first cell
// that exhausts its draws
func (s *Service) attempt() (*model.Board, error) {
	if len(s.pool) == 0 {
		return nil, fmt.Errorf("%w: empty letter distribution", model.ErrGenerationFailed)
	}

	board := model.NewBoard(s.cfg.Size)
	counts := make(map[rune]int, len(s.cfg.Distribution))

	for row := 0; row < s.cfg.Size; row++ {
		for col := 0; col < s.cfg.Size; col++ {
			letter, ok := s.draw(counts)
			if !ok {
				return nil, fmt.Errorf("%w (row %d, col %d)", model.ErrCellExhausted, row, col)
			}
			counts[letter]++
			board.Set(model.Position{Row: row, Col: col}, letter)
		}
	}
	return board, nil
}

// draw picks letters from the pool until one is still under the cap
func (s *Service) draw(counts map[rune]int) (rune, bool) {
	for tries := 0; tries < s.cfg.MaxCellDraws; tries++ {
		letter := s.pool[s.random.Intn(len(s.pool))]
		if counts[letter] < s.cfg.LetterCap {
			return letter, true
		}
	}
	return 0, false
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate(ctx context.Context) (*model.Board, error)
}

var _ ServiceInterface = (*Service)(nil)

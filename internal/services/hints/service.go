package hints

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/scoring"
)

// Strategy selects how the finder enumerates words
type Strategy string

const (
	// StrategyScan tests every dictionary word against the board
	StrategyScan Strategy = "scan"
	// StrategyTrie walks the board guided by the dictionary's prefix tree
	StrategyTrie Strategy = "trie"
)

// ParseStrategy converts a config value to a Strategy
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(value) {
	case StrategyScan, StrategyTrie:
		return Strategy(value), nil
	case "":
		return StrategyTrie, nil
	default:
		return "", fmt.Errorf("unknown hint strategy %q", value)
	}
}

// Service finds the words a board offers and turns them into ranked hints
type Service struct {
	dictionary dictionary.ServiceInterface
	scoring    scoring.ServiceInterface
	strategy   Strategy
	logger     *slog.Logger
}

// New creates a new hints Service
func New(dict dictionary.ServiceInterface, scorer scoring.ServiceInterface, strategy Strategy, logger *slog.Logger) *Service {
	if strategy == "" {
		strategy = StrategyTrie
	}
	return &Service{
		dictionary: dict,
		scoring:    scorer,
		strategy:   strategy,
		logger:     logger,
	}
}

// Find returns every dictionary word of length 3 to 9 that can be traced on
// the board, sorted alphabetically
func (s *Service) Find(ctx context.Context, b *model.Board) ([]string, error) {
	if !s.dictionary.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	var words []string
	switch s.strategy {
	case StrategyScan:
		words = FindPossibleWords(b, s.dictionary.Words())
	default:
		words = FindPossibleWordsTrie(b, s.dictionary.Trie())
	}

	s.logger.Debug("possible words found",
		slog.String("strategy", string(s.strategy)),
		slog.Int("count", len(words)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return words, nil
}

// Hints returns the best words the player did not find, ranked by the
// scoring policy
func (s *Service) Hints(ctx context.Context, b *model.Board, found []string) ([]model.Hint, error) {
	words, err := s.Find(ctx, b)
	if err != nil {
		return nil, err
	}
	return s.scoring.Hints(words, found), nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Find(ctx context.Context, b *model.Board) ([]string, error)
	Hints(ctx context.Context, b *model.Board, found []string) ([]model.Hint, error)
}

var _ ServiceInterface = (*Service)(nil)

package game

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mcoot/wordhunt/internal/dependencies/clock"
	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/hints"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/services/stats"
	"github.com/mcoot/wordhunt/internal/storage"
)

const roundIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultTimeLimit is the length of a round
const DefaultTimeLimit = 90 * time.Second

// Config controls round timing
type Config struct {
	TimeLimit time.Duration
}

// DefaultConfig returns the standard round settings
func DefaultConfig() Config {
	return Config{TimeLimit: DefaultTimeLimit}
}

// Controller runs rounds: it owns the board, the found words and the score,
// and closes a round out with hints and statistics
type Controller struct {
	storage    storage.Storage
	boards     board.ServiceInterface
	dictionary dictionary.ServiceInterface
	scoring    scoring.ServiceInterface
	hints      hints.ServiceInterface
	stats      stats.ServiceInterface
	clock      clock.Clock
	random     random.Random
	cfg        Config
	logger     *slog.Logger
}

// NewController creates a new round Controller
func NewController(
	storage storage.Storage,
	boards board.ServiceInterface,
	dictionary dictionary.ServiceInterface,
	scoring scoring.ServiceInterface,
	hints hints.ServiceInterface,
	stats stats.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = DefaultTimeLimit
	}
	return &Controller{
		storage:    storage,
		boards:     boards,
		dictionary: dictionary,
		scoring:    scoring,
		hints:      hints,
		stats:      stats,
		clock:      clock,
		random:     random,
		cfg:        cfg,
		logger:     logger,
	}
}

// StartRound deals a fresh board and starts the countdown
func (c *Controller) StartRound(ctx context.Context) (*model.Round, error) {
	if !c.dictionary.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	b, err := c.boards.Generate(ctx)
	if err != nil {
		return nil, err
	}

	round := &model.Round{
		ID:        model.RoundID(c.random.String(12, roundIDAlphabet)),
		Board:     b,
		Found:     []string{},
		State:     model.RoundStatePlaying,
		StartedAt: c.clock.Now(),
		TimeLimit: c.cfg.TimeLimit,
	}

	if err := c.storage.SaveRound(ctx, round); err != nil {
		c.logger.Error("failed to save round",
			slog.String("round_id", string(round.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("round started",
		slog.String("round_id", string(round.ID)),
		slog.Duration("time_limit", round.TimeLimit),
	)
	return round, nil
}

// GetRound retrieves a round by ID
func (c *Controller) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	return c.storage.GetRound(ctx, id)
}

// NewBoard replaces the board of a round in play. Found words, score and
// the countdown start over; invalid guesses carry across.
func (c *Controller) NewBoard(ctx context.Context, id model.RoundID) (*model.Round, error) {
	round, err := c.playingRound(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := c.boards.Generate(ctx)
	if err != nil {
		return nil, err
	}
	round.ResetBoard(b, c.clock.Now())

	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	c.logger.Debug("board replaced", slog.String("round_id", string(id)))
	return round, nil
}

// SubmitGuess checks a word against the dictionary and the board. A word
// must be known, unclaimed and at least three letters before it is traced.
// Rejections are results, not errors; unknown and untraceable words count
// as invalid guesses.
func (c *Controller) SubmitGuess(ctx context.Context, id model.RoundID, guess string) (*model.GuessResult, error) {
	round, err := c.playingRound(ctx, id)
	if err != nil {
		return nil, err
	}

	word := strings.ToLower(strings.TrimSpace(guess))
	result := &model.GuessResult{Word: word}

	switch {
	case c.dictionary.IsValidWord(word) && !round.HasFound(word) && len(word) >= model.MinWordLength:
		if board.IsAdjacentWord(word, round.Board) {
			result.Accepted = true
			result.Points = c.scoring.Score(word)
			round.AddFound(word, result.Points)
		} else {
			result.Reason = model.RejectNotAdjacent
			round.InvalidGuesses++
		}
	case round.HasFound(word):
		result.Reason = model.RejectAlreadyFound
	default:
		result.Reason = model.RejectUnknownWord
		round.InvalidGuesses++
	}

	if result.Reason != model.RejectAlreadyFound {
		if err := c.storage.SaveRound(ctx, round); err != nil {
			return nil, err
		}
	}

	c.logger.Debug("guess submitted",
		slog.String("round_id", string(id)),
		slog.String("word", word),
		slog.Bool("accepted", result.Accepted),
		slog.String("reason", string(result.Reason)),
	)
	return result, nil
}

// TimeLeft returns the whole seconds remaining in a round
func (c *Controller) TimeLeft(round *model.Round) int {
	return round.TimeLeft(c.clock.Now())
}

// IsExpired reports whether a round's countdown has run out
func (c *Controller) IsExpired(round *model.Round) bool {
	return round.IsExpired(c.clock.Now())
}

// EndRound closes a round: the score is appended to the log and the
// summary carries statistics and the best words left on the board. A score
// log failure is logged and leaves the statistics out of the summary.
func (c *Controller) EndRound(ctx context.Context, id model.RoundID) (*model.RoundSummary, error) {
	round, err := c.playingRound(ctx, id)
	if err != nil {
		return nil, err
	}

	hintList, err := c.hints.Hints(ctx, round.Board, round.Found)
	if err != nil {
		return nil, err
	}

	round.State = model.RoundStateEnded
	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	found := make([]string, len(round.Found))
	copy(found, round.Found)
	sort.Strings(found)

	summary := &model.RoundSummary{
		RoundID:        round.ID,
		Board:          round.Board,
		Found:          found,
		Score:          round.Score,
		TopFound:       c.scoring.Top(round.Found),
		InvalidGuesses: round.InvalidGuesses,
		Hints:          hintList,
		Stats:          c.recordScore(ctx, round),
	}

	c.logger.Info("round ended",
		slog.String("round_id", string(round.ID)),
		slog.Int("score", round.Score),
		slog.Int("words_found", len(round.Found)),
		slog.Int("invalid_guesses", round.InvalidGuesses),
	)
	return summary, nil
}

// recordScore appends the round to the score log and reads the totals back.
// Either failure degrades to nil statistics.
func (c *Controller) recordScore(ctx context.Context, round *model.Round) *model.Stats {
	record := model.ScoreRecord{
		Score:      round.Score,
		WordsFound: len(round.Found),
		Time:       c.clock.Now().Unix(),
	}
	if err := c.stats.Record(ctx, record); err != nil {
		c.logger.Warn("failed to save score",
			slog.String("round_id", string(round.ID)),
			slog.String("error", err.Error()),
		)
		return nil
	}

	summary, err := c.stats.Summary(ctx)
	if err != nil {
		c.logger.Warn("failed to read score log",
			slog.String("round_id", string(round.ID)),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return summary
}

// playingRound loads a round that has not been ended yet
func (c *Controller) playingRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	round, err := c.storage.GetRound(ctx, id)
	if err != nil {
		return nil, err
	}
	if round.IsEnded() {
		return nil, model.ErrRoundEnded
	}
	return round, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	StartRound(ctx context.Context) (*model.Round, error)
	GetRound(ctx context.Context, id model.RoundID) (*model.Round, error)
	NewBoard(ctx context.Context, id model.RoundID) (*model.Round, error)
	SubmitGuess(ctx context.Context, id model.RoundID, guess string) (*model.GuessResult, error)
	TimeLeft(round *model.Round) int
	IsExpired(round *model.Round) bool
	EndRound(ctx context.Context, id model.RoundID) (*model.RoundSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)

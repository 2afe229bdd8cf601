package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordhunt/internal/dependencies/mocks"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/hints"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/services/stats"
	"github.com/mcoot/wordhunt/internal/storage"
	"github.com/mcoot/wordhunt/internal/storage/memory"
	"github.com/mcoot/wordhunt/internal/testutil"
)

var errLogDown = errors.New("score log down")

type brokenLog struct{}

func (brokenLog) AppendScore(ctx context.Context, record model.ScoreRecord) error {
	return errLogDown
}

func (brokenLog) ListScores(ctx context.Context) ([]model.ScoreRecord, error) {
	return nil, errLogDown
}

type ControllerSuite struct {
	suite.Suite
	storage     *memory.Storage
	boards      *mocks.MockBoardGenerator
	dictService *dictionary.Service
	clock       *mocks.MockClock
	random      *mocks.MockRandom
	controller  *Controller
	ctx         context.Context
	start       time.Time
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.boards = mocks.NewMockBoardGenerator(s.parse("CATS", "RXXE", "XXXA", "DOGT"), s.parse("DOGS", "XXXX", "XXXX", "XXXX"))
	s.dictService = dictionary.New(s.storage, testutil.NopLogger())
	s.start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.clock = mocks.NewMockClock(s.start)
	s.random = mocks.NewMockRandom()
	s.controller = s.newController(s.storage)
	s.ctx = context.Background()

	_ = s.dictService.LoadWords([]string{"cat", "cats", "car", "cot", "dog", "dogs", "sea", "at", "tea"})
}

func (s *ControllerSuite) parse(rows ...string) *model.Board {
	b, err := model.ParseBoard(rows...)
	s.Require().NoError(err)
	return b
}

func (s *ControllerSuite) newController(scoreLog storage.ScoreLog) *Controller {
	scorer := scoring.New(scoring.DefaultHintLimit)
	return NewController(
		s.storage,
		s.boards,
		s.dictService,
		scorer,
		hints.New(s.dictService, scorer, hints.StrategyTrie, testutil.NopLogger()),
		stats.New(scoreLog, testutil.NopLogger()),
		s.clock,
		s.random,
		DefaultConfig(),
		testutil.NopLogger(),
	)
}

func (s *ControllerSuite) startRound() *model.Round {
	round, err := s.controller.StartRound(s.ctx)
	s.Require().NoError(err)
	return round
}

func (s *ControllerSuite) guess(id model.RoundID, word string) *model.GuessResult {
	result, err := s.controller.SubmitGuess(s.ctx, id, word)
	s.Require().NoError(err)
	return result
}

// StartRound tests

func (s *ControllerSuite) TestStartRound() {
	s.random.QueueString("ROUND1234567")

	round := s.startRound()

	s.Equal(model.RoundID("ROUND1234567"), round.ID)
	s.Equal([]string{"C A T S", "R X X E", "X X X A", "D O G T"}, round.Board.Rows())
	s.Empty(round.Found)
	s.Equal(0, round.Score)
	s.Equal(model.RoundStatePlaying, round.State)
	s.Equal(s.start, round.StartedAt)
	s.Equal(DefaultTimeLimit, round.TimeLimit)

	stored, err := s.storage.GetRound(s.ctx, "ROUND1234567")
	s.Require().NoError(err)
	s.Equal(round.ID, stored.ID)
}

func (s *ControllerSuite) TestStartRoundRequiresDictionary() {
	s.dictService = dictionary.New(memory.New(), testutil.NopLogger())
	s.controller = s.newController(s.storage)

	_, err := s.controller.StartRound(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
	s.Equal(0, s.boards.Calls)
}

func (s *ControllerSuite) TestStartRoundGenerationFailure() {
	s.boards.Err = model.ErrGenerationFailed

	_, err := s.controller.StartRound(s.ctx)
	s.ErrorIs(err, model.ErrGenerationFailed)
}

// SubmitGuess tests

func (s *ControllerSuite) TestGuessAccepted() {
	round := s.startRound()

	result := s.guess(round.ID, "cat")

	s.True(result.Accepted)
	s.Equal(100, result.Points)
	s.Equal(model.RejectNone, result.Reason)

	stored, _ := s.controller.GetRound(s.ctx, round.ID)
	s.Equal([]string{"cat"}, stored.Found)
	s.Equal(100, stored.Score)
	s.Equal(0, stored.InvalidGuesses)
}

func (s *ControllerSuite) TestGuessIsNormalised() {
	round := s.startRound()

	result := s.guess(round.ID, "  CaTs \n")

	s.True(result.Accepted)
	s.Equal("cats", result.Word)
	s.Equal(400, result.Points)
}

func (s *ControllerSuite) TestFoundWordsScoreTogether() {
	round := s.startRound()

	s.guess(round.ID, "cat")
	s.guess(round.ID, "car")

	stored, _ := s.controller.GetRound(s.ctx, round.ID)
	s.Equal(200, stored.Score)
}

func (s *ControllerSuite) TestGuessNotAdjacent() {
	round := s.startRound()

	// C and O are both on the board but never touch
	result := s.guess(round.ID, "cot")

	s.False(result.Accepted)
	s.Equal(model.RejectNotAdjacent, result.Reason)

	stored, _ := s.controller.GetRound(s.ctx, round.ID)
	s.Equal(1, stored.InvalidGuesses)
	s.Equal(0, stored.Score)
}

func (s *ControllerSuite) TestGuessAlreadyFound() {
	round := s.startRound()
	s.guess(round.ID, "cat")

	result := s.guess(round.ID, "cat")

	s.False(result.Accepted)
	s.Equal(model.RejectAlreadyFound, result.Reason)

	stored, _ := s.controller.GetRound(s.ctx, round.ID)
	s.Equal(0, stored.InvalidGuesses)
	s.Equal(100, stored.Score)
}

func (s *ControllerSuite) TestGuessUnknownWord() {
	round := s.startRound()

	result := s.guess(round.ID, "xxx")

	s.Equal(model.RejectUnknownWord, result.Reason)
	stored, _ := s.controller.GetRound(s.ctx, round.ID)
	s.Equal(1, stored.InvalidGuesses)
}

func (s *ControllerSuite) TestGuessTooShort() {
	round := s.startRound()

	// "at" is in the dictionary and traceable, but too short
	result := s.guess(round.ID, "at")

	s.Equal(model.RejectUnknownWord, result.Reason)
	stored, _ := s.controller.GetRound(s.ctx, round.ID)
	s.Equal(1, stored.InvalidGuesses)
}

func (s *ControllerSuite) TestGuessEmpty() {
	round := s.startRound()

	result := s.guess(round.ID, "   ")

	s.Equal(model.RejectUnknownWord, result.Reason)
}

func (s *ControllerSuite) TestGuessAfterDeadlineStillCounts() {
	round := s.startRound()
	s.clock.Advance(2 * time.Minute)

	result := s.guess(round.ID, "cat")

	s.True(result.Accepted)
}

func (s *ControllerSuite) TestGuessOnEndedRound() {
	round := s.startRound()
	_, err := s.controller.EndRound(s.ctx, round.ID)
	s.Require().NoError(err)

	_, err = s.controller.SubmitGuess(s.ctx, round.ID, "cat")
	s.ErrorIs(err, model.ErrRoundEnded)
}

func (s *ControllerSuite) TestGuessUnknownRound() {
	_, err := s.controller.SubmitGuess(s.ctx, "missing", "cat")
	s.ErrorIs(err, model.ErrRoundNotFound)
}

// NewBoard tests

func (s *ControllerSuite) TestNewBoardResetsRound() {
	round := s.startRound()
	s.guess(round.ID, "dog")
	s.guess(round.ID, "zzz")
	s.clock.Advance(30 * time.Second)

	updated, err := s.controller.NewBoard(s.ctx, round.ID)
	s.Require().NoError(err)

	s.Equal([]string{"D O G S", "X X X X", "X X X X", "X X X X"}, updated.Board.Rows())
	s.Empty(updated.Found)
	s.Equal(0, updated.Score)
	s.Equal(s.clock.Now(), updated.StartedAt)
	s.Equal(90, s.controller.TimeLeft(updated))
	s.Equal(1, updated.InvalidGuesses)

	// A word found on the old board can be claimed again
	result := s.guess(round.ID, "dog")
	s.True(result.Accepted)
}

// Timing tests

func (s *ControllerSuite) TestTimeLeft() {
	round := s.startRound()

	s.Equal(90, s.controller.TimeLeft(round))
	s.False(s.controller.IsExpired(round))

	s.clock.Advance(89*time.Second + 500*time.Millisecond)
	s.Equal(0, s.controller.TimeLeft(round))
	s.True(s.controller.IsExpired(round))
}

func (s *ControllerSuite) TestCustomTimeLimit() {
	s.controller.cfg.TimeLimit = 10 * time.Second
	round := s.startRound()

	s.clock.Advance(4 * time.Second)
	s.Equal(6, s.controller.TimeLeft(round))
}

// EndRound tests

func (s *ControllerSuite) TestEndRoundSummary() {
	round := s.startRound()
	s.guess(round.ID, "cats")
	s.guess(round.ID, "cat")
	s.guess(round.ID, "cot")
	s.clock.Advance(90 * time.Second)

	summary, err := s.controller.EndRound(s.ctx, round.ID)
	s.Require().NoError(err)

	s.Equal(round.ID, summary.RoundID)
	s.Equal([]string{"cat", "cats"}, summary.Found)
	s.Equal(500, summary.Score)
	s.Equal([]string{"cats", "cat"}, summary.TopFound)
	s.Equal(1, summary.InvalidGuesses)
	s.Equal([]model.Hint{
		{Word: "car", Points: 100},
		{Word: "dog", Points: 100},
		{Word: "sea", Points: 100},
		{Word: "tea", Points: 100},
	}, summary.Hints)

	s.Require().NotNil(summary.Stats)
	s.Equal(1, summary.Stats.GamesPlayed)
	s.Equal(500, summary.Stats.HighestScore)

	scores, _ := s.storage.ListScores(s.ctx)
	s.Equal([]model.ScoreRecord{{Score: 500, WordsFound: 2, Time: s.clock.Now().Unix()}}, scores)

	stored, _ := s.controller.GetRound(s.ctx, round.ID)
	s.True(stored.IsEnded())
}

func (s *ControllerSuite) TestEndRoundTwice() {
	round := s.startRound()
	_, err := s.controller.EndRound(s.ctx, round.ID)
	s.Require().NoError(err)

	_, err = s.controller.EndRound(s.ctx, round.ID)
	s.ErrorIs(err, model.ErrRoundEnded)
}

func (s *ControllerSuite) TestEndRoundStatsAccumulate() {
	first := s.startRound()
	s.guess(first.ID, "cats")
	_, _ = s.controller.EndRound(s.ctx, first.ID)

	s.random.QueueString("SECOND")
	second := s.startRound()
	summary, err := s.controller.EndRound(s.ctx, second.ID)
	s.Require().NoError(err)

	s.Equal(2, summary.Stats.GamesPlayed)
	s.Equal(400, summary.Stats.HighestScore)
	s.Equal(200, summary.Stats.AverageScore)
}

func (s *ControllerSuite) TestEndRoundSurvivesScoreLogFailure() {
	s.controller = s.newController(brokenLog{})
	round := s.startRound()
	s.guess(round.ID, "cat")

	summary, err := s.controller.EndRound(s.ctx, round.ID)
	s.Require().NoError(err)

	s.Nil(summary.Stats)
	s.Equal(100, summary.Score)
	s.NotEmpty(summary.Hints)
}

func (s *ControllerSuite) TestNewBoardOnEndedRound() {
	round := s.startRound()
	_, _ = s.controller.EndRound(s.ctx, round.ID)

	_, err := s.controller.NewBoard(s.ctx, round.ID)
	s.ErrorIs(err, model.ErrRoundEnded)
}

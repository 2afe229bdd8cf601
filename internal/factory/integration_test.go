package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/storage/csvlog"
	"github.com/mcoot/wordhunt/internal/storage/sqlite"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestDictionary())
}

func (s *IntegrationSuite) guess(id model.RoundID, word string) *model.GuessResult {
	result, err := s.app.GameController.SubmitGuess(s.ctx, id, word)
	s.Require().NoError(err)
	return result
}

// Test: a complete round from first guess to summary
func (s *IntegrationSuite) TestCompleteRound() {
	s.app.MockRandom.QueueString("ROUND1")

	round, err := s.app.GameController.StartRound(s.ctx)
	s.Require().NoError(err)
	s.Equal(TestBoard, round.Board.Rows())

	s.True(s.guess(round.ID, "cat").Accepted)
	s.True(s.guess(round.ID, "CATS").Accepted)
	s.True(s.guess(round.ID, "wing").Accepted)
	s.Equal(model.RejectNotAdjacent, s.guess(round.ID, "zero").Reason)
	s.Equal(model.RejectUnknownWord, s.guess(round.ID, "xyz").Reason)
	s.Equal(model.RejectAlreadyFound, s.guess(round.ID, "cat").Reason)

	s.app.MockClock.Advance(91 * time.Second)
	round, err = s.app.GameController.GetRound(s.ctx, round.ID)
	s.Require().NoError(err)
	s.True(s.app.GameController.IsExpired(round))

	summary, err := s.app.GameController.EndRound(s.ctx, round.ID)
	s.Require().NoError(err)

	s.Equal(900, summary.Score)
	s.Equal([]string{"cat", "cats", "wing"}, summary.Found)
	s.Equal([]string{"cats", "wing", "cat"}, summary.TopFound)
	s.Equal(2, summary.InvalidGuesses)

	s.Require().NotEmpty(summary.Hints)
	s.LessOrEqual(len(summary.Hints), 12)
	s.Equal(model.Hint{Word: "create", Points: 1400}, summary.Hints[0])
	s.Equal(model.Hint{Word: "winged", Points: 1400}, summary.Hints[1])
	for _, hint := range summary.Hints {
		s.NotContains(summary.Found, hint.Word)
	}

	s.Require().NotNil(summary.Stats)
	s.Equal(1, summary.Stats.GamesPlayed)
	s.Equal(900, summary.Stats.HighestScore)
}

// Test: "new" swaps the board mid-round and the old words no longer count
func (s *IntegrationSuite) TestNewBoardMidRound() {
	other, err := model.ParseBoard("DOGS", "XXXX", "XXXX", "XXXX")
	s.Require().NoError(err)
	s.app.MockBoards.Boards = append(s.app.MockBoards.Boards, other)

	round, err := s.app.GameController.StartRound(s.ctx)
	s.Require().NoError(err)
	s.True(s.guess(round.ID, "cat").Accepted)

	round, err = s.app.GameController.NewBoard(s.ctx, round.ID)
	s.Require().NoError(err)
	s.Equal(0, round.Score)

	s.Equal(model.RejectNotAdjacent, s.guess(round.ID, "cat").Reason)
	s.True(s.guess(round.ID, "dog").Accepted)
}

// Test: scores from several rounds accumulate in the log
func (s *IntegrationSuite) TestStatsAcrossRounds() {
	for i, words := range [][]string{{"cat"}, {"cats", "wing"}, {}} {
		s.app.MockRandom.QueueString(string(rune('A' + i)))
		round, err := s.app.GameController.StartRound(s.ctx)
		s.Require().NoError(err)
		for _, w := range words {
			s.guess(round.ID, w)
		}
		_, err = s.app.GameController.EndRound(s.ctx, round.ID)
		s.Require().NoError(err)
	}

	summary, err := s.app.StatsService.Summary(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, summary.GamesPlayed)
	s.Equal(800, summary.HighestScore)
	s.Equal(300, summary.AverageScore)
}

// Factory configuration tests

type FactorySuite struct {
	suite.Suite
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FactorySuite) TestDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)
	defer app.Close()

	s.Equal(app.Storage, app.ScoreLog)
}

func (s *FactorySuite) TestCSVScoreLog() {
	path := filepath.Join(s.T().TempDir(), "scores.csv")
	app, err := New(Config{ScoreLogType: ScoreLogCSV, ScoreLogPath: path})
	s.Require().NoError(err)
	defer app.Close()

	s.IsType(&csvlog.ScoreLog{}, app.ScoreLog)
}

func (s *FactorySuite) TestSQLiteScoreLog() {
	path := filepath.Join(s.T().TempDir(), "scores.db")
	app, err := New(Config{ScoreLogType: ScoreLogSQLite, ScoreLogPath: path})
	s.Require().NoError(err)
	defer app.Close()

	s.IsType(&sqlite.ScoreLog{}, app.ScoreLog)
	s.Require().NoError(app.ScoreLog.AppendScore(s.ctx, model.ScoreRecord{Score: 100}))
}

func (s *FactorySuite) TestInvalidConfig() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err)

	_, err = New(Config{ScoreLogType: ScoreLogCSV})
	s.Error(err)

	_, err = New(Config{ScoreLogType: "paper"})
	s.Error(err)

	_, err = New(Config{HintStrategy: "guess"})
	s.Error(err)
}

func (s *FactorySuite) TestLoadDictionaryMissingFile() {
	path := filepath.Join(s.T().TempDir(), "words_alpha.txt")
	app, err := New(Config{DictionaryPath: path})
	s.Require().NoError(err)

	err = app.LoadDictionary(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotFound)
}

func (s *FactorySuite) TestLoadDictionaryFromStorage() {
	app, err := New(Config{})
	s.Require().NoError(err)

	s.ErrorIs(app.LoadDictionary(s.ctx), model.ErrDictionaryNotLoaded)

	s.Require().NoError(app.Storage.SaveDictionaryWords(s.ctx, []string{"cat"}))
	s.Require().NoError(app.LoadDictionary(s.ctx))
	s.True(app.DictionaryService.IsValidWord("cat"))
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordhunt/internal/factory"
	"github.com/mcoot/wordhunt/internal/model"
)

// scriptedReader replays lines, then reports end of input
type scriptedReader struct {
	lines  []string
	reads  int
	err    error
	before func(read int)
	closed bool
}

func (r *scriptedReader) Readline() (string, error) {
	r.reads++
	if r.before != nil {
		r.before(r.reads)
	}
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

type SessionSuite struct {
	suite.Suite
	app *factory.TestApp
	out *bytes.Buffer
	ctx context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.Require().NoError(s.app.LoadTestDictionary())
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *SessionSuite) run(reader *scriptedReader) (*model.RoundSummary, error) {
	session := NewSession(s.app.GameController, s.app.MockClock, reader, s.out)
	return session.Run(s.ctx)
}

func (s *SessionSuite) TestGuessesThenEndGame() {
	reader := &scriptedReader{lines: []string{"cat", "zzz", "CAT ", "end game"}}

	summary, err := s.run(reader)
	s.Require().NoError(err)

	s.Equal(100, summary.Score)
	s.Equal([]string{"cat"}, summary.Found)
	s.Equal(1, summary.InvalidGuesses)
	s.Equal(4, reader.reads)
	s.True(reader.closed)

	output := s.out.String()
	s.Contains(output, "Your Word Hunt board:\nC A T S\nR E A D\nO N E T\nW I N G\n")
	s.Contains(output, "⏱ Time left: 90 seconds")
	s.Contains(output, "✅ cat (+100 points)")
	s.Contains(output, "❌ Not a valid word")
	s.Contains(output, "❌ Already found")
	s.Contains(output, "Score: 100\nWords found: 1\ncat\n")
	s.Contains(output, "⏰ Time's up!")
	s.Contains(output, "You found 1 words for 100 points:\ncat\n")
	s.Contains(output, "Invalid guesses: 1")
	s.Contains(output, "💡Best words you could have found:\n  create (1400 points)\n  winged (1400 points)\n")
}

func (s *SessionSuite) TestPausesAfterEachVerdict() {
	reader := &scriptedReader{lines: []string{"cat", "dog", "end game"}}

	_, err := s.run(reader)
	s.Require().NoError(err)

	s.Equal(2*time.Second, s.app.MockClock.Slept)
	s.Contains(s.out.String(), "⏱ Time left: 89 seconds")
	s.Contains(s.out.String(), "❌ Word not adjacent on board")
}

func (s *SessionSuite) TestEndOfInputEndsRound() {
	summary, err := s.run(&scriptedReader{})
	s.Require().NoError(err)

	s.Equal(0, summary.Score)
	s.Contains(s.out.String(), "No words 😢")
	s.Contains(s.out.String(), "📊 Player Stats:\nGames Played: 1\nHighest Score: 0\nAverage Score: 0\n")
	s.NotContains(s.out.String(), "🏆")
}

func (s *SessionSuite) TestInterruptEndsRound() {
	summary, err := s.run(&scriptedReader{lines: []string{"cats"}, err: readline.ErrInterrupt})
	s.Require().NoError(err)

	s.Equal(400, summary.Score)
	s.Contains(s.out.String(), "🏆 Top words you found: cats")
}

func (s *SessionSuite) TestReaderErrorAborts() {
	boom := errors.New("terminal gone")
	reader := &scriptedReader{err: boom}

	_, err := s.run(reader)
	s.ErrorIs(err, boom)
	s.True(reader.closed)
}

// Test: the countdown is only checked before a prompt, so the guess that
// straddles the deadline still scores and the round ends straight after
func (s *SessionSuite) TestSoftDeadline() {
	reader := &scriptedReader{
		lines: []string{"cat", "cats"},
		before: func(read int) {
			if read == 1 {
				s.app.MockClock.Advance(95 * time.Second)
			}
		},
	}

	summary, err := s.run(reader)
	s.Require().NoError(err)

	s.Equal(1, reader.reads)
	s.Equal([]string{"cat"}, summary.Found)
	s.Contains(s.out.String(), "✅ cat (+100 points)")
}

func (s *SessionSuite) TestNewBoard() {
	other, err := model.ParseBoard("DOGS", "XXXX", "XXXX", "XXXX")
	s.Require().NoError(err)
	s.app.MockBoards.Boards = append(s.app.MockBoards.Boards, other)

	reader := &scriptedReader{lines: []string{"cat", "new", "dog", "end game"}}

	summary, err := s.run(reader)
	s.Require().NoError(err)

	s.Equal([]string{"D O G S", "X X X X", "X X X X", "X X X X"}, summary.Board.Rows())
	s.Equal([]string{"dog"}, summary.Found)
	s.Equal(100, summary.Score)
	// "new" redraws straight away
	s.Equal(2*time.Second, s.app.MockClock.Slept)
}

func (s *SessionSuite) TestDictionaryNotLoaded() {
	app := factory.NewTestApp()
	session := NewSession(app.GameController, app.MockClock, &scriptedReader{}, s.out)

	_, err := session.Run(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

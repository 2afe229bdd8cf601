package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordhunt/internal/dependencies/clock"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/game"
)

const (
	clearScreen = "\033[H\033[2J"

	commandNewBoard = "new"
	commandEndGame  = "end game"

	// messagePause keeps a guess verdict on screen before the redraw
	messagePause = time.Second
)

// lineReader is the part of a readline instance the round loop needs
type lineReader interface {
	Readline() (string, error)
	Close() error
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a timed round (the default command)",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := loadDictionary(cmd.Context(), app); err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "> ",
		FuncFilterInputRune: filterInput,
		Stdout:              cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	session := NewSession(app.GameController, app.Clock, rl, cmd.OutOrStdout())
	_, err = session.Run(cmd.Context())
	return err
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Session drives one interactive round: draw the board, read a guess, show
// the verdict, repeat until time runs out or the player ends the game
type Session struct {
	controller game.ControllerInterface
	clock      clock.Clock
	reader     lineReader
	out        io.Writer
	pause      time.Duration
}

// NewSession creates a Session reading guesses from reader
func NewSession(controller game.ControllerInterface, clk clock.Clock, reader lineReader, out io.Writer) *Session {
	return &Session{
		controller: controller,
		clock:      clk,
		reader:     reader,
		out:        out,
		pause:      messagePause,
	}
}

// Run plays a round to the end and prints the summary. The countdown is
// checked before each prompt, so a guess typed after the deadline still
// counts.
func (s *Session) Run(ctx context.Context) (*model.RoundSummary, error) {
	defer s.reader.Close()

	round, err := s.controller.StartRound(ctx)
	if err != nil {
		return nil, err
	}

loop:
	for {
		fmt.Fprint(s.out, clearScreen)
		if s.controller.IsExpired(round) {
			break
		}
		s.render(round)

		line, err := s.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch guess := strings.ToLower(strings.TrimSpace(line)); guess {
		case commandNewBoard:
			if round, err = s.controller.NewBoard(ctx, round.ID); err != nil {
				return nil, err
			}
			continue
		case commandEndGame:
			break loop
		default:
			result, err := s.controller.SubmitGuess(ctx, round.ID, guess)
			if err != nil {
				return nil, err
			}
			fmt.Fprintln(s.out, verdict(result))
		}
		s.clock.Sleep(s.pause)

		if round, err = s.controller.GetRound(ctx, round.ID); err != nil {
			return nil, err
		}
	}

	fmt.Fprint(s.out, clearScreen)
	summary, err := s.controller.EndRound(ctx, round.ID)
	if err != nil {
		return nil, err
	}
	NewOutput("text", s.out).Print(summary)
	return summary, nil
}

func (s *Session) render(round *model.Round) {
	fmt.Fprintln(s.out, "Your Word Hunt board:")
	for _, row := range round.Board.Rows() {
		fmt.Fprintln(s.out, row)
	}
	fmt.Fprintf(s.out, "\n⏱ Time left: %d seconds\n", s.controller.TimeLeft(round))
	fmt.Fprintf(s.out, "Score: %d\n", round.Score)
	fmt.Fprintf(s.out, "Words found: %d\n", len(round.Found))
	if len(round.Found) > 0 {
		fmt.Fprintln(s.out, strings.Join(slices.Sorted(slices.Values(round.Found)), ", "))
	}
	fmt.Fprintf(s.out, "\nType a word (or '%s' for a new board):\n", commandNewBoard)
}

func verdict(result *model.GuessResult) string {
	switch {
	case result.Accepted:
		return fmt.Sprintf("✅ %s (+%d points)", result.Word, result.Points)
	case result.Reason == model.RejectNotAdjacent:
		return "❌ Word not adjacent on board"
	case result.Reason == model.RejectAlreadyFound:
		return "❌ Already found"
	default:
		return "❌ Not a valid word"
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/scoring"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Deal a random board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			b, err := app.BoardService.Generate(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(BoardView{Rows: b.Rows()})
			return nil
		},
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [row...]",
		Short: "List every word on a board, best first",
		Long: `solve lists every dictionary word of 3 to 9 letters that can be traced on
the board. Give the rows as arguments (e.g. "CATS READ ONET WING") or leave
them out to solve a freshly dealt board.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := loadDictionary(cmd.Context(), app); err != nil {
				return err
			}

			b, err := boardFromArgs(cmd, args, app.BoardService)
			if err != nil {
				return err
			}

			words, err := app.HintsService.Find(cmd.Context(), b)
			if err != nil {
				return err
			}
			ranked := scoring.RankHints(words, nil, 0)

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(SolveResult{
				Board: b.Rows(),
				Words: ranked,
				Total: lo.SumBy(ranked, func(h model.Hint) int { return h.Points }),
			})
			return nil
		},
	}
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace <word> <row>...",
		Short: "Show the path a word takes across a board",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.ToLower(args[0])
			b, err := model.ParseBoard(args[1:]...)
			if err != nil {
				return err
			}

			path, ok := board.TracePath(word, b)

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(TraceResult{
				Word:  word,
				Board: b.Rows(),
				Found: ok,
				Path:  path,
			})
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <word>...",
		Short: "Show the points a word is worth",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words := lo.Map(args, func(w string, _ int) model.Hint {
				w = strings.ToLower(w)
				return model.Hint{Word: w, Points: scoring.CalculateScore(w)}
			})

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(ScoreResult{
				Words: words,
				Total: lo.SumBy(words, func(h model.Hint) int { return h.Points }),
			})
			return nil
		},
	}
}

// boardFromArgs parses rows given on the command line, or deals a new board
// when there are none
func boardFromArgs(cmd *cobra.Command, args []string, boards board.ServiceInterface) (*model.Board, error) {
	if len(args) == 0 {
		return boards.Generate(cmd.Context())
	}
	b, err := model.ParseBoard(args...)
	if err != nil {
		return nil, fmt.Errorf("board rows: %w", err)
	}
	return b, nil
}

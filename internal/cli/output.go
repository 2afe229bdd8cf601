package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/wordhunt/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardView:
		o.printBoard(v.Rows)
	case SolveResult:
		o.printSolveResult(v)
	case TraceResult:
		o.printTraceResult(v)
	case ScoreResult:
		o.printScoreResult(v)
	case StatsResult:
		o.printStatsResult(v)
	case *model.RoundSummary:
		o.printSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BoardView is a board as printable rows
type BoardView struct {
	Rows []string `json:"rows"`
}

// SolveResult lists every word that can be traced on a board
type SolveResult struct {
	Board []string     `json:"board"`
	Words []model.Hint `json:"words"`
	Total int          `json:"total_points"`
}

// TraceResult is the path a word takes across a board
type TraceResult struct {
	Word  string           `json:"word"`
	Board []string         `json:"board"`
	Found bool             `json:"found"`
	Path  []model.Position `json:"path,omitempty"`
}

// ScoreResult is the points for each word
type ScoreResult struct {
	Words []model.Hint `json:"words"`
	Total int          `json:"total"`
}

// StatsResult wraps the score log summary, nil when no round was logged
type StatsResult struct {
	Stats *model.Stats `json:"stats"`
}

func (o *Output) printBoard(rows []string) {
	for _, row := range rows {
		fmt.Fprintln(o.w, row)
	}
}

func (o *Output) printHints(hints []model.Hint) {
	for _, h := range hints {
		fmt.Fprintf(o.w, "  %s (%d points)\n", h.Word, h.Points)
	}
}

func (o *Output) printSolveResult(r SolveResult) {
	o.printBoard(r.Board)
	fmt.Fprintf(o.w, "\n%d words for %d points:\n", len(r.Words), r.Total)
	o.printHints(r.Words)
}

func (o *Output) printTraceResult(r TraceResult) {
	if !r.Found {
		fmt.Fprintf(o.w, "%s cannot be traced on this board\n", r.Word)
		return
	}

	// Number each cell of the path in a copy of the grid
	size := len(r.Board)
	marks := make([][]string, size)
	for i := range marks {
		marks[i] = make([]string, size)
		for j := range marks[i] {
			marks[i][j] = " ."
		}
	}
	for step, pos := range r.Path {
		marks[pos.Row][pos.Col] = fmt.Sprintf("%2d", step+1)
	}

	fmt.Fprintf(o.w, "%s:\n", r.Word)
	for i, row := range r.Board {
		fmt.Fprintf(o.w, "%s   %s\n", row, strings.Join(marks[i], " "))
	}
}

func (o *Output) printScoreResult(r ScoreResult) {
	for _, w := range r.Words {
		fmt.Fprintf(o.w, "%s: %d points\n", w.Word, w.Points)
	}
	if len(r.Words) > 1 {
		fmt.Fprintf(o.w, "Total: %d points\n", r.Total)
	}
}

func (o *Output) printStatsResult(r StatsResult) {
	if r.Stats == nil {
		fmt.Fprintln(o.w, "No games played yet")
		return
	}
	o.printStats(r.Stats)
}

func (o *Output) printStats(s *model.Stats) {
	fmt.Fprintln(o.w, "📊 Player Stats:")
	fmt.Fprintf(o.w, "Games Played: %d\n", s.GamesPlayed)
	fmt.Fprintf(o.w, "Highest Score: %d\n", s.HighestScore)
	fmt.Fprintf(o.w, "Average Score: %d\n", s.AverageScore)
	fmt.Fprintf(o.w, "Average Words Found: %.1f\n", s.MeanWordsFound)
}

func (o *Output) printSummary(s *model.RoundSummary) {
	fmt.Fprintln(o.w, "⏰ Time's up!")
	o.printBoard(s.Board.Rows())

	fmt.Fprintf(o.w, "\nYou found %d words for %d points:\n", len(s.Found), s.Score)
	if len(s.Found) > 0 {
		fmt.Fprintln(o.w, strings.Join(s.Found, ", "))
	} else {
		fmt.Fprintln(o.w, "No words 😢")
	}

	if s.Stats != nil {
		fmt.Fprintln(o.w)
		o.printStats(s.Stats)
	}

	if len(s.TopFound) > 0 {
		fmt.Fprintf(o.w, "\n🏆 Top words you found: %s\n", strings.Join(s.TopFound, ", "))
	}
	fmt.Fprintf(o.w, "Invalid guesses: %d\n", s.InvalidGuesses)

	if len(s.Hints) > 0 {
		fmt.Fprintln(o.w, "\n💡Best words you could have found:")
		o.printHints(s.Hints)
	} else {
		fmt.Fprintln(o.w, "\n(No additional possible words found!)")
	}
}

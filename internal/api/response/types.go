package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordhunt/internal/model"
)

// Round represents a round in API responses
type Round struct {
	ID             string    `json:"id"`
	State          string    `json:"state"`
	Board          []string  `json:"board"`
	Found          []string  `json:"found"`
	Score          int       `json:"score"`
	InvalidGuesses int       `json:"invalid_guesses"`
	StartedAt      time.Time `json:"started_at"`
	TimeLeft       int       `json:"time_left"`
}

// RoundFromModel converts a model.Round, with the seconds left at the time
// of the request
func RoundFromModel(r *model.Round, timeLeft int) Round {
	found := make([]string, len(r.Found))
	copy(found, r.Found)
	return Round{
		ID:             string(r.ID),
		State:          string(r.State),
		Board:          r.Board.Rows(),
		Found:          found,
		Score:          r.Score,
		InvalidGuesses: r.InvalidGuesses,
		StartedAt:      r.StartedAt,
		TimeLeft:       max(timeLeft, 0),
	}
}

// GuessResult is the response for a submitted word
type GuessResult struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
	Points   int    `json:"points"`
	Reason   string `json:"reason,omitempty"`
	Score    int    `json:"score"`
	TimeLeft int    `json:"time_left"`
}

// GuessResultFromModel combines a guess outcome with the round it changed
func GuessResultFromModel(g *model.GuessResult, r *model.Round, timeLeft int) GuessResult {
	return GuessResult{
		Word:     g.Word,
		Accepted: g.Accepted,
		Points:   g.Points,
		Reason:   string(g.Reason),
		Score:    r.Score,
		TimeLeft: max(timeLeft, 0),
	}
}

// Hint is a word with its points
type Hint struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// HintsFromModel converts ranked hints
func HintsFromModel(hints []model.Hint) []Hint {
	return lo.Map(hints, func(h model.Hint, _ int) Hint {
		return Hint{Word: h.Word, Points: h.Points}
	})
}

// Stats represents the score log summary
type Stats struct {
	GamesPlayed    int     `json:"games_played"`
	HighestScore   int     `json:"highest_score"`
	AverageScore   int     `json:"average_score"`
	MeanWordsFound float64 `json:"mean_words_found"`
	ScoreStdDev    float64 `json:"score_std_dev"`
}

// StatsFromModel converts model.Stats, keeping nil as nil
func StatsFromModel(s *model.Stats) *Stats {
	if s == nil {
		return nil
	}
	return &Stats{
		GamesPlayed:    s.GamesPlayed,
		HighestScore:   s.HighestScore,
		AverageScore:   s.AverageScore,
		MeanWordsFound: s.MeanWordsFound,
		ScoreStdDev:    s.ScoreStdDev,
	}
}

// StatsResponse wraps Stats; stats is null until a round has been logged
type StatsResponse struct {
	Stats *Stats `json:"stats"`
}

// Summary is the response for an ended round
type Summary struct {
	RoundID        string   `json:"round_id"`
	Board          []string `json:"board"`
	Found          []string `json:"found"`
	Score          int      `json:"score"`
	TopFound       []string `json:"top_found"`
	InvalidGuesses int      `json:"invalid_guesses"`
	Hints          []Hint   `json:"hints"`
	Stats          *Stats   `json:"stats"`
}

// SummaryFromModel converts a model.RoundSummary
func SummaryFromModel(s *model.RoundSummary) Summary {
	return Summary{
		RoundID:        string(s.RoundID),
		Board:          s.Board.Rows(),
		Found:          s.Found,
		Score:          s.Score,
		TopFound:       s.TopFound,
		InvalidGuesses: s.InvalidGuesses,
		Hints:          HintsFromModel(s.Hints),
		Stats:          StatsFromModel(s.Stats),
	}
}

// Solve lists every word on a board, best first
type Solve struct {
	Board []string `json:"board"`
	Words []Hint   `json:"words"`
}

// Health is the response for the health check
type Health struct {
	Status           string `json:"status"`
	DictionaryLoaded bool   `json:"dictionary_loaded"`
}

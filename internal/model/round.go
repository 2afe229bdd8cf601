package model

import (
	"slices"
	"time"
)

// Word length window used for play and for hints
const (
	MinWordLength     = 3
	MaxHintWordLength = 9
)

// RoundID uniquely identifies a round
type RoundID string

// RoundState represents the current phase of a round
type RoundState string

const (
	RoundStatePlaying RoundState = "playing"
	RoundStateEnded   RoundState = "ended"
)

// Round is one timed play session against a single board.
// "New board" replaces the board and clears found words within the same round.
type Round struct {
	ID             RoundID       `json:"id"`
	Board          *Board        `json:"board"`
	Found          []string      `json:"found"` // in the order they were claimed
	Score          int           `json:"score"`
	InvalidGuesses int           `json:"invalid_guesses"`
	State          RoundState    `json:"state"`
	StartedAt      time.Time     `json:"started_at"`
	TimeLimit      time.Duration `json:"time_limit"`
}

// HasFound returns true if the word has already been claimed this round
func (r *Round) HasFound(word string) bool {
	return slices.Contains(r.Found, word)
}

// AddFound records a claimed word and its points
func (r *Round) AddFound(word string, points int) {
	r.Found = append(r.Found, word)
	r.Score += points
}

// ResetBoard swaps in a fresh board, clearing found words, score and timer.
// Invalid guesses carry over.
func (r *Round) ResetBoard(board *Board, now time.Time) {
	r.Board = board
	r.Found = []string{}
	r.Score = 0
	r.StartedAt = now
}

// TimeLeft returns the whole seconds remaining at the given time, truncated
// toward zero. Zero or less means the round is over.
func (r *Round) TimeLeft(now time.Time) int {
	remaining := r.TimeLimit - now.Sub(r.StartedAt)
	return int(remaining / time.Second)
}

// IsExpired returns true once no whole seconds remain
func (r *Round) IsExpired(now time.Time) bool {
	return r.TimeLeft(now) <= 0
}

// IsEnded returns true if the round has been closed out
func (r *Round) IsEnded() bool {
	return r.State == RoundStateEnded
}

// RejectReason explains why a guess was not accepted
type RejectReason string

const (
	RejectNone         RejectReason = ""
	RejectUnknownWord  RejectReason = "too_short_or_unknown"
	RejectNotAdjacent  RejectReason = "not_adjacent"
	RejectAlreadyFound RejectReason = "already_found"
)

// GuessResult is the outcome of submitting a word
type GuessResult struct {
	Word     string       `json:"word"`
	Accepted bool         `json:"accepted"`
	Points   int          `json:"points"`
	Reason   RejectReason `json:"reason,omitempty"`
}

// Hint is a traceable word the player did not find
type Hint struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// RoundSummary is everything reported when a round ends
type RoundSummary struct {
	RoundID        RoundID  `json:"round_id"`
	Board          *Board   `json:"board"`
	Found          []string `json:"found"` // alphabetical
	Score          int      `json:"score"`
	TopFound       []string `json:"top_found"`
	InvalidGuesses int      `json:"invalid_guesses"`
	Hints          []Hint   `json:"hints"`
	Stats          *Stats   `json:"stats,omitempty"` // nil when the score log is unavailable
}

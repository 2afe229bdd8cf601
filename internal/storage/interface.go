package storage

import (
	"context"

	"github.com/mcoot/wordhunt/internal/model"
)

// ScoreLog is the append-only record of finished rounds
type ScoreLog interface {
	AppendScore(ctx context.Context, record model.ScoreRecord) error
	// ListScores returns every record in the order it was appended.
	// A log that has never been written is empty, not an error.
	ListScores(ctx context.Context) ([]model.ScoreRecord, error)
}

// Storage defines the interface for data persistence
type Storage interface {
	// Round operations
	SaveRound(ctx context.Context, round *model.Round) error
	GetRound(ctx context.Context, id model.RoundID) (*model.Round, error)
	DeleteRound(ctx context.Context, id model.RoundID) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error

	// Score operations
	ScoreLog
}

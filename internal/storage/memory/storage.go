package memory

import (
	"context"
	"sync"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	rounds          map[model.RoundID]*model.Round
	dictionaryWords []string
	scores          []model.ScoreRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rounds: make(map[model.RoundID]*model.Round),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[round.ID] = round
	return nil
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	round, ok := s.rounds[id]
	if !ok {
		return nil, model.ErrRoundNotFound
	}
	return round, nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rounds, id)
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, record model.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, record)
	return nil
}

func (s *Storage) ListScores(ctx context.Context) ([]model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.ScoreRecord, len(s.scores))
	copy(result, s.scores)
	return result, nil
}

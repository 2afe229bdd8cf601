package mocks

import (
	"context"

	"github.com/mcoot/wordhunt/internal/model"
)

// MockBoardGenerator hands out queued boards in order
type MockBoardGenerator struct {
	Boards []*model.Board
	index  int

	// Err, when set, is returned instead of a board
	Err error

	Calls int
}

// NewMockBoardGenerator creates a generator that returns the given boards
func NewMockBoardGenerator(boards ...*model.Board) *MockBoardGenerator {
	return &MockBoardGenerator{Boards: boards}
}

// Generate returns a copy of the next queued board, repeating the last one
// once the queue runs out
func (g *MockBoardGenerator) Generate(ctx context.Context) (*model.Board, error) {
	g.Calls++
	if g.Err != nil {
		return nil, g.Err
	}
	if len(g.Boards) == 0 {
		return model.NewBoard(model.BoardSize), nil
	}
	b := g.Boards[min(g.index, len(g.Boards)-1)]
	g.index++
	return b.Clone(), nil
}

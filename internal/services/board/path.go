package board

import (
	"unicode"

	"github.com/mcoot/wordhunt/internal/model"
)

// IsAdjacentWord reports whether word can be traced on the board through
// 8-directionally adjacent cells without using any cell twice.
// Matching is case-insensitive.
func IsAdjacentWord(word string, b *model.Board) bool {
	_, ok := TracePath(word, b)
	return ok
}

// TracePath returns the first path found that spells word on the board
func TracePath(word string, b *model.Board) ([]model.Position, bool) {
	letters := []rune(word)
	if len(letters) == 0 || b == nil {
		return nil, false
	}

	t := &tracer{
		board:   b,
		word:    letters,
		visited: make(map[model.Position]bool, len(letters)),
	}
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			start := model.Position{Row: row, Col: col}
			if !sameLetter(b.Get(start), letters[0]) {
				continue
			}
			t.push(start)
			if t.walk(start, 1) {
				path := make([]model.Position, len(t.path))
				copy(path, t.path)
				return path, true
			}
			t.pop(start)
		}
	}
	return nil, false
}

// tracer holds the state of one depth-first search. A cell is in visited
// exactly while it is on the current path.
type tracer struct {
	board   *model.Board
	word    []rune
	visited map[model.Position]bool
	path    []model.Position
}

func (t *tracer) walk(pos model.Position, index int) bool {
	if index == len(t.word) {
		return true
	}
	for _, next := range t.board.Neighbors(pos) {
		if t.visited[next] || !sameLetter(t.board.Get(next), t.word[index]) {
			continue
		}
		t.push(next)
		if t.walk(next, index+1) {
			return true
		}
		t.pop(next)
	}
	return false
}

func (t *tracer) push(pos model.Position) {
	t.visited[pos] = true
	t.path = append(t.path, pos)
}

func (t *tracer) pop(pos model.Position) {
	delete(t.visited, pos)
	t.path = t.path[:len(t.path)-1]
}

func sameLetter(a, b rune) bool {
	return a != 0 && unicode.ToUpper(a) == unicode.ToUpper(b)
}

package model

import (
	"fmt"
	"strings"
	"unicode"
)

// BoardSize is the grid dimension of every generated board
const BoardSize = 4

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// neighborOffsets are the 8 grid directions, diagonals included
var neighborOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a square grid of uppercase letters
type Board struct {
	Size  int      `json:"size"`
	Cells [][]rune `json:"cells"` // Row-major: Cells[row][col], 0 means empty
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// ParseBoard builds a board from rows of letters. Spaces are ignored, so both
// "CAT" and "C A T" describe the same row. The rows must form a square.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}

	board := NewBoard(len(rows))
	for row, text := range rows {
		letters := []rune(strings.ReplaceAll(text, " ", ""))
		if len(letters) != board.Size {
			return nil, fmt.Errorf("%w: row %d has %d letters, want %d", ErrInvalidBoard, row, len(letters), board.Size)
		}
		for col, letter := range letters {
			upper := unicode.ToUpper(letter)
			if upper < 'A' || upper > 'Z' {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidLetter, letter, row, col)
			}
			board.Cells[row][col] = upper
		}
	}
	return board, nil
}

// Get returns the letter at the given position, or 0 if empty or out of bounds
func (b *Board) Get(pos Position) rune {
	if !b.IsValidPosition(pos) {
		return 0
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (b *Board) Set(pos Position, letter rune) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = letter
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] == 0 {
				return false
			}
		}
	}
	return true
}

// Neighbors returns the in-bounds cells adjacent to pos, including diagonals
func (b *Board) Neighbors(pos Position) []Position {
	result := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		next := Position{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
		if b.IsValidPosition(next) {
			result = append(result, next)
		}
	}
	return result
}

// LetterCounts returns how many times each letter appears on the board
func (b *Board) LetterCounts() map[rune]int {
	counts := make(map[rune]int)
	for _, row := range b.Cells {
		for _, letter := range row {
			if letter != 0 {
				counts[letter]++
			}
		}
	}
	return counts
}

// Rows returns each row as space-separated letters, e.g. "C A T"
func (b *Board) Rows() []string {
	rows := make([]string, b.Size)
	for i, cells := range b.Cells {
		letters := make([]string, len(cells))
		for j, letter := range cells {
			if letter == 0 {
				letters[j] = "."
			} else {
				letters[j] = string(letter)
			}
		}
		rows[i] = strings.Join(letters, " ")
	}
	return rows
}

// String renders the board one row per line
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Size)
	for i := range b.Cells {
		copy(clone.Cells[i], b.Cells[i])
	}
	return clone
}

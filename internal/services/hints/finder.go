package hints

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
)

// inWindow reports whether a word's length is one the finder considers
func inWindow(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= model.MinWordLength && n <= model.MaxHintWordLength
}

// FindPossibleWords scans every dictionary word and keeps those of length 3
// to 9 that can be traced on the board. The result is sorted and has no
// duplicates.
func FindPossibleWords(b *model.Board, words []string) []string {
	found := lo.Filter(words, func(word string, _ int) bool {
		return inWindow(word) && board.IsAdjacentWord(word, b)
	})
	found = lo.Uniq(lo.Map(found, func(word string, _ int) string {
		return strings.ToLower(word)
	}))
	sort.Strings(found)
	return found
}

// FindPossibleWordsTrie walks the board from every cell, following trie
// edges, and returns the same set as FindPossibleWords for a dictionary of
// lowercase words.
func FindPossibleWordsTrie(b *model.Board, trie *dictionary.Trie) []string {
	if b == nil || trie == nil {
		return []string{}
	}

	w := &walker{
		board:   b,
		visited: make(map[model.Position]bool),
		found:   make(map[string]struct{}),
	}
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			w.walk(model.Position{Row: row, Col: col}, trie.Root(), 0)
		}
	}

	result := lo.Keys(w.found)
	sort.Strings(result)
	return result
}

type walker struct {
	board   *model.Board
	visited map[model.Position]bool
	found   map[string]struct{}
}

// walk extends the current path into pos. depth is the number of cells
// already on the path.
func (w *walker) walk(pos model.Position, node *dictionary.TrieNode, depth int) {
	letter := w.board.Get(pos)
	if letter == 0 {
		return
	}
	next := node.Child(unicode.ToLower(letter))
	if next == nil {
		return
	}
	depth++

	if next.IsWord() && depth >= model.MinWordLength {
		w.found[next.Word()] = struct{}{}
	}
	if depth == model.MaxHintWordLength {
		return
	}

	w.visited[pos] = true
	for _, neighbor := range w.board.Neighbors(pos) {
		if !w.visited[neighbor] {
			w.walk(neighbor, next, depth)
		}
	}
	delete(w.visited, pos)
}

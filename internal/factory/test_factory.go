package factory

import (
	"time"

	"github.com/mcoot/wordhunt/internal/dependencies/mocks"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/hints"
	"github.com/mcoot/wordhunt/internal/storage/memory"
	"github.com/mcoot/wordhunt/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockBoards *mocks.MockBoardGenerator
}

// TestBoard is the board every TestApp round is dealt unless more are queued
var TestBoard = []string{
	"C A T S",
	"R E A D",
	"O N E T",
	"W I N G",
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	b, err := model.ParseBoard(TestBoard...)
	if err != nil {
		panic(err)
	}
	mockBoards := mocks.NewMockBoardGenerator(b)

	app := newWithDependencies(store, store, mockBoards, mockClock, mockRandom, settings{
		hintStrategy: hints.StrategyTrie,
	}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockBoards: mockBoards,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"at", "be", "do", "go", "in", "it", "no", "on", "to", "we",
		// 3-letter words
		"ace", "act", "and", "ant", "are", "art", "ate", "can", "car", "cat",
		"den", "dog", "ear", "eat", "end", "era", "net", "new", "now", "one",
		"own", "ran", "rat", "read", "red", "sat", "sea", "set", "tan", "tar",
		"tea", "ten", "tin", "toe", "ton", "two", "war", "wet", "win", "won",
		// 4-letter words
		"cart", "cast", "cats", "dare", "dear", "east", "neat", "nine", "note",
		"rate", "read", "seat", "star", "tear", "tend", "wing", "wine", "zero",
		// 5-letter words
		"cater", "crate", "react", "trace", "tread", "wings", "stare",
		// 6+ letter words
		"create", "reading", "winged",
	}
	return t.DictionaryService.LoadWords(words)
}

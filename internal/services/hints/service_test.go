package hints

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordhunt/internal/dependencies/random"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/board"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/scoring"
	"github.com/mcoot/wordhunt/internal/storage/memory"
	"github.com/mcoot/wordhunt/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	dictionary *dictionary.Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.dictionary = dictionary.New(memory.New(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) newService(strategy Strategy) *Service {
	return New(s.dictionary, scoring.New(scoring.DefaultHintLimit), strategy, testutil.NopLogger())
}

func (s *ServiceSuite) catBoard() *model.Board {
	b, err := model.ParseBoard(
		"C A T",
		"R X X",
		"X X X",
	)
	s.Require().NoError(err)
	return b
}

// Finder tests

func (s *ServiceSuite) TestFindPossibleWordsScenario() {
	words := []string{"cat", "car", "cot", "dog"}

	s.Equal([]string{"car", "cat"}, FindPossibleWords(s.catBoard(), words))
}

func (s *ServiceSuite) TestFindPossibleWordsLengthWindow() {
	b, err := model.ParseBoard(
		"ABCD",
		"HGFE",
		"IJKL",
		"PONM",
	)
	s.Require().NoError(err)

	// Every prefix of the snake is traceable, but only lengths 3 to 9 count
	words := []string{"ab", "abc", "abcdefghi", "abcdefghij", "a"}

	s.Equal([]string{"abc", "abcdefghi"}, FindPossibleWords(b, words))
	_ = s.dictionary.LoadWords(words)
	s.Equal([]string{"abc", "abcdefghi"}, FindPossibleWordsTrie(b, s.dictionary.Trie()))
}

func (s *ServiceSuite) TestFindPossibleWordsIsSubsetOfDictionary() {
	words := []string{"cat", "car", "tar", "art", "rat", "act", "tax"}
	result := FindPossibleWords(s.catBoard(), words)

	for _, word := range result {
		s.Contains(words, word)
		s.True(board.IsAdjacentWord(word, s.catBoard()))
	}
}

func (s *ServiceSuite) TestFindPossibleWordsDeduplicates() {
	s.Equal([]string{"cat"}, FindPossibleWords(s.catBoard(), []string{"cat", "CAT", "cat"}))
}

func (s *ServiceSuite) TestTrieMatchesScanOnGeneratedBoards() {
	generator := board.New(random.New(), board.DefaultConfig(), testutil.NopLogger())

	// A dictionary built from real board walks plus noise, so both strategies
	// have plenty to find
	var words []string
	for i := 0; i < 20; i++ {
		b, err := generator.Generate(s.ctx)
		s.Require().NoError(err)
		for _, row := range b.Rows() {
			words = append(words, strings.ReplaceAll(row, " ", ""))
		}
		for letter := range b.LetterCounts() {
			words = append(words, string(letter)+"at", "t"+string(letter)+"e")
		}
	}
	words = append(words, "tea", "eat", "ate", "rate", "tear", "stare", "treason", "senator")
	_ = s.dictionary.LoadWords(words)

	for i := 0; i < 50; i++ {
		b, err := generator.Generate(s.ctx)
		s.Require().NoError(err)

		scan := FindPossibleWords(b, s.dictionary.Words())
		trie := FindPossibleWordsTrie(b, s.dictionary.Trie())
		s.Equal(scan, trie, "board\n%s", b)
	}
}

func (s *ServiceSuite) TestFindPossibleWordsTrieNilInputs() {
	s.Empty(FindPossibleWordsTrie(nil, dictionary.NewTrie()))
	s.Empty(FindPossibleWordsTrie(s.catBoard(), nil))
}

// Service tests

func (s *ServiceSuite) TestFindRequiresLoadedDictionary() {
	_, err := s.newService(StrategyTrie).Find(s.ctx, s.catBoard())
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestFindWithBothStrategies() {
	_ = s.dictionary.LoadWords([]string{"cat", "car", "cot", "dog"})

	for _, strategy := range []Strategy{StrategyScan, StrategyTrie} {
		words, err := s.newService(strategy).Find(s.ctx, s.catBoard())
		s.Require().NoError(err)
		s.Equal([]string{"car", "cat"}, words, "strategy %s", strategy)
	}
}

func (s *ServiceSuite) TestHintsExcludeFoundWords() {
	_ = s.dictionary.LoadWords([]string{"cat", "car", "cart", "tac", "act"})

	hints, err := s.newService(StrategyTrie).Hints(s.ctx, s.catBoard(), []string{"cat"})
	s.Require().NoError(err)
	s.Equal([]model.Hint{
		{Word: "car", Points: 100},
		{Word: "tac", Points: 100},
	}, hints)
}

func (s *ServiceSuite) TestHintsEmptyWhenEverythingFound() {
	_ = s.dictionary.LoadWords([]string{"cat"})

	hints, err := s.newService(StrategyScan).Hints(s.ctx, s.catBoard(), []string{"cat"})
	s.Require().NoError(err)
	s.Empty(hints)
}

func (s *ServiceSuite) TestFindStopsOnCancelledContext() {
	_ = s.dictionary.LoadWords([]string{"cat"})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newService(StrategyScan).Find(ctx, s.catBoard())
	s.ErrorIs(err, context.Canceled)
}

func (s *ServiceSuite) TestParseStrategy() {
	strategy, err := ParseStrategy("scan")
	s.Require().NoError(err)
	s.Equal(StrategyScan, strategy)

	strategy, err = ParseStrategy("")
	s.Require().NoError(err)
	s.Equal(StrategyTrie, strategy)

	_, err = ParseStrategy("magic")
	s.Error(err)
}

package scoring

import (
	"sort"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/mcoot/wordhunt/internal/model"
)

// DefaultHintLimit is the number of hints shown after a round
const DefaultHintLimit = 12

// DefaultTopFound is the number of found words highlighted after a round
const DefaultTopFound = 5

// Points for words of three to six letters
var basePoints = map[int]int{
	3: 100,
	4: 400,
	5: 800,
	6: 1400,
}

// CalculateScore returns the points for a word based on its length.
// Words shorter than three letters are worth nothing.
func CalculateScore(word string) int {
	length := utf8.RuneCountInString(word)
	if length < model.MinWordLength {
		return 0
	}
	if points, ok := basePoints[length]; ok {
		return points
	}
	return 3200 + (length-6)*400
}

// TotalScore sums the points of every word
func TotalScore(words []string) int {
	return lo.SumBy(words, CalculateScore)
}

// RankHints drops the words already found and orders the rest by score,
// then length, then alphabetically. At most limit hints are returned; a
// limit of zero or less returns them all.
func RankHints(candidates, found []string, limit int) []model.Hint {
	foundSet := lo.SliceToMap(found, func(w string) (string, struct{}) {
		return w, struct{}{}
	})
	remaining := lo.Uniq(lo.Reject(candidates, func(w string, _ int) bool {
		_, ok := foundSet[w]
		return ok
	}))

	sort.Slice(remaining, func(i, j int) bool {
		a, b := remaining[i], remaining[j]
		if sa, sb := CalculateScore(a), CalculateScore(b); sa != sb {
			return sa > sb
		}
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return la > lb
		}
		return a < b
	})

	if limit > 0 && len(remaining) > limit {
		remaining = remaining[:limit]
	}

	return lo.Map(remaining, func(w string, _ int) model.Hint {
		return model.Hint{Word: w, Points: CalculateScore(w)}
	})
}

// TopFound returns the n longest found words, ties broken alphabetically
func TopFound(found []string, n int) []string {
	sorted := make([]string, len(found))
	copy(sorted, found)

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return la > lb
		}
		return a < b
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Service exposes the scoring policy to components that take it as a dependency
type Service struct {
	hintLimit int
}

// New creates a new ScoringService
func New(hintLimit int) *Service {
	if hintLimit <= 0 {
		hintLimit = DefaultHintLimit
	}
	return &Service{hintLimit: hintLimit}
}

// Score returns the points for a single word
func (s *Service) Score(word string) int {
	return CalculateScore(word)
}

// Total returns the points for a set of words
func (s *Service) Total(words []string) int {
	return TotalScore(words)
}

// Hints ranks candidates with the configured limit
func (s *Service) Hints(candidates, found []string) []model.Hint {
	return RankHints(candidates, found, s.hintLimit)
}

// Top returns the highlighted found words
func (s *Service) Top(found []string) []string {
	return TopFound(found, DefaultTopFound)
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(word string) int
	Total(words []string) int
	Hints(candidates, found []string) []model.Hint
	Top(found []string) []string
}

var _ ServiceInterface = (*Service)(nil)

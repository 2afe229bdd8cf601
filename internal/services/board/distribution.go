package board

import "math"

// LetterWeight pairs a letter with its relative likelihood of being drawn
type LetterWeight struct {
	Letter rune
	Weight float64
}

// EnglishDistribution is the letter frequency table used for generated boards
var EnglishDistribution = []LetterWeight{
	{'E', 8}, {'T', 8}, {'A', 7}, {'O', 7}, {'I', 7}, {'N', 6.75},
	{'S', 6.33}, {'H', 6.09}, {'R', 6}, {'D', 4.25}, {'L', 4.03}, {'C', 2.78},
	{'U', 2.76}, {'M', 2.41}, {'W', 2.36}, {'F', 2.23}, {'G', 3}, {'Y', 2},
	{'P', 2}, {'B', 2}, {'V', 2}, {'K', 2}, {'J', 1}, {'X', 0.5},
	{'Q', 0.5}, {'Z', 0.5},
}

// poolScale converts fractional weights into whole pool entries
const poolScale = 10

// BuildPool expands each letter into round(weight * 10) copies so that a
// uniform draw from the pool honours the weight ratios.
func BuildPool(dist []LetterWeight) []rune {
	size := 0
	for _, lw := range dist {
		size += copiesOf(lw.Weight)
	}

	pool := make([]rune, 0, size)
	for _, lw := range dist {
		for i := 0; i < copiesOf(lw.Weight); i++ {
			pool = append(pool, lw.Letter)
		}
	}
	return pool
}

func copiesOf(weight float64) int {
	if weight <= 0 {
		return 0
	}
	return int(math.Round(weight * poolScale))
}

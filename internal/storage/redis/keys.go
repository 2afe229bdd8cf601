package redis

import (
	"fmt"

	"github.com/mcoot/wordhunt/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordhunt"

// roundKey returns the Redis key for a Round
func roundKey(id model.RoundID) string {
	return fmt.Sprintf("%s:round:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for the dictionary word list
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// scoresKey returns the Redis key for the LIST of score records
func scoresKey() string {
	return fmt.Sprintf("%s:scores", keyPrefix)
}

package redis

import (
	"fmt"

	"github.com/mcoot/wordcapture/internal/model"
)

// Key prefix for all advisor data
const keyPrefix = "wcap"

// analysisKey returns the Redis key for a cached Analysis
func analysisKey(key string) string {
	return fmt.Sprintf("%s:analysis:%s", keyPrefix, key)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for the ordered dictionary word list
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// dictionaryLoadedKey marks that a dictionary was saved, even an empty one
func dictionaryLoadedKey() string {
	return fmt.Sprintf("%s:dictionary:loaded", keyPrefix)
}

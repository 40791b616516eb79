package factory

import (
	"time"

	"github.com/mcoot/wordcapture/internal/dependencies/mocks"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/storage"
	"github.com/mcoot/wordcapture/internal/storage/memory"
	"github.com/mcoot/wordcapture/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App on the default 5x5 board with in-memory storage
// and mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWith(memory.New(), model.DefaultRules())
}

// NewTestAppWith creates an App over the given storage and geometry with
// mocked dependencies
func NewTestAppWith(store storage.Storage, rules model.Rules) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, withDefaults(Config{Rules: rules}), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing, most common
// words first
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		"the", "of", "and", "to", "in", "is", "it", "that", "was", "he",
		"for", "on", "are", "as", "with", "his", "they", "at", "be", "this",
		"have", "from", "or", "one", "had", "by", "word", "but", "not", "what",
		"all", "were", "we", "when", "your", "can", "said", "there", "use", "an",
		"each", "which", "she", "do", "how", "their", "if", "will", "up", "other",
		"about", "out", "many", "then", "them", "these", "so", "some", "her", "would",
		"make", "like", "him", "into", "time", "has", "look", "two", "more", "write",
		"go", "see", "number", "no", "way", "could", "people", "my", "than", "first",
		"water", "been", "call", "who", "oil", "its", "now", "find", "long", "down",
		"day", "did", "get", "come", "made", "may", "part", "over", "new", "sound",
		"take", "only", "little", "work", "know", "place", "year", "live", "me", "back",
		"give", "most", "very", "after", "thing", "our", "just", "name", "good", "sentence",
		"man", "think", "say", "great", "where", "help", "through", "much", "before", "line",
		"right", "too", "mean", "old", "any", "same", "tell", "boy", "follow", "came",
		"want", "show", "also", "around", "form", "three", "small", "set", "put", "end",
		"does", "another", "well", "large", "must", "big", "even", "such", "because", "turn",
		"here", "why", "ask", "went", "men", "read", "need", "land", "different", "home",
		"us", "move", "try", "kind", "hand", "picture", "again", "change", "off", "play",
		"spell", "air", "away", "animal", "house", "point", "page", "letter", "mother", "answer",
		"found", "study", "still", "learn", "should", "world", "high", "every", "near", "add",
		"food", "between", "own", "below", "country", "plant", "last", "school", "father", "keep",
		"tree", "never", "start", "city", "earth", "eye", "light", "thought", "head", "under",
		"story", "saw", "left", "few", "while", "along", "might", "close", "something", "seem",
		"next", "hard", "open", "example", "begin", "life", "always", "those", "both", "paper",
		"cat", "dog", "heart", "mine", "road", "rat", "tar", "art", "star", "rats",
		"dogs", "cats", "gods", "hear", "hare", "rate", "tear", "heat", "hate", "neat",
		"ten", "net", "den", "red", "done", "nose", "ton", "note", "rode", "dear",
	}
	return t.DictionaryService.LoadWords(words)
}

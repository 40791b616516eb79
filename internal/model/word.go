package model

// WordEntry is a dictionary word offered to the move generator
type WordEntry struct {
	Text    string
	Letters []rune
	Rank    int // commonness, lower is more common
}

// NewWordEntry creates a WordEntry from its text
func NewWordEntry(text string, rank int) WordEntry {
	return WordEntry{
		Text:    text,
		Letters: []rune(text),
		Rank:    rank,
	}
}

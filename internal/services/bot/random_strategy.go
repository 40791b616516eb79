package bot

import (
	"github.com/mcoot/wordcapture/internal/dependencies/random"
	"github.com/mcoot/wordcapture/internal/model"
)

// RandomStrategy picks uniformly among the suggestions, except that it never
// turns down a winning move
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove returns a random suggestion
func (s *RandomStrategy) ChooseMove(game *model.Game, suggestions []model.Suggestion) (model.Suggestion, bool) {
	if len(suggestions) == 0 {
		return model.Suggestion{}, false
	}
	if suggestions[0].GameEnder == model.GameEnderWin {
		return suggestions[0], true
	}
	return suggestions[s.random.Intn(len(suggestions))], true
}

package bot

import (
	"fmt"

	"github.com/mcoot/wordcapture/internal/dependencies/random"
	"github.com/mcoot/wordcapture/internal/model"
)

// Strategy defines how a bot picks among the advisor's suggestions
type Strategy interface {
	// ChooseMove returns the move to play, or false to pass
	ChooseMove(game *model.Game, suggestions []model.Suggestion) (model.Suggestion, bool)
}

// NewStrategy builds the named strategy
func NewStrategy(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case model.BotStrategyTop:
		return TopStrategy{}, nil
	case model.BotStrategyRandom:
		return NewRandomStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
}

// TopStrategy always plays the best-ranked suggestion
type TopStrategy struct{}

// ChooseMove returns the first suggestion
func (TopStrategy) ChooseMove(game *model.Game, suggestions []model.Suggestion) (model.Suggestion, bool) {
	if len(suggestions) == 0 {
		return model.Suggestion{}, false
	}
	return suggestions[0], true
}

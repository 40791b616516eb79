package storage

import (
	"context"

	"github.com/mcoot/wordcapture/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Analysis cache operations
	SaveAnalysis(ctx context.Context, analysis *model.Analysis) error
	GetAnalysis(ctx context.Context, key string) (*model.Analysis, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	GameExists(ctx context.Context, id model.GameID) (bool, error)

	// Dictionary operations; word order is preserved because it carries rank
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}

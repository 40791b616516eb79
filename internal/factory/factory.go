package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoot/wordcapture/internal/api"
	"github.com/mcoot/wordcapture/internal/dependencies/clock"
	"github.com/mcoot/wordcapture/internal/dependencies/random"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/analysis"
	"github.com/mcoot/wordcapture/internal/services/auth"
	"github.com/mcoot/wordcapture/internal/services/board"
	"github.com/mcoot/wordcapture/internal/services/bot"
	"github.com/mcoot/wordcapture/internal/services/dictionary"
	"github.com/mcoot/wordcapture/internal/services/game"
	"github.com/mcoot/wordcapture/internal/services/movegen"
	"github.com/mcoot/wordcapture/internal/services/scoring"
	"github.com/mcoot/wordcapture/internal/storage"
	"github.com/mcoot/wordcapture/internal/storage/memory"
	redisstorage "github.com/mcoot/wordcapture/internal/storage/redis"
)

const dictionaryLoadTimeout = 30 * time.Second

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	Rules model.Rules

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	Generator         *movegen.Generator
	AnalysisService   *analysis.Service
	GameController    *game.Controller
	BotService        *bot.Service
	AuthService       *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the dictionary file (optional)
	// If empty, dictionary must be loaded manually. If the file cannot be
	// read, the list last saved to storage is used.
	DictionaryPath string
	// Rules is the board geometry (optional)
	// If zero value, defaults to model.DefaultRules()
	Rules model.Rules
	// GeneratorConfig holds move generator settings (optional)
	GeneratorConfig movegen.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, withDefaults(cfg), logger)
	if cfg.DictionaryPath != "" {
		app.loadDictionary(cfg.DictionaryPath)
	}
	return app, nil
}

// loadDictionary loads the word list file, falling back to storage. A
// missing dictionary is not fatal: analysis reports it until one is loaded.
func (a *App) loadDictionary(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), dictionaryLoadTimeout)
	defer cancel()

	err := a.DictionaryService.LoadFromFile(ctx, path)
	if err == nil {
		return
	}
	a.Logger.Warn("could not load dictionary file",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)

	if err := a.DictionaryService.LoadFromStorage(ctx); err != nil {
		a.Logger.Warn("no stored dictionary; analysis unavailable", slog.String("error", err.Error()))
	}
}

// withDefaults fills the optional zero-valued settings
func withDefaults(cfg Config) Config {
	if cfg.Rules.Rows() == 0 {
		cfg.Rules = model.DefaultRules()
	}
	if cfg.GeneratorConfig.Workers == 0 {
		cfg.GeneratorConfig = movegen.DefaultConfig()
	}
	if cfg.AuthConfig.CacheTTL == 0 {
		cfg.AuthConfig.CacheTTL = auth.DefaultConfig().CacheTTL
	}
	return cfg
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	boardService := board.New(cfg.Rules, rnd)
	scoringService := scoring.New(cfg.Rules)
	generator := movegen.New(cfg.GeneratorConfig, logger)
	analysisService := analysis.New(boardService, dictService, generator, scoringService, store, clk, logger)
	gameController := game.NewController(store, boardService, dictService, analysisService, clk, rnd, logger)
	botService := bot.NewService(gameController, rnd, logger)
	authService := auth.New(clk, cfg.AuthConfig)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Logger:            logger,
		Rules:             cfg.Rules,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		Generator:         generator,
		AnalysisService:   analysisService,
		GameController:    gameController,
		BotService:        botService,
		AuthService:       authService,
	}
}

// Router builds the HTTP API over the app's services
func (a *App) Router() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Logger:            a.Logger,
		AuthService:       a.AuthService,
		AnalysisService:   a.AnalysisService,
		GameController:    a.GameController,
		BoardService:      a.BoardService,
		BotService:        a.BotService,
		DictionaryService: a.DictionaryService,
	})
}

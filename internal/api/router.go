package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordcapture/internal/api/handler"
	"github.com/mcoot/wordcapture/internal/api/middleware"
	"github.com/mcoot/wordcapture/internal/services/analysis"
	"github.com/mcoot/wordcapture/internal/services/auth"
	"github.com/mcoot/wordcapture/internal/services/board"
	"github.com/mcoot/wordcapture/internal/services/bot"
	"github.com/mcoot/wordcapture/internal/services/dictionary"
	"github.com/mcoot/wordcapture/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	AnalysisService   analysis.ServiceInterface
	GameController    game.ControllerInterface
	BoardService      *board.Service
	BotService        *bot.Service
	DictionaryService dictionary.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	analysisHandler := handler.NewAnalysisHandler(cfg.AnalysisService, cfg.BoardService, cfg.DictionaryService)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BoardService, cfg.BotService, cfg.Logger)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", analysisHandler.Health).Methods(http.MethodGet)

	// Analysis requires an API key when keys are configured
	api.Handle("/analyze", authMiddleware(http.HandlerFunc(analysisHandler.Analyze))).Methods(http.MethodPost)

	// Game routes
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/play", gameHandler.Play).Methods(http.MethodPost)
	games.HandleFunc("/{id}/pass", gameHandler.Pass).Methods(http.MethodPost)
	games.HandleFunc("/{id}/suggest", gameHandler.Suggest).Methods(http.MethodGet)
	games.HandleFunc("/{id}/playout", gameHandler.Playout).Methods(http.MethodPost)

	return r
}

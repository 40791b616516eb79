package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordcapture/internal/api/request"
	"github.com/mcoot/wordcapture/internal/api/response"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/board"
	"github.com/mcoot/wordcapture/internal/services/bot"
	"github.com/mcoot/wordcapture/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	boardService   *board.Service
	botService     *bot.Service
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	gameController game.ControllerInterface,
	boardService *board.Service,
	botService *bot.Service,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		boardService:   boardService,
		botService:     botService,
		logger:         logger,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if r.ContentLength != 0 {
		if !decode(w, r, &req) {
			return
		}
	}

	g, err := h.gameController.CreateGame(r.Context(), req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Play handles POST /api/v1/games/{id}/play
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}

	placement, err := maskFrom(h.boardService, req.Placement, req.Squares)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.PlayWord(r.Context(), gameID(r), model.Side(req.Side), req.Word, placement)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Pass handles POST /api/v1/games/{id}/pass
func (h *GameHandler) Pass(w http.ResponseWriter, r *http.Request) {
	var req request.PassRequest
	if !decode(w, r, &req) {
		return
	}

	g, err := h.gameController.Pass(r.Context(), gameID(r), model.Side(req.Side))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Suggest handles GET /api/v1/games/{id}/suggest
func (h *GameHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.Suggest(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnalysisFromModel(result))
}

// Playout handles POST /api/v1/games/{id}/playout
func (h *GameHandler) Playout(w http.ResponseWriter, r *http.Request) {
	var req request.PlayoutRequest
	if !decode(w, r, &req) {
		return
	}

	sides := make(map[model.Side]string, 2)
	if req.Blue != "" {
		sides[model.SideBlue] = req.Blue
	}
	if req.Red != "" {
		sides[model.SideRed] = req.Red
	}
	if len(sides) == 0 {
		WriteError(w, NewInvalidRequestError("a strategy for blue or red is required"))
		return
	}

	id := gameID(r)
	actions, err := h.botService.Playout(r.Context(), id, bot.PlayoutOptions{
		Sides:    sides,
		MaxTurns: req.MaxTurns,
		Seed:     req.Seed,
	})
	if err != nil {
		h.logPlayoutError(r.Context(), id, len(actions), err)
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayoutFromModel(actions, g))
}

func (h *GameHandler) logPlayoutError(ctx context.Context, id model.GameID, actions int, err error) {
	if h.logger == nil {
		return
	}
	h.logger.WarnContext(ctx, "playout stopped",
		slog.String("game_id", string(id)),
		slog.Int("actions", actions),
		slog.String("error", err.Error()),
	)
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

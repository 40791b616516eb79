package handler

import (
	"net/http"

	"github.com/mcoot/wordcapture/internal/api/request"
	"github.com/mcoot/wordcapture/internal/api/response"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/analysis"
	"github.com/mcoot/wordcapture/internal/services/board"
	"github.com/mcoot/wordcapture/internal/services/dictionary"
)

// AnalysisHandler handles position analysis and health endpoints
type AnalysisHandler struct {
	analysisService   analysis.ServiceInterface
	boardService      *board.Service
	dictionaryService dictionary.ServiceInterface
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	analysisService analysis.ServiceInterface,
	boardService *board.Service,
	dictionaryService dictionary.ServiceInterface,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService:   analysisService,
		boardService:      boardService,
		dictionaryService: dictionaryService,
	}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Board == "" {
		WriteError(w, NewInvalidRequestError("board is required"))
		return
	}

	ours, err := maskFrom(h.boardService, req.Ours, req.OursSquares)
	if err != nil {
		WriteError(w, err)
		return
	}
	theirs, err := maskFrom(h.boardService, req.Theirs, req.TheirsSquares)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.analysisService.Analyze(r.Context(), analysis.Request{
		Board:   req.Board,
		Ours:    ours,
		Theirs:  theirs,
		Words:   req.Words,
		Exclude: req.Exclude,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnalysisFromModel(result))
}

// Health handles GET /api/v1/health
func (h *AnalysisHandler) Health(w http.ResponseWriter, r *http.Request) {
	rules := h.boardService.Rules()
	status := "ok"
	if !h.dictionaryService.IsLoaded() {
		status = "degraded"
	}
	response.JSON(w, http.StatusOK, response.Health{
		Status:          status,
		DictionaryWords: h.dictionaryService.WordCount(),
		Rows:            rules.Rows(),
		Cols:            rules.Cols(),
	})
}

// maskFrom prefers an explicit square list over a raw bitmask
func maskFrom(boardService *board.Service, raw uint64, squares []request.Square) (model.Mask, error) {
	if len(squares) == 0 {
		return model.Mask(raw), nil
	}
	positions := make([]model.Position, len(squares))
	for i, sq := range squares {
		positions[i] = model.Position{Row: sq.Row, Col: sq.Col}
	}
	return boardService.MaskOf(positions)
}

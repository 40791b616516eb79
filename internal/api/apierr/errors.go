package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidBoard        = "INVALID_BOARD"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeInvalidMask         = "INVALID_MASK"
	CodeOverlappingMasks    = "OVERLAPPING_MASKS"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeInvalidSide         = "INVALID_SIDE"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeGameComplete        = "GAME_COMPLETE"
	CodeWordNotInDictionary = "WORD_NOT_IN_DICTIONARY"
	CodeWordAlreadyPlayed   = "WORD_ALREADY_PLAYED"
	CodePlacementMismatch   = "PLACEMENT_MISMATCH"
	CodeUnknownStrategy     = "UNKNOWN_STRATEGY"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, "Board does not match the configured size"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letters must be A-Z"}}
	case errors.Is(err, model.ErrInvalidMask):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMask, "Mask has squares outside the board"}}
	case errors.Is(err, model.ErrOverlappingMasks):
		return &httpError{http.StatusBadRequest, APIError{CodeOverlappingMasks, "Ownership masks overlap"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrInvalidSide):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSide, "Side must be blue or red"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusConflict, APIError{CodeNotYourTurn, "Not this side's turn"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrWordNotInDictionary):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeWordNotInDictionary, "Word is not in the dictionary"}}
	case errors.Is(err, model.ErrWordAlreadyPlayed):
		return &httpError{http.StatusConflict, APIError{CodeWordAlreadyPlayed, "Word or a longer form of it has already been played"}}
	case errors.Is(err, model.ErrPlacementMismatch):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodePlacementMismatch, "Placement does not spell the word"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, err.Error()}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary not loaded"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidAPIKey):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid API key"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

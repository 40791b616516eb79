package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordcapture/internal/api/apierr"
)

// maxBodyBytes bounds request bodies; the largest is a caller word list
const maxBodyBytes = 1 << 20

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// decode reads a JSON body into v, writing an invalid request error and
// returning false on failure
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, NewInvalidRequestError("request body too large"))
		} else {
			WriteError(w, NewInvalidRequestError("invalid request body: "+err.Error()))
		}
		return false
	}
	return true
}

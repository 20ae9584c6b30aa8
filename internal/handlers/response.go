package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/animal-shelter/internal/logger"
)

// ErrorResponse is the error envelope shared by most endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Pet not found
	Error string `json:"error"`
}

// DatabaseErrorResponse is returned when the relational store fails.
// swagger:model DatabaseErrorResponse
type DatabaseErrorResponse struct {
	// default: Database error
	Error string `json:"error"`
	// Driver error text
	Details string `json:"details"`
}

// MessageResponse carries a success message.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Pet updated successfully
	Message string `json:"message"`
}

const invalidBody = "invalid request body"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeDatabaseError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, DatabaseErrorResponse{
		Error:   "Database error",
		Details: err.Error(),
	})
}

// decodeJSON decodes the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

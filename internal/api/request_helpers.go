package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// getPathID extracts a task ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// getPathBool extracts a boolean URL path parameter.
// Accepted spellings are those of strconv.ParseBool.
func getPathBool(r *http.Request, paramName string) (bool, error) {
	value, err := strconv.ParseBool(chi.URLParam(r, paramName))
	if err != nil {
		return false, domain.NewValidationError(paramName, "must be true or false", domain.ErrValidation)
	}
	return value, nil
}

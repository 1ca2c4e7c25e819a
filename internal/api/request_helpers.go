package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/store"
)

// getPathID extracts a positive numeric ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// getQueryBool parses an optional boolean query parameter.
// An absent parameter yields nil (no filter).
func getQueryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false", domain.ErrValidation)
	}

	return &value, nil
}

// getQueryOrder parses the optional order query parameter.
// An absent parameter defaults to ascending creation-time order.
func getQueryOrder(r *http.Request) (store.TaskOrder, error) {
	switch raw := r.URL.Query().Get("order"); raw {
	case "", "asc", "ASC":
		return store.TaskOrderAsc, nil
	case "desc", "DESC":
		return store.TaskOrderDesc, nil
	default:
		return "", domain.NewValidationError("order", "must be asc or desc", domain.ErrValidation)
	}
}

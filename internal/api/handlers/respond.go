package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto a status code. Domain errors carry
// their message to the client; anything else is logged and hidden.
func writeError(w http.ResponseWriter, log logging.Logger, op string, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	default:
		log.Error("request failed", err, logging.Fields{"op": op})
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	log.Debug("request rejected", logging.Fields{"op": op, "status": status, "error": err.Error()})
	http.Error(w, err.Error(), status)
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument)
	}
	return nil
}

func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidArgument, name, raw)
	}
	return uint(id), nil
}

// queryInt returns the integer query parameter, or 0 when it is absent.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidArgument, name, raw)
	}
	return n, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidArgument, name, raw)
	}
	return b, nil
}

type pageParams struct {
	Skip            int
	Limit           int
	IncludeInactive bool
}

func parsePage(r *http.Request) (pageParams, error) {
	var p pageParams
	var err error
	if p.Skip, err = queryInt(r, "skip"); err != nil {
		return p, err
	}
	if p.Limit, err = queryInt(r, "limit"); err != nil {
		return p, err
	}
	if p.IncludeInactive, err = queryBool(r, "includeInactive"); err != nil {
		return p, err
	}
	return p, nil
}

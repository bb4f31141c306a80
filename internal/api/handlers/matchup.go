package handlers

import (
	"fmt"
	"net/http"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/service"
)

type MatchupHandler struct {
	matchupService *service.MatchupService
	log            logging.Logger
}

func NewMatchupHandler(matchupService *service.MatchupService, log logging.Logger) *MatchupHandler {
	return &MatchupHandler{
		matchupService: matchupService,
		log:            log,
	}
}

type MatchupsResponse struct {
	Matchups []*domain.Matchup `json:"matchups"`
}

type UpdateMatchupRequest struct {
	WinRate *float64 `json:"winRate"`
}

func (h *MatchupHandler) List(w http.ResponseWriter, r *http.Request) {
	matchups, err := h.matchupService.ListMatchups(r.Context())
	if err != nil {
		writeError(w, h.log, "matchup.List", err)
		return
	}

	writeJSON(w, http.StatusOK, MatchupsResponse{Matchups: matchups})
}

// ListForChampion returns the champion's outgoing matchups.
func (h *MatchupHandler) ListForChampion(w http.ResponseWriter, r *http.Request) {
	championID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "matchup.ListForChampion", err)
		return
	}

	matchups, err := h.matchupService.ListMatchupsForChampion(r.Context(), championID)
	if err != nil {
		writeError(w, h.log, "matchup.ListForChampion", err)
		return
	}

	writeJSON(w, http.StatusOK, MatchupsResponse{Matchups: matchups})
}

func (h *MatchupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMatchupInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "matchup.Create", err)
		return
	}

	pair, err := h.matchupService.CreateMatchup(r.Context(), req)
	if err != nil {
		writeError(w, h.log, "matchup.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, pair)
}

func (h *MatchupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "matchup.Get", err)
		return
	}

	matchup, err := h.matchupService.GetMatchup(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "matchup.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, matchup)
}

func (h *MatchupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "matchup.Update", err)
		return
	}

	var req UpdateMatchupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "matchup.Update", err)
		return
	}
	if req.WinRate == nil {
		writeError(w, h.log, "matchup.Update", fmt.Errorf("%w: winRate is required", domain.ErrInvalidArgument))
		return
	}

	matchup, err := h.matchupService.UpdateMatchup(r.Context(), id, *req.WinRate)
	if err != nil {
		writeError(w, h.log, "matchup.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, matchup)
}

func (h *MatchupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "matchup.Delete", err)
		return
	}

	if err := h.matchupService.DeleteMatchup(r.Context(), id); err != nil {
		writeError(w, h.log, "matchup.Delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

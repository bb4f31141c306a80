package handlers

import (
	"net/http"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChampionHandler struct {
	championService *service.ChampionService
	log             logging.Logger
}

func NewChampionHandler(championService *service.ChampionService, log logging.Logger) *ChampionHandler {
	return &ChampionHandler{
		championService: championService,
		log:             log,
	}
}

type ChampionsResponse struct {
	Champions []*domain.Champion `json:"champions"`
}

func (h *ChampionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, h.log, "champion.List", err)
		return
	}

	champions, err := h.championService.ListChampions(r.Context(), service.ListChampionsInput{
		Skip:            page.Skip,
		Limit:           page.Limit,
		IncludeInactive: page.IncludeInactive,
		Role:            domain.Role(r.URL.Query().Get("role")),
	})
	if err != nil {
		writeError(w, h.log, "champion.List", err)
		return
	}

	writeJSON(w, http.StatusOK, ChampionsResponse{Champions: champions})
}

func (h *ChampionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateChampionInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "champion.Create", err)
		return
	}

	champion, err := h.championService.CreateChampion(r.Context(), req)
	if err != nil {
		writeError(w, h.log, "champion.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, champion)
}

func (h *ChampionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "champion.Get", err)
		return
	}

	champion, err := h.championService.GetChampion(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "champion.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, champion)
}

func (h *ChampionHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	champion, err := h.championService.GetChampionByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.log, "champion.GetByName", err)
		return
	}

	writeJSON(w, http.StatusOK, champion)
}

func (h *ChampionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "champion.Update", err)
		return
	}

	var req service.UpdateChampionInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "champion.Update", err)
		return
	}

	champion, err := h.championService.UpdateChampion(r.Context(), id, req)
	if err != nil {
		writeError(w, h.log, "champion.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, champion)
}

// Replace overwrites the champion with a full representation.
func (h *ChampionHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "champion.Replace", err)
		return
	}

	var req service.CreateChampionInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "champion.Replace", err)
		return
	}

	champion, err := h.championService.ReplaceChampion(r.Context(), id, req)
	if err != nil {
		writeError(w, h.log, "champion.Replace", err)
		return
	}

	writeJSON(w, http.StatusOK, champion)
}

// SoftDelete marks the champion inactive.
func (h *ChampionHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "champion.SoftDelete", err)
		return
	}

	champion, err := h.championService.SoftDeleteChampion(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "champion.SoftDelete", err)
		return
	}

	writeJSON(w, http.StatusOK, champion)
}

func (h *ChampionHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "champion.Activate", err)
		return
	}

	champion, err := h.championService.ActivateChampion(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "champion.Activate", err)
		return
	}

	writeJSON(w, http.StatusOK, champion)
}

// Delete removes the champion and everything that references it.
func (h *ChampionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "champion.Delete", err)
		return
	}

	if err := h.championService.DeleteChampion(r.Context(), id); err != nil {
		writeError(w, h.log, "champion.Delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

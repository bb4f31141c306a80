package handlers

import (
	"net/http"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/service"
)

type AssociationHandler struct {
	associationService *service.AssociationService
	log                logging.Logger
}

func NewAssociationHandler(associationService *service.AssociationService, log logging.Logger) *AssociationHandler {
	return &AssociationHandler{
		associationService: associationService,
		log:                log,
	}
}

type UpsertChampionItemRequest struct {
	UsagePercentage float64 `json:"usagePercentage"`
}

type UpsertChampionItemResponse struct {
	ID              uint    `json:"id"`
	ChampionID      uint    `json:"championId"`
	ItemID          uint    `json:"itemId"`
	UsagePercentage float64 `json:"usagePercentage"`
}

type ChampionItemsResponse struct {
	Items []*domain.ChampionItem `json:"items"`
}

func (h *AssociationHandler) List(w http.ResponseWriter, r *http.Request) {
	championID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "association.List", err)
		return
	}

	assocs, err := h.associationService.ListChampionItems(r.Context(), championID)
	if err != nil {
		writeError(w, h.log, "association.List", err)
		return
	}

	writeJSON(w, http.StatusOK, ChampionItemsResponse{Items: assocs})
}

func (h *AssociationHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	championID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "association.Upsert", err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, h.log, "association.Upsert", err)
		return
	}

	var req UpsertChampionItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "association.Upsert", err)
		return
	}

	id, err := h.associationService.UpsertChampionItem(r.Context(), championID, itemID, req.UsagePercentage)
	if err != nil {
		writeError(w, h.log, "association.Upsert", err)
		return
	}

	writeJSON(w, http.StatusOK, UpsertChampionItemResponse{
		ID:              id,
		ChampionID:      championID,
		ItemID:          itemID,
		UsagePercentage: req.UsagePercentage,
	})
}

func (h *AssociationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	championID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "association.Remove", err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, h.log, "association.Remove", err)
		return
	}

	if err := h.associationService.RemoveChampionItem(r.Context(), championID, itemID); err != nil {
		writeError(w, h.log, "association.Remove", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

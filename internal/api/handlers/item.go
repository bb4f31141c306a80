package handlers

import (
	"net/http"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/service"
)

type ItemHandler struct {
	itemService *service.ItemService
	log         logging.Logger
}

func NewItemHandler(itemService *service.ItemService, log logging.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		log:         log,
	}
}

type ItemsResponse struct {
	Items []*domain.Item `json:"items"`
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, h.log, "item.List", err)
		return
	}

	items, err := h.itemService.ListItems(r.Context(), service.ListItemsInput{
		Skip:            page.Skip,
		Limit:           page.Limit,
		IncludeInactive: page.IncludeInactive,
	})
	if err != nil {
		writeError(w, h.log, "item.List", err)
		return
	}

	writeJSON(w, http.StatusOK, ItemsResponse{Items: items})
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateItemInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "item.Create", err)
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), req)
	if err != nil {
		writeError(w, h.log, "item.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "item.Get", err)
		return
	}

	item, err := h.itemService.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "item.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "item.Update", err)
		return
	}

	var req service.UpdateItemInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "item.Update", err)
		return
	}

	item, err := h.itemService.UpdateItem(r.Context(), id, req)
	if err != nil {
		writeError(w, h.log, "item.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "item.SoftDelete", err)
		return
	}

	item, err := h.itemService.SoftDeleteItem(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "item.SoftDelete", err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "item.Activate", err)
		return
	}

	item, err := h.itemService.ActivateItem(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "item.Activate", err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

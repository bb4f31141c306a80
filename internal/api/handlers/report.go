package handlers

import (
	"net/http"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	log           logging.Logger
}

func NewReportHandler(reportService *service.ReportService, log logging.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		log:           log,
	}
}

type BuildResponse struct {
	ChampionID uint                 `json:"championId"`
	Build      []*domain.BuildEntry `json:"build"`
}

type ChampionRowsResponse struct {
	Columns []string            `json:"columns"`
	Rows    []service.ReportRow `json:"rows"`
}

func (h *ReportHandler) TopChampions(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n")
	if err != nil {
		writeError(w, h.log, "report.TopChampions", err)
		return
	}

	champions, err := h.reportService.TopChampionsByWinRate(r.Context(), n)
	if err != nil {
		writeError(w, h.log, "report.TopChampions", err)
		return
	}

	writeJSON(w, http.StatusOK, ChampionsResponse{Champions: champions})
}

func (h *ReportHandler) TopItems(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n")
	if err != nil {
		writeError(w, h.log, "report.TopItems", err)
		return
	}

	items, err := h.reportService.TopItemsByUsage(r.Context(), n)
	if err != nil {
		writeError(w, h.log, "report.TopItems", err)
		return
	}

	writeJSON(w, http.StatusOK, ItemsResponse{Items: items})
}

func (h *ReportHandler) ChampionsByWinRate(w http.ResponseWriter, r *http.Request) {
	champions, err := h.reportService.ChampionsByWinRate(r.Context(), domain.Role(r.URL.Query().Get("role")))
	if err != nil {
		writeError(w, h.log, "report.ChampionsByWinRate", err)
		return
	}

	writeJSON(w, http.StatusOK, ChampionsResponse{Champions: champions})
}

func (h *ReportHandler) Build(w http.ResponseWriter, r *http.Request) {
	championID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "report.Build", err)
		return
	}

	build, err := h.reportService.ChampionBuild(r.Context(), championID)
	if err != nil {
		writeError(w, h.log, "report.Build", err)
		return
	}

	writeJSON(w, http.StatusOK, BuildResponse{ChampionID: championID, Build: build})
}

func (h *ReportHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "report.Favorites", err)
		return
	}

	rollup, err := h.reportService.FavoritesRollup(r.Context(), profileID)
	if err != nil {
		writeError(w, h.log, "report.Favorites", err)
		return
	}

	writeJSON(w, http.StatusOK, rollup)
}

// ChampionRows serves the flattened export rows; rendering them to a file
// format is left to the client.
func (h *ReportHandler) ChampionRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.ChampionReportRows(r.Context())
	if err != nil {
		writeError(w, h.log, "report.ChampionRows", err)
		return
	}

	writeJSON(w, http.StatusOK, ChampionRowsResponse{
		Columns: service.ChampionReportColumns,
		Rows:    rows,
	})
}

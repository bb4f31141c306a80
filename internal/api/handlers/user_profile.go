package handlers

import (
	"net/http"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/service"
)

type UserProfileHandler struct {
	userProfileService *service.UserProfileService
	log                logging.Logger
}

func NewUserProfileHandler(userProfileService *service.UserProfileService, log logging.Logger) *UserProfileHandler {
	return &UserProfileHandler{
		userProfileService: userProfileService,
		log:                log,
	}
}

type UserProfilesResponse struct {
	UserProfiles []*domain.UserProfile `json:"userProfiles"`
}

type FavoritesRequest struct {
	ChampionIDs []uint `json:"championIds"`
}

type FavoritesResponse struct {
	UserProfileID uint   `json:"userProfileId"`
	ChampionIDs   []uint `json:"championIds"`
}

func (h *UserProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, h.log, "userProfile.List", err)
		return
	}

	profiles, err := h.userProfileService.ListUserProfiles(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeError(w, h.log, "userProfile.List", err)
		return
	}

	writeJSON(w, http.StatusOK, UserProfilesResponse{UserProfiles: profiles})
}

func (h *UserProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserProfileInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "userProfile.Create", err)
		return
	}

	profile, err := h.userProfileService.CreateUserProfile(r.Context(), req)
	if err != nil {
		writeError(w, h.log, "userProfile.Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (h *UserProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "userProfile.Get", err)
		return
	}

	profile, err := h.userProfileService.GetUserProfile(r.Context(), id)
	if err != nil {
		writeError(w, h.log, "userProfile.Get", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *UserProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "userProfile.Update", err)
		return
	}

	var req service.UpdateUserProfileInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "userProfile.Update", err)
		return
	}

	profile, err := h.userProfileService.UpdateUserProfile(r.Context(), id, req)
	if err != nil {
		writeError(w, h.log, "userProfile.Update", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ReplaceFavorites sets the profile's favorite champions to exactly the
// listed ids.
func (h *UserProfileHandler) ReplaceFavorites(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, "userProfile.ReplaceFavorites", err)
		return
	}

	var req FavoritesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, "userProfile.ReplaceFavorites", err)
		return
	}

	stored, err := h.userProfileService.UpsertFavorites(r.Context(), id, req.ChampionIDs)
	if err != nil {
		writeError(w, h.log, "userProfile.ReplaceFavorites", err)
		return
	}

	writeJSON(w, http.StatusOK, FavoritesResponse{UserProfileID: id, ChampionIDs: stored})
}

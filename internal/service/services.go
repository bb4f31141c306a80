package service

import (
	"github.com/dom/champion-stats/internal/config"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/repository"
)

type Services struct {
	Champion    *ChampionService
	Item        *ItemService
	Association *AssociationService
	Matchup     *MatchupService
	UserProfile *UserProfileService
	Report      *ReportService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log logging.Logger) *Services {
	pages := pageDefaults{pageSize: cfg.DefaultPageSize, topN: cfg.ReportTopN}
	return &Services{
		Champion:    NewChampionService(repos, pages, log.Component("champion")),
		Item:        NewItemService(repos, pages, log.Component("item")),
		Association: NewAssociationService(repos, log.Component("association")),
		Matchup:     NewMatchupService(repos, log.Component("matchup")),
		UserProfile: NewUserProfileService(repos, pages, log.Component("user_profile")),
		Report:      NewReportService(repos, pages),
	}
}

// pageDefaults holds the configured sizes used when a caller passes none.
type pageDefaults struct {
	pageSize int
	topN     int
}

func (p pageDefaults) limit(requested int) int {
	if requested > 0 {
		return requested
	}
	if p.pageSize > 0 {
		return p.pageSize
	}
	return 100
}

func (p pageDefaults) top(requested int) int {
	if requested > 0 {
		return requested
	}
	if p.topN > 0 {
		return p.topN
	}
	return 10
}

// uniqueIDs drops duplicates and zero ids, keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

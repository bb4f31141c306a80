package service

import (
	"context"
	"strings"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/repository"
)

// ReportService answers read-only aggregate queries. It never writes.
type ReportService struct {
	repos *repository.Repositories
	pages pageDefaults
}

func NewReportService(repos *repository.Repositories, pages pageDefaults) *ReportService {
	return &ReportService{repos: repos, pages: pages}
}

// ChampionReportColumns is the column order of ChampionReportRows.
var ChampionReportColumns = []string{
	"id", "name", "role", "win_rate", "pick_rate", "ban_rate", "active", "items",
}

// ReportRow maps a column name to its value.
type ReportRow map[string]any

// TopChampionsByWinRate returns up to n active champions, best first. n <= 0
// uses the configured default.
func (s *ReportService) TopChampionsByWinRate(ctx context.Context, n int) ([]*domain.Champion, error) {
	return s.repos.Champion.ListByWinRate(ctx, "", s.pages.top(n))
}

// TopItemsByUsage returns up to n active items, most used first.
func (s *ReportService) TopItemsByUsage(ctx context.Context, n int) ([]*domain.Item, error) {
	return s.repos.Item.ListByUsage(ctx, s.pages.top(n))
}

// ChampionBuild returns the champion's active items, most used first.
func (s *ReportService) ChampionBuild(ctx context.Context, championID uint) ([]*domain.BuildEntry, error) {
	if _, err := s.repos.Champion.GetByID(ctx, championID); err != nil {
		return nil, err
	}
	return s.repos.ChampionItem.Build(ctx, championID)
}

// ChampionsByWinRate returns every active champion, optionally of one role,
// best first.
func (s *ReportService) ChampionsByWinRate(ctx context.Context, role domain.Role) ([]*domain.Champion, error) {
	return s.repos.Champion.ListByWinRate(ctx, role, 0)
}

// FavoritesRollup lists every champion linked to the profile in link order,
// inactive ones included.
func (s *ReportService) FavoritesRollup(ctx context.Context, profileID uint) (*domain.FavoritesRollup, error) {
	if _, err := s.repos.UserProfile.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	links, err := s.repos.UserProfile.ListFavorites(ctx, profileID)
	if err != nil {
		return nil, err
	}

	rollup := &domain.FavoritesRollup{
		UserProfileID: profileID,
		ChampionIDs:   make([]uint, 0, len(links)),
		Champions:     make([]*domain.Champion, 0, len(links)),
	}
	for _, l := range links {
		rollup.ChampionIDs = append(rollup.ChampionIDs, l.ChampionID)
		if l.Champion != nil {
			rollup.Champions = append(rollup.Champions, l.Champion)
		}
	}
	return rollup, nil
}

// ChampionReportRows flattens every champion, inactive included, into rows
// for the export collaborators.
func (s *ReportService) ChampionReportRows(ctx context.Context) ([]ReportRow, error) {
	champions, err := s.repos.Champion.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(champions))
	for _, c := range champions {
		names := make([]string, 0, len(c.Items))
		for _, ci := range c.Items {
			if ci.Item != nil {
				names = append(names, ci.Item.Name)
			}
		}
		rows = append(rows, ReportRow{
			"id":        c.ID,
			"name":      c.Name,
			"role":      string(c.Role),
			"win_rate":  c.WinRate,
			"pick_rate": c.PickRate,
			"ban_rate":  c.BanRate,
			"active":    c.Active,
			"items":     strings.Join(names, ", "),
		})
	}
	return rows, nil
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/repository"
)

type ChampionService struct {
	repos *repository.Repositories
	pages pageDefaults
	log   logging.Logger
}

func NewChampionService(repos *repository.Repositories, pages pageDefaults, log logging.Logger) *ChampionService {
	return &ChampionService{
		repos: repos,
		pages: pages,
		log:   log,
	}
}

// ProfileInput is the descriptive sheet attached to a champion.
type ProfileInput struct {
	Description string `json:"description"`
	Lore        string `json:"lore"`
}

// CreateChampionInput contains the data for a new champion. Rates left unset
// take their defaults (win-rate 50, pick and ban 0).
type CreateChampionInput struct {
	Name     string                   `json:"name"`
	Role     domain.Role              `json:"role"`
	WinRate  domain.Optional[float64] `json:"winRate"`
	PickRate domain.Optional[float64] `json:"pickRate"`
	BanRate  domain.Optional[float64] `json:"banRate"`
	Profile  *ProfileInput            `json:"profile"`
	// Items are associated with usage 0; unknown ids are skipped.
	Items []uint `json:"items"`
}

// UpdateChampionInput is a partial update: only Set fields are applied.
// Items, when set, replaces the whole association set.
type UpdateChampionInput struct {
	Name     domain.Optional[string]       `json:"name"`
	Role     domain.Optional[domain.Role]  `json:"role"`
	WinRate  domain.Optional[float64]      `json:"winRate"`
	PickRate domain.Optional[float64]      `json:"pickRate"`
	BanRate  domain.Optional[float64]      `json:"banRate"`
	Active   domain.Optional[bool]         `json:"active"`
	Items    domain.Optional[[]uint]       `json:"items"`
	Profile  domain.Optional[ProfileInput] `json:"profile"`
}

// ListChampionsInput selects a page of champions. Limit <= 0 uses the
// configured page size.
type ListChampionsInput struct {
	Skip            int
	Limit           int
	IncludeInactive bool
	Role            domain.Role
}

func validateRates(rates ...float64) error {
	for _, r := range rates {
		if err := domain.ValidateWinRate(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *ChampionService) CreateChampion(ctx context.Context, input CreateChampionInput) (*domain.Champion, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	champion := &domain.Champion{
		Name:     name,
		Role:     input.Role,
		WinRate:  input.WinRate.OrElse(domain.DefaultWinRate),
		PickRate: input.PickRate.OrElse(0),
		BanRate:  input.BanRate.OrElse(0),
		Active:   true,
	}
	if err := validateRates(champion.WinRate, champion.PickRate, champion.BanRate); err != nil {
		return nil, err
	}

	var created *domain.Champion
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if err := ensureChampionNameFree(ctx, tx, name, 0); err != nil {
			return err
		}

		if err := tx.Champion.Create(ctx, champion); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.ErrChampionNameTaken
			}
			return err
		}

		if input.Profile != nil {
			if err := tx.Profile.Upsert(ctx, &domain.Profile{
				ChampionID:  champion.ID,
				Description: input.Profile.Description,
				Lore:        input.Profile.Lore,
			}); err != nil {
				return err
			}
		}

		if len(input.Items) > 0 {
			if err := replaceChampionItems(ctx, tx, champion.ID, input.Items); err != nil {
				return err
			}
		}

		var err error
		created, err = tx.Champion.GetByID(ctx, champion.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("champion created", logging.Fields{"champion_id": created.ID, "name": created.Name})
	return created, nil
}

func (s *ChampionService) GetChampion(ctx context.Context, id uint) (*domain.Champion, error) {
	return s.repos.Champion.GetByID(ctx, id)
}

func (s *ChampionService) GetChampionByName(ctx context.Context, name string) (*domain.Champion, error) {
	return s.repos.Champion.GetByName(ctx, name)
}

func (s *ChampionService) ListChampions(ctx context.Context, input ListChampionsInput) ([]*domain.Champion, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	return s.repos.Champion.List(ctx, repository.ChampionFilter{
		Skip:            skip,
		Limit:           s.pages.limit(input.Limit),
		IncludeInactive: input.IncludeInactive,
		Role:            input.Role,
	})
}

func (s *ChampionService) UpdateChampion(ctx context.Context, id uint, input UpdateChampionInput) (*domain.Champion, error) {
	var updated *domain.Champion
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		champion, err := tx.Champion.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if name, ok := input.Name.Get(); ok {
			name = strings.TrimSpace(name)
			if name == "" {
				return domain.ErrNameRequired
			}
			if name != champion.Name {
				if err := ensureChampionNameFree(ctx, tx, name, id); err != nil {
					return err
				}
			}
			champion.Name = name
		}
		input.Role.Apply(&champion.Role)
		input.WinRate.Apply(&champion.WinRate)
		input.PickRate.Apply(&champion.PickRate)
		input.BanRate.Apply(&champion.BanRate)
		input.Active.Apply(&champion.Active)
		if err := validateRates(champion.WinRate, champion.PickRate, champion.BanRate); err != nil {
			return err
		}

		if err := tx.Champion.Update(ctx, champion); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.ErrChampionNameTaken
			}
			return err
		}

		if ids, ok := input.Items.Get(); ok {
			if err := replaceChampionItems(ctx, tx, id, ids); err != nil {
				return err
			}
		}

		if profile, ok := input.Profile.Get(); ok {
			if err := tx.Profile.Upsert(ctx, &domain.Profile{
				ChampionID:  id,
				Description: profile.Description,
				Lore:        profile.Lore,
			}); err != nil {
				return err
			}
		}

		updated, err = tx.Champion.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("champion updated", logging.Fields{
		"champion_id":    id,
		"items_replaced": input.Items.Set,
		"profile_set":    input.Profile.Set,
	})
	return updated, nil
}

// ReplaceChampion overwrites name, role and all three rates. Rates left unset
// go back to their defaults. The profile is overwritten or created when given
// and kept otherwise; items and the active flag are not touched.
func (s *ChampionService) ReplaceChampion(ctx context.Context, id uint, input CreateChampionInput) (*domain.Champion, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	winRate := input.WinRate.OrElse(domain.DefaultWinRate)
	pickRate := input.PickRate.OrElse(0)
	banRate := input.BanRate.OrElse(0)
	if err := validateRates(winRate, pickRate, banRate); err != nil {
		return nil, err
	}

	var replaced *domain.Champion
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		champion, err := tx.Champion.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := ensureChampionNameFree(ctx, tx, name, id); err != nil {
			return err
		}

		champion.Name = name
		champion.Role = input.Role
		champion.WinRate = winRate
		champion.PickRate = pickRate
		champion.BanRate = banRate
		if err := tx.Champion.Update(ctx, champion); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.ErrChampionNameTaken
			}
			return err
		}

		if input.Profile != nil {
			if err := tx.Profile.Upsert(ctx, &domain.Profile{
				ChampionID:  id,
				Description: input.Profile.Description,
				Lore:        input.Profile.Lore,
			}); err != nil {
				return err
			}
		}

		replaced, err = tx.Champion.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("champion replaced", logging.Fields{"champion_id": id, "name": replaced.Name})
	return replaced, nil
}

// SoftDeleteChampion marks the champion inactive. Deactivating an inactive
// champion succeeds without change.
func (s *ChampionService) SoftDeleteChampion(ctx context.Context, id uint) (*domain.Champion, error) {
	return s.setActive(ctx, id, false)
}

func (s *ChampionService) ActivateChampion(ctx context.Context, id uint) (*domain.Champion, error) {
	return s.setActive(ctx, id, true)
}

func (s *ChampionService) setActive(ctx context.Context, id uint, active bool) (*domain.Champion, error) {
	if err := s.repos.Champion.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	s.log.Info("champion active flag set", logging.Fields{"champion_id": id, "active": active})
	return s.repos.Champion.GetByID(ctx, id)
}

// DeleteChampion removes the champion for good. Dependent rows are removed
// first, in order, within the same transaction: favorite links, matchups in
// both directions, item associations, the profile.
func (s *ChampionService) DeleteChampion(ctx context.Context, id uint) error {
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Champion.GetByID(ctx, id); err != nil {
			return err
		}
		if err := tx.UserProfile.DeleteFavoritesByChampionID(ctx, id); err != nil {
			return err
		}
		if err := tx.Matchup.DeleteInvolving(ctx, id); err != nil {
			return err
		}
		if err := tx.ChampionItem.DeleteByChampionID(ctx, id); err != nil {
			return err
		}
		if err := tx.Profile.DeleteByChampionID(ctx, id); err != nil {
			return err
		}
		return tx.Champion.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("champion deleted", logging.Fields{"champion_id": id})
	return nil
}

// ensureChampionNameFree fails when another champion, active or not, already
// uses name. selfID is ignored so a rename to the same name passes.
func ensureChampionNameFree(ctx context.Context, tx *repository.Repositories, name string, selfID uint) error {
	existing, err := tx.Champion.GetByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return domain.ErrChampionNameTaken
	default:
		return nil
	}
}

// replaceChampionItems makes itemIDs the champion's exact association set.
// Pairs that stay keep their usage; new pairs start at 0; ids that match no
// item are skipped.
func replaceChampionItems(ctx context.Context, tx *repository.Repositories, championID uint, itemIDs []uint) error {
	items, err := tx.Item.GetByIDs(ctx, uniqueIDs(itemIDs))
	if err != nil {
		return err
	}
	keep := make([]uint, 0, len(items))
	for _, item := range items {
		keep = append(keep, item.ID)
	}

	if err := tx.ChampionItem.DeleteByChampionIDExcept(ctx, championID, keep); err != nil {
		return err
	}

	current, err := tx.ChampionItem.ListByChampionID(ctx, championID)
	if err != nil {
		return err
	}
	present := make(map[uint]bool, len(current))
	for _, assoc := range current {
		present[assoc.ItemID] = true
	}

	// insert in the order the caller listed them
	order := make(map[uint]bool, len(keep))
	for _, id := range keep {
		order[id] = true
	}
	var missing []*domain.ChampionItem
	for _, id := range uniqueIDs(itemIDs) {
		if order[id] && !present[id] {
			missing = append(missing, &domain.ChampionItem{ChampionID: championID, ItemID: id})
		}
	}
	return tx.ChampionItem.CreateMany(ctx, missing)
}

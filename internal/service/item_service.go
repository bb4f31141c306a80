package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/repository"
)

type ItemService struct {
	repos *repository.Repositories
	pages pageDefaults
	log   logging.Logger
}

func NewItemService(repos *repository.Repositories, pages pageDefaults, log logging.Logger) *ItemService {
	return &ItemService{
		repos: repos,
		pages: pages,
		log:   log,
	}
}

type CreateItemInput struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	UsagePercentage float64 `json:"usagePercentage"`
}

// UpdateItemInput is a partial update: only Set fields are applied.
type UpdateItemInput struct {
	Name            domain.Optional[string]  `json:"name"`
	Type            domain.Optional[string]  `json:"type"`
	UsagePercentage domain.Optional[float64] `json:"usagePercentage"`
	Active          domain.Optional[bool]    `json:"active"`
}

type ListItemsInput struct {
	Skip            int
	Limit           int
	IncludeInactive bool
}

func (s *ItemService) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if err := domain.ValidateWinRate(input.UsagePercentage); err != nil {
		return nil, err
	}

	item := &domain.Item{
		Name:            name,
		Type:            input.Type,
		UsagePercentage: input.UsagePercentage,
		Active:          true,
	}

	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if err := ensureItemNameFree(ctx, tx, name, 0); err != nil {
			return err
		}
		if err := tx.Item.Create(ctx, item); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.ErrItemNameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("item created", logging.Fields{"item_id": item.ID, "name": item.Name})
	return item, nil
}

func (s *ItemService) GetItem(ctx context.Context, id uint) (*domain.Item, error) {
	return s.repos.Item.GetByID(ctx, id)
}

func (s *ItemService) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return s.repos.Item.GetByName(ctx, name)
}

func (s *ItemService) ListItems(ctx context.Context, input ListItemsInput) ([]*domain.Item, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	return s.repos.Item.List(ctx, repository.ItemFilter{
		Skip:            skip,
		Limit:           s.pages.limit(input.Limit),
		IncludeInactive: input.IncludeInactive,
	})
}

func (s *ItemService) UpdateItem(ctx context.Context, id uint, input UpdateItemInput) (*domain.Item, error) {
	var updated *domain.Item
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		item, err := tx.Item.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if name, ok := input.Name.Get(); ok {
			name = strings.TrimSpace(name)
			if name == "" {
				return domain.ErrNameRequired
			}
			if name != item.Name {
				if err := ensureItemNameFree(ctx, tx, name, id); err != nil {
					return err
				}
			}
			item.Name = name
		}
		input.Type.Apply(&item.Type)
		input.UsagePercentage.Apply(&item.UsagePercentage)
		input.Active.Apply(&item.Active)
		if err := domain.ValidateWinRate(item.UsagePercentage); err != nil {
			return err
		}

		if err := tx.Item.Update(ctx, item); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.ErrItemNameTaken
			}
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("item updated", logging.Fields{"item_id": id})
	return updated, nil
}

// SoftDeleteItem marks the item inactive; it is idempotent.
func (s *ItemService) SoftDeleteItem(ctx context.Context, id uint) (*domain.Item, error) {
	return s.setActive(ctx, id, false)
}

func (s *ItemService) ActivateItem(ctx context.Context, id uint) (*domain.Item, error) {
	return s.setActive(ctx, id, true)
}

func (s *ItemService) setActive(ctx context.Context, id uint, active bool) (*domain.Item, error) {
	if err := s.repos.Item.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	s.log.Info("item active flag set", logging.Fields{"item_id": id, "active": active})
	return s.repos.Item.GetByID(ctx, id)
}

func ensureItemNameFree(ctx context.Context, tx *repository.Repositories, name string, selfID uint) error {
	existing, err := tx.Item.GetByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return domain.ErrItemNameTaken
	default:
		return nil
	}
}

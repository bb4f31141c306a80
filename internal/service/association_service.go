package service

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/repository"
)

// AssociationService manages the champion item pairs and their usage.
type AssociationService struct {
	repos *repository.Repositories
	log   logging.Logger
}

func NewAssociationService(repos *repository.Repositories, log logging.Logger) *AssociationService {
	return &AssociationService{repos: repos, log: log}
}

// UpsertChampionItem sets the usage of an item for a champion, creating the
// pair when it does not exist yet. It returns the association id.
func (s *AssociationService) UpsertChampionItem(ctx context.Context, championID, itemID uint, usage float64) (uint, error) {
	if err := domain.ValidateWinRate(usage); err != nil {
		return 0, err
	}

	assoc := &domain.ChampionItem{
		ChampionID:      championID,
		ItemID:          itemID,
		UsagePercentage: usage,
	}
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Champion.GetByID(ctx, championID); err != nil {
			return err
		}
		if _, err := tx.Item.GetByID(ctx, itemID); err != nil {
			return err
		}
		return tx.ChampionItem.Upsert(ctx, assoc)
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("champion item upserted", logging.Fields{
		"association_id": assoc.ID,
		"champion_id":    championID,
		"item_id":        itemID,
		"usage":          usage,
	})
	return assoc.ID, nil
}

// RemoveChampionItem deletes the pair; a missing pair is not an error.
func (s *AssociationService) RemoveChampionItem(ctx context.Context, championID, itemID uint) error {
	removed, err := s.repos.ChampionItem.Delete(ctx, championID, itemID)
	if err != nil {
		return err
	}
	if removed {
		s.log.Info("champion item removed", logging.Fields{"champion_id": championID, "item_id": itemID})
	}
	return nil
}

func (s *AssociationService) ListChampionItems(ctx context.Context, championID uint) ([]*domain.ChampionItem, error) {
	if _, err := s.repos.Champion.GetByID(ctx, championID); err != nil {
		return nil, err
	}
	return s.repos.ChampionItem.ListByChampionID(ctx, championID)
}

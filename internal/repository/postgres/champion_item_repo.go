package postgres

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championItemRepository struct {
	db *gorm.DB
}

func NewChampionItemRepository(db *gorm.DB) *championItemRepository {
	return &championItemRepository{db: db}
}

func (r *championItemRepository) Get(ctx context.Context, championID, itemID uint) (*domain.ChampionItem, error) {
	var assoc domain.ChampionItem
	err := r.db.WithContext(ctx).
		Where("champion_id = ? AND item_id = ?", championID, itemID).
		First(&assoc).Error
	if err != nil {
		return nil, translateError(err, domain.ErrAssociationNotFound)
	}
	return &assoc, nil
}

func (r *championItemRepository) Upsert(ctx context.Context, assoc *domain.ChampionItem) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "champion_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"usage_percentage"}),
		}).
		Create(assoc).Error
	return translateError(err, domain.ErrAssociationNotFound)
}

func (r *championItemRepository) CreateMany(ctx context.Context, assocs []*domain.ChampionItem) error {
	if len(assocs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(assocs).Error
	return translateError(err, domain.ErrAssociationNotFound)
}

func (r *championItemRepository) Delete(ctx context.Context, championID, itemID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("champion_id = ? AND item_id = ?", championID, itemID).
		Delete(&domain.ChampionItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *championItemRepository) DeleteByChampionIDExcept(ctx context.Context, championID uint, keep []uint) error {
	q := r.db.WithContext(ctx).Where("champion_id = ?", championID)
	if len(keep) > 0 {
		q = q.Where("item_id NOT IN ?", keep)
	}
	return q.Delete(&domain.ChampionItem{}).Error
}

func (r *championItemRepository) DeleteByChampionID(ctx context.Context, championID uint) error {
	return r.db.WithContext(ctx).
		Where("champion_id = ?", championID).
		Delete(&domain.ChampionItem{}).Error
}

func (r *championItemRepository) ListByChampionID(ctx context.Context, championID uint) ([]*domain.ChampionItem, error) {
	var assocs []*domain.ChampionItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("champion_id = ?", championID).
		Order("id ASC").
		Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *championItemRepository) Build(ctx context.Context, championID uint) ([]*domain.BuildEntry, error) {
	var assocs []*domain.ChampionItem
	err := r.db.WithContext(ctx).
		Joins("Item").
		Where("champion_items.champion_id = ?", championID).
		Where(`"Item".active = ?`, true).
		Order("champion_items.usage_percentage DESC").
		Order("champion_items.id ASC").
		Find(&assocs).Error
	if err != nil {
		return nil, err
	}

	build := make([]*domain.BuildEntry, 0, len(assocs))
	for _, a := range assocs {
		build = append(build, &domain.BuildEntry{
			Item:            a.Item,
			UsagePercentage: a.UsagePercentage,
		})
	}
	return build, nil
}

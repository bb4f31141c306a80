package postgres

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/repository"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *itemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	return translateError(r.db.WithContext(ctx).Create(item).Error, domain.ErrItemNotFound)
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, domain.ErrItemNotFound)
	}
	return &item, nil
}

func (r *itemRepository) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).First(&item, "name = ?", name).Error
	if err != nil {
		return nil, translateError(err, domain.ErrItemNotFound)
	}
	return &item, nil
}

func (r *itemRepository) GetByIDs(ctx context.Context, ids []uint) ([]*domain.Item, error) {
	var items []*domain.Item
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]*domain.Item, error) {
	q := r.db.WithContext(ctx)
	if !filter.IncludeInactive {
		q = q.Where("active = ?", true)
	}

	var items []*domain.Item
	err := q.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) ListByUsage(ctx context.Context, limit int) ([]*domain.Item, error) {
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var items []*domain.Item
	err := q.Order("usage_percentage DESC").Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	return translateError(r.db.WithContext(ctx).Save(item).Error, domain.ErrItemNotFound)
}

func (r *itemRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

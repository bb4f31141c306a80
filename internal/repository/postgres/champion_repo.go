package postgres

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

// withDetails preloads the profile and the item associations in insertion order.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Profile").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("champion_items.id ASC")
		}).
		Preload("Items.Item")
}

func (r *championRepository) Create(ctx context.Context, champion *domain.Champion) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(champion).Error
	return translateError(err, domain.ErrChampionNotFound)
}

func (r *championRepository) GetByID(ctx context.Context, id uint) (*domain.Champion, error) {
	var champion domain.Champion
	err := withDetails(r.db.WithContext(ctx)).First(&champion, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, domain.ErrChampionNotFound)
	}
	return &champion, nil
}

func (r *championRepository) GetByName(ctx context.Context, name string) (*domain.Champion, error) {
	var champion domain.Champion
	err := withDetails(r.db.WithContext(ctx)).First(&champion, "name = ?", name).Error
	if err != nil {
		return nil, translateError(err, domain.ErrChampionNotFound)
	}
	return &champion, nil
}

func (r *championRepository) GetByIDs(ctx context.Context, ids []uint) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	if len(ids) == 0 {
		return champions, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

// LockByIDs takes row locks on the champions in ascending id order, so
// transactions locking the same set never wait on each other in a cycle.
func (r *championRepository) LockByIDs(ctx context.Context, ids []uint) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	if len(ids) == 0 {
		return champions, nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&champions).Error
	if err != nil {
		return nil, translateError(err, domain.ErrChampionNotFound)
	}
	return champions, nil
}

func (r *championRepository) List(ctx context.Context, filter repository.ChampionFilter) ([]*domain.Champion, error) {
	q := withDetails(r.db.WithContext(ctx))
	if !filter.IncludeInactive {
		q = q.Where("active = ?", true)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}

	var champions []*domain.Champion
	err := q.Order("id ASC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) ListByWinRate(ctx context.Context, role domain.Role, limit int) ([]*domain.Champion, error) {
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var champions []*domain.Champion
	err := q.Order("win_rate DESC").Order("id ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) ListAll(ctx context.Context) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	err := withDetails(r.db.WithContext(ctx)).Order("id ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) Update(ctx context.Context, champion *domain.Champion) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(champion).Error
	return translateError(err, domain.ErrChampionNotFound)
}

func (r *championRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Champion{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrChampionNotFound
	}
	return nil
}

func (r *championRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Champion{}, id)
	if result.Error != nil {
		return translateError(result.Error, domain.ErrChampionNotFound)
	}
	if result.RowsAffected == 0 {
		return domain.ErrChampionNotFound
	}
	return nil
}

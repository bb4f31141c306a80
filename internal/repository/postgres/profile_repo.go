package postgres

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByChampionID(ctx context.Context, championID uint) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).First(&profile, "champion_id = ?", championID).Error
	if err != nil {
		return nil, translateError(err, domain.ErrProfileNotFound)
	}
	return &profile, nil
}

// Upsert overwrites the champion's profile or creates it.
func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "champion_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "lore"}),
		}).
		Create(profile).Error
	return translateError(err, domain.ErrProfileNotFound)
}

func (r *profileRepository) DeleteByChampionID(ctx context.Context, championID uint) error {
	return r.db.WithContext(ctx).
		Where("champion_id = ?", championID).
		Delete(&domain.Profile{}).Error
}

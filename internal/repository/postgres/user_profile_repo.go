package postgres

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) *userProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error
	return translateError(err, domain.ErrUserProfileNotFound)
}

func (r *userProfileRepository) GetByID(ctx context.Context, id uint) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.WithContext(ctx).
		Preload("Favorites", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_profile_favorites.id ASC")
		}).
		First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, domain.ErrUserProfileNotFound)
	}
	return &profile, nil
}

func (r *userProfileRepository) List(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error) {
	var profiles []*domain.UserProfile
	err := r.db.WithContext(ctx).
		Preload("Favorites", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_profile_favorites.id ASC")
		}).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userProfileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error
	return translateError(err, domain.ErrUserProfileNotFound)
}

// ReplaceFavorites clears the current links before inserting the new set, so
// it must run inside a transaction to be atomic.
func (r *userProfileRepository) ReplaceFavorites(ctx context.Context, profileID uint, championIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_profile_id = ?", profileID).Delete(&domain.FavoriteChampion{}).Error; err != nil {
		return err
	}
	if len(championIDs) == 0 {
		return nil
	}

	links := make([]*domain.FavoriteChampion, len(championIDs))
	for i, id := range championIDs {
		links[i] = &domain.FavoriteChampion{UserProfileID: profileID, ChampionID: id}
	}
	return translateError(db.Omit(clause.Associations).Create(links).Error, domain.ErrChampionNotFound)
}

func (r *userProfileRepository) ListFavorites(ctx context.Context, profileID uint) ([]*domain.FavoriteChampion, error) {
	var links []*domain.FavoriteChampion
	err := r.db.WithContext(ctx).
		Preload("Champion").
		Where("user_profile_id = ?", profileID).
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *userProfileRepository) DeleteFavoritesByChampionID(ctx context.Context, championID uint) error {
	return r.db.WithContext(ctx).
		Where("champion_id = ?", championID).
		Delete(&domain.FavoriteChampion{}).Error
}

package postgres

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type matchupRepository struct {
	db *gorm.DB
}

func NewMatchupRepository(db *gorm.DB) *matchupRepository {
	return &matchupRepository{db: db}
}

func (r *matchupRepository) Create(ctx context.Context, matchup *domain.Matchup) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(matchup).Error
	return translateError(err, domain.ErrChampionNotFound)
}

func (r *matchupRepository) GetByID(ctx context.Context, id uint) (*domain.Matchup, error) {
	var matchup domain.Matchup
	err := r.db.WithContext(ctx).First(&matchup, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, domain.ErrMatchupNotFound)
	}
	return &matchup, nil
}

func (r *matchupRepository) GetByPair(ctx context.Context, championID, opponentID uint) (*domain.Matchup, error) {
	var matchup domain.Matchup
	err := r.db.WithContext(ctx).
		Where("champion_id = ? AND opponent_id = ?", championID, opponentID).
		First(&matchup).Error
	if err != nil {
		return nil, translateError(err, domain.ErrMatchupNotFound)
	}
	return &matchup, nil
}

func (r *matchupRepository) List(ctx context.Context) ([]*domain.Matchup, error) {
	var matchups []*domain.Matchup
	err := r.db.WithContext(ctx).Order("id ASC").Find(&matchups).Error
	if err != nil {
		return nil, err
	}
	return matchups, nil
}

func (r *matchupRepository) ListByChampionID(ctx context.Context, championID uint) ([]*domain.Matchup, error) {
	var matchups []*domain.Matchup
	err := r.db.WithContext(ctx).
		Where("champion_id = ?", championID).
		Order("id ASC").
		Find(&matchups).Error
	if err != nil {
		return nil, err
	}
	return matchups, nil
}

func (r *matchupRepository) UpdateWinRate(ctx context.Context, id uint, winRate float64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Matchup{}).
		Where("id = ?", id).
		Update("win_rate", winRate)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMatchupNotFound
	}
	return nil
}

func (r *matchupRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Matchup{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *matchupRepository) DeleteInvolving(ctx context.Context, championID uint) error {
	return r.db.WithContext(ctx).
		Where("champion_id = ? OR opponent_id = ?", championID, championID).
		Delete(&domain.Matchup{}).Error
}

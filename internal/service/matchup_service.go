package service

import (
	"context"
	"errors"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/repository"
)

// MatchupService maintains head-to-head win-rates.
//
// Known asymmetry: the mirror row is only derived when a pair is created.
// UpdateMatchup and DeleteMatchup act on a single row, so (A,B) and (B,A) can
// stop summing to 100 after explicit corrective writes.
type MatchupService struct {
	repos *repository.Repositories
	log   logging.Logger
}

func NewMatchupService(repos *repository.Repositories, log logging.Logger) *MatchupService {
	return &MatchupService{repos: repos, log: log}
}

type CreateMatchupInput struct {
	ChampionID uint    `json:"championId"`
	OpponentID uint    `json:"opponentId"`
	WinRate    float64 `json:"winRate"`
}

// CreateMatchup stores (champion, opponent, winRate) together with its mirror
// (opponent, champion, 100-winRate). A leftover mirror row from an earlier
// pair whose direct row was deleted is rewritten to the mirrored value.
func (s *MatchupService) CreateMatchup(ctx context.Context, input CreateMatchupInput) (*domain.MatchupPair, error) {
	if err := domain.ValidateMatchup(input.ChampionID, input.OpponentID, input.WinRate); err != nil {
		return nil, err
	}

	pair := &domain.MatchupPair{}
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		// both directions of a pair lock the same two rows in the same order
		locked, err := tx.Champion.LockByIDs(ctx, []uint{input.ChampionID, input.OpponentID})
		if err != nil {
			return err
		}
		if len(locked) != 2 {
			return domain.ErrChampionNotFound
		}

		_, err = tx.Matchup.GetByPair(ctx, input.ChampionID, input.OpponentID)
		switch {
		case err == nil:
			return domain.ErrMatchupExists
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		direct := &domain.Matchup{
			ChampionID: input.ChampionID,
			OpponentID: input.OpponentID,
			WinRate:    input.WinRate,
		}
		if err := tx.Matchup.Create(ctx, direct); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.ErrMatchupExists
			}
			return err
		}

		mirrorRate := domain.MirrorWinRate(input.WinRate)
		mirror, err := tx.Matchup.GetByPair(ctx, input.OpponentID, input.ChampionID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			mirror = &domain.Matchup{
				ChampionID: input.OpponentID,
				OpponentID: input.ChampionID,
				WinRate:    mirrorRate,
			}
			if err := tx.Matchup.Create(ctx, mirror); err != nil {
				if errors.Is(err, domain.ErrConflict) {
					return domain.ErrMatchupExists
				}
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Matchup.UpdateWinRate(ctx, mirror.ID, mirrorRate); err != nil {
				return err
			}
			mirror.WinRate = mirrorRate
		}

		pair.Direct = direct
		pair.Mirror = mirror
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("matchup created", logging.Fields{
		"matchup_id":  pair.Direct.ID,
		"mirror_id":   pair.Mirror.ID,
		"champion_id": input.ChampionID,
		"opponent_id": input.OpponentID,
		"win_rate":    input.WinRate,
	})
	return pair, nil
}

func (s *MatchupService) GetMatchup(ctx context.Context, id uint) (*domain.Matchup, error) {
	return s.repos.Matchup.GetByID(ctx, id)
}

func (s *MatchupService) ListMatchups(ctx context.Context) ([]*domain.Matchup, error) {
	return s.repos.Matchup.List(ctx)
}

// ListMatchupsForChampion returns the champion's outgoing rows.
func (s *MatchupService) ListMatchupsForChampion(ctx context.Context, championID uint) ([]*domain.Matchup, error) {
	if _, err := s.repos.Champion.GetByID(ctx, championID); err != nil {
		return nil, err
	}
	return s.repos.Matchup.ListByChampionID(ctx, championID)
}

// UpdateMatchup rewrites one row's win-rate. The mirror row is not touched.
func (s *MatchupService) UpdateMatchup(ctx context.Context, id uint, winRate float64) (*domain.Matchup, error) {
	if err := domain.ValidateWinRate(winRate); err != nil {
		return nil, err
	}
	if err := s.repos.Matchup.UpdateWinRate(ctx, id, winRate); err != nil {
		return nil, err
	}

	s.log.Warn("matchup updated without its mirror", logging.Fields{"matchup_id": id, "win_rate": winRate})
	return s.repos.Matchup.GetByID(ctx, id)
}

// DeleteMatchup removes one row. The mirror row is not touched.
func (s *MatchupService) DeleteMatchup(ctx context.Context, id uint) error {
	removed, err := s.repos.Matchup.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrMatchupNotFound
	}

	s.log.Warn("matchup deleted without its mirror", logging.Fields{"matchup_id": id})
	return nil
}

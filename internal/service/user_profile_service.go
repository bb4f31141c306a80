package service

import (
	"context"
	"strings"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/logging"
	"github.com/dom/champion-stats/internal/repository"
)

type UserProfileService struct {
	repos *repository.Repositories
	pages pageDefaults
	log   logging.Logger
}

func NewUserProfileService(repos *repository.Repositories, pages pageDefaults, log logging.Logger) *UserProfileService {
	return &UserProfileService{
		repos: repos,
		pages: pages,
		log:   log,
	}
}

// CreateUserProfileInput contains the data for a new user profile.
// PhotoRef is an opaque reference produced by the upload collaborator.
type CreateUserProfileInput struct {
	DisplayName         string  `json:"displayName"`
	AccountName         string  `json:"accountName"`
	Region              *string `json:"region"`
	PhotoRef            *string `json:"photoRef"`
	FavoriteChampionIDs []uint  `json:"favoriteChampionIds"`
}

// UpdateUserProfileInput is a partial update; favorites are managed with
// UpsertFavorites. Region and PhotoRef are cleared by an explicit null.
type UpdateUserProfileInput struct {
	DisplayName domain.Optional[string] `json:"displayName"`
	AccountName domain.Optional[string] `json:"accountName"`
	Region      domain.Nullable[string] `json:"region"`
	PhotoRef    domain.Nullable[string] `json:"photoRef"`
}

func (s *UserProfileService) CreateUserProfile(ctx context.Context, input CreateUserProfileInput) (*domain.UserProfile, error) {
	if strings.TrimSpace(input.DisplayName) == "" || strings.TrimSpace(input.AccountName) == "" {
		return nil, domain.ErrNameRequired
	}

	profile := &domain.UserProfile{
		DisplayName: input.DisplayName,
		AccountName: input.AccountName,
		Region:      input.Region,
		PhotoRef:    input.PhotoRef,
	}

	var created *domain.UserProfile
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.UserProfile.Create(ctx, profile); err != nil {
			return err
		}
		if err := replaceFavorites(ctx, tx, profile.ID, input.FavoriteChampionIDs); err != nil {
			return err
		}

		var err error
		created, err = tx.UserProfile.GetByID(ctx, profile.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user profile created", logging.Fields{
		"user_profile_id": created.ID,
		"favorites":       len(created.Favorites),
	})
	return created, nil
}

func (s *UserProfileService) GetUserProfile(ctx context.Context, id uint) (*domain.UserProfile, error) {
	return s.repos.UserProfile.GetByID(ctx, id)
}

func (s *UserProfileService) ListUserProfiles(ctx context.Context, skip, limit int) ([]*domain.UserProfile, error) {
	if skip < 0 {
		skip = 0
	}
	return s.repos.UserProfile.List(ctx, s.pages.limit(limit), skip)
}

func (s *UserProfileService) UpdateUserProfile(ctx context.Context, id uint, input UpdateUserProfileInput) (*domain.UserProfile, error) {
	var updated *domain.UserProfile
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		profile, err := tx.UserProfile.GetByID(ctx, id)
		if err != nil {
			return err
		}

		input.DisplayName.Apply(&profile.DisplayName)
		input.AccountName.Apply(&profile.AccountName)
		input.Region.Apply(&profile.Region)
		input.PhotoRef.Apply(&profile.PhotoRef)
		if strings.TrimSpace(profile.DisplayName) == "" || strings.TrimSpace(profile.AccountName) == "" {
			return domain.ErrNameRequired
		}

		if err := tx.UserProfile.Update(ctx, profile); err != nil {
			return err
		}
		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user profile updated", logging.Fields{"user_profile_id": id})
	return updated, nil
}

// UpsertFavorites replaces the profile's favorite set. Ids that match no
// champion are skipped and duplicates collapse; it returns the stored ids.
func (s *UserProfileService) UpsertFavorites(ctx context.Context, profileID uint, championIDs []uint) ([]uint, error) {
	var stored []uint
	err := s.repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.UserProfile.GetByID(ctx, profileID); err != nil {
			return err
		}
		if err := replaceFavorites(ctx, tx, profileID, championIDs); err != nil {
			return err
		}

		links, err := tx.UserProfile.ListFavorites(ctx, profileID)
		if err != nil {
			return err
		}
		stored = make([]uint, 0, len(links))
		for _, l := range links {
			stored = append(stored, l.ChampionID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("favorites replaced", logging.Fields{
		"user_profile_id": profileID,
		"requested":       len(championIDs),
		"stored":          len(stored),
	})
	return stored, nil
}

// replaceFavorites keeps only ids of existing champions, in request order.
func replaceFavorites(ctx context.Context, tx *repository.Repositories, profileID uint, championIDs []uint) error {
	ids := uniqueIDs(championIDs)
	champions, err := tx.Champion.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	exists := make(map[uint]bool, len(champions))
	for _, c := range champions {
		exists[c.ID] = true
	}

	valid := make([]uint, 0, len(ids))
	for _, id := range ids {
		if exists[id] {
			valid = append(valid, id)
		}
	}
	return tx.UserProfile.ReplaceFavorites(ctx, profileID, valid)
}

package repository

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
)

// ChampionFilter selects a page of champions in insertion order.
type ChampionFilter struct {
	Skip            int
	Limit           int
	IncludeInactive bool
	Role            domain.Role // empty matches every role
}

// ItemFilter selects a page of items in insertion order.
type ItemFilter struct {
	Skip            int
	Limit           int
	IncludeInactive bool
}

type ChampionRepository interface {
	Create(ctx context.Context, champion *domain.Champion) error
	GetByID(ctx context.Context, id uint) (*domain.Champion, error)
	GetByName(ctx context.Context, name string) (*domain.Champion, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*domain.Champion, error)
	// LockByIDs locks the rows for the rest of the transaction and returns
	// the ones that exist, by ascending id.
	LockByIDs(ctx context.Context, ids []uint) ([]*domain.Champion, error)
	List(ctx context.Context, filter ChampionFilter) ([]*domain.Champion, error)
	// ListByWinRate returns active champions by descending win-rate, ties in
	// insertion order. limit <= 0 returns every match.
	ListByWinRate(ctx context.Context, role domain.Role, limit int) ([]*domain.Champion, error)
	ListAll(ctx context.Context) ([]*domain.Champion, error)
	Update(ctx context.Context, champion *domain.Champion) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

type ProfileRepository interface {
	GetByChampionID(ctx context.Context, championID uint) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	DeleteByChampionID(ctx context.Context, championID uint) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id uint) (*domain.Item, error)
	GetByName(ctx context.Context, name string) (*domain.Item, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*domain.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*domain.Item, error)
	ListByUsage(ctx context.Context, limit int) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	SetActive(ctx context.Context, id uint, active bool) error
}

type ChampionItemRepository interface {
	Get(ctx context.Context, championID, itemID uint) (*domain.ChampionItem, error)
	// Upsert inserts the pair or updates its usage in place.
	Upsert(ctx context.Context, assoc *domain.ChampionItem) error
	CreateMany(ctx context.Context, assocs []*domain.ChampionItem) error
	Delete(ctx context.Context, championID, itemID uint) (bool, error)
	// DeleteByChampionIDExcept removes every association of the champion whose
	// item is not in keep.
	DeleteByChampionIDExcept(ctx context.Context, championID uint, keep []uint) error
	DeleteByChampionID(ctx context.Context, championID uint) error
	ListByChampionID(ctx context.Context, championID uint) ([]*domain.ChampionItem, error)
	// Build returns the champion's active items by descending pairing usage.
	Build(ctx context.Context, championID uint) ([]*domain.BuildEntry, error)
}

type MatchupRepository interface {
	Create(ctx context.Context, matchup *domain.Matchup) error
	GetByID(ctx context.Context, id uint) (*domain.Matchup, error)
	GetByPair(ctx context.Context, championID, opponentID uint) (*domain.Matchup, error)
	List(ctx context.Context) ([]*domain.Matchup, error)
	ListByChampionID(ctx context.Context, championID uint) ([]*domain.Matchup, error)
	UpdateWinRate(ctx context.Context, id uint, winRate float64) error
	Delete(ctx context.Context, id uint) (bool, error)
	// DeleteInvolving removes every row where the champion is either side.
	DeleteInvolving(ctx context.Context, championID uint) error
}

type UserProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetByID(ctx context.Context, id uint) (*domain.UserProfile, error)
	List(ctx context.Context, limit, offset int) ([]*domain.UserProfile, error)
	Update(ctx context.Context, profile *domain.UserProfile) error
	// ReplaceFavorites makes championIDs the exact favorite set, in order.
	ReplaceFavorites(ctx context.Context, profileID uint, championIDs []uint) error
	ListFavorites(ctx context.Context, profileID uint) ([]*domain.FavoriteChampion, error)
	DeleteFavoritesByChampionID(ctx context.Context, championID uint) error
}

// Transactor runs fn against repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(tx *Repositories) error) error
}

type Repositories struct {
	Champion     ChampionRepository
	Profile      ProfileRepository
	Item         ItemRepository
	ChampionItem ChampionItemRepository
	Matchup      MatchupRepository
	UserProfile  UserProfileRepository
	Tx           Transactor
}

package postgres

import (
	"context"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the database and migrates the schema.
func NewConnection(databaseURL string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := Open(databaseURL, logLevel)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Open connects without migrating. Constraint violations are translated into
// gorm's portable errors so the repositories can classify them.
func Open(databaseURL string, logLevel logger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
}

// Migrate creates or updates every table, parents first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Champion{},
		&domain.Profile{},
		&domain.Item{},
		&domain.ChampionItem{},
		&domain.Matchup{},
		&domain.UserProfile{},
		&domain.FavoriteChampion{},
	)
}

// Tables lists every table, children first, for truncation.
var Tables = []string{
	"user_profile_favorites",
	"user_profiles",
	"champion_vs_champion",
	"champion_items",
	"profiles",
	"items",
	"champions",
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Champion:     NewChampionRepository(db),
		Profile:      NewProfileRepository(db),
		Item:         NewItemRepository(db),
		ChampionItem: NewChampionItemRepository(db),
		Matchup:      NewMatchupRepository(db),
		UserProfile:  NewUserProfileRepository(db),
		Tx:           &transactor{db: db},
	}
}

type transactor struct {
	db *gorm.DB
}

// WithinTransaction nests as a savepoint when db is already a transaction.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(tx *repository.Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

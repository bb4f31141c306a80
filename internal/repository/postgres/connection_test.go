package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/repository"
	"github.com/dom/champion-stats/internal/repository/postgres"
	"github.com/dom/champion-stats/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAbort = errors.New("abort")

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		champion := &domain.Champion{Name: "Ahri", WinRate: 50, Active: true}
		if err := tx.Champion.Create(ctx, champion); err != nil {
			return err
		}
		return tx.Profile.Upsert(ctx, &domain.Profile{ChampionID: champion.ID, Description: "fox"})
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, testDB.Count(t, &domain.Champion{}))
	assert.EqualValues(t, 1, testDB.Count(t, &domain.Profile{}))
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		champion := &domain.Champion{Name: "Ahri", WinRate: 50, Active: true}
		if err := tx.Champion.Create(ctx, champion); err != nil {
			return err
		}
		if err := tx.Profile.Upsert(ctx, &domain.Profile{ChampionID: champion.ID, Description: "fox"}); err != nil {
			return err
		}
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	assert.EqualValues(t, 0, testDB.Count(t, &domain.Champion{}))
	assert.EqualValues(t, 0, testDB.Count(t, &domain.Profile{}))
}

func TestTransactor_RollsBackOnFailedWrite(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Item.Create(ctx, &domain.Item{Name: "Sheen", Active: true}); err != nil {
			return err
		}
		return tx.Item.Create(ctx, &domain.Item{Name: "Sheen", Active: true})
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.EqualValues(t, 0, testDB.Count(t, &domain.Item{}))
}

func TestTransactor_Nested(t *testing.T) {
	t.Run("inner failure rolls back to the savepoint", func(t *testing.T) {
		testDB := testutil.NewTestDB(t)
		repos := postgres.NewRepositories(testDB.DB)
		ctx := context.Background()

		err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
			if err := tx.Champion.Create(ctx, &domain.Champion{Name: "Garen", WinRate: 50, Active: true}); err != nil {
				return err
			}
			inner := tx.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
				if err := tx.Champion.Create(ctx, &domain.Champion{Name: "Zed", WinRate: 50, Active: true}); err != nil {
					return err
				}
				return errAbort
			})
			assert.ErrorIs(t, inner, errAbort)
			return nil
		})
		require.NoError(t, err)

		_, err = repos.Champion.GetByName(ctx, "Garen")
		assert.NoError(t, err)
		_, err = repos.Champion.GetByName(ctx, "Zed")
		assert.ErrorIs(t, err, domain.ErrChampionNotFound)
	})

	t.Run("outer failure discards committed savepoint", func(t *testing.T) {
		testDB := testutil.NewTestDB(t)
		repos := postgres.NewRepositories(testDB.DB)
		ctx := context.Background()

		err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
			if err := tx.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
				return tx.Champion.Create(ctx, &domain.Champion{Name: "Zed", WinRate: 50, Active: true})
			}); err != nil {
				return err
			}
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		assert.EqualValues(t, 0, testDB.Count(t, &domain.Champion{}))
	})
}

func TestChampionRepository_LockByIDs(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	c := testutil.SeedChampions(t, testDB.DB, 2)

	err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		locked, err := tx.Champion.LockByIDs(ctx, []uint{c[1].ID, 999, c[0].ID})
		if err != nil {
			return err
		}
		testutil.AssertChampionIDs(t, locked, c[0].ID, c[1].ID)
		return nil
	})
	require.NoError(t, err)
}

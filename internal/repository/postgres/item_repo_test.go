package postgres_test

import (
	"context"
	"testing"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/repository"
	"github.com/dom/champion-stats/internal/repository/postgres"
	"github.com/dom/champion-stats/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_CreateGetList(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewItemRepository(testDB.DB)
	ctx := context.Background()

	item := &domain.Item{Name: "Infinity Edge", Type: "Offensive", UsagePercentage: 10.5, Active: true}
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByName(ctx, "Infinity Edge")
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, 10.5, got.UsagePercentage)

	err = repo.Create(ctx, &domain.Item{Name: "Infinity Edge", Active: true})
	assert.ErrorIs(t, err, domain.ErrConflict)

	retired := testutil.NewItemBuilder().Inactive().Build(t, testDB.DB)

	listed, err := repo.List(ctx, repository.ItemFilter{Limit: 10})
	require.NoError(t, err)
	testutil.AssertItemIDs(t, listed, item.ID)

	listed, err = repo.List(ctx, repository.ItemFilter{Limit: 10, IncludeInactive: true})
	require.NoError(t, err)
	testutil.AssertItemIDs(t, listed, item.ID, retired.ID)

	byIDs, err := repo.GetByIDs(ctx, []uint{retired.ID, 999, item.ID})
	require.NoError(t, err)
	testutil.AssertItemIDs(t, byIDs, item.ID, retired.ID)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

package service_test

import (
	"context"
	"testing"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociationService_UpsertChampionItem(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	_, services := testutil.NewServices(t, testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().Build(t, testDB.DB)
	item := testutil.NewItemBuilder().Build(t, testDB.DB)

	firstID, err := services.Association.UpsertChampionItem(ctx, champion.ID, item.ID, 5.0)
	require.NoError(t, err)
	secondID, err := services.Association.UpsertChampionItem(ctx, champion.ID, item.ID, 9.0)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	assocs, err := services.Association.ListChampionItems(ctx, champion.ID)
	require.NoError(t, err)
	require.Len(t, assocs, 1)
	assert.Equal(t, 9.0, assocs[0].UsagePercentage)
}

func TestAssociationService_UpsertRejects(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	_, services := testutil.NewServices(t, testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().Build(t, testDB.DB)
	item := testutil.NewItemBuilder().Build(t, testDB.DB)

	_, err := services.Association.UpsertChampionItem(ctx, 999, item.ID, 5)
	assert.ErrorIs(t, err, domain.ErrChampionNotFound)

	_, err = services.Association.UpsertChampionItem(ctx, champion.ID, 999, 5)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = services.Association.UpsertChampionItem(ctx, champion.ID, item.ID, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Zero(t, testDB.Count(t, &domain.ChampionItem{}))
}

func TestAssociationService_RemoveChampionItem(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	_, services := testutil.NewServices(t, testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().Build(t, testDB.DB)
	item := testutil.NewItemBuilder().Build(t, testDB.DB)
	_, err := services.Association.UpsertChampionItem(ctx, champion.ID, item.ID, 5)
	require.NoError(t, err)

	require.NoError(t, services.Association.RemoveChampionItem(ctx, champion.ID, item.ID))
	// Removing an absent pair is a no-op
	require.NoError(t, services.Association.RemoveChampionItem(ctx, champion.ID, item.ID))

	assocs, err := services.Association.ListChampionItems(ctx, champion.ID)
	require.NoError(t, err)
	assert.Empty(t, assocs)

	_, err = services.Association.ListChampionItems(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrChampionNotFound)
}

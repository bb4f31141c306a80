package service_test

import (
	"context"
	"testing"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/dom/champion-stats/internal/service"
	"github.com/dom/champion-stats/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_CreateItem(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	_, services := testutil.NewServices(t, testDB.DB)
	ctx := context.Background()

	item, err := services.Item.CreateItem(ctx, service.CreateItemInput{Name: "Trinity Force", Type: "Offensive", UsagePercentage: 12})
	require.NoError(t, err)
	assert.True(t, item.Active)
	assert.Equal(t, 12.0, item.UsagePercentage)

	_, err = services.Item.CreateItem(ctx, service.CreateItemInput{Name: "Trinity Force"})
	assert.ErrorIs(t, err, domain.ErrItemNameTaken)

	_, err = services.Item.CreateItem(ctx, service.CreateItemInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = services.Item.CreateItem(ctx, service.CreateItemInput{Name: "Over", UsagePercentage: 120})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestItemService_UpdateAndSoftDelete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	_, services := testutil.NewServices(t, testDB.DB)
	ctx := context.Background()

	item, err := services.Item.CreateItem(ctx, service.CreateItemInput{Name: "Warmog's Armor", Type: "Defensive", UsagePercentage: 4})
	require.NoError(t, err)

	updated, err := services.Item.UpdateItem(ctx, item.ID, service.UpdateItemInput{UsagePercentage: domain.Some(0.0)})
	require.NoError(t, err)
	assert.Equal(t, "Warmog's Armor", updated.Name)
	assert.Equal(t, "Defensive", updated.Type)
	assert.Equal(t, 0.0, updated.UsagePercentage)

	removed, err := services.Item.SoftDeleteItem(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, removed.Active)

	listed, err := services.Item.ListItems(ctx, service.ListItemsInput{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	listed, err = services.Item.ListItems(ctx, service.ListItemsInput{IncludeInactive: true})
	require.NoError(t, err)
	testutil.AssertItemIDs(t, listed, item.ID)

	restored, err := services.Item.ActivateItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, restored.Active)

	_, err = services.Item.UpdateItem(ctx, 999, service.UpdateItemInput{})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemService_NameTakenByInactiveItem(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	_, services := testutil.NewServices(t, testDB.DB)
	ctx := context.Background()

	retired := testutil.NewItemBuilder().WithName("Sheen").Inactive().Build(t, testDB.DB)

	_, err := services.Item.CreateItem(ctx, service.CreateItemInput{Name: "Sheen"})
	assert.ErrorIs(t, err, domain.ErrItemNameTaken)
	assert.EqualValues(t, 1, testDB.Count(t, &domain.Item{}))

	got, err := services.Item.GetItem(ctx, retired.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestItemService_RenameToTakenName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	_, services := testutil.NewServices(t, testDB.DB)
	ctx := context.Background()

	testutil.NewItemBuilder().WithName("Sheen").Build(t, testDB.DB)
	testutil.NewItemBuilder().WithName("Tiamat").Inactive().Build(t, testDB.DB)
	item := testutil.NewItemBuilder().WithName("Phage").WithUsage(3).Build(t, testDB.DB)

	tests := []struct {
		name    string
		newName string
		wantErr error
	}{
		{"active item", "Sheen", domain.ErrItemNameTaken},
		{"inactive item", "Tiamat", domain.ErrItemNameTaken},
		{"surrounding spaces", "  Sheen ", domain.ErrItemNameTaken},
		{"blank", "   ", domain.ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.Item.UpdateItem(ctx, item.ID, service.UpdateItemInput{
				Name:            domain.Some(tt.newName),
				UsagePercentage: domain.Some(9.0),
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Rejected renames leave the row untouched
	got, err := services.Item.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phage", got.Name)
	assert.Equal(t, 3.0, got.UsagePercentage)

	// Keeping its own name is not a conflict
	renamed, err := services.Item.UpdateItem(ctx, item.ID, service.UpdateItemInput{Name: domain.Some("Phage")})
	require.NoError(t, err)
	assert.Equal(t, "Phage", renamed.Name)
}

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

func TestChampionRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	champion := &domain.Champion{
		Name:    "Aatrox",
		Role:    domain.RoleFighter,
		WinRate: 51.2,
		Active:  true,
	}
	err := repo.Create(ctx, champion)
	require.NoError(t, err)
	assert.NotZero(t, champion.ID)

	got, err := repo.GetByID(ctx, champion.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aatrox", got.Name)
	assert.Equal(t, domain.RoleFighter, got.Role)
	assert.Equal(t, 51.2, got.WinRate)
	assert.True(t, got.Active)
	assert.Nil(t, got.Profile)
	assert.Empty(t, got.Items)

	byName, err := repo.GetByName(ctx, "Aatrox")
	require.NoError(t, err)
	assert.Equal(t, champion.ID, byName.ID)
}

func TestChampionRepository_ZeroRatesAreStored(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	champion := &domain.Champion{Name: "Zero", Role: domain.RoleTank, WinRate: 0, Active: false}
	require.NoError(t, repo.Create(ctx, champion))

	got, err := repo.GetByID(ctx, champion.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.WinRate)
	assert.False(t, got.Active)
}

func TestChampionRepository_GetByID_NotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrChampionNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByName(ctx, "Nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChampionRepository_DuplicateNameIsConflict(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Champion{Name: "Ahri", Role: domain.RoleMage, Active: true}))

	err := repo.Create(ctx, &domain.Champion{Name: "Ahri", Role: domain.RoleMage, Active: true})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestChampionRepository_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	a := testutil.NewChampionBuilder().WithName("A").WithRole(domain.RoleMage).Build(t, testDB.DB)
	b := testutil.NewChampionBuilder().WithName("B").WithRole(domain.RoleTank).Build(t, testDB.DB)
	c := testutil.NewChampionBuilder().WithName("C").WithRole(domain.RoleMage).Inactive().Build(t, testDB.DB)
	d := testutil.NewChampionBuilder().WithName("D").WithRole(domain.RoleMage).Build(t, testDB.DB)

	t.Run("active only by default", func(t *testing.T) {
		got, err := repo.List(ctx, repository.ChampionFilter{Limit: 100})
		require.NoError(t, err)
		testutil.AssertChampionIDs(t, got, a.ID, b.ID, d.ID)
	})

	t.Run("include inactive", func(t *testing.T) {
		got, err := repo.List(ctx, repository.ChampionFilter{Limit: 100, IncludeInactive: true})
		require.NoError(t, err)
		testutil.AssertChampionIDs(t, got, a.ID, b.ID, c.ID, d.ID)
	})

	t.Run("skip and limit", func(t *testing.T) {
		got, err := repo.List(ctx, repository.ChampionFilter{Skip: 1, Limit: 1})
		require.NoError(t, err)
		testutil.AssertChampionIDs(t, got, b.ID)
	})

	t.Run("by role", func(t *testing.T) {
		got, err := repo.List(ctx, repository.ChampionFilter{Limit: 100, Role: domain.RoleMage})
		require.NoError(t, err)
		testutil.AssertChampionIDs(t, got, a.ID, d.ID)
	})

	t.Run("skip past end", func(t *testing.T) {
		got, err := repo.List(ctx, repository.ChampionFilter{Skip: 10, Limit: 100})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestChampionRepository_ListByWinRate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	low := testutil.NewChampionBuilder().WithRates(45, 0, 0).Build(t, testDB.DB)
	tieFirst := testutil.NewChampionBuilder().WithRates(53, 0, 0).Build(t, testDB.DB)
	tieSecond := testutil.NewChampionBuilder().WithRates(53, 0, 0).Build(t, testDB.DB)
	testutil.NewChampionBuilder().WithRates(99, 0, 0).Inactive().Build(t, testDB.DB)
	tank := testutil.NewChampionBuilder().WithRole(domain.RoleTank).WithRates(50, 0, 0).Build(t, testDB.DB)

	got, err := repo.ListByWinRate(ctx, "", 0)
	require.NoError(t, err)
	testutil.AssertChampionIDs(t, got, tieFirst.ID, tieSecond.ID, tank.ID, low.ID)

	got, err = repo.ListByWinRate(ctx, "", 2)
	require.NoError(t, err)
	testutil.AssertChampionIDs(t, got, tieFirst.ID, tieSecond.ID)

	got, err = repo.ListByWinRate(ctx, domain.RoleTank, 0)
	require.NoError(t, err)
	testutil.AssertChampionIDs(t, got, tank.ID)
}

func TestChampionRepository_SetActive(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.SetActive(ctx, champion.ID, false))
	got, err := repo.GetByID(ctx, champion.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	// Repeating the same flag is not an error
	require.NoError(t, repo.SetActive(ctx, champion.ID, false))

	err = repo.SetActive(ctx, 999, true)
	assert.ErrorIs(t, err, domain.ErrChampionNotFound)
}

func TestChampionRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().WithName("Old").Build(t, testDB.DB)
	champion.Name = "New"
	champion.BanRate = 3.5
	require.NoError(t, repo.Update(ctx, champion))

	got, err := repo.GetByID(ctx, champion.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, 3.5, got.BanRate)
}

func TestChampionRepository_DetailsPreloaded(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().Build(t, testDB.DB)
	first := testutil.NewItemBuilder().WithName("Sunfire").Build(t, testDB.DB)
	second := testutil.NewItemBuilder().WithName("Bramble").Build(t, testDB.DB)

	require.NoError(t, repos.Profile.Upsert(ctx, &domain.Profile{ChampionID: champion.ID, Description: "desc", Lore: "lore"}))
	require.NoError(t, repos.ChampionItem.CreateMany(ctx, []*domain.ChampionItem{
		{ChampionID: champion.ID, ItemID: second.ID},
		{ChampionID: champion.ID, ItemID: first.ID},
	}))

	got, err := repos.Champion.GetByID(ctx, champion.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "desc", got.Profile.Description)
	assert.Equal(t, []uint{second.ID, first.ID}, got.ItemIDs())
	require.NotNil(t, got.Items[0].Item)
	assert.Equal(t, "Bramble", got.Items[0].Item.Name)
}

func TestChampionRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().Build(t, testDB.DB)
	require.NoError(t, repo.Delete(ctx, champion.ID))

	_, err := repo.GetByID(ctx, champion.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, champion.ID)
	assert.ErrorIs(t, err, domain.ErrChampionNotFound)
}

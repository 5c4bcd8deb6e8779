package repository

import (
	"context"
	"testing"

	"github.com/edvall/cratrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteRepo_CreateAndGetByNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSiteRepo(db)
	ctx := context.Background()

	site := testutil.NewTestSite("101", "City General", testutil.WithLocation("Lyon, FR"))
	require.NoError(t, repo.Create(ctx, site))

	fetched, err := repo.GetByNumber(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, site.ID, fetched.ID)
	assert.Equal(t, "City General", fetched.Name)
	assert.Equal(t, "Lyon, FR", fetched.Location)
}

func TestSiteRepo_GetByNumber_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSiteRepo(db)

	_, err := repo.GetByNumber(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSiteRepo_List_OrderedByNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSiteRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSite("202", "Second")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSite("101", "First")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "101", list[0].Number)
	assert.Equal(t, "202", list[1].Number)
}

func TestSiteRepo_UpdateLogistics(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSiteRepo(db)
	ctx := context.Background()

	site := testutil.NewTestSite("101", "City General")
	require.NoError(t, repo.Create(ctx, site))

	site.BestHotel = "Hotel du Parc"
	site.ParkingSpot = "Level 2, visitor row"
	site.DoorCode = "4471#"
	require.NoError(t, repo.UpdateLogistics(ctx, site))

	fetched, err := repo.GetByNumber(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, "Hotel du Parc", fetched.BestHotel)
	assert.Equal(t, "Level 2, visitor row", fetched.ParkingSpot)
	assert.Equal(t, "4471#", fetched.DoorCode)

	missing := testutil.NewTestSite("303", "Ghost")
	assert.ErrorIs(t, repo.UpdateLogistics(ctx, missing), ErrNotFound)
}

func TestProjectRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("ONC-22", "Oncology Phase II")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("CARD-07", "Cardio Registry")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "CARD-07", list[0].Code)
	assert.Equal(t, "ONC-22", list[1].Code)
}

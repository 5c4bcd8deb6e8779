package repository

import (
	"context"
	"testing"
	"time"

	"github.com/edvall/cratrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAchievementRepo(db)
	ctx := context.Background()

	older := testutil.NewTestAchievement("proj-1", "Closed 12 queries",
		testutil.WithAchievementDate(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))
	newer := testutil.NewTestAchievement("proj-1", "Resolved enrollment hold",
		testutil.WithAchievementDate(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)),
		testutil.WithReviewReady(true))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.True(t, list[0].ReviewReady)
	assert.False(t, list[1].ReviewReady)
}

func TestAchievementRepo_ListBetween(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAchievementRepo(db)
	ctx := context.Background()

	inside := testutil.NewTestAchievement("proj-1", "Audit prep done",
		testutil.WithAchievementDate(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)))
	outside := testutil.NewTestAchievement("proj-1", "Old win",
		testutil.WithAchievementDate(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, inside))
	require.NoError(t, repo.Create(ctx, outside))

	list, err := repo.ListBetween(ctx,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, inside.ID, list[0].ID)
}

func TestTimesheetRepo_CreateListDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestEntry("proj-1", "Monitoring", 6.5,
		testutil.WithEntryNotes("IMV at site 101"))
	require.NoError(t, repo.Create(ctx, entry))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 6.5, list[0].Hours)
	assert.Equal(t, "IMV at site 101", list[0].Notes)
	assert.Empty(t, list[0].AchievementID)

	require.NoError(t, repo.Delete(ctx, entry.ID))
	assert.ErrorIs(t, repo.Delete(ctx, entry.ID), ErrNotFound)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTimesheetRepo_LinkedAchievementRoundTrips(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestEntry("proj-1", "Monitoring", 8,
		testutil.WithAchievementID("ach-42"))
	require.NoError(t, repo.Create(ctx, entry))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ach-42", list[0].AchievementID)
}

func TestTimesheetRepo_SumHoursBetween(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimesheetRepo(db)
	ctx := context.Background()

	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry("proj-1", "Monitoring", 4, testutil.WithEntryDate(feb))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry("proj-1", "Travel", 2.5, testutil.WithEntryDate(feb.AddDate(0, 0, 3)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry("proj-1", "Admin", 9, testutil.WithEntryDate(feb.AddDate(0, 2, 0)))))

	total, err := repo.SumHoursBetween(ctx,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 6.5, total)

	// Empty range sums to zero, not an error.
	total, err = repo.SumHoursBetween(ctx,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, total)
}

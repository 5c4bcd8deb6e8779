package service

import (
	"context"
	"errors"
	"testing"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/edvall/cratrack/internal/sanitize"
	"github.com/edvall/cratrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrackerService(t *testing.T) TrackerService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewTrackerService(
		repository.NewSQLiteAchievementRepo(db),
		repository.NewSQLiteTimesheetRepo(db),
		testutil.NewTestUoW(db),
		sanitize.New(sanitize.DefaultTerms),
		nil,
	)
}

func TestTrackerService_LogWin_SanitizesFreeText(t *testing.T) {
	svc := newTrackerService(t)
	ctx := context.Background()

	win := testutil.NewTestAchievement("proj-1", "Resolved SAE query for JS-123")
	win.Impact = "Patient JS-123 DOB 01/05/1980 on MK-3475 dosing clarified"
	require.NoError(t, svc.LogWin(ctx, win))

	wins, err := svc.ListWins(ctx)
	require.NoError(t, err)
	require.Len(t, wins, 1)
	assert.Equal(t, "Resolved SAE query for [PARTICIPANT_ID]", wins[0].Title)
	assert.Equal(t, "Patient [PARTICIPANT_ID] DOB [DATE_REMOVED] on [STUDY_DRUG] dosing clarified", wins[0].Impact)
}

func TestTrackerService_LogWin_RequiresTitle(t *testing.T) {
	svc := newTrackerService(t)

	win := testutil.NewTestAchievement("proj-1", "")
	win.Title = ""
	assert.ErrorIs(t, svc.LogWin(context.Background(), win), domain.ErrValidation)
}

func TestTrackerService_LogTimesheet_Plain(t *testing.T) {
	svc := newTrackerService(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("proj-1", "Monitoring", 7.5)
	require.NoError(t, svc.LogTimesheet(ctx, entry, false))

	list, err := svc.ListTimesheet(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].AchievementID)

	wins, err := svc.ListWins(ctx)
	require.NoError(t, err)
	assert.Empty(t, wins)
}

func TestTrackerService_LogTimesheet_AsWinLinksAchievement(t *testing.T) {
	svc := newTrackerService(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("proj-1", "Monitoring", 8,
		testutil.WithEntryNotes("Cleaned up delegation log backlog"))
	require.NoError(t, svc.LogTimesheet(ctx, entry, true))

	wins, err := svc.ListWins(ctx)
	require.NoError(t, err)
	require.Len(t, wins, 1)
	assert.Equal(t, "Monitoring", wins[0].Category)
	assert.Equal(t, "Cleaned up delegation log backlog", wins[0].Impact)

	list, err := svc.ListTimesheet(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, wins[0].ID, list[0].AchievementID)
}

func TestTrackerService_LogTimesheet_AsWinRollsBackTogether(t *testing.T) {
	db := testutil.NewTestDB(t)
	achievements := repository.NewSQLiteAchievementRepo(db)
	timesheet := repository.NewSQLiteTimesheetRepo(db)

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: db, FailOn: 2, Err: boom}
	svc := NewTrackerService(achievements, timesheet, uow, sanitize.New(nil), nil)

	entry := testutil.NewTestEntry("proj-1", "Monitoring", 4)
	err := svc.LogTimesheet(context.Background(), entry, true)
	require.ErrorIs(t, err, boom)

	// Neither the achievement nor the entry may survive.
	ctx := context.Background()
	wins, err := achievements.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, wins)
	list, err := timesheet.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTrackerService_LogTimesheet_Validation(t *testing.T) {
	svc := newTrackerService(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("proj-1", "Monitoring", 0)
	assert.ErrorIs(t, svc.LogTimesheet(ctx, entry, false), domain.ErrValidation)

	entry = testutil.NewTestEntry("proj-1", "", 2)
	assert.ErrorIs(t, svc.LogTimesheet(ctx, entry, false), domain.ErrValidation)
}

func TestTrackerService_DeleteTimesheet(t *testing.T) {
	svc := newTrackerService(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry("proj-1", "Travel", 3)
	require.NoError(t, svc.LogTimesheet(ctx, entry, false))
	require.NoError(t, svc.DeleteTimesheet(ctx, entry.ID))
	assert.ErrorIs(t, svc.DeleteTimesheet(ctx, entry.ID), repository.ErrNotFound)
}

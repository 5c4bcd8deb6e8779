package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/edvall/cratrack/internal/repository"
	"github.com/edvall/cratrack/internal/review"
	"github.com/edvall/cratrack/internal/sanitize"
	"github.com/edvall/cratrack/internal/service"
	"github.com/edvall/cratrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	visitRepo := repository.NewSQLiteVisitRepo(db)
	achievementRepo := repository.NewSQLiteAchievementRepo(db)
	timesheetRepo := repository.NewSQLiteTimesheetRepo(db)
	siteRepo := repository.NewSQLiteSiteRepo(db)
	projectRepo := repository.NewSQLiteProjectRepo(db)
	toolRepo := repository.NewSQLiteToolRepo(db)

	sanitizer := sanitize.New(sanitize.DefaultTerms)

	return &App{
		Visits:  service.NewVisitService(visitRepo, nil),
		Tracker: service.NewTrackerService(achievementRepo, timesheetRepo, testutil.NewTestUoW(db), sanitizer, nil),
		Sites:   service.NewSiteService(siteRepo, projectRepo),
		Reports: service.NewReportService(visitRepo, achievementRepo, timesheetRepo),
		Toolkit: service.NewToolkitService(toolRepo),
		Reviews: review.NewService(visitRepo, nil, sanitizer, nil),
		// Serve left nil — the HTTP server is not exercised here.
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVisitCmd_CreateShowComplete(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "visit", "create",
		"--site", "site-101", "--type", "SIV", "--date", "2026-09-15")
	require.NoError(t, err)
	assert.Contains(t, out, "SIV VISIT")
	assert.Contains(t, out, "Checklist")

	visits, err := app.Visits.ListUpcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, visits, 1)
	id := visits[0].ID

	out, err = executeCmd(t, app, "visit", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "site-101")
	assert.Contains(t, out, "[ ]")

	out, err = executeCmd(t, app, "visit", "complete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "marked completed")

	out, err = executeCmd(t, app, "visit", "list", "--site", "site-101")
	require.NoError(t, err)
	assert.Contains(t, out, "completed")
}

func TestVisitCmd_CreateRejectsUnknownType(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "visit", "create",
		"--site", "site-101", "--type", "XYZ", "--date", "2026-09-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown visit type")
}

func TestVisitCmd_ReviewFallsBackOffline(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "visit", "create",
		"--site", "site-101", "--date", "2026-09-15")
	require.NoError(t, err)
	visits, err := app.Visits.ListUpcoming(context.Background())
	require.NoError(t, err)

	out, err := executeCmd(t, app, "visit", "review", visits[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "IMV Review (offline)")
}

func TestWinCmd_LogSanitizes(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "win", "log",
		"--title", "Closed SAE query for JS-123", "--category", "Safety")
	require.NoError(t, err)
	assert.Contains(t, out, "[PARTICIPANT_ID]")
	assert.NotContains(t, out, "JS-123")

	out, err = executeCmd(t, app, "win", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Safety")
}

func TestTimesheetCmd_LogAsWin(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "timesheet", "log",
		"--activity", "Monitoring", "--hours", "6.5", "--as-win")
	require.NoError(t, err)
	assert.Contains(t, out, "win recorded")

	out, err = executeCmd(t, app, "timesheet", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 6.5 hours")

	wins, err := app.Tracker.ListWins(context.Background())
	require.NoError(t, err)
	require.Len(t, wins, 1)
	assert.Equal(t, "6.5h Monitoring", wins[0].Title)
}

func TestSiteCmd_SetAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "site", "set",
		"--number", "101", "--name", "City General", "--parking", "Visitor row B")
	require.NoError(t, err)
	assert.Contains(t, out, "CITY GENERAL")
	assert.Contains(t, out, "Visitor row B")

	out, err = executeCmd(t, app, "site", "show", "101")
	require.NoError(t, err)
	assert.Contains(t, out, "Visitor row B")

	_, err = executeCmd(t, app, "site", "show", "404")
	require.Error(t, err)
}

func TestProjectCmd_AddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "project", "add", "--code", "ONC-22", "--name", "Oncology Phase II")
	require.NoError(t, err)
	assert.Contains(t, out, "ONC-22")

	out, err = executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Oncology Phase II")
}

func TestDossierCmd_RendersMarkdown(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "dossier", "--year", "2026", "--month", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "# Clinical Performance Dossier")
	assert.Contains(t, out, "**Reporting Period:** 2026-02-01")
}

func TestToolCmd_GenerateAndCalc(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "tool", "generate", "bsa", "calculator", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "bsa-mosteller")
	assert.Contains(t, out, "Saved to toolkit")

	out, err = executeCmd(t, app, "tool", "calc", "calvert", "target_auc=5", "gfr=60")
	require.NoError(t, err)
	assert.Contains(t, out, "425.00 mg")

	out, err = executeCmd(t, app, "tool", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "bsa-mosteller")

	_, err = executeCmd(t, app, "tool", "calc", "calvert", "gfr")
	require.Error(t, err)
}

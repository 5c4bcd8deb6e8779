package service

import (
	"context"
	"testing"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/edvall/cratrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_MonthlyDossier(t *testing.T) {
	db := testutil.NewTestDB(t)
	visits := repository.NewSQLiteVisitRepo(db)
	achievements := repository.NewSQLiteAchievementRepo(db)
	timesheet := repository.NewSQLiteTimesheetRepo(db)
	svc := NewReportService(visits, achievements, timesheet)
	ctx := context.Background()

	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, visits.Create(ctx, testutil.NewTestVisit("site-101", domain.VisitIMV,
		testutil.WithVisitStatus(domain.VisitCompleted),
		testutil.WithVisitDate(feb),
		testutil.WithProgress(100))))
	require.NoError(t, visits.Create(ctx, testutil.NewTestVisit("site-202", domain.VisitCOV,
		testutil.WithVisitDate(feb.AddDate(0, 0, 5)))))

	require.NoError(t, achievements.Create(ctx, testutil.NewTestAchievement("proj-1", "Closed 12 queries",
		testutil.WithAchievementDate(feb), testutil.WithCategory("Data Quality"))))
	require.NoError(t, achievements.Create(ctx, testutil.NewTestAchievement("proj-1", "Audit prep",
		testutil.WithAchievementDate(feb.AddDate(0, 0, 2)), testutil.WithCategory("Data Quality"))))
	require.NoError(t, achievements.Create(ctx, testutil.NewTestAchievement("proj-1", "Trained new CRC",
		testutil.WithAchievementDate(feb.AddDate(0, 0, 3)), testutil.WithCategory("Site Relationships"))))

	require.NoError(t, timesheet.Create(ctx, testutil.NewTestEntry("proj-1", "Monitoring", 6.5,
		testutil.WithEntryDate(feb))))
	require.NoError(t, timesheet.Create(ctx, testutil.NewTestEntry("proj-1", "Travel", 2,
		testutil.WithEntryDate(feb.AddDate(0, 0, 1)))))

	md, err := svc.MonthlyDossier(ctx, 2026, time.February)
	require.NoError(t, err)

	assert.Contains(t, md, "# Clinical Performance Dossier")
	assert.Contains(t, md, "**Reporting Period:** 2026-02-01 — 2026-02-28")
	// Both sites were touched in February; only one visit completed.
	assert.Contains(t, md, "managed **2 sites**")
	assert.Contains(t, md, "executing a total of **1 monitoring visits**")
	assert.Contains(t, md, "**Total Monitoring Volume:** 8.5 Hours")
	// Busiest category first.
	assert.Contains(t, md, "**Key Impact Areas:** Data Quality, Site Relationships")
	assert.Contains(t, md, "### Data Quality")
	assert.Contains(t, md, "| 2026-02-10 | **IMV** | site-101 | 100% |")
	assert.NotContains(t, md, "site-202 |")
}

func TestReportService_MonthlyDossier_EmptyMonth(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewReportService(
		repository.NewSQLiteVisitRepo(db),
		repository.NewSQLiteAchievementRepo(db),
		repository.NewSQLiteTimesheetRepo(db))

	md, err := svc.MonthlyDossier(context.Background(), 2026, time.June)
	require.NoError(t, err)
	assert.Contains(t, md, "_No specific achievements logged for this period._")
	assert.Contains(t, md, "_No visits recorded in this period._")
	assert.Contains(t, md, "**Key Impact Areas:** General Operations")
	assert.Contains(t, md, "**Total Monitoring Volume:** 0.0 Hours")
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/db"
	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/metrics"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/edvall/cratrack/internal/sanitize"
	"github.com/google/uuid"
)

type trackerService struct {
	achievements repository.AchievementRepo
	timesheet    repository.TimesheetRepo
	uow          db.UnitOfWork
	sanitizer    *sanitize.Sanitizer
	metrics      *metrics.Metrics
}

func NewTrackerService(achievements repository.AchievementRepo, timesheet repository.TimesheetRepo, uow db.UnitOfWork, sanitizer *sanitize.Sanitizer, m *metrics.Metrics) TrackerService {
	return &trackerService{
		achievements: achievements,
		timesheet:    timesheet,
		uow:          uow,
		sanitizer:    sanitizer,
		metrics:      m,
	}
}

// LogWin records a site achievement. Free-text fields pass through the
// sanitizer before anything touches storage, so PII never lands on disk.
func (s *trackerService) LogWin(ctx context.Context, win *domain.SiteAchievement) error {
	if win.Title == "" {
		return fmt.Errorf("win title is required: %w", domain.ErrValidation)
	}
	if win.ID == "" {
		win.ID = uuid.New().String()
	}
	if win.Date.IsZero() {
		win.Date = time.Now().UTC()
	}
	s.sanitizeWin(win)
	return s.achievements.Create(ctx, win)
}

func (s *trackerService) ListWins(ctx context.Context) ([]*domain.SiteAchievement, error) {
	return s.achievements.List(ctx)
}

// LogTimesheet records an hours entry. With asWin set, a linked achievement
// is created from the entry's notes in the same transaction: either both rows
// land or neither does.
func (s *trackerService) LogTimesheet(ctx context.Context, entry *domain.TimesheetEntry, asWin bool) error {
	if entry.Hours <= 0 {
		return fmt.Errorf("hours must be positive: %w", domain.ErrValidation)
	}
	if entry.ActivityType == "" {
		return fmt.Errorf("activity type is required: %w", domain.ErrValidation)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	entry.Notes = s.sanitizeField(entry.Notes, "notes")

	if !asWin {
		return s.timesheet.Create(ctx, entry)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAchievements := repository.NewSQLiteAchievementRepo(tx)
		txTimesheet := repository.NewSQLiteTimesheetRepo(tx)

		win := &domain.SiteAchievement{
			ID:        uuid.New().String(),
			Date:      entry.Date,
			ProjectID: entry.ProjectID,
			Category:  entry.ActivityType,
			Title:     fmt.Sprintf("%.1fh %s", entry.Hours, entry.ActivityType),
			Impact:    entry.Notes,
		}
		if err := txAchievements.Create(ctx, win); err != nil {
			return err
		}
		entry.AchievementID = win.ID
		return txTimesheet.Create(ctx, entry)
	})
}

func (s *trackerService) ListTimesheet(ctx context.Context) ([]*domain.TimesheetEntry, error) {
	return s.timesheet.List(ctx)
}

func (s *trackerService) DeleteTimesheet(ctx context.Context, id string) error {
	return s.timesheet.Delete(ctx, id)
}

func (s *trackerService) sanitizeWin(win *domain.SiteAchievement) {
	win.Title = s.sanitizeField(win.Title, "title")
	win.Impact = s.sanitizeField(win.Impact, "impact")
}

func (s *trackerService) sanitizeField(text, field string) string {
	clean, changed := s.sanitizer.Sanitize(text)
	if changed {
		s.metrics.IncrementSanitizerRedactions(field)
	}
	return clean
}

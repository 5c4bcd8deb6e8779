package testutil

import (
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/google/uuid"
)

// Visit options
type VisitOption func(*domain.Visit)

func WithVisitMode(m domain.VisitMode) VisitOption {
	return func(v *domain.Visit) {
		v.Mode = m
	}
}

func WithVisitStatus(s domain.VisitStatus) VisitOption {
	return func(v *domain.Visit) {
		v.Status = s
	}
}

func WithVisitDate(d time.Time) VisitOption {
	return func(v *domain.Visit) {
		v.Date = d
	}
}

func WithChecklist(items []domain.ChecklistItem) VisitOption {
	return func(v *domain.Visit) {
		v.Checklist = items
	}
}

func WithIsf(items []domain.IsfItem) VisitOption {
	return func(v *domain.Visit) {
		v.Isf = items
	}
}

func WithProgress(percent int) VisitOption {
	return func(v *domain.Visit) {
		v.ProgressPercent = percent
	}
}

func NewTestVisit(siteID string, visitType domain.VisitType, opts ...VisitOption) *domain.Visit {
	id := uuid.New().String()
	v := &domain.Visit{
		ID:        id,
		SiteID:    siteID,
		Type:      visitType,
		Mode:      domain.ModeOnSite,
		Date:      time.Now().UTC().AddDate(0, 0, 7),
		Status:    domain.VisitScheduled,
		Checklist: NewTestChecklist(id, 3, 0),
		Isf:       []domain.IsfItem{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewTestChecklist builds a checklist of total items with the first completed
// items marked done.
func NewTestChecklist(visitID string, total, completed int) []domain.ChecklistItem {
	items := make([]domain.ChecklistItem, total)
	for i := range items {
		items[i] = domain.ChecklistItem{
			ID:        fmt.Sprintf("%s-%d", visitID, i),
			Label:     fmt.Sprintf("Task %d", i+1),
			Category:  "General",
			Completed: i < completed,
		}
	}
	return items
}

// Site options
type SiteOption func(*domain.Site)

func WithLocation(loc string) SiteOption {
	return func(s *domain.Site) {
		s.Location = loc
	}
}

func WithSiteNotes(notes string) SiteOption {
	return func(s *domain.Site) {
		s.Notes = notes
	}
}

func NewTestSite(number, name string, opts ...SiteOption) *domain.Site {
	s := &domain.Site{
		ID:     uuid.New().String(),
		Number: number,
		Name:   name,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestProject(code, name string) *domain.Project {
	return &domain.Project{
		ID:   uuid.New().String(),
		Code: code,
		Name: name,
	}
}

// Achievement options
type AchievementOption func(*domain.SiteAchievement)

func WithAchievementDate(d time.Time) AchievementOption {
	return func(a *domain.SiteAchievement) {
		a.Date = d
	}
}

func WithCategory(c string) AchievementOption {
	return func(a *domain.SiteAchievement) {
		a.Category = c
	}
}

func WithReviewReady(ready bool) AchievementOption {
	return func(a *domain.SiteAchievement) {
		a.ReviewReady = ready
	}
}

func NewTestAchievement(projectID, title string, opts ...AchievementOption) *domain.SiteAchievement {
	a := &domain.SiteAchievement{
		ID:        uuid.New().String(),
		Date:      time.Now().UTC(),
		ProjectID: projectID,
		Category:  "Monitoring",
		Title:     title,
		Impact:    "Kept the site on schedule",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Timesheet options
type EntryOption func(*domain.TimesheetEntry)

func WithEntryDate(d time.Time) EntryOption {
	return func(e *domain.TimesheetEntry) {
		e.Date = d
	}
}

func WithAchievementID(id string) EntryOption {
	return func(e *domain.TimesheetEntry) {
		e.AchievementID = id
	}
}

func WithEntryNotes(notes string) EntryOption {
	return func(e *domain.TimesheetEntry) {
		e.Notes = notes
	}
}

func NewTestEntry(projectID, activityType string, hours float64, opts ...EntryOption) *domain.TimesheetEntry {
	e := &domain.TimesheetEntry{
		ID:           uuid.New().String(),
		Date:         time.Now().UTC(),
		ProjectID:    projectID,
		ActivityType: activityType,
		Hours:        hours,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

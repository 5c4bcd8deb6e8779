package repository

import (
	"context"
	"time"

	"github.com/edvall/cratrack/internal/domain"
)

type VisitRepo interface {
	Create(ctx context.Context, v *domain.Visit) error
	GetByID(ctx context.Context, id string) (*domain.Visit, error)
	ListBySite(ctx context.Context, siteID string) ([]*domain.Visit, error)
	ListUpcoming(ctx context.Context) ([]*domain.Visit, error)
	ListCompletedBetween(ctx context.Context, from, to time.Time) ([]*domain.Visit, error)
	CountActiveSitesBetween(ctx context.Context, from, to time.Time) (int, error)
	UpdateChecklist(ctx context.Context, id string, items []domain.ChecklistItem, percent int, status domain.VisitStatus) error
	UpdateIsf(ctx context.Context, id string, items []domain.IsfItem) error
	SetStatus(ctx context.Context, id string, status domain.VisitStatus) error
}

type SiteRepo interface {
	Create(ctx context.Context, s *domain.Site) error
	GetByNumber(ctx context.Context, number string) (*domain.Site, error)
	List(ctx context.Context) ([]*domain.Site, error)
	UpdateLogistics(ctx context.Context, s *domain.Site) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	List(ctx context.Context) ([]*domain.Project, error)
}

type AchievementRepo interface {
	Create(ctx context.Context, a *domain.SiteAchievement) error
	List(ctx context.Context) ([]*domain.SiteAchievement, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.SiteAchievement, error)
}

type TimesheetRepo interface {
	Create(ctx context.Context, e *domain.TimesheetEntry) error
	List(ctx context.Context) ([]*domain.TimesheetEntry, error)
	Delete(ctx context.Context, id string) error
	SumHoursBetween(ctx context.Context, from, to time.Time) (float64, error)
}

type ToolRepo interface {
	Save(ctx context.Context, tool *domain.Tool) error
	List(ctx context.Context) ([]*domain.Tool, error)
}

type LeadRepo interface {
	Create(ctx context.Context, l *domain.Lead) error
}

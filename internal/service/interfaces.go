package service

import (
	"context"
	"time"

	"github.com/edvall/cratrack/internal/domain"
)

type VisitService interface {
	Create(ctx context.Context, siteID string, visitType domain.VisitType, mode domain.VisitMode, date time.Time) (*domain.Visit, error)
	GetByID(ctx context.Context, id string) (*domain.Visit, error)
	ListBySite(ctx context.Context, siteID string) ([]*domain.Visit, error)
	ListUpcoming(ctx context.Context) ([]*domain.Visit, error)
	UpdateChecklist(ctx context.Context, id string, items []domain.ChecklistItem) (*domain.Visit, error)
	UpdateIsf(ctx context.Context, id string, items []domain.IsfItem) (*domain.Visit, error)
	Complete(ctx context.Context, id string) (*domain.Visit, error)
}

type TrackerService interface {
	LogWin(ctx context.Context, win *domain.SiteAchievement) error
	ListWins(ctx context.Context) ([]*domain.SiteAchievement, error)
	LogTimesheet(ctx context.Context, entry *domain.TimesheetEntry, asWin bool) error
	ListTimesheet(ctx context.Context) ([]*domain.TimesheetEntry, error)
	DeleteTimesheet(ctx context.Context, id string) error
}

type SiteService interface {
	Upsert(ctx context.Context, site *domain.Site) (*domain.Site, error)
	GetByNumber(ctx context.Context, number string) (*domain.Site, error)
	List(ctx context.Context) ([]*domain.Site, error)
	CreateProject(ctx context.Context, code, name string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
}

type ReportService interface {
	MonthlyDossier(ctx context.Context, year int, month time.Month) (string, error)
}

type ToolkitService interface {
	GenerateTool(ctx context.Context, query string) (*domain.Tool, error)
	Calculate(ctx context.Context, formula string, inputs map[string]float64) (*domain.CalcResult, error)
	SaveTool(ctx context.Context, tool *domain.Tool) error
	ListTools(ctx context.Context) ([]*domain.Tool, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edvall/cratrack/internal/catalog"
	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/metrics"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/google/uuid"
)

type visitService struct {
	visits   repository.VisitRepo
	metrics  *metrics.Metrics
	observer UseCaseObserver
}

func NewVisitService(visits repository.VisitRepo, m *metrics.Metrics, observers ...UseCaseObserver) VisitService {
	return &visitService{visits: visits, metrics: m, observer: useCaseObserverOrNoop(observers)}
}

// Create instantiates a visit from the checklist catalog. Unknown visit types
// fall back to the default template rather than failing: a visit must always
// be creatable even when its type has no dedicated checklist.
func (s *visitService) Create(ctx context.Context, siteID string, visitType domain.VisitType, mode domain.VisitMode, date time.Time) (*domain.Visit, error) {
	if siteID == "" {
		return nil, fmt.Errorf("site id is required: %w", domain.ErrValidation)
	}
	if mode == "" {
		mode = domain.ModeOnSite
	}

	id := uuid.New().String()
	visit := &domain.Visit{
		ID:        id,
		SiteID:    siteID,
		Type:      visitType,
		Mode:      mode,
		Date:      date.UTC(),
		Status:    domain.VisitScheduled,
		Checklist: catalog.Checklist(id, visitType, mode),
		Isf:       catalog.IsfItems(id),
	}

	err := observe(ctx, s.observer, "visit.create", map[string]any{
		"site_id": siteID,
		"type":    string(visitType),
		"mode":    string(mode),
	}, func(ctx context.Context) error {
		return s.visits.Create(ctx, visit)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementVisitsCreated(string(visitType), string(mode))
	return visit, nil
}

func (s *visitService) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	return s.visits.GetByID(ctx, id)
}

func (s *visitService) ListBySite(ctx context.Context, siteID string) ([]*domain.Visit, error) {
	return s.visits.ListBySite(ctx, siteID)
}

func (s *visitService) ListUpcoming(ctx context.Context) ([]*domain.Visit, error) {
	return s.visits.ListUpcoming(ctx)
}

// UpdateChecklist replaces the visit's checklist and re-derives progress and
// status from the new item set. Saving the same item set twice is a no-op on
// the derived fields.
func (s *visitService) UpdateChecklist(ctx context.Context, id string, items []domain.ChecklistItem) (*domain.Visit, error) {
	start := time.Now()

	percent, status, err := domain.DeriveChecklistProgress(items)
	if err != nil {
		return nil, err
	}
	if err := s.visits.UpdateChecklist(ctx, id, items, percent, status); err != nil {
		return nil, err
	}

	visit, err := s.visits.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveChecklistUpdate(time.Since(start))
	return visit, nil
}

func (s *visitService) UpdateIsf(ctx context.Context, id string, items []domain.IsfItem) (*domain.Visit, error) {
	// An omitted status means untracked, same as at instantiation.
	for i, item := range items {
		if item.Status == "" {
			items[i].Status = domain.IsfNA
			continue
		}
		if !domain.ValidIsfStatuses[string(item.Status)] {
			return nil, fmt.Errorf("invalid ISF status %q: %w", item.Status, domain.ErrValidation)
		}
	}
	if err := s.visits.UpdateIsf(ctx, id, items); err != nil {
		return nil, err
	}
	return s.visits.GetByID(ctx, id)
}

// Complete force-marks the visit completed without touching the checklist, so
// a completed visit can still show partial checklist progress.
func (s *visitService) Complete(ctx context.Context, id string) (*domain.Visit, error) {
	if err := s.visits.SetStatus(ctx, id, domain.VisitCompleted); err != nil {
		return nil, err
	}
	return s.visits.GetByID(ctx, id)
}

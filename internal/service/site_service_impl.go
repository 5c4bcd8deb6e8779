package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edvall/cratrack/internal/domain"
	"github.com/edvall/cratrack/internal/repository"
	"github.com/google/uuid"
)

type siteService struct {
	sites    repository.SiteRepo
	projects repository.ProjectRepo
}

func NewSiteService(sites repository.SiteRepo, projects repository.ProjectRepo) SiteService {
	return &siteService{sites: sites, projects: projects}
}

// Upsert creates the site when its number is unseen, otherwise updates the
// existing record's name and logistics. The site number is the natural key;
// generated ids never surface to callers for lookup.
func (s *siteService) Upsert(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	if site.Number == "" {
		return nil, fmt.Errorf("site number is required: %w", domain.ErrValidation)
	}
	if site.Name == "" {
		return nil, fmt.Errorf("site name is required: %w", domain.ErrValidation)
	}

	existing, err := s.sites.GetByNumber(ctx, site.Number)
	if errors.Is(err, repository.ErrNotFound) {
		site.ID = uuid.New().String()
		if err := s.sites.Create(ctx, site); err != nil {
			return nil, err
		}
		return site, nil
	}
	if err != nil {
		return nil, err
	}

	site.ID = existing.ID
	if err := s.sites.UpdateLogistics(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *siteService) GetByNumber(ctx context.Context, number string) (*domain.Site, error) {
	return s.sites.GetByNumber(ctx, number)
}

func (s *siteService) List(ctx context.Context) ([]*domain.Site, error) {
	return s.sites.List(ctx)
}

func (s *siteService) CreateProject(ctx context.Context, code, name string) (*domain.Project, error) {
	if code == "" {
		return nil, fmt.Errorf("project code is required: %w", domain.ErrValidation)
	}
	project := &domain.Project{
		ID:   uuid.New().String(),
		Code: code,
		Name: name,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *siteService) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

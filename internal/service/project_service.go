package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	Get(ctx context.Context, id int) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id int, patch model.ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id int) error
}

type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectServiceImpl) Get(ctx context.Context, id int) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	return s.repo.Create(ctx, p)
}

func (s *projectServiceImpl) Update(ctx context.Context, id int, patch model.ProjectPatch) (*model.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.TitleEn != nil {
		p.TitleEn = *patch.TitleEn
	}
	if patch.TitleFr != nil {
		p.TitleFr = *patch.TitleFr
	}
	if patch.DescriptionEn != nil {
		p.DescriptionEn = *patch.DescriptionEn
	}
	if patch.DescriptionFr != nil {
		p.DescriptionFr = *patch.DescriptionFr
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.ProjectURL != nil {
		p.ProjectURL = *patch.ProjectURL
	}
	if patch.RepoURL != nil {
		p.RepoURL = *patch.RepoURL
	}
	if patch.DisplayOrder != nil {
		p.DisplayOrder = *patch.DisplayOrder
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

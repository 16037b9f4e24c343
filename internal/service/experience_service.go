package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// WorkExperienceService defines the business logic for work history entries.
type WorkExperienceService interface {
	List(ctx context.Context) ([]*model.WorkExperience, error)
	Get(ctx context.Context, id int) (*model.WorkExperience, error)
	Create(ctx context.Context, e *model.WorkExperience) error
	Update(ctx context.Context, id int, patch model.WorkExperiencePatch) (*model.WorkExperience, error)
	Delete(ctx context.Context, id int) error
}

type workExperienceServiceImpl struct {
	repo repository.WorkExperienceRepository
}

// NewWorkExperienceService creates a WorkExperienceService backed by the given repository.
func NewWorkExperienceService(repo repository.WorkExperienceRepository) WorkExperienceService {
	return &workExperienceServiceImpl{repo: repo}
}

func (s *workExperienceServiceImpl) List(ctx context.Context) ([]*model.WorkExperience, error) {
	return s.repo.List(ctx)
}

func (s *workExperienceServiceImpl) Get(ctx context.Context, id int) (*model.WorkExperience, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *workExperienceServiceImpl) Create(ctx context.Context, e *model.WorkExperience) error {
	return s.repo.Create(ctx, e)
}

func (s *workExperienceServiceImpl) Update(ctx context.Context, id int, patch model.WorkExperiencePatch) (*model.WorkExperience, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Company != nil {
		e.Company = *patch.Company
	}
	if patch.TitleEn != nil {
		e.TitleEn = *patch.TitleEn
	}
	if patch.TitleFr != nil {
		e.TitleFr = *patch.TitleFr
	}
	if patch.DescriptionEn != nil {
		e.DescriptionEn = *patch.DescriptionEn
	}
	if patch.DescriptionFr != nil {
		e.DescriptionFr = *patch.DescriptionFr
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = patch.EndDate
	}
	if patch.DisplayOrder != nil {
		e.DisplayOrder = *patch.DisplayOrder
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *workExperienceServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

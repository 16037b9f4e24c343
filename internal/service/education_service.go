package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// EducationService defines the business logic for education entries.
type EducationService interface {
	List(ctx context.Context) ([]*model.Education, error)
	Get(ctx context.Context, id int) (*model.Education, error)
	Create(ctx context.Context, e *model.Education) error
	Update(ctx context.Context, id int, patch model.EducationPatch) (*model.Education, error)
	Delete(ctx context.Context, id int) error
}

type educationServiceImpl struct {
	repo repository.EducationRepository
}

// NewEducationService creates an EducationService backed by the given repository.
func NewEducationService(repo repository.EducationRepository) EducationService {
	return &educationServiceImpl{repo: repo}
}

func (s *educationServiceImpl) List(ctx context.Context) ([]*model.Education, error) {
	return s.repo.List(ctx)
}

func (s *educationServiceImpl) Get(ctx context.Context, id int) (*model.Education, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *educationServiceImpl) Create(ctx context.Context, e *model.Education) error {
	return s.repo.Create(ctx, e)
}

func (s *educationServiceImpl) Update(ctx context.Context, id int, patch model.EducationPatch) (*model.Education, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Institution != nil {
		e.Institution = *patch.Institution
	}
	if patch.DegreeEn != nil {
		e.DegreeEn = *patch.DegreeEn
	}
	if patch.DegreeFr != nil {
		e.DegreeFr = *patch.DegreeFr
	}
	if patch.FieldEn != nil {
		e.FieldEn = *patch.FieldEn
	}
	if patch.FieldFr != nil {
		e.FieldFr = *patch.FieldFr
	}
	if patch.StartYear != nil {
		e.StartYear = *patch.StartYear
	}
	if patch.EndYear != nil {
		e.EndYear = *patch.EndYear
	}
	if patch.DisplayOrder != nil {
		e.DisplayOrder = *patch.DisplayOrder
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *educationServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

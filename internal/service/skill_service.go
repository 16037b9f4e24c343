package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// SkillService defines the business logic for skills.
type SkillService interface {
	List(ctx context.Context) ([]*model.Skill, error)
	Get(ctx context.Context, id int) (*model.Skill, error)
	Create(ctx context.Context, s *model.Skill) error
	// Update loads the record, applies non-nil patch fields and persists the
	// merged result. Returns repository.ErrNotFound if the id does not exist.
	Update(ctx context.Context, id int, patch model.SkillPatch) (*model.Skill, error)
	Delete(ctx context.Context, id int) error
}

type skillServiceImpl struct {
	repo repository.SkillRepository
}

// NewSkillService creates a SkillService backed by the given repository.
func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillServiceImpl{repo: repo}
}

func (s *skillServiceImpl) List(ctx context.Context) ([]*model.Skill, error) {
	return s.repo.List(ctx)
}

func (s *skillServiceImpl) Get(ctx context.Context, id int) (*model.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skillServiceImpl) Create(ctx context.Context, sk *model.Skill) error {
	return s.repo.Create(ctx, sk)
}

func (s *skillServiceImpl) Update(ctx context.Context, id int, patch model.SkillPatch) (*model.Skill, error) {
	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.NameEn != nil {
		sk.NameEn = *patch.NameEn
	}
	if patch.NameFr != nil {
		sk.NameFr = *patch.NameFr
	}
	if patch.Category != nil {
		sk.Category = *patch.Category
	}
	if patch.Level != nil {
		sk.Level = *patch.Level
	}
	if patch.DisplayOrder != nil {
		sk.DisplayOrder = *patch.DisplayOrder
	}
	if err := s.repo.Update(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

func (s *skillServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

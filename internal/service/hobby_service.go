package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// HobbyService defines the business logic for hobby entries.
type HobbyService interface {
	List(ctx context.Context) ([]*model.Hobby, error)
	Get(ctx context.Context, id int) (*model.Hobby, error)
	Create(ctx context.Context, h *model.Hobby) error
	Update(ctx context.Context, id int, patch model.HobbyPatch) (*model.Hobby, error)
	Delete(ctx context.Context, id int) error
}

type hobbyServiceImpl struct {
	repo repository.HobbyRepository
}

// NewHobbyService creates a HobbyService backed by the given repository.
func NewHobbyService(repo repository.HobbyRepository) HobbyService {
	return &hobbyServiceImpl{repo: repo}
}

func (s *hobbyServiceImpl) List(ctx context.Context) ([]*model.Hobby, error) {
	return s.repo.List(ctx)
}

func (s *hobbyServiceImpl) Get(ctx context.Context, id int) (*model.Hobby, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *hobbyServiceImpl) Create(ctx context.Context, h *model.Hobby) error {
	return s.repo.Create(ctx, h)
}

func (s *hobbyServiceImpl) Update(ctx context.Context, id int, patch model.HobbyPatch) (*model.Hobby, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.NameEn != nil {
		h.NameEn = *patch.NameEn
	}
	if patch.NameFr != nil {
		h.NameFr = *patch.NameFr
	}
	if patch.DescriptionEn != nil {
		h.DescriptionEn = *patch.DescriptionEn
	}
	if patch.DescriptionFr != nil {
		h.DescriptionFr = *patch.DescriptionFr
	}
	if patch.Icon != nil {
		h.Icon = *patch.Icon
	}
	if patch.DisplayOrder != nil {
		h.DisplayOrder = *patch.DisplayOrder
	}
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *hobbyServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

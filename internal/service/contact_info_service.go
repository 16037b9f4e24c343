package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// ContactInfoService defines the business logic for the owner's public
// contact details.
type ContactInfoService interface {
	List(ctx context.Context) ([]*model.ContactInfo, error)
	Get(ctx context.Context, id int) (*model.ContactInfo, error)
	Create(ctx context.Context, ci *model.ContactInfo) error
	Update(ctx context.Context, id int, patch model.ContactInfoPatch) (*model.ContactInfo, error)
	Delete(ctx context.Context, id int) error
}

type contactInfoServiceImpl struct {
	repo repository.ContactInfoRepository
}

// NewContactInfoService creates a ContactInfoService backed by the given repository.
func NewContactInfoService(repo repository.ContactInfoRepository) ContactInfoService {
	return &contactInfoServiceImpl{repo: repo}
}

func (s *contactInfoServiceImpl) List(ctx context.Context) ([]*model.ContactInfo, error) {
	return s.repo.List(ctx)
}

func (s *contactInfoServiceImpl) Get(ctx context.Context, id int) (*model.ContactInfo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactInfoServiceImpl) Create(ctx context.Context, ci *model.ContactInfo) error {
	return s.repo.Create(ctx, ci)
}

func (s *contactInfoServiceImpl) Update(ctx context.Context, id int, patch model.ContactInfoPatch) (*model.ContactInfo, error) {
	ci, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Email != nil {
		ci.Email = *patch.Email
	}
	if patch.Phone != nil {
		ci.Phone = *patch.Phone
	}
	if patch.LinkedIn != nil {
		ci.LinkedIn = *patch.LinkedIn
	}
	if patch.GitHub != nil {
		ci.GitHub = *patch.GitHub
	}
	if patch.LocationEn != nil {
		ci.LocationEn = *patch.LocationEn
	}
	if patch.LocationFr != nil {
		ci.LocationFr = *patch.LocationFr
	}
	if err := s.repo.Update(ctx, ci); err != nil {
		return nil, err
	}
	return ci, nil
}

func (s *contactInfoServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// TestimonialService defines the business logic for visitor testimonials.
type TestimonialService interface {
	// ListPublished returns approved testimonials for the public site.
	ListPublished(ctx context.Context) ([]*model.Testimonial, error)
	// ListAll returns every testimonial for the admin moderation view.
	ListAll(ctx context.Context) ([]*model.Testimonial, error)
	Get(ctx context.Context, id int) (*model.Testimonial, error)
	// Submit stores a new testimonial. It always starts unpublished.
	Submit(ctx context.Context, t *model.Testimonial) error
	SetPublished(ctx context.Context, id int, published bool) error
	Delete(ctx context.Context, id int) error
}

type testimonialServiceImpl struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates a TestimonialService backed by the given repository.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialServiceImpl{repo: repo}
}

func (s *testimonialServiceImpl) ListPublished(ctx context.Context) ([]*model.Testimonial, error) {
	return s.repo.ListPublished(ctx)
}

func (s *testimonialServiceImpl) ListAll(ctx context.Context) ([]*model.Testimonial, error) {
	return s.repo.ListAll(ctx)
}

func (s *testimonialServiceImpl) Get(ctx context.Context, id int) (*model.Testimonial, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *testimonialServiceImpl) Submit(ctx context.Context, t *model.Testimonial) error {
	t.IsPublished = false
	return s.repo.Create(ctx, t)
}

func (s *testimonialServiceImpl) SetPublished(ctx context.Context, id int, published bool) error {
	return s.repo.SetPublished(ctx, id, published)
}

func (s *testimonialServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestimonialRepository defines the persistence interface for testimonials.
type TestimonialRepository interface {
	// ListPublished returns only approved testimonials, newest first.
	ListPublished(ctx context.Context) ([]*model.Testimonial, error)
	// ListAll returns every testimonial including unpublished ones (admin view).
	ListAll(ctx context.Context) ([]*model.Testimonial, error)
	GetByID(ctx context.Context, id int) (*model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	SetPublished(ctx context.Context, id int, published bool) error
	Delete(ctx context.Context, id int) error
}

// PgTestimonialRepository is the PostgreSQL implementation of TestimonialRepository.
type PgTestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewPgTestimonialRepository creates a PgTestimonialRepository backed by the given pool.
func NewPgTestimonialRepository(pool *pgxpool.Pool) *PgTestimonialRepository {
	return &PgTestimonialRepository{pool: pool}
}

var _ TestimonialRepository = (*PgTestimonialRepository)(nil)

const testimonialColumns = `id, author_name, COALESCE(author_role, ''), message, rating,
	is_published, created_at`

func scanTestimonial(row pgx.Row) (*model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.AuthorName, &t.AuthorRole, &t.Message, &t.Rating,
		&t.IsPublished, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgTestimonialRepository) list(ctx context.Context, query string) ([]*model.Testimonial, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*model.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *PgTestimonialRepository) ListPublished(ctx context.Context) ([]*model.Testimonial, error) {
	return r.list(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials
		 WHERE is_published ORDER BY created_at DESC`)
}

func (r *PgTestimonialRepository) ListAll(ctx context.Context) ([]*model.Testimonial, error) {
	return r.list(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
}

func (r *PgTestimonialRepository) GetByID(ctx context.Context, id int) (*model.Testimonial, error) {
	return scanTestimonial(r.pool.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
}

// Create inserts a new testimonials row and populates t.ID and t.CreatedAt from
// the RETURNING clause. New rows are always unpublished.
func (r *PgTestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	t.IsPublished = false
	return r.pool.QueryRow(ctx,
		`INSERT INTO testimonials (author_name, author_role, message, rating, is_published)
		 VALUES ($1, NULLIF($2, ''), $3, $4, FALSE)
		 RETURNING id, created_at`,
		t.AuthorName, t.AuthorRole, t.Message, t.Rating,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *PgTestimonialRepository) SetPublished(ctx context.Context, id int, published bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE testimonials SET is_published = $1 WHERE id = $2`, published, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgTestimonialRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

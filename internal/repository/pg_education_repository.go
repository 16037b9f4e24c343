package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EducationRepository defines the persistence interface for education entries.
type EducationRepository interface {
	List(ctx context.Context) ([]*model.Education, error)
	GetByID(ctx context.Context, id int) (*model.Education, error)
	Create(ctx context.Context, e *model.Education) error
	Update(ctx context.Context, e *model.Education) error
	Delete(ctx context.Context, id int) error
}

// PgEducationRepository is the PostgreSQL implementation of EducationRepository.
type PgEducationRepository struct {
	pool *pgxpool.Pool
}

// NewPgEducationRepository creates a PgEducationRepository backed by the given pool.
func NewPgEducationRepository(pool *pgxpool.Pool) *PgEducationRepository {
	return &PgEducationRepository{pool: pool}
}

var _ EducationRepository = (*PgEducationRepository)(nil)

const educationColumns = `id, institution, degree_en, degree_fr, field_en, field_fr,
	start_year, end_year, display_order`

func scanEducation(row pgx.Row) (*model.Education, error) {
	var e model.Education
	err := row.Scan(&e.ID, &e.Institution, &e.DegreeEn, &e.DegreeFr, &e.FieldEn,
		&e.FieldFr, &e.StartYear, &e.EndYear, &e.DisplayOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgEducationRepository) List(ctx context.Context) ([]*model.Education, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+educationColumns+` FROM educations ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgEducationRepository) GetByID(ctx context.Context, id int) (*model.Education, error) {
	return scanEducation(r.pool.QueryRow(ctx,
		`SELECT `+educationColumns+` FROM educations WHERE id = $1`, id))
}

// Create inserts a new educations row and populates e.ID from the RETURNING clause.
func (r *PgEducationRepository) Create(ctx context.Context, e *model.Education) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO educations
		   (institution, degree_en, degree_fr, field_en, field_fr,
		    start_year, end_year, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		e.Institution, e.DegreeEn, e.DegreeFr, e.FieldEn, e.FieldFr,
		e.StartYear, e.EndYear, e.DisplayOrder,
	).Scan(&e.ID)
}

func (r *PgEducationRepository) Update(ctx context.Context, e *model.Education) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE educations
		 SET institution = $1, degree_en = $2, degree_fr = $3, field_en = $4,
		     field_fr = $5, start_year = $6, end_year = $7, display_order = $8
		 WHERE id = $9`,
		e.Institution, e.DegreeEn, e.DegreeFr, e.FieldEn, e.FieldFr,
		e.StartYear, e.EndYear, e.DisplayOrder, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgEducationRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

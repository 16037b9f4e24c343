package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WorkExperienceRepository defines the persistence interface for work history entries.
type WorkExperienceRepository interface {
	List(ctx context.Context) ([]*model.WorkExperience, error)
	GetByID(ctx context.Context, id int) (*model.WorkExperience, error)
	Create(ctx context.Context, e *model.WorkExperience) error
	Update(ctx context.Context, e *model.WorkExperience) error
	Delete(ctx context.Context, id int) error
}

// PgWorkExperienceRepository is the PostgreSQL implementation of WorkExperienceRepository.
type PgWorkExperienceRepository struct {
	pool *pgxpool.Pool
}

// NewPgWorkExperienceRepository creates a PgWorkExperienceRepository backed by the given pool.
func NewPgWorkExperienceRepository(pool *pgxpool.Pool) *PgWorkExperienceRepository {
	return &PgWorkExperienceRepository{pool: pool}
}

var _ WorkExperienceRepository = (*PgWorkExperienceRepository)(nil)

const experienceColumns = `id, company, title_en, title_fr, description_en, description_fr,
	start_date, end_date, display_order`

func scanExperience(row pgx.Row) (*model.WorkExperience, error) {
	var e model.WorkExperience
	err := row.Scan(&e.ID, &e.Company, &e.TitleEn, &e.TitleFr, &e.DescriptionEn,
		&e.DescriptionFr, &e.StartDate, &e.EndDate, &e.DisplayOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgWorkExperienceRepository) List(ctx context.Context) ([]*model.WorkExperience, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM work_experiences ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.WorkExperience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgWorkExperienceRepository) GetByID(ctx context.Context, id int) (*model.WorkExperience, error) {
	return scanExperience(r.pool.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM work_experiences WHERE id = $1`, id))
}

// Create inserts a new work_experiences row and populates e.ID from the RETURNING clause.
func (r *PgWorkExperienceRepository) Create(ctx context.Context, e *model.WorkExperience) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO work_experiences
		   (company, title_en, title_fr, description_en, description_fr,
		    start_date, end_date, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		e.Company, e.TitleEn, e.TitleFr, e.DescriptionEn, e.DescriptionFr,
		e.StartDate, e.EndDate, e.DisplayOrder,
	).Scan(&e.ID)
}

func (r *PgWorkExperienceRepository) Update(ctx context.Context, e *model.WorkExperience) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE work_experiences
		 SET company = $1, title_en = $2, title_fr = $3, description_en = $4,
		     description_fr = $5, start_date = $6, end_date = $7, display_order = $8
		 WHERE id = $9`,
		e.Company, e.TitleEn, e.TitleFr, e.DescriptionEn, e.DescriptionFr,
		e.StartDate, e.EndDate, e.DisplayOrder, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgWorkExperienceRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM work_experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

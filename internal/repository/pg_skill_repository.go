package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SkillRepository defines the persistence interface for skills.
type SkillRepository interface {
	List(ctx context.Context) ([]*model.Skill, error)
	GetByID(ctx context.Context, id int) (*model.Skill, error)
	Create(ctx context.Context, s *model.Skill) error
	Update(ctx context.Context, s *model.Skill) error
	Delete(ctx context.Context, id int) error
}

// PgSkillRepository is the PostgreSQL implementation of SkillRepository.
type PgSkillRepository struct {
	pool *pgxpool.Pool
}

// NewPgSkillRepository creates a PgSkillRepository backed by the given pool.
func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

var _ SkillRepository = (*PgSkillRepository)(nil)

func (r *PgSkillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name_en, name_fr, category, level, display_order
		 FROM skills
		 ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.NameEn, &s.NameFr, &s.Category, &s.Level, &s.DisplayOrder); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}

func (r *PgSkillRepository) GetByID(ctx context.Context, id int) (*model.Skill, error) {
	var s model.Skill
	err := r.pool.QueryRow(ctx,
		`SELECT id, name_en, name_fr, category, level, display_order
		 FROM skills WHERE id = $1`, id,
	).Scan(&s.ID, &s.NameEn, &s.NameFr, &s.Category, &s.Level, &s.DisplayOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new skills row and populates s.ID from the RETURNING clause.
func (r *PgSkillRepository) Create(ctx context.Context, s *model.Skill) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO skills (name_en, name_fr, category, level, display_order)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.NameEn, s.NameFr, s.Category, s.Level, s.DisplayOrder,
	).Scan(&s.ID)
}

func (r *PgSkillRepository) Update(ctx context.Context, s *model.Skill) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE skills
		 SET name_en = $1, name_fr = $2, category = $3, level = $4, display_order = $5
		 WHERE id = $6`,
		s.NameEn, s.NameFr, s.Category, s.Level, s.DisplayOrder, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgSkillRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

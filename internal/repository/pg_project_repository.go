package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id int) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id int) error
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title_en, title_fr, description_en, description_fr,
	technologies, COALESCE(image_url, ''), COALESCE(project_url, ''), COALESCE(repo_url, ''),
	display_order, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.TitleEn, &p.TitleFr, &p.DescriptionEn, &p.DescriptionFr,
		&p.Technologies, &p.ImageURL, &p.ProjectURL, &p.RepoURL,
		&p.DisplayOrder, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PgProjectRepository) GetByID(ctx context.Context, id int) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

// Create inserts a new projects row and populates p.ID and p.UpdatedAt from the
// RETURNING clause.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects
		   (title_en, title_fr, description_en, description_fr, technologies,
		    image_url, project_url, repo_url, display_order)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9)
		 RETURNING id, updated_at`,
		p.TitleEn, p.TitleFr, p.DescriptionEn, p.DescriptionFr, p.Technologies,
		p.ImageURL, p.ProjectURL, p.RepoURL, p.DisplayOrder,
	).Scan(&p.ID, &p.UpdatedAt)
}

func (r *PgProjectRepository) Update(ctx context.Context, p *model.Project) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects
		 SET title_en = $1, title_fr = $2, description_en = $3, description_fr = $4,
		     technologies = $5, image_url = NULLIF($6, ''), project_url = NULLIF($7, ''),
		     repo_url = NULLIF($8, ''), display_order = $9, updated_at = NOW()
		 WHERE id = $10`,
		p.TitleEn, p.TitleFr, p.DescriptionEn, p.DescriptionFr, p.Technologies,
		p.ImageURL, p.ProjectURL, p.RepoURL, p.DisplayOrder, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgProjectRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResumeRepository defines the persistence interface for uploaded resumes.
type ResumeRepository interface {
	List(ctx context.Context) ([]*model.Resume, error)
	GetByID(ctx context.Context, id int) (*model.Resume, error)
	Create(ctx context.Context, res *model.Resume) error
	Delete(ctx context.Context, id int) error
}

// PgResumeRepository is the PostgreSQL implementation of ResumeRepository.
type PgResumeRepository struct {
	pool *pgxpool.Pool
}

// NewPgResumeRepository creates a PgResumeRepository backed by the given pool.
func NewPgResumeRepository(pool *pgxpool.Pool) *PgResumeRepository {
	return &PgResumeRepository{pool: pool}
}

var _ ResumeRepository = (*PgResumeRepository)(nil)

func (r *PgResumeRepository) List(ctx context.Context) ([]*model.Resume, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, file_name, file_key, language, file_size, uploaded_at
		 FROM resumes ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []*model.Resume
	for rows.Next() {
		var res model.Resume
		if err := rows.Scan(&res.ID, &res.FileName, &res.FileKey, &res.Language,
			&res.FileSize, &res.UploadedAt); err != nil {
			return nil, err
		}
		resumes = append(resumes, &res)
	}
	return resumes, rows.Err()
}

func (r *PgResumeRepository) GetByID(ctx context.Context, id int) (*model.Resume, error) {
	var res model.Resume
	err := r.pool.QueryRow(ctx,
		`SELECT id, file_name, file_key, language, file_size, uploaded_at
		 FROM resumes WHERE id = $1`, id,
	).Scan(&res.ID, &res.FileName, &res.FileKey, &res.Language, &res.FileSize, &res.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create inserts a new resumes row and populates res.ID and res.UploadedAt from
// the RETURNING clause.
func (r *PgResumeRepository) Create(ctx context.Context, res *model.Resume) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO resumes (file_name, file_key, language, file_size)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, uploaded_at`,
		res.FileName, res.FileKey, res.Language, res.FileSize,
	).Scan(&res.ID, &res.UploadedAt)
}

func (r *PgResumeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

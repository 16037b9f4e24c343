package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HobbyRepository defines the persistence interface for hobby entries.
type HobbyRepository interface {
	List(ctx context.Context) ([]*model.Hobby, error)
	GetByID(ctx context.Context, id int) (*model.Hobby, error)
	Create(ctx context.Context, h *model.Hobby) error
	Update(ctx context.Context, h *model.Hobby) error
	Delete(ctx context.Context, id int) error
}

// PgHobbyRepository is the PostgreSQL implementation of HobbyRepository.
type PgHobbyRepository struct {
	pool *pgxpool.Pool
}

// NewPgHobbyRepository creates a PgHobbyRepository backed by the given pool.
func NewPgHobbyRepository(pool *pgxpool.Pool) *PgHobbyRepository {
	return &PgHobbyRepository{pool: pool}
}

var _ HobbyRepository = (*PgHobbyRepository)(nil)

const hobbyColumns = `id, name_en, name_fr, description_en, description_fr,
	COALESCE(icon, ''), display_order`

func scanHobby(row pgx.Row) (*model.Hobby, error) {
	var h model.Hobby
	err := row.Scan(&h.ID, &h.NameEn, &h.NameFr, &h.DescriptionEn, &h.DescriptionFr,
		&h.Icon, &h.DisplayOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *PgHobbyRepository) List(ctx context.Context) ([]*model.Hobby, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+hobbyColumns+` FROM hobbies ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hobbies []*model.Hobby
	for rows.Next() {
		h, err := scanHobby(rows)
		if err != nil {
			return nil, err
		}
		hobbies = append(hobbies, h)
	}
	return hobbies, rows.Err()
}

func (r *PgHobbyRepository) GetByID(ctx context.Context, id int) (*model.Hobby, error) {
	return scanHobby(r.pool.QueryRow(ctx,
		`SELECT `+hobbyColumns+` FROM hobbies WHERE id = $1`, id))
}

// Create inserts a new hobbies row and populates h.ID from the RETURNING clause.
func (r *PgHobbyRepository) Create(ctx context.Context, h *model.Hobby) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO hobbies (name_en, name_fr, description_en, description_fr, icon, display_order)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING id`,
		h.NameEn, h.NameFr, h.DescriptionEn, h.DescriptionFr, h.Icon, h.DisplayOrder,
	).Scan(&h.ID)
}

func (r *PgHobbyRepository) Update(ctx context.Context, h *model.Hobby) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE hobbies
		 SET name_en = $1, name_fr = $2, description_en = $3, description_fr = $4,
		     icon = NULLIF($5, ''), display_order = $6
		 WHERE id = $7`,
		h.NameEn, h.NameFr, h.DescriptionEn, h.DescriptionFr, h.Icon, h.DisplayOrder, h.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgHobbyRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hobbies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactInfoRepository defines the persistence interface for the owner's
// public contact details.
type ContactInfoRepository interface {
	List(ctx context.Context) ([]*model.ContactInfo, error)
	GetByID(ctx context.Context, id int) (*model.ContactInfo, error)
	Create(ctx context.Context, ci *model.ContactInfo) error
	Update(ctx context.Context, ci *model.ContactInfo) error
	Delete(ctx context.Context, id int) error
}

// PgContactInfoRepository is the PostgreSQL implementation of ContactInfoRepository.
type PgContactInfoRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactInfoRepository creates a PgContactInfoRepository backed by the given pool.
func NewPgContactInfoRepository(pool *pgxpool.Pool) *PgContactInfoRepository {
	return &PgContactInfoRepository{pool: pool}
}

var _ ContactInfoRepository = (*PgContactInfoRepository)(nil)

const contactInfoColumns = `id, email, COALESCE(phone, ''), COALESCE(linkedin, ''),
	COALESCE(github, ''), COALESCE(location_en, ''), COALESCE(location_fr, '')`

func scanContactInfo(row pgx.Row) (*model.ContactInfo, error) {
	var ci model.ContactInfo
	err := row.Scan(&ci.ID, &ci.Email, &ci.Phone, &ci.LinkedIn, &ci.GitHub,
		&ci.LocationEn, &ci.LocationFr)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

func (r *PgContactInfoRepository) List(ctx context.Context) ([]*model.ContactInfo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactInfoColumns+` FROM contact_info ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []*model.ContactInfo
	for rows.Next() {
		ci, err := scanContactInfo(rows)
		if err != nil {
			return nil, err
		}
		infos = append(infos, ci)
	}
	return infos, rows.Err()
}

func (r *PgContactInfoRepository) GetByID(ctx context.Context, id int) (*model.ContactInfo, error) {
	return scanContactInfo(r.pool.QueryRow(ctx,
		`SELECT `+contactInfoColumns+` FROM contact_info WHERE id = $1`, id))
}

// Create inserts a new contact_info row and populates ci.ID from the RETURNING clause.
func (r *PgContactInfoRepository) Create(ctx context.Context, ci *model.ContactInfo) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_info (email, phone, linkedin, github, location_en, location_fr)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id`,
		ci.Email, ci.Phone, ci.LinkedIn, ci.GitHub, ci.LocationEn, ci.LocationFr,
	).Scan(&ci.ID)
}

func (r *PgContactInfoRepository) Update(ctx context.Context, ci *model.ContactInfo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_info
		 SET email = $1, phone = NULLIF($2, ''), linkedin = NULLIF($3, ''),
		     github = NULLIF($4, ''), location_en = NULLIF($5, ''), location_fr = NULLIF($6, '')
		 WHERE id = $7`,
		ci.Email, ci.Phone, ci.LinkedIn, ci.GitHub, ci.LocationEn, ci.LocationFr, ci.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgContactInfoRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_info WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

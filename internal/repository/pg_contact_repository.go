package repository

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactMessageRepository defines the persistence interface for contact
// form submissions.
type ContactMessageRepository interface {
	List(ctx context.Context) ([]*model.ContactMessage, error)
	GetByID(ctx context.Context, id int) (*model.ContactMessage, error)
	Create(ctx context.Context, msg *model.ContactMessage) error
	// MarkRead flags a message as read and stamps read_at. Idempotent: marking
	// an already-read message keeps the original read_at.
	MarkRead(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

// PgContactMessageRepository is the PostgreSQL implementation of ContactMessageRepository.
type PgContactMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactMessageRepository creates a PgContactMessageRepository backed by the given pool.
func NewPgContactMessageRepository(pool *pgxpool.Pool) *PgContactMessageRepository {
	return &PgContactMessageRepository{pool: pool}
}

var _ ContactMessageRepository = (*PgContactMessageRepository)(nil)

const contactMessageColumns = `id, name, email, message, is_read, created_at, read_at`

func scanContactMessage(row pgx.Row) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.IsRead, &m.CreatedAt, &m.ReadAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgContactMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactMessageColumns+` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *PgContactMessageRepository) GetByID(ctx context.Context, id int) (*model.ContactMessage, error) {
	return scanContactMessage(r.pool.QueryRow(ctx,
		`SELECT `+contactMessageColumns+` FROM contact_messages WHERE id = $1`, id))
}

// Create inserts a new contact_messages row and populates msg.ID and
// msg.CreatedAt from the RETURNING clause. New messages are always unread.
func (r *PgContactMessageRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	msg.IsRead = false
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, message, is_read)
		 VALUES ($1, $2, $3, FALSE)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *PgContactMessageRepository) MarkRead(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages
		 SET is_read = TRUE, read_at = COALESCE(read_at, NOW())
		 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgContactMessageRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

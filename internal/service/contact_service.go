package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/folio/backend/internal/mailer"
	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// ErrMailFailed is returned when the message was stored but the owner
// notification email could not be sent.
var ErrMailFailed = errors.New("notification email failed")

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message and emails the site owner. The
	// message is persisted even when the email fails; in that case the error
	// wraps ErrMailFailed.
	Submit(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
	Get(ctx context.Context, id int) (*model.ContactMessage, error)
	MarkRead(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type contactServiceImpl struct {
	repo repository.ContactMessageRepository
	mail mailer.Mailer
}

// NewContactService creates a ContactService backed by the given repository
// and mailer.
func NewContactService(repo repository.ContactMessageRepository, mail mailer.Mailer) ContactService {
	return &contactServiceImpl{repo: repo, mail: mail}
}

func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if err := s.repo.Create(ctx, msg); err != nil {
		return err
	}

	if s.mail == nil || !s.mail.Configured() {
		slog.Info("smtp not configured, skipping contact notification", "message_id", msg.ID)
		return nil
	}
	if err := s.mail.SendContactNotification(msg); err != nil {
		slog.Error("contact notification failed", "message_id", msg.ID, "error", err)
		return fmt.Errorf("%w: %v", ErrMailFailed, err)
	}
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) Get(ctx context.Context, id int) (*model.ContactMessage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactServiceImpl) MarkRead(ctx context.Context, id int) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

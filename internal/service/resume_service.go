package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"log/slog"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/storage"
)

// ResumeService defines the business logic for uploaded resume PDFs.
type ResumeService interface {
	List(ctx context.Context) ([]*model.Resume, error)
	Get(ctx context.Context, id int) (*model.Resume, error)
	// Upload stores the PDF bytes under a random key and records the resume.
	Upload(ctx context.Context, fileName, language string, size int64, data io.Reader) (*model.Resume, error)
	// Open returns a reader over the stored PDF for download streaming.
	Open(ctx context.Context, id int) (*model.Resume, io.ReadCloser, error)
	// Delete removes the record and makes a best-effort attempt to remove the
	// stored file.
	Delete(ctx context.Context, id int) error
}

type resumeServiceImpl struct {
	repo  repository.ResumeRepository
	store storage.Storage
}

// NewResumeService creates a ResumeService backed by the given repository and storage.
func NewResumeService(repo repository.ResumeRepository, store storage.Storage) ResumeService {
	return &resumeServiceImpl{repo: repo, store: store}
}

func (s *resumeServiceImpl) List(ctx context.Context) ([]*model.Resume, error) {
	return s.repo.List(ctx)
}

func (s *resumeServiceImpl) Get(ctx context.Context, id int) (*model.Resume, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *resumeServiceImpl) Upload(ctx context.Context, fileName, language string, size int64, data io.Reader) (*model.Resume, error) {
	key := "resumes/" + randomHex(16) + ".pdf"
	if _, err := s.store.Save(ctx, key, data, "application/pdf"); err != nil {
		return nil, err
	}

	res := &model.Resume{
		FileName: fileName,
		FileKey:  key,
		Language: language,
		FileSize: size,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		// Orphaned file cleanup is best-effort.
		if derr := s.store.Delete(ctx, key); derr != nil {
			slog.Warn("orphaned resume file cleanup failed", "key", key, "error", derr)
		}
		return nil, err
	}
	return res, nil
}

func (s *resumeServiceImpl) Open(ctx context.Context, id int) (*model.Resume, io.ReadCloser, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Open(ctx, res.FileKey)
	if err != nil {
		return nil, nil, err
	}
	return res, rc, nil
}

func (s *resumeServiceImpl) Delete(ctx context.Context, id int) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, res.FileKey); err != nil {
		slog.Warn("resume file removal failed", "key", res.FileKey, "error", err)
	}
	return nil
}

// randomHex returns n random bytes hex-encoded.
func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

package storage

import (
	"context"
	"io"
)

// Storage abstracts saving, reading and deleting uploaded files (resume PDFs
// and project images). The local filesystem implementation can be swapped for
// S3 / Cloudflare R2.
type Storage interface {
	// Save stores the file under key (a unique path inside the storage, e.g.
	// "resumes/<random>.pdf") and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Open returns a reader over the stored file. The caller must close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the file for key. Missing files are not an error.
	Delete(ctx context.Context, key string) error
}

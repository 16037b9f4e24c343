package model

import "time"

// Resume represents an uploaded PDF resume. FileKey is the storage path of the
// PDF relative to the uploads root; FileName is the original client filename
// used for the download Content-Disposition.
type Resume struct {
	ID         int       `json:"id"`
	FileName   string    `json:"file_name"`
	FileKey    string    `json:"-"`
	Language   string    `json:"language"` // "en" | "fr"
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

package model

import "time"

// Testimonial represents a visitor-submitted recommendation. Submissions start
// unpublished and only appear on the public site after admin approval.
type Testimonial struct {
	ID          int       `json:"id"`
	AuthorName  string    `json:"author_name"`
	AuthorRole  string    `json:"author_role,omitempty"`
	Message     string    `json:"message"`
	Rating      int       `json:"rating"` // 1-5
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

package model

import "time"

// Project represents a portfolio project card.
type Project struct {
	ID            int       `json:"id"`
	TitleEn       string    `json:"title_en"`
	TitleFr       string    `json:"title_fr"`
	DescriptionEn string    `json:"description_en"`
	DescriptionFr string    `json:"description_fr"`
	Technologies  string    `json:"technologies"` // comma-separated tags
	ImageURL      string    `json:"image_url,omitempty"`
	ProjectURL    string    `json:"project_url,omitempty"`
	RepoURL       string    `json:"repo_url,omitempty"`
	DisplayOrder  int       `json:"display_order"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectPatch carries optional fields for a partial update. Nil fields are
// left unchanged on the stored record.
type ProjectPatch struct {
	TitleEn       *string `json:"title_en"`
	TitleFr       *string `json:"title_fr"`
	DescriptionEn *string `json:"description_en"`
	DescriptionFr *string `json:"description_fr"`
	Technologies  *string `json:"technologies"`
	ImageURL      *string `json:"image_url"`
	ProjectURL    *string `json:"project_url"`
	RepoURL       *string `json:"repo_url"`
	DisplayOrder  *int    `json:"display_order"`
}

package model

import "time"

// WorkExperience represents one entry of the work history timeline.
type WorkExperience struct {
	ID            int        `json:"id"`
	Company       string     `json:"company"`
	TitleEn       string     `json:"title_en"`
	TitleFr       string     `json:"title_fr"`
	DescriptionEn string     `json:"description_en"`
	DescriptionFr string     `json:"description_fr"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"` // nil = current position
	DisplayOrder  int        `json:"display_order"`
}

// WorkExperiencePatch carries optional fields for a partial update.
type WorkExperiencePatch struct {
	Company       *string    `json:"company"`
	TitleEn       *string    `json:"title_en"`
	TitleFr       *string    `json:"title_fr"`
	DescriptionEn *string    `json:"description_en"`
	DescriptionFr *string    `json:"description_fr"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	DisplayOrder  *int       `json:"display_order"`
}

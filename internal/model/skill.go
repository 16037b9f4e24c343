package model

// Skill represents a technology or competency shown on the public skills page.
type Skill struct {
	ID           int    `json:"id"`
	NameEn       string `json:"name_en"`
	NameFr       string `json:"name_fr"`
	Category     string `json:"category"`
	Level        int    `json:"level"` // 1-100 proficiency
	DisplayOrder int    `json:"display_order"`
}

// SkillPatch carries optional fields for a partial update. Nil fields are
// left unchanged on the stored record.
type SkillPatch struct {
	NameEn       *string `json:"name_en"`
	NameFr       *string `json:"name_fr"`
	Category     *string `json:"category"`
	Level        *int    `json:"level"`
	DisplayOrder *int    `json:"display_order"`
}

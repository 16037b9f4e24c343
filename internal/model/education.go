package model

// Education represents one entry of the education timeline.
type Education struct {
	ID           int    `json:"id"`
	Institution  string `json:"institution"`
	DegreeEn     string `json:"degree_en"`
	DegreeFr     string `json:"degree_fr"`
	FieldEn      string `json:"field_en"`
	FieldFr      string `json:"field_fr"`
	StartYear    int    `json:"start_year"`
	EndYear      int    `json:"end_year"` // 0 = in progress
	DisplayOrder int    `json:"display_order"`
}

// EducationPatch carries optional fields for a partial update.
type EducationPatch struct {
	Institution  *string `json:"institution"`
	DegreeEn     *string `json:"degree_en"`
	DegreeFr     *string `json:"degree_fr"`
	FieldEn      *string `json:"field_en"`
	FieldFr      *string `json:"field_fr"`
	StartYear    *int    `json:"start_year"`
	EndYear      *int    `json:"end_year"`
	DisplayOrder *int    `json:"display_order"`
}

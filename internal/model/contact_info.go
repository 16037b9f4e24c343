package model

// ContactInfo holds the site owner's public contact details shown on the
// contact page. The table normally holds a single row.
type ContactInfo struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	LocationEn string `json:"location_en,omitempty"`
	LocationFr string `json:"location_fr,omitempty"`
}

// ContactInfoPatch carries optional fields for a partial update.
type ContactInfoPatch struct {
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	LinkedIn   *string `json:"linkedin"`
	GitHub     *string `json:"github"`
	LocationEn *string `json:"location_en"`
	LocationFr *string `json:"location_fr"`
}

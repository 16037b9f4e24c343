package model

// Hobby represents an item on the public hobbies page.
type Hobby struct {
	ID            int    `json:"id"`
	NameEn        string `json:"name_en"`
	NameFr        string `json:"name_fr"`
	DescriptionEn string `json:"description_en"`
	DescriptionFr string `json:"description_fr"`
	Icon          string `json:"icon,omitempty"` // icon class or emoji shown next to the name
	DisplayOrder  int    `json:"display_order"`
}

// HobbyPatch carries optional fields for a partial update.
type HobbyPatch struct {
	NameEn        *string `json:"name_en"`
	NameFr        *string `json:"name_fr"`
	DescriptionEn *string `json:"description_en"`
	DescriptionFr *string `json:"description_fr"`
	Icon          *string `json:"icon"`
	DisplayOrder  *int    `json:"display_order"`
}

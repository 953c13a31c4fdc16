package models

// Project represents a photography series. The ID doubles as the URL slug,
// so it is human-readable and never regenerated.
type Project struct {
	ID           string  `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Title        string  `json:"title" db:"title" gorm:"type:text;not null"`
	Subtitle     *string `json:"subtitle,omitempty" db:"subtitle" gorm:"type:text"`
	Description  *string `json:"description,omitempty" db:"description" gorm:"type:text"`
	Published    bool    `json:"published" db:"published" gorm:"not null;default:false"`
	DisplayOrder int     `json:"displayOrder" db:"display_order" gorm:"type:integer;not null;default:0"`
}

func (Project) TableName() string {
	return "projects"
}

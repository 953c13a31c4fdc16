package models

import (
	"time"

	"gorm.io/datatypes"
)

// Page is a CMS-managed page: an ordered list of content blocks stored as a
// JSON column, keyed by slug.
type Page struct {
	Slug      string         `json:"slug" db:"slug" gorm:"type:text;primaryKey;not null"`
	Title     string         `json:"title" db:"title" gorm:"type:text;not null"`
	Blocks    datatypes.JSON `json:"blocks" db:"blocks" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`
}

func (Page) TableName() string {
	return "pages"
}

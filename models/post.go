package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog/news entry shown on the site's journal section.
type Post struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Summary     *string    `json:"summary,omitempty" db:"summary" gorm:"type:text"`
	Content     string     `json:"content" db:"content" gorm:"type:text;not null"`
	PublishedAt time.Time  `json:"publishedAt" db:"published_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	EditedAt    *time.Time `json:"editedAt,omitempty" db:"edited_at" gorm:"type:timestamp"`
	Tags        []PostTag  `json:"tags,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "posts"
}

// PostTag labels a post for the journal's tag filter.
type PostTag struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Value  string    `json:"value" db:"value" gorm:"type:text;not null"`
	PostID uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null"`
}

func (PostTag) TableName() string {
	return "post_tags"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a single image belonging to a project, carried in several
// resolution variants. Seq orders photos within a project; seq 2 is
// conventionally the project's representative background image. Seq
// uniqueness per project is a content convention, not a constraint.
type Photo struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	DesktopURL string    `json:"desktopUrl" db:"desktop_url" gorm:"type:text;not null"`
	MobileURL  string    `json:"mobileUrl" db:"mobile_url" gorm:"type:text;not null"`
	GalleryURL string    `json:"galleryUrl" db:"gallery_url" gorm:"type:text;not null"`
	BlobURL    string    `json:"blobUrl" db:"blob_url" gorm:"type:text;not null"`
	Seq        int       `json:"seq" db:"seq" gorm:"type:integer;not null;index:idx_photos_project_seq"`
	Caption    *string   `json:"caption,omitempty" db:"caption" gorm:"type:text"`
	ProjectID  string    `json:"projectId" db:"project_id" gorm:"type:text;not null;index:idx_photos_project_seq"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (Photo) TableName() string {
	return "photos"
}

// BackgroundSeq is the sequence number pages use for a project's
// representative background image.
const BackgroundSeq = 2

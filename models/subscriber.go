package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscriber is the local record of a mailing-list signup. The third-party
// list is the source of truth; this row keeps the feature working when the
// list API is unreachable or unconfigured.
type Subscriber struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

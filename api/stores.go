package api

import (
	"context"
	"io"

	"github.com/avelier/photography-site-backend/models"
)

// Narrow store interfaces the handlers depend on. The database package's
// repos satisfy them; tests substitute in-memory fakes.

type projectStore interface {
	FindAllPublished() ([]*models.Project, error)
	FindBySlug(slug string) (*models.Project, error)
	Add(project *models.Project) error
}

// projectDeleter is the transactional cascade delete the admin surface uses.
type projectDeleter interface {
	DeleteProjectCascade(slug string) error
}

type photoStore interface {
	FindByProjectID(projectID string) ([]*models.Photo, error)
	FindByProjectIDAndSeq(projectID string, seq int) (*models.Photo, error)
	FindFeatured(limit int) ([]*models.Photo, error)
	Add(photo *models.Photo) error
}

type exhibitStore interface {
	FindAll() ([]models.Exhibit, error)
}

type postStore interface {
	FindAll() ([]*models.Post, error)
	FindBySlug(slug string) (*models.Post, error)
}

type pageStore interface {
	FindBySlug(slug string) (*models.Page, error)
	Upsert(page *models.Page) error
}

type subscriberStore interface {
	Add(subscriber *models.Subscriber) error
}

type mediaUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type listClient interface {
	Enabled() bool
	AddContact(ctx context.Context, email string) error
}

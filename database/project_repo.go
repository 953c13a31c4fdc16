package database

import (
	"errors"

	"github.com/avelier/photography-site-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAllPublished returns every project with the publication flag set, in
// database-default order. Clients resort by DisplayOrder where they care.
func (r *ProjectRepo) FindAllPublished() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("published = ?", true).Find(&projects).Error
	return projects, err
}

// FindBySlug returns the project with the given slug, or (nil, nil) when no
// row matches. Zero matches is not an error.
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by slug. Administrative use only; site code
// never deletes projects.
func (r *ProjectRepo) Delete(slug string) error {
	return r.db.Where("id = ?", slug).Delete(&models.Project{}).Error
}

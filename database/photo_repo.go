package database

import (
	"errors"

	"github.com/avelier/photography-site-backend/models"
	"gorm.io/gorm"
)

type PhotoRepo struct {
	db *gorm.DB
}

func NewPhotoRepo(db *gorm.DB) *PhotoRepo {
	return &PhotoRepo{db}
}

// FindByProjectID returns all photos of a project in ascending sequence
// order. A project with no photos yields an empty slice, not an error.
func (r *PhotoRepo) FindByProjectID(projectID string) ([]*models.Photo, error) {
	var photos []*models.Photo
	err := r.db.Where("project_id = ?", projectID).Order("seq ASC").Find(&photos).Error
	return photos, err
}

// FindByProjectIDAndSeq returns the photo with the given sequence inside a
// project, or (nil, nil) when no row matches.
func (r *PhotoRepo) FindByProjectIDAndSeq(projectID string, seq int) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.Where("project_id = ? AND seq = ?", projectID, seq).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// FindFeatured returns the most recently added sequence-1 photos, newest
// first, capped at limit.
func (r *PhotoRepo) FindFeatured(limit int) ([]*models.Photo, error) {
	var photos []*models.Photo
	err := r.db.Where("seq = ?", 1).Order("created_at DESC").Limit(limit).Find(&photos).Error
	return photos, err
}

// Add inserts a new photo into the database
func (r *PhotoRepo) Add(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

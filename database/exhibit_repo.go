package database

import (
	"github.com/avelier/photography-site-backend/models"
	"gorm.io/gorm"
)

type ExhibitRepo struct {
	db *gorm.DB
}

func NewExhibitRepo(db *gorm.DB) *ExhibitRepo {
	return &ExhibitRepo{db}
}

// FindAll returns the CMS-managed exhibition rows. The handler overlays
// these onto the static list.
func (r *ExhibitRepo) FindAll() ([]models.Exhibit, error) {
	var exhibits []models.Exhibit
	err := r.db.Find(&exhibits).Error
	return exhibits, err
}

// Add inserts a new exhibition row
func (r *ExhibitRepo) Add(exhibit *models.Exhibit) error {
	return r.db.Create(exhibit).Error
}

package database

import (
	"errors"

	"github.com/avelier/photography-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PageRepo struct {
	db *gorm.DB
}

func NewPageRepo(db *gorm.DB) *PageRepo {
	return &PageRepo{db}
}

// FindBySlug returns a CMS page, or (nil, nil) when no row matches.
func (r *PageRepo) FindBySlug(slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.Where("slug = ?", slug).First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Upsert inserts the page or replaces the existing row for its slug.
func (r *PageRepo) Upsert(page *models.Page) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).Create(page).Error
}

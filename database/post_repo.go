package database

import (
	"errors"

	"github.com/avelier/photography-site-backend/models"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all posts with their tags, newest first.
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Tags").Order("published_at DESC").Find(&posts).Error
	return posts, err
}

// FindBySlug returns a post with its tags, or (nil, nil) when no row matches.
func (r *PostRepo) FindBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Tags").Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

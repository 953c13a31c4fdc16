package database

import (
	"github.com/avelier/photography-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriberRepo struct {
	db *gorm.DB
}

func NewSubscriberRepo(db *gorm.DB) *SubscriberRepo {
	return &SubscriberRepo{db}
}

// Add records a signup. Subscribing twice with the same email is a no-op,
// not an error.
func (r *SubscriberRepo) Add(subscriber *models.Subscriber) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(subscriber).Error
}

// Count returns the number of locally recorded subscribers.
func (r *SubscriberRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscriber{}).Count(&count).Error
	return count, err
}

package database

import (
	"github.com/avelier/photography-site-backend/errs"
	"github.com/avelier/photography-site-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo    *ProjectRepo
	photoRepo      *PhotoRepo
	exhibitRepo    *ExhibitRepo
	postRepo       *PostRepo
	pageRepo       *PageRepo
	subscriberRepo *SubscriberRepo
	db             *gorm.DB
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:    NewProjectRepo(db),
		photoRepo:      NewPhotoRepo(db),
		exhibitRepo:    NewExhibitRepo(db),
		postRepo:       NewPostRepo(db),
		pageRepo:       NewPageRepo(db),
		subscriberRepo: NewSubscriberRepo(db),
		db:             db,
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) PhotoRepo() *PhotoRepo {
	return d.photoRepo
}

func (d Database) ExhibitRepo() *ExhibitRepo {
	return d.exhibitRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) PageRepo() *PageRepo {
	return d.pageRepo
}

func (d Database) SubscriberRepo() *SubscriberRepo {
	return d.subscriberRepo
}

// WithTransaction runs fn inside a transaction: commit on success, rollback
// on error or panic. The connection backing the transaction is released on
// every exit path, exactly once.
func (d Database) WithTransaction(fn func(tx *gorm.DB) error) error {
	tx := d.db.Begin()
	if tx.Error != nil {
		return errs.NewDatabaseError("begin transaction", "database", tx.Error)
	}
	return withTx(gormTx{tx}, func() error { return fn(tx) })
}

// DeleteProjectCascade removes a project and its photos atomically. Only the
// admin surface calls this; the public site never deletes content.
func (d Database) DeleteProjectCascade(slug string) error {
	return d.WithTransaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", slug).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", slug).Delete(&models.Project{}).Error
	})
}

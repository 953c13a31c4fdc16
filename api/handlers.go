package api

import (
	"github.com/avelier/photography-site-backend/database"
	"github.com/avelier/photography-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, mailingList *services.MailingList, media *services.MediaStorage) *routeHandlers {
	// Avoid a typed-nil uploader when media storage is unconfigured.
	var uploader mediaUploader
	if media != nil {
		uploader = media
	}
	var list listClient
	if mailingList != nil {
		list = mailingList
	}

	return &routeHandlers{
		projectHandler:   newProjectHandler(db.ProjectRepo(), db),
		photoHandler:     newPhotoHandler(db.PhotoRepo(), uploader),
		exhibitHandler:   newExhibitHandler(db.ExhibitRepo()),
		postHandler:      newPostHandler(db.PostRepo()),
		pageHandler:      newPageHandler(db.PageRepo(), db.PhotoRepo()),
		subscribeHandler: newSubscribeHandler(db.SubscriberRepo(), list),
	}
}

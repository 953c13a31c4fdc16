package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/avelier/photography-site-backend/errs"
	"github.com/avelier/photography-site-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultFeaturedLimit caps the featured strip on the landing page.
const defaultFeaturedLimit = 6

type photoHandler struct {
	responder Responder
	logger    zerolog.Logger
	photos    photoStore
	media     mediaUploader
}

func newPhotoHandler(photos photoStore, media mediaUploader) photoHandler {
	logger := log.With().Str("handlerName", "photoHandler").Logger()

	return photoHandler{
		responder: NewResponder(logger),
		logger:    logger,
		photos:    photos,
		media:     media,
	}
}

// getPhotosByProject returns a project's photos in sequence order. An empty
// set means the project has no gallery and is reported as 404; the site's
// project pages rely on that.
func (h photoHandler) getPhotosByProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing project slug"))
			return
		}

		photos, err := h.photos.FindByProjectID(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "photos", err))
			return
		}

		if len(photos) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("No photos found for this project"))
			return
		}

		h.responder.WriteJSON(w, photos)
	}
}

// getPhotoBySeq returns one photo by project slug and sequence number. A
// non-numeric sequence is rejected before any query runs.
func (h photoHandler) getPhotoBySeq() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		seqStr := chi.URLParam(r, "seq")

		seq, err := strconv.Atoi(seqStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid sequence ID"))
			return
		}

		photo, err := h.photos.FindByProjectIDAndSeq(slug, seq)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "photo", err))
			return
		}

		if photo == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Photo not found"))
			return
		}

		h.responder.WriteJSON(w, photo)
	}
}

// getFeaturedPhotos returns the newest sequence-1 photos. Unlike the
// per-project listing, an empty result here is a 200 with an empty array.
func (h photoHandler) getFeaturedPhotos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultFeaturedLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 1 {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid limit"))
				return
			}
			limit = parsed
		}

		photos, err := h.photos.FindFeatured(limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "featured photos", err))
			return
		}

		if photos == nil {
			photos = []*models.Photo{}
		}
		h.responder.WriteJSON(w, photos)
	}
}

// createPhoto is the admin ingestion endpoint. It accepts a multipart form
// with the image file plus projectId and seq fields, uploads the original to
// object storage, and inserts the photo row. Explicit variant URLs in the
// form override the uploaded original.
func (h photoHandler) createPhoto() http.HandlerFunc {
	const maxUploadSize = 32 << 20 // 32MB

	return func(w http.ResponseWriter, r *http.Request) {
		if h.media == nil {
			h.responder.WriteError(w, errs.NewInternalError("media storage is not configured"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		projectID := r.FormValue("projectId")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("projectId is required"))
			return
		}

		seq, err := strconv.Atoi(r.FormValue("seq"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid sequence ID"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("file is required"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := fmt.Sprintf("projects/%s/%d/%s", projectID, seq, header.Filename)
		blobURL, err := h.media.Upload(r.Context(), key, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to upload photo")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store photo", err))
			return
		}

		photo := models.Photo{
			ID:         uuid.New(),
			BlobURL:    blobURL,
			DesktopURL: formValueOr(r, "desktopUrl", blobURL),
			MobileURL:  formValueOr(r, "mobileUrl", blobURL),
			GalleryURL: formValueOr(r, "galleryUrl", blobURL),
			Seq:        seq,
			ProjectID:  projectID,
		}
		if caption := r.FormValue("caption"); caption != "" {
			photo.Caption = &caption
		}

		if err := h.photos.Add(&photo); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "photo", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, photo)
	}
}

func formValueOr(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

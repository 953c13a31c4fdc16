package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/avelier/photography-site-backend/errs"
	"github.com/avelier/photography-site-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	pages     pageStore
	photos    photoStore
}

func newPageHandler(pages pageStore, photos photoStore) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		pages:     pages,
		photos:    photos,
	}
}

// RenderedPage is a CMS page with every block resolved for presentation.
type RenderedPage struct {
	Slug   string                 `json:"slug"`
	Title  string                 `json:"title"`
	Blocks []models.RenderedBlock `json:"blocks"`
}

// upsertPageRequest is the admin ingestion payload for a CMS page.
type upsertPageRequest struct {
	Slug   string          `json:"slug"`
	Title  string          `json:"title"`
	Blocks json.RawMessage `json:"blocks"`
}

// getPage returns a CMS page with its blocks rendered. Gallery blocks with
// a project source resolve their photos from the store; a block that fails
// to render is skipped with a log line rather than failing the page.
func (h pageHandler) getPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing page slug"))
			return
		}

		page, err := h.pages.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "page", err))
			return
		}

		if page == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Page not found"))
			return
		}

		blocks, err := models.DecodeBlocks(page.Blocks)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("stored page content is invalid", err))
			return
		}

		rendered := make([]models.RenderedBlock, 0, len(blocks))
		for _, block := range blocks {
			rb, err := block.Render(h.photos.FindByProjectID)
			if err != nil {
				h.logger.Warn().Err(err).Str("page", slug).Msg("Skipping block that failed to render")
				continue
			}
			rendered = append(rendered, rb)
		}

		h.responder.WriteJSON(w, RenderedPage{
			Slug:   page.Slug,
			Title:  page.Title,
			Blocks: rendered,
		})
	}
}

// upsertPage is the admin ingestion endpoint for CMS pages. Pages with an
// unknown block type are rejected up front.
func (h pageHandler) upsertPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertPageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode page request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("slug is required"))
			return
		}
		if len(req.Blocks) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("blocks are required"))
			return
		}

		if _, err := models.DecodeBlocks(req.Blocks); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		page := models.Page{
			Slug:      req.Slug,
			Title:     req.Title,
			Blocks:    datatypes.JSON(req.Blocks),
			UpdatedAt: time.Now().UTC(),
		}

		if err := h.pages.Upsert(&page); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "page", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, page)
	}
}

package api

import (
	"net/http"

	"github.com/avelier/photography-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type exhibitHandler struct {
	responder Responder
	logger    zerolog.Logger
	exhibits  exhibitStore
}

func newExhibitHandler(exhibits exhibitStore) exhibitHandler {
	logger := log.With().Str("handlerName", "exhibitHandler").Logger()

	return exhibitHandler{
		responder: NewResponder(logger),
		logger:    logger,
		exhibits:  exhibits,
	}
}

// getExhibits returns the exhibition listing: CMS rows overlaid onto the
// static list, upcoming first then descending start date. A failing CMS
// lookup degrades to the static list instead of erroring the page.
func (h exhibitHandler) getExhibits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmsRows, err := h.exhibits.FindAll()
		if err != nil {
			h.logger.Warn().Err(err).Msg("Exhibit lookup failed, serving static list")
			cmsRows = nil
		}

		merged := models.MergeExhibits(models.StaticExhibits(), cmsRows)
		h.responder.WriteJSON(w, merged)
	}
}

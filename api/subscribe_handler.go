package api

import (
	"encoding/json"
	"net/http"

	"github.com/avelier/photography-site-backend/errs"
	"github.com/avelier/photography-site-backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type subscribeHandler struct {
	responder   Responder
	logger      zerolog.Logger
	subscribers subscriberStore
	list        listClient
	validate    *validator.Validate
}

func newSubscribeHandler(subscribers subscriberStore, list listClient) subscribeHandler {
	logger := log.With().Str("handlerName", "subscribeHandler").Logger()

	return subscribeHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		subscribers: subscribers,
		list:        list,
		validate:    validator.New(),
	}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// subscribe records a mailing-list signup locally and pushes it to the
// third-party list when configured. Success is 201 with an empty error
// field, the shape the subscribe form expects. A duplicate signup is
// success. An unconfigured or failing list API degrades to local-only.
func (h subscribeHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("a valid email address is required"))
			return
		}

		subscriber := models.Subscriber{
			ID:    uuid.New(),
			Email: req.Email,
		}
		if err := h.subscribers.Add(&subscriber); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "subscriber", err))
			return
		}

		if h.list != nil && h.list.Enabled() {
			if err := h.list.AddContact(r.Context(), req.Email); err != nil {
				h.logger.Error().Err(err).Msg("Failed to push signup to mailing list")
			}
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, ErrorResponse{Error: ""})
	}
}

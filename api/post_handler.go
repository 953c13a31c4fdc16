package api

import (
	"net/http"

	"github.com/avelier/photography-site-backend/errs"
	"github.com/avelier/photography-site-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     postStore
}

func newPostHandler(posts postStore) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
	}
}

// getAllPosts returns every journal post with its tags, newest first.
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "posts", err))
			return
		}

		if posts == nil {
			posts = []*models.Post{}
		}
		h.responder.WriteJSON(w, posts)
	}
}

// getPost returns one journal post by slug.
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing post slug"))
			return
		}

		post, err := h.posts.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

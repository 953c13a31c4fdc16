package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site API and the admin ingestion surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, admin adminMiddleware) {
	// Public site endpoints, consumed by the page-rendering layer
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{slug}", handlers.projectHandler.getProject())

		// "featured" must register before the slug wildcard
		r.Get("/photos/featured", handlers.photoHandler.getFeaturedPhotos())
		r.Get("/photos/{slug}", handlers.photoHandler.getPhotosByProject())
		r.Get("/photos/{slug}/{seq}", handlers.photoHandler.getPhotoBySeq())

		r.Get("/exhibits", handlers.exhibitHandler.getExhibits())

		r.Get("/posts", handlers.postHandler.getAllPosts())
		r.Get("/posts/{slug}", handlers.postHandler.getPost())

		r.Get("/pages/{slug}", handlers.pageHandler.getPage())

		r.Post("/subscribe", handlers.subscribeHandler.subscribe())
	})

	// Admin ingestion endpoints, bearer-password protected
	r.Route("/admin", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(admin.authenticate)

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Delete("/projects/{slug}", handlers.projectHandler.deleteProject())
		r.Post("/photos", handlers.photoHandler.createPhoto())
		r.Post("/pages", handlers.pageHandler.upsertPage())
	})
}

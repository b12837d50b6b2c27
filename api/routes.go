package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/personal-blog/errs"
	"github.com/rs/zerolog/log"
)

// setupRoutes mounts the public API. Only post creation requires a token.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, contactLimiter *rateLimiter) {
	r.Get("/health", handlers.healthHandler.health())
	r.Handle("/metrics", metricsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/system-status", handlers.healthHandler.systemStatus())

		// User Profile Handler endpoints
		r.Get("/users", handlers.userProfileHandler.getAllUsers())
		r.Get("/users/{userID}", handlers.userProfileHandler.getUser())

		// Blog Post Handler endpoints
		r.Get("/posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/posts/{postID}", handlers.blogPostHandler.getBlogPost())
		r.With(authMiddleware.authenticate).Post("/posts", handlers.blogPostHandler.createBlogPost())

		// Comment Handler endpoints
		r.Get("/posts/{postID}/comments", handlers.commentHandler.getCommentsForPost())
		r.Post("/posts/{postID}/comments", handlers.commentHandler.createComment())

		r.With(contactLimiter.Handler).Post("/contact", handlers.contactHandler.submitContact())
	})

	responder := NewResponder(log.With().Str("handlerName", "router").Logger())
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responder.WriteError(w, errs.NewApiErr(http.StatusNotFound, "Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responder.WriteError(w, errs.NewApiErr(http.StatusMethodNotAllowed, "Method not allowed"))
	})
}

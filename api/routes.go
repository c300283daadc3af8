package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every resource. Reads are public; every mutating route
// sits behind the bearer-token middleware.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/contact", handlers.contactHandler.submit())

		// Public reads
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{idOrSlug}", handlers.projectHandler.getProject())
		r.Get("/blogs", handlers.blogPostHandler.listBlogPosts())
		r.Get("/blogs/{idOrSlug}", handlers.blogPostHandler.getBlogPost())
		r.Get("/categories", handlers.categoryHandler.listCategories())
		r.Get("/resume", handlers.resumeHandler.download())

		// Admin-only writes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/blogs", handlers.blogPostHandler.createBlogPost())
			r.Put("/blogs/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blogs/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

			r.Post("/categories", handlers.categoryHandler.createCategory())
			r.Delete("/categories/{idOrSlug}", handlers.categoryHandler.deleteCategory())

			r.Post("/resume", handlers.resumeHandler.upload())
			r.Delete("/resume", handlers.resumeHandler.remove())
		})
	})
}

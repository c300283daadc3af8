package api

import (
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		authHandler:     newAuthHandler(cfg),
		projectHandler:  newProjectHandler(database.ProjectRepo()),
		blogPostHandler: newBlogPostHandler(database.BlogPostRepo()),
		categoryHandler: newCategoryHandler(database.CategoryRepo(), database.ProjectRepo()),
		resumeHandler:   newResumeHandler(database.ResumeRepo()),
		contactHandler:  newContactHandler(services.SendContactEmail),
	}
}

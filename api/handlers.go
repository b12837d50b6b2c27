package api

import (
	"time"

	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier *services.ContactNotifier, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		userProfileHandler: newUserProfileHandler(database.UserProfileRepo()),
		blogPostHandler:    newBlogPostHandler(database.BlogPostRepo()),
		commentHandler:     newCommentHandler(database.CommentRepo()),
		contactHandler:     newContactHandler(database.ContactSubmissionRepo(), notifier),
		healthHandler:      newHealthHandler(database, startupTime),
	}
}

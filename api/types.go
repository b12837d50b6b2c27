package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userProfileHandler userProfileHandler
	blogPostHandler    blogPostHandler
	commentHandler     commentHandler
	contactHandler     contactHandler
	healthHandler      healthHandler
}

package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler     authHandler
	projectHandler  projectHandler
	blogPostHandler blogPostHandler
	categoryHandler categoryHandler
	resumeHandler   resumeHandler
	contactHandler  contactHandler
}

// ErrorResponse is the body the Responder writes for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

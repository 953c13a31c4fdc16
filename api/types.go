package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler   projectHandler
	photoHandler     photoHandler
	exhibitHandler   exhibitHandler
	postHandler      postHandler
	pageHandler      pageHandler
	subscribeHandler subscribeHandler
}

// ErrorResponse is the error body every endpoint returns: a message plus,
// when the underlying failure carried one, a machine-readable code.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

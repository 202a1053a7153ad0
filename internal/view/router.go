package view

import "net/url"

// Route names for the two pages.
const (
	RouteHome    = "/"
	RouteChannel = "/channel"
)

// Router builds the view for a path. It owns the shared backend and
// session so page handlers only deal in views.
type Router struct {
	backend Backend
	session *Session
}

func NewRouter(backend Backend, session *Session) *Router {
	return &Router{backend: backend, session: session}
}

func (r *Router) Home() *HomeView {
	return NewHomeView(r.backend, r.session)
}

func (r *Router) Channel(query url.Values) *ChannelView {
	return NewChannelView(r.backend, query)
}

// Known reports whether path maps to a view.
func (r *Router) Known(path string) bool {
	return path == RouteHome || path == RouteChannel
}

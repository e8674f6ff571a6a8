// Package greeting renders the welcome greetings served by the HTTP layer.
//
// Nothing in this package knows about HTTP. The handlers package adapts a
// Greeter to gin routes and mounts it under a path prefix.
package greeting

import "html"

const (
	// DefaultGreeting is returned when no name is supplied.
	DefaultGreeting = "Hello, World!"

	namedPrefix = "Hello, "
)

// Name is an optional visitor name taken from the request path.
type Name struct {
	value   string
	present bool
}

// Present returns a Name holding s. An empty s yields an absent Name.
func Present(s string) Name {
	if s == "" {
		return Absent()
	}
	return Name{value: s, present: true}
}

// Absent returns a Name with no value.
func Absent() Name {
	return Name{}
}

// Get returns the name and whether it is present.
func (n Name) Get() (string, bool) {
	return n.value, n.present
}

// Request is a parsed greeting request
type Request struct {
	Name Name
}

// Response holds the rendered greeting text
type Response struct {
	Body string
}

// Greeter produces greetings for the two route shapes.
type Greeter interface {
	HandleRoot(req Request) Response
	HandleNamed(req Request) Response
}

// Option configures a Router
type Option func(*Router)

// WithEscaping enables HTML escaping of the name before it is echoed back.
//
// Escaping is off by default: the name is echoed verbatim, which is a
// reflected injection risk if the body is ever rendered as markup.
func WithEscaping(enabled bool) Option {
	return func(r *Router) {
		r.escape = enabled
	}
}

// Router is the default Greeter. It holds no per-request state and is safe
// for concurrent use.
type Router struct {
	escape bool
}

var _ Greeter = (*Router)(nil)

// NewRouter creates a new greeting router
func NewRouter(opts ...Option) *Router {
	r := &Router{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Escaping reports whether names are HTML escaped.
func (r *Router) Escaping() bool {
	return r.escape
}

// HandleRoot always returns the default greeting.
func (r *Router) HandleRoot(_ Request) Response {
	return Response{Body: DefaultGreeting}
}

// HandleNamed greets the request's name exactly as given. Requests without
// a name get the default greeting.
func (r *Router) HandleNamed(req Request) Response {
	name, ok := req.Name.Get()
	if !ok {
		return r.HandleRoot(req)
	}
	if r.escape {
		name = html.EscapeString(name)
	}
	return Response{Body: namedPrefix + name}
}

// Package routes decides whether a requested view may render for the
// current session.
package routes

import "strings"

// Well-known routes in the site map.
const (
	Home      = "/"
	Login     = "/login"
	Signup    = "/signup"
	Companies = "/companies"
	Jobs      = "/jobs"
	Profile   = "/profile"
)

// IdentityChecker reports whether an identity is present. session.Session
// satisfies it; the guard needs nothing else.
type IdentityChecker interface {
	Token() string
}

// Resolution is the outcome of a navigation request.
type Resolution struct {
	// Route is the view that actually renders.
	Route string
	// Redirected is true when the requested route was replaced, either by
	// the login entry point or by the homepage for unknown paths.
	Redirected bool
}

// Guard evaluates navigation requests against the current session. The
// check is synchronous and purely local: authorization here means "is a
// token present", not a validity check against the server.
type Guard struct {
	session IdentityChecker
}

// NewGuard creates a Guard over the given session.
func NewGuard(session IdentityChecker) *Guard {
	return &Guard{session: session}
}

// Resolve maps a requested path to the view that renders. Protected routes
// with no session redirect to the login entry point; unknown routes
// redirect home.
func (g *Guard) Resolve(path string) Resolution {
	if !Known(path) {
		return Resolution{Route: Home, Redirected: true}
	}
	if Protected(path) && g.session.Token() == "" {
		return Resolution{Route: Login, Redirected: true}
	}
	return Resolution{Route: path}
}

// Protected reports whether path requires a logged-in session.
func Protected(path string) bool {
	switch {
	case path == Companies, path == Jobs, path == Profile:
		return true
	case strings.HasPrefix(path, Companies+"/"):
		// company detail pages, /companies/{handle}
		return true
	default:
		return false
	}
}

// Known reports whether path exists in the site map.
func Known(path string) bool {
	switch path {
	case Home, Login, Signup, Companies, Jobs, Profile:
		return true
	}
	return strings.HasPrefix(path, Companies+"/")
}

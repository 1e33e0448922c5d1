// Package guard implements the redirect policy that keeps unauthenticated
// users out of protected screens and authenticated users off the login
// screen. The policy itself is a pure function; Navigator applies it
// reactively to session changes and navigation events.
package guard

import (
	"sync"

	"github.com/lockboxapp/lockbox/internal/client/session"
)

// Access is a screen's declared access level.
type Access int

const (
	// Public screens are reachable without a session.
	Public Access = iota
	// Protected screens require an authenticated user.
	Protected
)

// Route is a navigable screen with its access level.
type Route struct {
	Name   string
	Access Access
}

// Well-known route names.
const (
	LoginRoute   = "/login"
	LandingRoute = "/"
)

// Decide returns the route to redirect to, and whether a redirect is
// required at all:
//
//   - no user and a protected route → login
//   - user present and the login route itself → default landing
//   - anything else → stay put
//
// Redirecting to the route already active is a no-op, not an error; that
// idempotence is the caller's to exploit, Decide just never asks for it.
func Decide(userPresent bool, route Route) (string, bool) {
	if !userPresent && route.Access == Protected {
		return LoginRoute, true
	}
	if userPresent && route.Name == LoginRoute {
		return LandingRoute, true
	}
	return "", false
}

// Navigator tracks the active route and re-runs the policy synchronously
// on every session change and every explicit navigation. Redirects are
// announced through the redirect callback before the location updates.
type Navigator struct {
	mu       sync.Mutex
	routes   map[string]Route
	active   Route
	redirect func(from, to string)
	user     bool
}

// NewNavigator builds a Navigator over the given route table, starting at
// start. redirect is invoked for every issued redirect; it may be nil.
func NewNavigator(routes []Route, start Route, redirect func(from, to string)) *Navigator {
	table := make(map[string]Route, len(routes))
	for _, r := range routes {
		table[r.Name] = r
	}
	if _, ok := table[start.Name]; !ok {
		table[start.Name] = start
	}
	return &Navigator{routes: table, active: start, redirect: redirect}
}

// Bind subscribes the navigator to a session store so that guard policy
// re-evaluates on every committed session transition.
func (n *Navigator) Bind(store *session.Store) {
	n.OnSession(store.Snapshot())
	store.Subscribe(n.OnSession)
}

// OnSession is the session observer: it records user presence and
// re-evaluates the policy against the active route.
func (n *Navigator) OnSession(snap session.Snapshot) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.user = snap.Authenticated()
	n.applyLocked()
}

// NavigateTo moves to the named route (unknown names are treated as
// public) and immediately re-evaluates the policy, so deep links into
// protected screens bounce straight back to login.
func (n *Navigator) NavigateTo(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	route, ok := n.routes[name]
	if !ok {
		route = Route{Name: name, Access: Public}
	}
	n.active = route
	n.applyLocked()
}

// Active returns the current route after any policy redirects.
func (n *Navigator) Active() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

func (n *Navigator) applyLocked() {
	target, ok := Decide(n.user, n.active)
	if !ok || target == n.active.Name {
		return
	}
	from := n.active.Name
	route, known := n.routes[target]
	if !known {
		route = Route{Name: target, Access: Public}
	}
	n.active = route
	if n.redirect != nil {
		n.redirect(from, target)
	}
}

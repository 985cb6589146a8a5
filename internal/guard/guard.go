// Package guard decides whether the current session may visit a route.
// Decisions are pure functions of the route's access level and a session
// snapshot; Watch re-evaluates them whenever the session changes, so a
// logout on a protected screen turns into a redirect without the screen
// polling anything.
package guard

import (
	"context"
	"sync"

	"github.com/prideconnect/prideconnect/internal/route"
	"github.com/prideconnect/prideconnect/internal/session"
)

// Decision is the outcome of a guard evaluation.
type Decision int

const (
	// DecisionPending means the session is still resolving; render a
	// loading indicator and decide nothing yet.
	DecisionPending Decision = iota

	// DecisionAllowed admits the visitor to the route.
	DecisionAllowed

	// DecisionDenied refuses the route; RedirectTo names where to go
	// instead.
	DecisionDenied
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAllowed:
		return "allowed"
	case DecisionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Result pairs a decision with its redirect target. RedirectTo is set only
// when Decision is DecisionDenied.
type Result struct {
	Decision   Decision
	RedirectTo string
}

// Evaluate decides access to r for the session snapshot st.
//
// While the session is loading no decision is made: a visitor holding a
// valid persisted token must never bounce through the login screen, so
// protected routes wait for resolution to settle. After that, protected
// routes require an authenticated user and redirect to the login screen
// otherwise; anonymous routes are the mirror image and send authenticated
// users to the dashboard.
func Evaluate(r route.Route, st session.State) Result {
	if st.Loading {
		return Result{Decision: DecisionPending}
	}

	switch r.Access {
	case route.AccessProtected:
		return RequireAuth(st)
	case route.AccessAnonymous:
		return RequireAnon(st)
	default:
		return Result{Decision: DecisionAllowed}
	}
}

// RequireAuth is the guard for protected routes: it admits authenticated
// sessions and redirects everyone else to the login screen.
func RequireAuth(st session.State) Result {
	if st.Loading {
		return Result{Decision: DecisionPending}
	}
	if !st.Authenticated() {
		return Result{Decision: DecisionDenied, RedirectTo: route.LoginPath}
	}
	return Result{Decision: DecisionAllowed}
}

// RequireAnon is the guard for the login and register screens: it admits
// logged-out visitors and redirects authenticated users to the dashboard.
func RequireAnon(st session.State) Result {
	if st.Loading {
		return Result{Decision: DecisionPending}
	}
	if st.Authenticated() {
		return Result{Decision: DecisionDenied, RedirectTo: route.DashboardPath}
	}
	return Result{Decision: DecisionAllowed}
}

// Watch evaluates r against every session change. The returned channel is
// primed with the decision for the current state and receives a new Result
// whenever the decision or redirect target changes; unchanged re-evaluations
// are suppressed. A slow reader loses intermediate results, never the latest
// one. The cancel func releases the underlying subscription and closes the
// channel; cancelling ctx does the same.
func Watch(ctx context.Context, store *session.Store, r route.Route) (<-chan Result, func()) {
	states, cancelSub := store.Subscribe()

	out := make(chan Result, 1)
	done := make(chan struct{})

	go func() {
		defer close(out)

		var last Result
		first := true
		for {
			select {
			case st, ok := <-states:
				if !ok {
					return
				}
				res := Evaluate(r, st)
				if !first && res == last {
					continue
				}
				select {
				case out <- res:
				default:
					select {
					case <-out:
					default:
					}
					out <- res
				}
				last = res
				first = false
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			cancelSub()
			close(done)
		})
	}

	return out, cancel
}

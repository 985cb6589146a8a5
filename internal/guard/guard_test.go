package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
	"github.com/prideconnect/prideconnect/internal/session"
)

func mustRoute(t *testing.T, name string) route.Route {
	t.Helper()
	r, ok := route.Lookup(name)
	require.True(t, ok)
	return r
}

func TestEvaluate(t *testing.T) {
	user := &api.User{ID: "u1", Name: "Ann"}

	loading := session.State{Loading: true}
	anon := session.State{}
	authed := session.State{Token: "tok1", User: user}

	tests := []struct {
		name  string
		route string
		state session.State
		want  Result
	}{
		{"loading defers protected", route.Dashboard, loading, Result{Decision: DecisionPending}},
		{"loading defers anonymous", route.Login, loading, Result{Decision: DecisionPending}},
		{"loading defers public", route.Home, loading, Result{Decision: DecisionPending}},

		{"protected needs auth", route.Dashboard, anon, Result{Decision: DecisionDenied, RedirectTo: route.LoginPath}},
		{"protected admits user", route.Dashboard, authed, Result{Decision: DecisionAllowed}},

		{"anonymous admits visitor", route.Login, anon, Result{Decision: DecisionAllowed}},
		{"anonymous bounces user", route.Login, authed, Result{Decision: DecisionDenied, RedirectTo: route.DashboardPath}},
		{"register bounces user", route.Register, authed, Result{Decision: DecisionDenied, RedirectTo: route.DashboardPath}},

		{"public admits visitor", route.Home, anon, Result{Decision: DecisionAllowed}},
		{"public admits user", route.Home, authed, Result{Decision: DecisionAllowed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(mustRoute(t, tt.route), tt.state)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	user := &api.User{ID: "u1"}

	assert.Equal(t, DecisionPending, RequireAuth(session.State{Loading: true}).Decision)
	assert.Equal(t, DecisionAllowed, RequireAuth(session.State{Token: "t", User: user}).Decision)

	res := RequireAuth(session.State{})
	assert.Equal(t, DecisionDenied, res.Decision)
	assert.Equal(t, route.LoginPath, res.RedirectTo)
}

func TestRequireAnon(t *testing.T) {
	user := &api.User{ID: "u1"}

	assert.Equal(t, DecisionPending, RequireAnon(session.State{Loading: true}).Decision)
	assert.Equal(t, DecisionAllowed, RequireAnon(session.State{}).Decision)

	res := RequireAnon(session.State{Token: "t", User: user})
	assert.Equal(t, DecisionDenied, res.Decision)
	assert.Equal(t, route.DashboardPath, res.RedirectTo)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "pending", DecisionPending.String())
	assert.Equal(t, "allowed", DecisionAllowed.String())
	assert.Equal(t, "denied", DecisionDenied.String())
}

// newAuthedStore builds a session store against a backend that accepts the
// token "tok1" as the user Ann.
func newAuthedStore(t *testing.T) *session.Store {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id": "u1", "name": "Ann", "email": "a@b.com"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return session.New(api.NewClient(srv.URL), session.NewMemoryStorage())
}

func recv(t *testing.T, ch <-chan Result) Result {
	t.Helper()
	select {
	case res, ok := <-ch:
		require.True(t, ok, "watch channel closed unexpectedly")
		return res
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for guard result")
		return Result{}
	}
}

func TestWatchFollowsSession(t *testing.T) {
	store := newAuthedStore(t)

	results, cancel := Watch(context.Background(), store, mustRoute(t, route.Dashboard))
	defer cancel()

	// Primed with the loading-phase decision.
	assert.Equal(t, DecisionPending, recv(t, results).Decision)

	// No persisted token: the protected route denies and redirects to login.
	store.Initialize(context.Background())
	res := recv(t, results)
	assert.Equal(t, DecisionDenied, res.Decision)
	assert.Equal(t, route.LoginPath, res.RedirectTo)

	// Adopting a valid token flips the decision to allowed, possibly via an
	// intermediate pending result while the profile resolves.
	_, err := store.AdoptExternalToken(context.Background(), "tok1")
	require.NoError(t, err)
	res = recv(t, results)
	if res.Decision == DecisionPending {
		res = recv(t, results)
	}
	assert.Equal(t, DecisionAllowed, res.Decision)

	// Logout flips it straight back without any polling.
	store.Logout()
	res = recv(t, results)
	assert.Equal(t, DecisionDenied, res.Decision)
	assert.Equal(t, route.LoginPath, res.RedirectTo)
}

func TestWatchSuppressesUnchangedResults(t *testing.T) {
	store := newAuthedStore(t)
	store.Initialize(context.Background())

	results, cancel := Watch(context.Background(), store, mustRoute(t, route.Home))
	defer cancel()

	// The public route allows regardless of session changes, so repeated
	// logouts must not produce repeated results.
	assert.Equal(t, DecisionAllowed, recv(t, results).Decision)

	store.Logout()
	store.Logout()

	select {
	case res := <-results:
		t.Fatalf("unexpected duplicate result: %+v", res)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchCancel(t *testing.T) {
	store := newAuthedStore(t)

	results, cancel := Watch(context.Background(), store, mustRoute(t, route.Dashboard))
	recv(t, results)

	cancel()
	cancel() // idempotent

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-results:
			return !ok
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}

package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
	"github.com/prideconnect/prideconnect/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))
	t.Cleanup(srv.Close)

	store := session.New(api.NewClient(srv.URL), session.NewMemoryStorage())
	m := NewModel(store)
	t.Cleanup(m.cancel)
	return m
}

func authedState() session.State {
	return session.State{
		Token: "tok1",
		User:  &api.User{ID: "u1", Name: "Ann", Email: "a@b.com", UserType: "individual"},
	}
}

func anonState() session.State {
	return session.State{}
}

// TestNewModel tests initial model state
func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.match.Route.Name != route.Home {
		t.Errorf("Expected home route, got %s", m.match.Route.Name)
	}

	if !m.sess.Loading {
		t.Error("Expected session to start in the loading phase")
	}

	if m.quitting {
		t.Error("Expected quitting to be false by default")
	}
}

// TestWindowSize tests window size handling
func TestWindowSize(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := updated.(Model)

	if !got.ready {
		t.Error("Expected ready after window size message")
	}
	if got.width != 120 || got.height != 40 {
		t.Errorf("Expected 120x40, got %dx%d", got.width, got.height)
	}
}

// TestLoadingView tests the view shown before the session settles
func TestLoadingView(t *testing.T) {
	m := newTestModel(t)
	m.ready = true

	if !strings.Contains(m.View(), "Connecting") {
		t.Errorf("Expected connecting view while session loads, got %q", m.View())
	}
}

// TestGuardRedirectsAnonymousFromProtected tests the protected-route guard
func TestGuardRedirectsAnonymousFromProtected(t *testing.T) {
	m := newTestModel(t)
	m.sess = anonState()

	got, _ := m.navigate("/dashboard")

	if got.match.Route.Name != route.Login {
		t.Errorf("Expected redirect to login, got %s", got.match.Route.Name)
	}
}

// TestGuardRedirectsAuthenticatedFromLogin tests the anonymous-route guard
func TestGuardRedirectsAuthenticatedFromLogin(t *testing.T) {
	m := newTestModel(t)
	m.sess = authedState()

	got, _ := m.navigate("/login")

	if got.match.Route.Name != route.Dashboard {
		t.Errorf("Expected redirect to dashboard, got %s", got.match.Route.Name)
	}
}

// TestGuardDefersWhileLoading tests that no redirect happens mid-resolution
func TestGuardDefersWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m.sess = session.State{Loading: true}

	got, cmd := m.navigate("/dashboard")

	if got.match.Route.Name != route.Dashboard {
		t.Errorf("Expected to stay on dashboard, got %s", got.match.Route.Name)
	}
	if cmd != nil {
		t.Error("Expected no load command while the session resolves")
	}
}

// TestLogoutMidScreenRedirects tests the reactive guard re-evaluation
func TestLogoutMidScreenRedirects(t *testing.T) {
	m := newTestModel(t)
	m.sess = authedState()
	m, _ = m.navigate("/forums")

	updated, _ := m.Update(sessionChangedMsg{state: anonState()})
	got := updated.(Model)

	if got.match.Route.Name != route.Login {
		t.Errorf("Expected logout to land on login, got %s", got.match.Route.Name)
	}
}

// TestNavigationKeys tests keyboard navigation for an authenticated user
func TestNavigationKeys(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"d", route.Dashboard},
		{"f", route.Forums},
		{"e", route.Events},
		{"p", route.Directory},
		{"r", route.Resources},
		{"m", route.Messages},
		{"c", route.Community},
		{"u", route.Profile},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(t)
			m.sess = authedState()

			updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			got := updated.(Model)

			if got.match.Route.Name != tt.want {
				t.Errorf("Key %q: expected %s, got %s", tt.key, tt.want, got.match.Route.Name)
			}
		})
	}
}

// TestQuitKey tests quitting
func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	m.sess = anonState()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	got := updated.(Model)

	if !got.quitting {
		t.Error("Expected quitting after q")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

// TestStatsLoaded tests the dashboard data message
func TestStatsLoaded(t *testing.T) {
	m := newTestModel(t)
	m.sess = authedState()
	m.loading = true

	updated, _ := m.Update(statsLoadedMsg{stats: &api.Stats{Users: 42}})
	got := updated.(Model)

	if got.loading {
		t.Error("Expected loading to clear")
	}
	if got.stats == nil || got.stats.Users != 42 {
		t.Errorf("Expected stats to be set, got %+v", got.stats)
	}
}

// TestErrMsg tests load error display
func TestErrMsg(t *testing.T) {
	m := newTestModel(t)
	m.sess = authedState()
	m.ready = true
	m.loading = true

	updated, _ := m.Update(errMsg{err: errTest("backend unreachable")})
	got := updated.(Model)

	if got.loading {
		t.Error("Expected loading to clear on error")
	}
	if !strings.Contains(got.View(), "backend unreachable") {
		t.Error("Expected error text in the view")
	}
}

// TestPostsRendered tests the forum list view
func TestPostsRendered(t *testing.T) {
	m := newTestModel(t)
	m.sess = authedState()
	m.ready = true
	m.match = route.Resolve("/forums")
	m.posts = []api.ForumPost{{Title: "Meetup next week", AuthorName: "Sam", Category: "community"}}

	view := m.View()
	if !strings.Contains(view, "Meetup next week") {
		t.Errorf("Expected post title in view, got %q", view)
	}
}

// TestProfileView tests the profile screen
func TestProfileView(t *testing.T) {
	m := newTestModel(t)
	m.sess = authedState()
	m.ready = true
	m.match = route.Resolve("/profile")

	view := m.View()
	if !strings.Contains(view, "Ann") || !strings.Contains(view, "a@b.com") {
		t.Errorf("Expected profile details in view, got %q", view)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

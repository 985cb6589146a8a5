package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStaticPaths(t *testing.T) {
	tests := []struct {
		path string
		name string
	}{
		{"/", Home},
		{"/login", Login},
		{"/register", Register},
		{"/sso-callback", SSOCallback},
		{"/dashboard", Dashboard},
		{"/forums", Forums},
		{"/directory", Directory},
		{"/events", Events},
		{"/resources", Resources},
		{"/messages", Messages},
		{"/community", Community},
		{"/profile", Profile},
		{"/settings", Settings},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m := Resolve(tt.path)
			assert.Equal(t, tt.name, m.Route.Name)
			assert.False(t, m.Fallback)
			assert.Empty(t, m.Params)
		})
	}
}

func TestResolveParam(t *testing.T) {
	m := Resolve("/forums/42")
	assert.Equal(t, ForumPost, m.Route.Name)
	assert.Equal(t, map[string]string{"postID": "42"}, m.Params)
	assert.False(t, m.Fallback)
}

func TestResolveTrailingSlash(t *testing.T) {
	m := Resolve("/forums/")
	assert.Equal(t, Forums, m.Route.Name)

	m = Resolve("/forums/42/")
	assert.Equal(t, ForumPost, m.Route.Name)
	assert.Equal(t, "42", m.Params["postID"])
}

func TestResolveUnknownFallsBackToHome(t *testing.T) {
	for _, path := range []string{"/nope", "/forums/42/comments", "/login/extra", ""} {
		m := Resolve(path)
		assert.Equal(t, Home, m.Route.Name, "path %q", path)
		if path != "" && path != "/" {
			assert.True(t, m.Fallback, "path %q", path)
		}
	}
}

func TestResolveCollapsedTrailingSegments(t *testing.T) {
	// "/forums//" normalizes to a single segment and matches the list route.
	m := Resolve("/forums//")
	assert.Equal(t, Forums, m.Route.Name)
}

func TestAccessLevels(t *testing.T) {
	anon := map[string]bool{Login: true, Register: true}
	public := map[string]bool{Home: true, SSOCallback: true}

	for _, r := range Routes() {
		switch {
		case anon[r.Name]:
			assert.Equal(t, AccessAnonymous, r.Access, r.Name)
		case public[r.Name]:
			assert.Equal(t, AccessPublic, r.Access, r.Name)
		default:
			assert.Equal(t, AccessProtected, r.Access, r.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup(Dashboard)
	require.True(t, ok)
	assert.Equal(t, "/dashboard", r.Pattern)

	_, ok = Lookup("nonexistent")
	assert.False(t, ok)
}

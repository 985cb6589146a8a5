// Package route defines the application's static navigation table. Every
// screen the client can show is declared here once, with the access level
// the guards enforce for it. Resolution is a plain table walk; there is no
// dynamic registration.
package route

import "strings"

// Access classifies who may visit a route.
type Access int

const (
	// AccessPublic routes are visible regardless of session state.
	AccessPublic Access = iota

	// AccessAnonymous routes are for logged-out visitors only; an
	// authenticated user is redirected to the dashboard.
	AccessAnonymous

	// AccessProtected routes require an authenticated session; a logged-out
	// visitor is redirected to the login screen.
	AccessProtected
)

// String returns the access level name.
func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessAnonymous:
		return "anonymous"
	case AccessProtected:
		return "protected"
	default:
		return "unknown"
	}
}

// Route is one entry in the navigation table.
type Route struct {
	// Name identifies the route to screens and commands.
	Name string

	// Pattern is the path the route answers to. A segment starting with ':'
	// captures its value as a parameter.
	Pattern string

	// Access is the level the guards enforce.
	Access Access
}

// Match is the outcome of resolving a path.
type Match struct {
	Route Route

	// Params holds captured path segments keyed by parameter name.
	Params map[string]string

	// Fallback reports that the path matched nothing and resolution fell
	// back to the home route.
	Fallback bool
}

// Canonical route names.
const (
	Home        = "home"
	Login       = "login"
	Register    = "register"
	SSOCallback = "sso-callback"
	Dashboard   = "dashboard"
	Forums      = "forums"
	ForumPost   = "forum-post"
	Directory   = "directory"
	Events      = "events"
	Resources   = "resources"
	Messages    = "messages"
	Community   = "community"
	Profile     = "profile"
	Settings    = "settings"
)

// Canonical redirect targets.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// table is ordered: resolution takes the first pattern that matches.
var table = []Route{
	{Name: Home, Pattern: "/", Access: AccessPublic},
	{Name: Login, Pattern: "/login", Access: AccessAnonymous},
	{Name: Register, Pattern: "/register", Access: AccessAnonymous},
	{Name: SSOCallback, Pattern: "/sso-callback", Access: AccessPublic},
	{Name: Dashboard, Pattern: "/dashboard", Access: AccessProtected},
	{Name: Forums, Pattern: "/forums", Access: AccessProtected},
	{Name: ForumPost, Pattern: "/forums/:postID", Access: AccessProtected},
	{Name: Directory, Pattern: "/directory", Access: AccessProtected},
	{Name: Events, Pattern: "/events", Access: AccessProtected},
	{Name: Resources, Pattern: "/resources", Access: AccessProtected},
	{Name: Messages, Pattern: "/messages", Access: AccessProtected},
	{Name: Community, Pattern: "/community", Access: AccessProtected},
	{Name: Profile, Pattern: "/profile", Access: AccessProtected},
	{Name: Settings, Pattern: "/settings", Access: AccessProtected},
}

// Routes returns the full navigation table in declaration order.
func Routes() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Lookup returns the route with the given name.
func Lookup(name string) (Route, bool) {
	for _, r := range table {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Resolve maps a path to a route. An unknown path falls back to the home
// route rather than erroring: navigation always lands somewhere.
func Resolve(path string) Match {
	segments := split(path)

	for _, r := range table {
		if params, ok := match(split(r.Pattern), segments); ok {
			return Match{Route: r, Params: params}
		}
	}

	home, _ := Lookup(Home)
	return Match{Route: home, Fallback: true}
}

// split normalizes a path into its segments. "/" resolves to no segments.
func split(path string) []string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// match compares pattern segments against path segments, capturing ':'
// parameters. Lengths must agree exactly.
func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	var params map[string]string
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segments[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[p[1:]] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}

	return params, true
}

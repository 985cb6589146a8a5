// Package tui is the interactive terminal interface. It renders one screen
// per route, keeps a live subscription to the session store, and re-runs the
// navigation guard on every session change, so logging out on one screen
// lands on the login screen without any polling.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/guard"
	"github.com/prideconnect/prideconnect/internal/route"
	"github.com/prideconnect/prideconnect/internal/session"
)

// Model is the top-level application state.
type Model struct {
	store  *session.Store
	states <-chan session.State
	cancel func()

	sess  session.State
	match route.Match

	// Page data, populated by load commands.
	stats         *api.Stats
	posts         []api.ForumPost
	post          *api.ForumPost
	comments      []api.Comment
	events        []api.Event
	providers     []api.ServiceProvider
	resources     []api.Resource
	conversations []api.Conversation
	users         []api.User
	connections   []api.Connection

	login loginForm

	width    int
	height   int
	ready    bool
	loading  bool
	quitting bool
	errText  string

	styles Styles
}

// NewModel creates the application model over an initialized or
// uninitialized session store.
func NewModel(store *session.Store) Model {
	states, cancel := store.Subscribe()

	m := Model{
		store:  store,
		states: states,
		cancel: cancel,
		sess:   store.State(),
		match:  route.Resolve("/"),
		login:  newLoginForm(),
		styles: DefaultStyles(),
	}
	return m
}

// Messages.

// sessionChangedMsg carries a session snapshot from the store subscription.
type sessionChangedMsg struct {
	state session.State
}

// sessionSettledMsg reports that Initialize finished.
type sessionSettledMsg struct{}

// navigateMsg switches the visible screen.
type navigateMsg struct {
	path string
}

// errMsg surfaces a failed load or submit.
type errMsg struct {
	err error
}

type statsLoadedMsg struct{ stats *api.Stats }
type postsLoadedMsg struct{ posts []api.ForumPost }
type postLoadedMsg struct {
	post     *api.ForumPost
	comments []api.Comment
}
type eventsLoadedMsg struct{ events []api.Event }
type providersLoadedMsg struct{ providers []api.ServiceProvider }
type resourcesLoadedMsg struct{ resources []api.Resource }
type conversationsLoadedMsg struct{ conversations []api.Conversation }
type usersLoadedMsg struct{ users []api.User }
type connectionsLoadedMsg struct{ connections []api.Connection }

// Init starts session resolution and the subscription pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initSession(), m.waitForSession())
}

func (m Model) initSession() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Initialize(context.Background())
		return sessionSettledMsg{}
	}
}

// waitForSession blocks on the next session broadcast.
func (m Model) waitForSession() tea.Cmd {
	states := m.states
	return func() tea.Msg {
		st, ok := <-states
		if !ok {
			return nil
		}
		return sessionChangedMsg{state: st}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case sessionChangedMsg:
		m.sess = msg.state
		model, cmd := m.applyGuard()
		return model, tea.Batch(cmd, model.waitForSession())

	case sessionSettledMsg:
		return m, nil

	case navigateMsg:
		return m.navigate(msg.path)

	case errMsg:
		m.loading = false
		m.errText = msg.err.Error()
		return m, nil

	case statsLoadedMsg:
		m.loading = false
		m.stats = msg.stats
		return m, nil
	case postsLoadedMsg:
		m.loading = false
		m.posts = msg.posts
		return m, nil
	case postLoadedMsg:
		m.loading = false
		m.post = msg.post
		m.comments = msg.comments
		return m, nil
	case eventsLoadedMsg:
		m.loading = false
		m.events = msg.events
		return m, nil
	case providersLoadedMsg:
		m.loading = false
		m.providers = msg.providers
		return m, nil
	case resourcesLoadedMsg:
		m.loading = false
		m.resources = msg.resources
		return m, nil
	case conversationsLoadedMsg:
		m.loading = false
		m.conversations = msg.conversations
		return m, nil
	case usersLoadedMsg:
		m.loading = false
		m.users = msg.users
		return m, nil
	case connectionsLoadedMsg:
		m.loading = false
		m.connections = msg.connections
		return m, nil

	case loginResultMsg:
		return m.handleLoginResult(msg)
	}

	return m, nil
}

// navigate resolves path, runs the guard, and kicks off the screen's load.
func (m Model) navigate(path string) (Model, tea.Cmd) {
	m.match = route.Resolve(path)
	m.errText = ""
	return m.applyGuard()
}

// applyGuard re-evaluates the guard for the current route. A denial swaps
// the route for the redirect target before anything renders.
func (m Model) applyGuard() (Model, tea.Cmd) {
	res := guard.Evaluate(m.match.Route, m.sess)
	switch res.Decision {
	case guard.DecisionPending:
		return m, nil
	case guard.DecisionDenied:
		m.match = route.Resolve(res.RedirectTo)
		// The redirect target is always reachable for the state that
		// caused the denial.
	}

	if m.match.Route.Name == route.Login || m.match.Route.Name == route.Register {
		m.login = newLoginForm()
		m.login.focusFirst()
		return m, nil
	}

	return m.startLoad()
}

// startLoad fires the data command for the current screen.
func (m Model) startLoad() (Model, tea.Cmd) {
	cmd := m.loadCmd()
	if cmd == nil {
		m.loading = false
		return m, nil
	}
	m.loading = true
	return m, cmd
}

func (m Model) loadCmd() tea.Cmd {
	client := m.store.Client()
	params := m.match.Params

	switch m.match.Route.Name {
	case route.Home, route.Dashboard:
		return func() tea.Msg {
			stats, err := client.GetStats(context.Background())
			if err != nil {
				return errMsg{err}
			}
			return statsLoadedMsg{stats}
		}
	case route.Forums:
		return func() tea.Msg {
			posts, err := client.ListForumPosts(context.Background(), api.ListForumPostsOptions{})
			if err != nil {
				return errMsg{err}
			}
			return postsLoadedMsg{posts}
		}
	case route.ForumPost:
		postID := params["postID"]
		return func() tea.Msg {
			post, err := client.GetForumPost(context.Background(), postID)
			if err != nil {
				return errMsg{err}
			}
			comments, err := client.ListComments(context.Background(), postID)
			if err != nil {
				return errMsg{err}
			}
			return postLoadedMsg{post, comments}
		}
	case route.Events:
		return func() tea.Msg {
			events, err := client.ListEvents(context.Background(), api.ListEventsOptions{})
			if err != nil {
				return errMsg{err}
			}
			return eventsLoadedMsg{events}
		}
	case route.Directory:
		return func() tea.Msg {
			providers, err := client.ListProviders(context.Background(), api.ListProvidersOptions{})
			if err != nil {
				return errMsg{err}
			}
			return providersLoadedMsg{providers}
		}
	case route.Resources:
		return func() tea.Msg {
			resources, err := client.ListResources(context.Background(), api.ListResourcesOptions{})
			if err != nil {
				return errMsg{err}
			}
			return resourcesLoadedMsg{resources}
		}
	case route.Messages:
		return func() tea.Msg {
			conversations, err := client.ListConversations(context.Background())
			if err != nil {
				return errMsg{err}
			}
			return conversationsLoadedMsg{conversations}
		}
	case route.Community:
		return func() tea.Msg {
			users, err := client.ListUsers(context.Background(), api.ListUsersOptions{})
			if err != nil {
				return errMsg{err}
			}
			return usersLoadedMsg{users}
		}
	case route.Profile, route.Settings:
		// Rendered straight from the session, nothing to fetch.
		return nil
	default:
		return nil
	}
}

// handleKey routes keyboard input: the login form first, then navigation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	}

	if m.onLoginScreen() {
		return m.handleLoginKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case "h":
		return m.navigate("/")
	case "d":
		return m.navigate("/dashboard")
	case "f":
		return m.navigate("/forums")
	case "e":
		return m.navigate("/events")
	case "p":
		return m.navigate("/directory")
	case "r":
		return m.navigate("/resources")
	case "m":
		return m.navigate("/messages")
	case "c":
		return m.navigate("/community")
	case "u":
		return m.navigate("/profile")
	case "l":
		return m.navigate("/login")
	case "x":
		m.store.Logout()
		return m, nil
	}

	return m, nil
}

func (m Model) onLoginScreen() bool {
	return m.match.Route.Name == route.Login || m.match.Route.Name == route.Register
}

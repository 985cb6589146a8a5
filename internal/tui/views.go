package tui

import (
	"fmt"
	"strings"

	"github.com/prideconnect/prideconnect/internal/route"
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready || m.sess.Loading {
		return m.styles.Muted.Render("Connecting...")
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(m.styles.Error.Render("Error: " + m.errText))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderScreen())
	}

	b.WriteString(m.renderHelpLine())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("PrideConnect")
	who := "not logged in"
	if m.sess.Authenticated() {
		who = m.sess.User.Name
	}
	return title + "  " + m.styles.Muted.Render(who)
}

func (m Model) renderScreen() string {
	switch m.match.Route.Name {
	case route.Home, route.Dashboard:
		return m.renderStats()
	case route.Login, route.Register:
		return m.renderLogin()
	case route.Forums:
		return m.renderPosts()
	case route.ForumPost:
		return m.renderPost()
	case route.Events:
		return m.renderEvents()
	case route.Directory:
		return m.renderProviders()
	case route.Resources:
		return m.renderResources()
	case route.Messages:
		return m.renderConversations()
	case route.Community:
		return m.renderUsers()
	case route.Profile, route.Settings:
		return m.renderProfile()
	default:
		return ""
	}
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Community at a glance"))
	b.WriteString("\n\n")
	if m.stats == nil {
		b.WriteString(m.styles.Muted.Render("No data"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  %d members\n", m.stats.Users))
	b.WriteString(fmt.Sprintf("  %d service providers\n", m.stats.Providers))
	b.WriteString(fmt.Sprintf("  %d upcoming events\n", m.stats.Events))
	b.WriteString(fmt.Sprintf("  %d forum posts\n", m.stats.Posts))
	b.WriteString(fmt.Sprintf("  %d resources\n", m.stats.Resources))
	return b.String()
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString("  " + m.login.email.View() + "\n")
	b.WriteString("  " + m.login.password.View() + "\n")
	if m.login.busy {
		b.WriteString("\n" + m.styles.Muted.Render("  Signing in..."))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderPosts() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Forums"))
	b.WriteString("\n\n")
	if len(m.posts) == 0 {
		b.WriteString(m.styles.Muted.Render("No posts yet"))
		b.WriteString("\n")
		return b.String()
	}
	for _, p := range m.posts {
		b.WriteString("  " + p.Title + "\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
			"    by %s in %s, %d likes, %d comments", p.AuthorName, p.Category, p.Likes, p.CommentsCount)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPost() string {
	if m.post == nil {
		return m.styles.Muted.Render("No post") + "\n"
	}
	var b strings.Builder
	b.WriteString(m.styles.Status.Render(m.post.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("by " + m.post.AuthorName))
	b.WriteString("\n\n")
	b.WriteString(m.post.Content)
	b.WriteString("\n")
	if len(m.comments) > 0 {
		b.WriteString("\n" + m.styles.Subtitle.Render(fmt.Sprintf("Comments (%d)", len(m.comments))) + "\n")
		for _, c := range m.comments {
			b.WriteString(fmt.Sprintf("  %s: %s\n", c.AuthorName, c.Content))
		}
	}
	return b.String()
}

func (m Model) renderEvents() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Events"))
	b.WriteString("\n\n")
	if len(m.events) == 0 {
		b.WriteString(m.styles.Muted.Render("No upcoming events"))
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range m.events {
		where := e.Location
		if e.IsVirtual {
			where = "virtual"
		}
		b.WriteString("  " + e.Title + "\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
			"    %s, %s, %d attending", e.StartDate, where, e.AttendeesCount)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderProviders() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Service directory"))
	b.WriteString("\n\n")
	if len(m.providers) == 0 {
		b.WriteString(m.styles.Muted.Render("No providers listed"))
		b.WriteString("\n")
		return b.String()
	}
	for _, p := range m.providers {
		name := p.Name
		if p.IsVerified {
			name += " " + m.styles.Success.Render("✓")
		}
		b.WriteString("  " + name + "\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
			"    %s, %.1f stars", p.Location, p.Rating)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderResources() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Resources"))
	b.WriteString("\n\n")
	if len(m.resources) == 0 {
		b.WriteString(m.styles.Muted.Render("No resources yet"))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range m.resources {
		b.WriteString("  " + r.Title + "\n")
		b.WriteString(m.styles.Muted.Render("    " + r.Category + " by " + r.AuthorName))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderConversations() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Messages"))
	b.WriteString("\n\n")
	if len(m.conversations) == 0 {
		b.WriteString(m.styles.Muted.Render("No conversations yet"))
		b.WriteString("\n")
		return b.String()
	}
	for _, c := range m.conversations {
		name := c.UserName
		if c.UnreadCount > 0 {
			name += m.styles.Selected.Render(fmt.Sprintf(" %d ", c.UnreadCount))
		}
		b.WriteString("  " + name + "\n")
		b.WriteString(m.styles.Muted.Render("    " + c.LastMessage))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderUsers() string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Community"))
	b.WriteString("\n\n")
	if len(m.users) == 0 {
		b.WriteString(m.styles.Muted.Render("No members found"))
		b.WriteString("\n")
		return b.String()
	}
	for _, u := range m.users {
		line := "  " + u.Name
		if u.Location != "" {
			line += m.styles.Muted.Render(" (" + u.Location + ")")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderProfile() string {
	if !m.sess.Authenticated() {
		return m.styles.Muted.Render("Not logged in") + "\n"
	}
	u := m.sess.User
	var b strings.Builder
	b.WriteString(m.styles.Status.Render(u.Name))
	b.WriteString("\n\n")
	b.WriteString("  " + u.Email + "\n")
	b.WriteString("  " + u.UserType + "\n")
	if u.Location != "" {
		b.WriteString("  " + u.Location + "\n")
	}
	if u.Bio != "" {
		b.WriteString("\n" + u.Bio + "\n")
	}
	return b.String()
}

func (m Model) renderHelpLine() string {
	keys := []struct{ key, desc string }{
		{"d", "dashboard"},
		{"f", "forums"},
		{"e", "events"},
		{"p", "directory"},
		{"r", "resources"},
		{"m", "messages"},
		{"c", "community"},
		{"u", "profile"},
	}

	var parts []string
	if m.sess.Authenticated() {
		for _, k := range keys {
			parts = append(parts, m.styles.Key.Render(k.key)+" "+k.desc)
		}
		parts = append(parts, m.styles.Key.Render("x")+" logout")
	} else {
		parts = append(parts, m.styles.Key.Render("l")+" login")
		parts = append(parts, m.styles.Key.Render("h")+" home")
	}
	parts = append(parts, m.styles.Key.Render("q")+" quit")

	return m.styles.Help.Render(strings.Join(parts, "  "))
}

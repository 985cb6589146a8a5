package api

import (
	"context"
)

// Account types accepted by the backend.
const (
	UserTypeIndividual      = "individual"
	UserTypeServiceProvider = "service_provider"
	UserTypeNGO             = "ngo"
	UserTypeCaregiver       = "caregiver"
)

// UserTypes lists the account types accepted by the backend, in display order.
var UserTypes = []string{
	UserTypeIndividual,
	UserTypeServiceProvider,
	UserTypeNGO,
	UserTypeCaregiver,
}

// DisabilityCategories lists the self-identification categories accepted by
// the backend, in display order.
var DisabilityCategories = []string{
	"physical",
	"cognitive",
	"invisible",
	"psychiatric",
	"sensory",
	"multiple",
	"prefer_not_to_say",
}

// User is a platform member profile as returned by the backend.
type User struct {
	ID                   string   `json:"id"`
	Email                string   `json:"email"`
	Name                 string   `json:"name"`
	UserType             string   `json:"user_type"`
	OrganizationName     string   `json:"organization_name,omitempty"`
	DisabilityCategories []string `json:"disability_categories"`
	Bio                  string   `json:"bio,omitempty"`
	Location             string   `json:"location,omitempty"`
	AvatarURL            string   `json:"avatar_url,omitempty"`
	CreatedAt            string   `json:"created_at"`
	IsVerified           bool     `json:"is_verified"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the full profile payload for account creation.
type RegisterRequest struct {
	Email                string   `json:"email"`
	Password             string   `json:"password"`
	Name                 string   `json:"name"`
	UserType             string   `json:"user_type"`
	OrganizationName     string   `json:"organization_name,omitempty"`
	DisabilityCategories []string `json:"disability_categories"`
	Bio                  string   `json:"bio,omitempty"`
	Location             string   `json:"location,omitempty"`
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// omitted so the backend only touches what the caller set.
type UpdateProfileRequest struct {
	Name                 *string  `json:"name,omitempty"`
	Bio                  *string  `json:"bio,omitempty"`
	Location             *string  `json:"location,omitempty"`
	DisabilityCategories []string `json:"disability_categories,omitempty"`
	OrganizationName     *string  `json:"organization_name,omitempty"`
	AvatarURL            *string  `json:"avatar_url,omitempty"`
}

// AuthResponse is the credential envelope returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login authenticates with email and password. The returned token is NOT
// attached to the client; the session store owns that synchronization.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	var authResp AuthResponse
	if err := c.post(ctx, "/auth/login", req, &authResp); err != nil {
		return nil, err
	}

	return &authResp, nil
}

// Register creates a new account. On success the backend logs the account in
// and returns the same envelope as Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.UserType == "" {
		req.UserType = UserTypeIndividual
	}
	if req.DisabilityCategories == nil {
		req.DisabilityCategories = []string{}
	}

	var authResp AuthResponse
	if err := c.post(ctx, "/auth/register", req, &authResp); err != nil {
		return nil, err
	}

	return &authResp, nil
}

// CurrentUser resolves the bearer token currently attached to the client into
// a full profile ("who am I").
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the authenticated user's profile and returns the
// server's authoritative copy.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var user User
	if err := c.put(ctx, "/auth/me", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

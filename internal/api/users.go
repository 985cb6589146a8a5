package api

import (
	"context"
	"net/url"
	"strconv"
)

// ListUsersOptions filters the member listing.
type ListUsersOptions struct {
	UserType           string
	DisabilityCategory string
	Location           string
	Limit              int
}

func (o ListUsersOptions) values() url.Values {
	q := url.Values{}
	if o.UserType != "" {
		q.Set("user_type", o.UserType)
	}
	if o.DisabilityCategory != "" {
		q.Set("disability_category", o.DisabilityCategory)
	}
	if o.Location != "" {
		q.Set("location", o.Location)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

// ListUsers returns community members matching opts.
func (c *Client) ListUsers(ctx context.Context, opts ListUsersOptions) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/users/", opts.values(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a single member profile by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/"+userID, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

package api

import (
	"context"
	"net/url"
	"strconv"
)

// ServiceProvider is a directory entry for an accessibility service provider.
type ServiceProvider struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Services        []string `json:"services"`
	DisabilityFocus []string `json:"disability_focus"`
	Location        string   `json:"location"`
	Website         string   `json:"website,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	OwnerID         string   `json:"owner_id"`
	IsVerified      bool     `json:"is_verified"`
	Rating          float64  `json:"rating"`
	ReviewsCount    int      `json:"reviews_count"`
	CreatedAt       string   `json:"created_at"`
}

// CreateProviderRequest is the payload for a new directory entry.
type CreateProviderRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Services        []string `json:"services"`
	DisabilityFocus []string `json:"disability_focus"`
	Location        string   `json:"location"`
	Website         string   `json:"website,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
}

// ListProvidersOptions filters the provider directory.
type ListProvidersOptions struct {
	Service         string
	DisabilityFocus string
	Location        string
	Search          string
	Limit           int
}

func (o ListProvidersOptions) values() url.Values {
	q := url.Values{}
	if o.Service != "" {
		q.Set("service", o.Service)
	}
	if o.DisabilityFocus != "" {
		q.Set("disability_focus", o.DisabilityFocus)
	}
	if o.Location != "" {
		q.Set("location", o.Location)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

// CreateProvider adds a service provider to the directory.
func (c *Client) CreateProvider(ctx context.Context, req CreateProviderRequest) (*ServiceProvider, error) {
	var provider ServiceProvider
	if err := c.post(ctx, "/providers/", req, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

// ListProviders returns directory entries matching opts.
func (c *Client) ListProviders(ctx context.Context, opts ListProvidersOptions) ([]ServiceProvider, error) {
	var providers []ServiceProvider
	if err := c.get(ctx, "/providers/", opts.values(), &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// GetProvider returns a single directory entry by ID.
func (c *Client) GetProvider(ctx context.Context, providerID string) (*ServiceProvider, error) {
	var provider ServiceProvider
	if err := c.get(ctx, "/providers/"+providerID, nil, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

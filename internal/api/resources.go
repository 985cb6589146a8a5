package api

import (
	"context"
	"net/url"
	"strconv"
)

// Resource is a shared knowledge-base entry (guide, article, link).
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	URL         string   `json:"url,omitempty"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags"`
	AuthorID    string   `json:"author_id"`
	AuthorName  string   `json:"author_name"`
	CreatedAt   string   `json:"created_at"`
	Views       int      `json:"views"`
}

// CreateResourceRequest is the payload for a new resource.
type CreateResourceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	URL         string   `json:"url,omitempty"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags"`
}

// ListResourcesOptions filters the resource listing.
type ListResourcesOptions struct {
	Category string
	Tag      string
	Search   string
	Limit    int
}

func (o ListResourcesOptions) values() url.Values {
	q := url.Values{}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Tag != "" {
		q.Set("tag", o.Tag)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

// CreateResource publishes a new resource.
func (c *Client) CreateResource(ctx context.Context, req CreateResourceRequest) (*Resource, error) {
	if req.Tags == nil {
		req.Tags = []string{}
	}

	var resource Resource
	if err := c.post(ctx, "/resources/", req, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// ListResources returns resources matching opts.
func (c *Client) ListResources(ctx context.Context, opts ListResourcesOptions) ([]Resource, error) {
	var resources []Resource
	if err := c.get(ctx, "/resources/", opts.values(), &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// GetResource returns a single resource by ID.
func (c *Client) GetResource(ctx context.Context, resourceID string) (*Resource, error) {
	var resource Resource
	if err := c.get(ctx, "/resources/"+resourceID, nil, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

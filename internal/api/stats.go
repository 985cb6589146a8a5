package api

import (
	"context"
)

// Stats holds platform-wide counters shown on the landing and dashboard pages.
type Stats struct {
	Users     int `json:"users"`
	Providers int `json:"providers"`
	Events    int `json:"events"`
	Posts     int `json:"posts"`
	Resources int `json:"resources"`
}

// GetStats returns platform-wide counters. No authentication required.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

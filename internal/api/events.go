package api

import (
	"context"
	"net/url"
	"strconv"
)

// Event is a community event.
type Event struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	EventType             string   `json:"event_type"`
	Location              string   `json:"location"`
	IsVirtual             bool     `json:"is_virtual"`
	VirtualLink           string   `json:"virtual_link,omitempty"`
	StartDate             string   `json:"start_date"`
	EndDate               string   `json:"end_date,omitempty"`
	AccessibilityFeatures []string `json:"accessibility_features"`
	OrganizerID           string   `json:"organizer_id"`
	OrganizerName         string   `json:"organizer_name"`
	AttendeesCount        int      `json:"attendees_count"`
	CreatedAt             string   `json:"created_at"`
}

// CreateEventRequest is the payload for a new event.
type CreateEventRequest struct {
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	EventType             string   `json:"event_type"`
	Location              string   `json:"location"`
	IsVirtual             bool     `json:"is_virtual"`
	VirtualLink           string   `json:"virtual_link,omitempty"`
	StartDate             string   `json:"start_date"`
	EndDate               string   `json:"end_date,omitempty"`
	AccessibilityFeatures []string `json:"accessibility_features"`
}

// ListEventsOptions filters the event listing. Upcoming defaults to true on
// the backend, so PastIncluded flips it off explicitly.
type ListEventsOptions struct {
	EventType    string
	IsVirtual    *bool
	Location     string
	PastIncluded bool
	Limit        int
}

func (o ListEventsOptions) values() url.Values {
	q := url.Values{}
	if o.EventType != "" {
		q.Set("event_type", o.EventType)
	}
	if o.IsVirtual != nil {
		q.Set("is_virtual", strconv.FormatBool(*o.IsVirtual))
	}
	if o.Location != "" {
		q.Set("location", o.Location)
	}
	if o.PastIncluded {
		q.Set("upcoming", "false")
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

// CreateEvent publishes a new event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if req.AccessibilityFeatures == nil {
		req.AccessibilityFeatures = []string{}
	}

	var event Event
	if err := c.post(ctx, "/events/", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// ListEvents returns events matching opts.
func (c *Client) ListEvents(ctx context.Context, opts ListEventsOptions) ([]Event, error) {
	var events []Event
	if err := c.get(ctx, "/events/", opts.values(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent returns a single event by ID.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var event Event
	if err := c.get(ctx, "/events/"+eventID, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// AttendEvent registers the authenticated user as an attendee.
func (c *Client) AttendEvent(ctx context.Context, eventID string) error {
	return c.post(ctx, "/events/"+eventID+"/attend", nil, nil)
}

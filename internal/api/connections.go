package api

import (
	"context"
	"time"
)

// Connection statuses.
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionDeclined = "declined"
)

// Connection is a member-to-member connection request or link.
type Connection struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	SenderName   string    `json:"sender_name,omitempty"`
	ReceiverID   string    `json:"receiver_id"`
	ReceiverName string    `json:"receiver_name,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RequestConnection sends a connection request to another member.
func (c *Client) RequestConnection(ctx context.Context, userID string) (*Connection, error) {
	var conn Connection
	if err := c.post(ctx, "/connections/request/"+userID, nil, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// RespondToConnection accepts or declines a pending request.
// action must be "accept" or "decline".
func (c *Client) RespondToConnection(ctx context.Context, requestID, action string) (*Connection, error) {
	req := map[string]string{"action": action}

	var conn Connection
	if err := c.put(ctx, "/connections/respond/"+requestID, req, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// ListPendingConnections returns requests awaiting the user's response.
func (c *Client) ListPendingConnections(ctx context.Context) ([]Connection, error) {
	var conns []Connection
	if err := c.get(ctx, "/connections/pending", nil, &conns); err != nil {
		return nil, err
	}
	return conns, nil
}

// ListConnections returns the user's accepted connections.
func (c *Client) ListConnections(ctx context.Context) ([]Connection, error) {
	var conns []Connection
	if err := c.get(ctx, "/connections", nil, &conns); err != nil {
		return nil, err
	}
	return conns, nil
}

// ConnectionStatus returns the connection state with one member, or nil when
// no request exists in either direction.
func (c *Client) ConnectionStatus(ctx context.Context, userID string) (*Connection, error) {
	var conn *Connection
	if err := c.get(ctx, "/connections/status/"+userID, nil, &conn); err != nil {
		return nil, err
	}
	return conn, nil
}

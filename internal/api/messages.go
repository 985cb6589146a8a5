package api

import (
	"context"
)

// Message is a direct message between two members.
type Message struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	SenderName  string `json:"sender_name"`
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
}

// Conversation summarizes the message history with one member.
type Conversation struct {
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	UnreadCount     int    `json:"unread_count"`
}

// SendMessage sends a direct message to another member.
func (c *Client) SendMessage(ctx context.Context, recipientID, content string) (*Message, error) {
	req := map[string]string{
		"recipient_id": recipientID,
		"content":      content,
	}

	var msg Message
	if err := c.post(ctx, "/messages/", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListConversations returns the authenticated user's conversation summaries.
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	var conversations []Conversation
	if err := c.get(ctx, "/messages/conversations", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// ListMessagesWith returns the full message thread with one member.
func (c *Client) ListMessagesWith(ctx context.Context, userID string) ([]Message, error) {
	var messages []Message
	if err := c.get(ctx, "/messages/"+userID, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

package domain

import (
	"context"
	"time"
)

// Message is immutable once created
type Message struct {
	ID         int64     `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	JobID      *int64    `json:"job_id,omitempty"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// Conversation is one group in the conversation listing: the counterpart,
// the most recent message exchanged with them, and how many of their messages
// the caller has not read yet.
type Conversation struct {
	Counterpart UserSummary `json:"counterpart"`
	LastMessage Message     `json:"last_message"`
	UnreadCount int         `json:"unread_count"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	// GetAllForUser returns every message the user sent or received,
	// newest first
	GetAllForUser(ctx context.Context, userID string) ([]Message, error)
	// GetThread returns the messages between two users, oldest first
	GetThread(ctx context.Context, userID, otherID string) ([]Message, error)
	// MarkThreadRead marks messages from otherID to userID as read
	MarkThreadRead(ctx context.Context, userID, otherID string) error
}

type MessageUsecase interface {
	Send(ctx context.Context, actor Actor, receiverID string, jobID *int64, body string) (*Message, error)
	ListConversations(ctx context.Context, actor Actor) ([]Conversation, error)
	GetThread(ctx context.Context, actor Actor, otherID string) ([]Message, error)
}

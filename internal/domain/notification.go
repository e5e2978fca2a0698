package domain

import (
	"context"
	"time"
)

// Notification types
const (
	NotificationTypeNewApplication      = "new_application"
	NotificationTypeApplicationStatus   = "application_status"
	NotificationTypeInterviewScheduled  = "interview_scheduled"
	NotificationTypeInterviewConfirmed  = "interview_confirmed"
	NotificationTypeRescheduleRequested = "reschedule_requested"
	NotificationTypeInterviewUpdated    = "interview_updated"
	NotificationTypeInterviewCancelled  = "interview_cancelled"
	NotificationTypeInterviewCompleted  = "interview_completed"
	NotificationTypeInterviewNoShow     = "interview_no_show"
	NotificationTypeNewMessage          = "new_message"
)

type Notification struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	JobID         *int64    `json:"job_id,omitempty"`
	ApplicationID *int64    `json:"application_id,omitempty"`
	ActorID       *string   `json:"actor_id,omitempty"` // counterpart user that triggered it
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

// NotificationSettings controls which events additionally send email
type NotificationSettings struct {
	UserID             string    `json:"user_id"`
	EmailOnMessage     bool      `json:"email_on_message"`
	EmailOnApplication bool      `json:"email_on_application"`
	EmailOnInterview   bool      `json:"email_on_interview"`
	EmailOnStatus      bool      `json:"email_on_status"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Notifier delivers a notification to its owner: it persists the record and,
// when the owner's settings ask for it, sends an email. Implementations are
// best-effort; a failed delivery never fails the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, n *Notification)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByUserID(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error)
	// MarkRead marks a notification read; ErrNotFound when the id does not
	// belong to the user
	MarkRead(ctx context.Context, id int64, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	GetSettings(ctx context.Context, userID string) (*NotificationSettings, error)
	UpsertSettings(ctx context.Context, s *NotificationSettings) error
}

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, actor Actor, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, actor Actor, id int64) error
	MarkAllRead(ctx context.Context, actor Actor) error
	GetSettings(ctx context.Context, actor Actor) (*NotificationSettings, error)
	UpdateSettings(ctx context.Context, actor Actor, s *NotificationSettings) (*NotificationSettings, error)
	// SeedNotifications inserts sample rows for the caller (test fixture)
	SeedNotifications(ctx context.Context, actor Actor) ([]Notification, error)
}

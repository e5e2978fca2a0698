package domain

import (
	"context"
	"time"
)

// Interview types
const (
	InterviewTypeOnline  = "Online"
	InterviewTypeOffline = "Offline"
	InterviewTypePhone   = "Phone"
)

// Interview status constants. Scheduled is the only state an interview can be
// created in; the rest are terminal for the purposes of this system.
const (
	InterviewStatusScheduled   = "Scheduled"
	InterviewStatusCompleted   = "Completed"
	InterviewStatusCancelled   = "Cancelled"
	InterviewStatusNoShow      = "No-Show"
	InterviewStatusRescheduled = "Rescheduled"
)

type Interview struct {
	ID              int64     `json:"id"`
	ApplicationID   int64     `json:"application_id"`
	JobID           int64     `json:"job_id"`
	RecruiterID     string    `json:"recruiter_id"`
	CandidateID     string    `json:"candidate_id"`
	Type            string    `json:"type"` // Online | Offline | Phone
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	MeetingLink     *string   `json:"meeting_link,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Status          string    `json:"status"`

	// Candidate-side flags
	Confirmed             bool       `json:"confirmed"`
	ConfirmedAt           *time.Time `json:"confirmed_at,omitempty"`
	RescheduleRequested   bool       `json:"reschedule_requested"`
	RescheduleReason      *string    `json:"reschedule_reason,omitempty"`
	ProposedAt            *time.Time `json:"proposed_at,omitempty"`
	RescheduleRequestedAt *time.Time `json:"reschedule_requested_at,omitempty"`

	// Outcome fields
	Feedback     *string `json:"feedback,omitempty"`
	Rating       *int    `json:"rating,omitempty"`
	CancelReason *string `json:"cancel_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CandidateName *string `json:"candidate_name,omitempty"`
	RecruiterName *string `json:"recruiter_name,omitempty"`
}

// ScheduleInterviewInput is the payload for creating an interview
type ScheduleInterviewInput struct {
	ApplicationID   int64
	Type            string
	ScheduledAt     time.Time
	DurationMinutes int
	MeetingLink     string
	Location        string
	Notes           string
}

// UpdateInterviewInput overwrites only the fields present in the request
type UpdateInterviewInput struct {
	Type            *string
	ScheduledAt     *time.Time
	DurationMinutes *int
	MeetingLink     *string
	Location        *string
	Notes           *string
	Status          *string
}

// CompleteInterviewInput carries optional outcome fields
type CompleteInterviewInput struct {
	Feedback string
	Rating   int
	Notes    string
}

type InterviewRepository interface {
	Create(ctx context.Context, iv *Interview) error
	GetByID(ctx context.Context, id int64) (*Interview, error)
	GetByRecruiterID(ctx context.Context, recruiterID string) ([]Interview, error)
	GetByCandidateID(ctx context.Context, candidateID string) ([]Interview, error)
	// HasActiveForApplication reports whether a non-cancelled interview
	// exists for the application
	HasActiveForApplication(ctx context.Context, applicationID int64) (bool, error)
	Update(ctx context.Context, iv *Interview) error
	Delete(ctx context.Context, id int64) error
}

type InterviewUsecase interface {
	Schedule(ctx context.Context, actor Actor, input ScheduleInterviewInput) (*Interview, error)
	GetInterview(ctx context.Context, actor Actor, id int64) (*Interview, error)
	ListMyInterviews(ctx context.Context, actor Actor) ([]Interview, error)
	UpdateInterview(ctx context.Context, actor Actor, id int64, input UpdateInterviewInput) (*Interview, error)
	Confirm(ctx context.Context, actor Actor, id int64) (*Interview, error)
	RequestReschedule(ctx context.Context, actor Actor, id int64, reason string, proposedAt *time.Time) (*Interview, error)
	Cancel(ctx context.Context, actor Actor, id int64, reason string) (*Interview, error)
	Complete(ctx context.Context, actor Actor, id int64, input CompleteInterviewInput) (*Interview, error)
	MarkNoShow(ctx context.Context, actor Actor, id int64) (*Interview, error)
	DeleteInterview(ctx context.Context, actor Actor, id int64) error
}

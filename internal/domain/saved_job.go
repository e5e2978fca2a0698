package domain

import (
	"context"
	"time"
)

type SavedJob struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	JobID     int64     `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`

	// Joined data for list responses
	JobTitle    *string `json:"job_title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	JobStatus   *string `json:"job_status,omitempty"`
}

type SavedJobRepository interface {
	// Create inserts a saved job. Saving the same job twice surfaces as
	// ErrDuplicate via the unique constraint.
	Create(ctx context.Context, sj *SavedJob) error
	GetByUserID(ctx context.Context, userID string) ([]SavedJob, error)
	Delete(ctx context.Context, userID string, jobID int64) error
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, actor Actor, jobID int64) (*SavedJob, error)
	ListSavedJobs(ctx context.Context, actor Actor) ([]SavedJob, error)
	UnsaveJob(ctx context.Context, actor Actor, jobID int64) error
}

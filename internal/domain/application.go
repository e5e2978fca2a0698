package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusNew                = "New"
	ApplicationStatusReviewed           = "Reviewed"
	ApplicationStatusShortlisted        = "Shortlisted"
	ApplicationStatusInterviewScheduled = "Interview Scheduled"
	ApplicationStatusRejected           = "Rejected"
	ApplicationStatusHired              = "Hired"
)

// Application represents a job application from a job seeker.
// RecruiterID is denormalized from the job at creation time.
type Application struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"job_id"`
	ApplicantID  string    `json:"applicant_id"`
	RecruiterID  string    `json:"recruiter_id"`
	ResumeURL    string    `json:"resume_url"`
	CoverLetter  *string   `json:"cover_letter,omitempty"`
	PortfolioURL *string   `json:"portfolio_url,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts a new application. A duplicate (job, applicant) pair
	// surfaces as ErrDuplicate via the unique constraint.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Job seeker operations
	Apply(ctx context.Context, actor Actor, jobID int64, resumeURL, coverLetter, portfolioURL string) (*Application, error)
	GetMyApplications(ctx context.Context, actor Actor) ([]Application, error)

	// Shared
	GetApplication(ctx context.Context, actor Actor, id int64) (*Application, error)

	// Recruiter operations
	ListByJobID(ctx context.Context, actor Actor, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, actor Actor, id int64, status string) error
}

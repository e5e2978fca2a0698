package domain

import (
	"context"
	"time"
)

// Job status constants
const (
	JobStatusDraft  = "Draft"
	JobStatusActive = "Active"
)

type Job struct {
	ID          int64     `json:"id"`
	RecruiterID string    `json:"recruiter_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location"`
	SalaryMin   float64   `json:"salary_min"`
	SalaryMax   float64   `json:"salary_max"`
	Skills      []string  `json:"skills"`
	Status      string    `json:"status"` // Draft | Active
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchActive(ctx context.Context, limit, offset int) ([]Job, int64, error)
	FetchByRecruiterID(ctx context.Context, recruiterID string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	// Delete removes the job row only. Dependent applications and interviews
	// are intentionally left in place.
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor Actor, job *Job) error
	GetJobDetails(ctx context.Context, actor Actor, id int64) (*Job, error)
	ListActiveJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListMyJobs(ctx context.Context, actor Actor, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, actor Actor, job *Job) error
	DeleteJob(ctx context.Context, actor Actor, id int64) error
}

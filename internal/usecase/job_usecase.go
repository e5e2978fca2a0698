package usecase

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.Actor, job *domain.Job) error {
	if !actor.IsRecruiter() {
		return apperror.Forbidden("Only recruiters can post jobs")
	}

	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}
	if job.Status != domain.JobStatusDraft && job.Status != domain.JobStatusActive {
		return apperror.BadRequest("Status must be Draft or Active")
	}

	job.RecruiterID = actor.ID
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, actor domain.Actor, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	// Drafts exist only for their owner; everyone else gets the same
	// answer as for a job that does not exist.
	if job.Status != domain.JobStatusActive && job.RecruiterID != actor.ID {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

// ListActiveJobs returns only Active jobs. The filter is enforced server-side;
// Draft jobs are never visible outside their owner.
func (u *jobUsecase) ListActiveJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchActive(ctx, limit, offset)
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, actor domain.Actor, page, pageSize int) ([]domain.Job, int64, error) {
	if !actor.IsRecruiter() {
		return nil, 0, apperror.Forbidden("Only recruiters have job listings")
	}
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchByRecruiterID(ctx, actor.ID, limit, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actor domain.Actor, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if existing.RecruiterID != actor.ID {
		return apperror.Forbidden("You can only update your own jobs")
	}

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	if job.Status != domain.JobStatusDraft && job.Status != domain.JobStatusActive {
		return apperror.BadRequest("Status must be Draft or Active")
	}

	job.RecruiterID = existing.RecruiterID
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()

	return u.jobRepo.Update(ctx, job)
}

// DeleteJob removes the job only. Applications and interviews that reference
// it persist with orphaned job references; this is intentional.
func (u *jobUsecase) DeleteJob(ctx context.Context, actor domain.Actor, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if existing.RecruiterID != actor.ID {
		return apperror.Forbidden("You can only delete your own jobs")
	}
	return u.jobRepo.Delete(ctx, id)
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	notifier        domain.Notifier
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	notifier domain.Notifier,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		notifier:        notifier,
	}
}

var validApplicationTargets = map[string]bool{
	domain.ApplicationStatusReviewed:           true,
	domain.ApplicationStatusShortlisted:        true,
	domain.ApplicationStatusInterviewScheduled: true,
	domain.ApplicationStatusRejected:           true,
	domain.ApplicationStatusHired:              true,
}

// Apply creates an application for an active job. The recruiter reference is
// denormalized from the job so later ownership checks need no join.
func (uc *applicationUsecase) Apply(ctx context.Context, actor domain.Actor, jobID int64, resumeURL, coverLetter, portfolioURL string) (*domain.Application, error) {
	if !actor.IsJobSeeker() {
		return nil, apperror.Forbidden("Only job seekers can apply to jobs")
	}
	if resumeURL == "" {
		return nil, apperror.BadRequest("A resume is required to submit an application")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("Cannot apply to an inactive job")
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: actor.ID,
		RecruiterID: job.RecruiterID,
		ResumeURL:   resumeURL,
		Status:      domain.ApplicationStatusNew,
	}
	if coverLetter != "" {
		app.CoverLetter = &coverLetter
	}
	if portfolioURL != "" {
		app.PortfolioURL = &portfolioURL
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	uc.notifier.Notify(ctx, &domain.Notification{
		UserID:        job.RecruiterID,
		Type:          domain.NotificationTypeNewApplication,
		Title:         "New Application",
		Message:       fmt.Sprintf("You received a new application for %q", job.Title),
		JobID:         &job.ID,
		ApplicationID: &app.ID,
		ActorID:       &actor.ID,
	})

	return app, nil
}

func (uc *applicationUsecase) GetMyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if !actor.IsJobSeeker() {
		return nil, apperror.Forbidden("Only job seekers have application listings")
	}
	return uc.applicationRepo.GetByApplicantID(ctx, actor.ID)
}

// GetApplication is visible to the applicant and to the owning recruiter
func (uc *applicationUsecase) GetApplication(ctx context.Context, actor domain.Actor, id int64) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if app.ApplicantID != actor.ID && app.RecruiterID != actor.ID {
		return nil, apperror.Forbidden("You do not have access to this application")
	}
	return app, nil
}

func (uc *applicationUsecase) ListByJobID(ctx context.Context, actor domain.Actor, jobID int64) ([]domain.Application, error) {
	if !actor.IsRecruiter() {
		return nil, apperror.Forbidden("Only recruiters can view job applications")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.RecruiterID != actor.ID {
		return nil, apperror.Forbidden("You can only view applications for your own jobs")
	}

	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actor domain.Actor, id int64, status string) error {
	if !validApplicationTargets[status] {
		return apperror.BadRequest("Invalid status. Must be: Reviewed, Shortlisted, Interview Scheduled, Rejected, or Hired")
	}

	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.RecruiterID != actor.ID {
		return apperror.Forbidden("You can only update applications for your own jobs")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return apperror.Internal(err)
	}

	title := "Application Update"
	jobTitle := ""
	if app.JobTitle != nil {
		jobTitle = *app.JobTitle
	}
	uc.notifier.Notify(ctx, &domain.Notification{
		UserID:        app.ApplicantID,
		Type:          domain.NotificationTypeApplicationStatus,
		Title:         title,
		Message:       fmt.Sprintf("Your application for %q is now %s", jobTitle, status),
		JobID:         &app.JobID,
		ApplicationID: &app.ID,
		ActorID:       &actor.ID,
	})

	return nil
}

package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type savedJobUsecase struct {
	savedJobRepo domain.SavedJobRepository
	jobRepo      domain.JobRepository
}

func NewSavedJobUsecase(savedJobRepo domain.SavedJobRepository, jobRepo domain.JobRepository) domain.SavedJobUsecase {
	return &savedJobUsecase{savedJobRepo: savedJobRepo, jobRepo: jobRepo}
}

func (uc *savedJobUsecase) SaveJob(ctx context.Context, actor domain.Actor, jobID int64) (*domain.SavedJob, error) {
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	sj := &domain.SavedJob{UserID: actor.ID, JobID: jobID}
	if err := uc.savedJobRepo.Create(ctx, sj); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("You have already saved this job")
		}
		return nil, apperror.Internal(err)
	}
	return sj, nil
}

func (uc *savedJobUsecase) ListSavedJobs(ctx context.Context, actor domain.Actor) ([]domain.SavedJob, error) {
	return uc.savedJobRepo.GetByUserID(ctx, actor.ID)
}

func (uc *savedJobUsecase) UnsaveJob(ctx context.Context, actor domain.Actor, jobID int64) error {
	err := uc.savedJobRepo.Delete(ctx, actor.ID, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Saved job not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

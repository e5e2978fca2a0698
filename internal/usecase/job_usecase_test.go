package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJob(t *testing.T) {
	recruiter := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}

	t.Run("Should default status to Draft and stamp the owner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job := &domain.Job{Title: "Go Engineer", SalaryMin: 50000, SalaryMax: 70000}
		err := uc.CreateJob(context.Background(), recruiter, job)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusDraft, job.Status)
		assert.Equal(t, "recruiter1", job.RecruiterID)
	})

	t.Run("Should refuse job seekers", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		seeker := domain.Actor{ID: "seeker1", Role: domain.RoleJobSeeker}
		err := uc.CreateJob(context.Background(), seeker, &domain.Job{Title: "X"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only recruiters")
	})

	t.Run("Should reject an inverted salary range", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		job := &domain.Job{Title: "X", SalaryMin: 90000, SalaryMax: 50000}
		err := uc.CreateJob(context.Background(), recruiter, job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SalaryMin")
	})
}

func TestGetJobDetails(t *testing.T) {
	draft := &domain.Job{ID: 9, RecruiterID: "recruiter1", Title: "Stealth Role", Status: domain.JobStatusDraft}

	t.Run("Should hide drafts from anyone but the owner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(9)).Return(draft, nil)

		seeker := domain.Actor{ID: "seeker1", Role: domain.RoleJobSeeker}
		_, err := uc.GetJobDetails(context.Background(), seeker, 9)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")

		other := domain.Actor{ID: "recruiter2", Role: domain.RoleRecruiter}
		_, err = uc.GetJobDetails(context.Background(), other, 9)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should show a draft to its owner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(9)).Return(draft, nil)

		owner := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}
		job, err := uc.GetJobDetails(context.Background(), owner, 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusDraft, job.Status)
	})

	t.Run("Should show an active job to any caller", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		active := &domain.Job{ID: 3, RecruiterID: "recruiter1", Title: "Go Engineer", Status: domain.JobStatusActive}
		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(active, nil)

		seeker := domain.Actor{ID: "seeker1", Role: domain.RoleJobSeeker}
		job, err := uc.GetJobDetails(context.Background(), seeker, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Go Engineer", job.Title)
	})
}

func TestJobOwnership(t *testing.T) {
	owned := &domain.Job{ID: 1, RecruiterID: "recruiter1", Title: "Go Engineer", Status: domain.JobStatusActive}

	t.Run("Should refuse updates from a different recruiter", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)

		other := domain.Actor{ID: "recruiter2", Role: domain.RoleRecruiter}
		err := uc.UpdateJob(context.Background(), other, &domain.Job{ID: 1, Title: "Hijacked", Status: domain.JobStatusActive})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})

	t.Run("Should refuse deletes from a different recruiter", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)

		other := domain.Actor{ID: "recruiter2", Role: domain.RoleRecruiter}
		err := uc.DeleteJob(context.Background(), other, 1)
		assert.Error(t, err)
	})

	t.Run("Should delete the job without touching applications or interviews", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		appRepo := new(MockApplicationRepo)
		interviewRepo := new(MockInterviewRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)
		jobRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

		actor := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}
		err := uc.DeleteJob(context.Background(), actor, 1)
		assert.NoError(t, err)

		// dependent records are never cascaded: nothing may reach the
		// application or interview stores during a job delete
		jobRepo.AssertExpectations(t)
		appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		interviewRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should preserve the owner on update", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(owned, nil)
		jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, "recruiter1", j.RecruiterID)
		})

		actor := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}
		err := uc.UpdateJob(context.Background(), actor, &domain.Job{ID: 1, Title: "Senior Go Engineer", Status: domain.JobStatusActive})
		assert.NoError(t, err)
	})
}

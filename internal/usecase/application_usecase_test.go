package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApply(t *testing.T) {
	seeker := domain.Actor{ID: "seeker1", Role: domain.RoleJobSeeker}
	activeJob := &domain.Job{ID: 1, RecruiterID: "recruiter1", Title: "Go Engineer", Status: domain.JobStatusActive}

	t.Run("Should create the application and notify the recruiter", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, notifier)

		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(activeJob, nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Apply(context.Background(), seeker, 1, "https://cdn.example.com/cv.pdf", "", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusNew, app.Status)
		assert.Equal(t, "recruiter1", app.RecruiterID)
		assert.Len(t, notifier.Sent, 1)
		assert.Equal(t, "recruiter1", notifier.Sent[0].UserID)
	})

	t.Run("Should reject a duplicate application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, &MockNotifier{})

		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(activeJob, nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		_, err := uc.Apply(context.Background(), seeker, 1, "https://cdn.example.com/cv.pdf", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should require a resume", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), &MockNotifier{})

		_, err := uc.Apply(context.Background(), seeker, 1, "", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "resume")
	})

	t.Run("Should refuse applications to inactive jobs", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobRepo, &MockNotifier{})

		draft := &domain.Job{ID: 2, Status: domain.JobStatusDraft}
		jobRepo.On("GetByID", mock.Anything, int64(2)).Return(draft, nil)

		_, err := uc.Apply(context.Background(), seeker, 2, "https://cdn.example.com/cv.pdf", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "inactive")
	})

	t.Run("Should refuse recruiters", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), &MockNotifier{})

		recruiter := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}
		_, err := uc.Apply(context.Background(), recruiter, 1, "https://cdn.example.com/cv.pdf", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only job seekers")
	})
}

func TestApplicationAccess(t *testing.T) {
	app := &domain.Application{ID: 5, JobID: 1, ApplicantID: "seeker1", RecruiterID: "recruiter1"}

	t.Run("Should allow the applicant and the recruiter, nobody else", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), &MockNotifier{})

		appRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)

		_, err := uc.GetApplication(context.Background(), domain.Actor{ID: "seeker1", Role: domain.RoleJobSeeker}, 5)
		assert.NoError(t, err)

		_, err = uc.GetApplication(context.Background(), domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}, 5)
		assert.NoError(t, err)

		_, err = uc.GetApplication(context.Background(), domain.Actor{ID: "seeker2", Role: domain.RoleJobSeeker}, 5)
		assert.Error(t, err)
	})

	t.Run("Should only list applications for the recruiter's own job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobRepo, &MockNotifier{})

		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, RecruiterID: "recruiter1"}, nil)

		other := domain.Actor{ID: "recruiter2", Role: domain.RoleRecruiter}
		_, err := uc.ListByJobID(context.Background(), other, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})
}

func TestApplicationStatusUpdate(t *testing.T) {
	recruiter := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}
	jobTitle := "Go Engineer"
	app := &domain.Application{ID: 5, JobID: 1, ApplicantID: "seeker1", RecruiterID: "recruiter1", JobTitle: &jobTitle}

	t.Run("Should update to a valid target and notify the applicant", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), notifier)

		appRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(5), domain.ApplicationStatusShortlisted).Return(nil)

		err := uc.UpdateStatus(context.Background(), recruiter, 5, domain.ApplicationStatusShortlisted)
		assert.NoError(t, err)
		assert.Len(t, notifier.Sent, 1)
		assert.Equal(t, "seeker1", notifier.Sent[0].UserID)
		assert.Contains(t, notifier.Sent[0].Message, "Shortlisted")
	})

	t.Run("Should reject New as a target status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), &MockNotifier{})

		err := uc.UpdateStatus(context.Background(), recruiter, 5, domain.ApplicationStatusNew)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should reject an arbitrary status string", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), &MockNotifier{})

		err := uc.UpdateStatus(context.Background(), recruiter, 5, "OnHold")
		assert.Error(t, err)
	})
}

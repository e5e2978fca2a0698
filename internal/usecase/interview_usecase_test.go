package usecase_test

import (
	"context"
	"testing"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func scheduledInterview() *domain.Interview {
	return &domain.Interview{
		ID:            7,
		ApplicationID: 3,
		JobID:         1,
		RecruiterID:   "recruiter1",
		CandidateID:   "seeker1",
		Type:          domain.InterviewTypePhone,
		ScheduledAt:   time.Now().Add(48 * time.Hour),
		Status:        domain.InterviewStatusScheduled,
	}
}

func TestInterviewScheduling(t *testing.T) {
	recruiter := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}
	app := &domain.Application{ID: 3, JobID: 1, ApplicantID: "seeker1", RecruiterID: "recruiter1"}

	t.Run("Should create a Scheduled interview and move the application", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo, notifier)

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)
		ivRepo.On("HasActiveForApplication", mock.Anything, int64(3)).Return(false, nil)
		ivRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(3), domain.ApplicationStatusInterviewScheduled).Return(nil)

		iv, err := uc.Schedule(context.Background(), recruiter, domain.ScheduleInterviewInput{
			ApplicationID: 3,
			Type:          domain.InterviewTypeOnline,
			ScheduledAt:   time.Now().Add(24 * time.Hour),
			MeetingLink:   "https://meet.example.com/abc",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusScheduled, iv.Status)
		assert.Equal(t, "seeker1", iv.CandidateID)
		assert.Len(t, notifier.Sent, 1)
		assert.Equal(t, domain.NotificationTypeInterviewScheduled, notifier.Sent[0].Type)
		assert.Equal(t, "seeker1", notifier.Sent[0].UserID)
	})

	t.Run("Should reject a past date", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo, &MockNotifier{})

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)

		_, err := uc.Schedule(context.Background(), recruiter, domain.ScheduleInterviewInput{
			ApplicationID: 3,
			Type:          domain.InterviewTypePhone,
			ScheduledAt:   time.Now().Add(-time.Hour),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "future")
	})

	t.Run("Should reject an unknown type", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo, &MockNotifier{})

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)

		_, err := uc.Schedule(context.Background(), recruiter, domain.ScheduleInterviewInput{
			ApplicationID: 3,
			Type:          "VideoCall",
			ScheduledAt:   time.Now().Add(24 * time.Hour),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Online, Offline, or Phone")
	})

	t.Run("Should require a meeting link for Online", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo, &MockNotifier{})

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)

		_, err := uc.Schedule(context.Background(), recruiter, domain.ScheduleInterviewInput{
			ApplicationID: 3,
			Type:          domain.InterviewTypeOnline,
			ScheduledAt:   time.Now().Add(24 * time.Hour),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "meeting link")
	})

	t.Run("Should require a location for Offline", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo, &MockNotifier{})

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)

		_, err := uc.Schedule(context.Background(), recruiter, domain.ScheduleInterviewInput{
			ApplicationID: 3,
			Type:          domain.InterviewTypeOffline,
			ScheduledAt:   time.Now().Add(24 * time.Hour),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "location")
	})

	t.Run("Should reject a second active interview for the same application", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo, &MockNotifier{})

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)
		ivRepo.On("HasActiveForApplication", mock.Anything, int64(3)).Return(true, nil)

		_, err := uc.Schedule(context.Background(), recruiter, domain.ScheduleInterviewInput{
			ApplicationID: 3,
			Type:          domain.InterviewTypePhone,
			ScheduledAt:   time.Now().Add(24 * time.Hour),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already scheduled")
	})

	t.Run("Should refuse scheduling against another recruiter's application", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo, &MockNotifier{})

		appRepo.On("GetByID", mock.Anything, int64(3)).Return(app, nil)

		other := domain.Actor{ID: "recruiter2", Role: domain.RoleRecruiter}
		_, err := uc.Schedule(context.Background(), other, domain.ScheduleInterviewInput{
			ApplicationID: 3,
			Type:          domain.InterviewTypePhone,
			ScheduledAt:   time.Now().Add(24 * time.Hour),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})
}

func TestInterviewCandidateActions(t *testing.T) {
	candidate := domain.Actor{ID: "seeker1", Role: domain.RoleJobSeeker}
	recruiter := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}

	t.Run("Should let the candidate confirm and notify the recruiter", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), notifier)

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)
		ivRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		iv, err := uc.Confirm(context.Background(), candidate, 7)
		assert.NoError(t, err)
		assert.True(t, iv.Confirmed)
		assert.NotNil(t, iv.ConfirmedAt)
		assert.Len(t, notifier.Sent, 1)
		assert.Equal(t, "recruiter1", notifier.Sent[0].UserID)
	})

	t.Run("Should refuse confirmation from the recruiter", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), &MockNotifier{})

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)

		_, err := uc.Confirm(context.Background(), recruiter, 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only the candidate")
	})

	t.Run("Should require a reason for a reschedule request", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), &MockNotifier{})

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)

		_, err := uc.RequestReschedule(context.Background(), candidate, 7, "", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")
	})

	t.Run("Should record the reschedule request and carry the reason to the recruiter", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), notifier)

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)
		ivRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		proposed := time.Now().Add(72 * time.Hour)
		iv, err := uc.RequestReschedule(context.Background(), candidate, 7, "conflict with exams", &proposed)
		assert.NoError(t, err)
		assert.True(t, iv.RescheduleRequested)
		assert.Equal(t, "conflict with exams", *iv.RescheduleReason)
		assert.Len(t, notifier.Sent, 1)
		assert.Contains(t, notifier.Sent[0].Message, "conflict with exams")
	})
}

func TestInterviewLifecycle(t *testing.T) {
	recruiter := domain.Actor{ID: "recruiter1", Role: domain.RoleRecruiter}
	candidate := domain.Actor{ID: "seeker1", Role: domain.RoleJobSeeker}

	t.Run("Should allow either party to cancel and notify the other", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), notifier)

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)
		ivRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		iv, err := uc.Cancel(context.Background(), candidate, 7, "found another role")
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusCancelled, iv.Status)
		assert.Len(t, notifier.Sent, 1)
		assert.Equal(t, "recruiter1", notifier.Sent[0].UserID)
	})

	t.Run("Should complete with a rating inside 1..5", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), notifier)

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)
		ivRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		iv, err := uc.Complete(context.Background(), recruiter, 7, domain.CompleteInterviewInput{
			Feedback: "strong communication",
			Rating:   4,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusCompleted, iv.Status)
		assert.Equal(t, 4, *iv.Rating)
		assert.Equal(t, "seeker1", notifier.Sent[0].UserID)
	})

	t.Run("Should reject a rating outside 1..5", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), &MockNotifier{})

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)

		_, err := uc.Complete(context.Background(), recruiter, 7, domain.CompleteInterviewInput{Rating: 9})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 5")
	})

	t.Run("Should mark a no-show and notify the candidate", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), notifier)

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)
		ivRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		iv, err := uc.MarkNoShow(context.Background(), recruiter, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusNoShow, iv.Status)
		assert.Equal(t, domain.NotificationTypeInterviewNoShow, notifier.Sent[0].Type)
	})

	t.Run("Should refuse update with an unknown status", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), &MockNotifier{})

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)

		bad := "Pending"
		_, err := uc.UpdateInterview(context.Background(), recruiter, 7, domain.UpdateInterviewInput{Status: &bad})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid interview status")
	})

	t.Run("Should announce the new time when the date changes", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), notifier)

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)
		ivRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)

		newTime := time.Now().Add(96 * time.Hour)
		_, err := uc.UpdateInterview(context.Background(), recruiter, 7, domain.UpdateInterviewInput{ScheduledAt: &newTime})
		assert.NoError(t, err)
		assert.Contains(t, notifier.Sent[0].Message, "moved to")
	})

	t.Run("Should hide interviews from unrelated users", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo), &MockNotifier{})

		ivRepo.On("GetByID", mock.Anything, int64(7)).Return(scheduledInterview(), nil)

		stranger := domain.Actor{ID: "seeker2", Role: domain.RoleJobSeeker}
		_, err := uc.GetInterview(context.Background(), stranger, 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "access")
	})
}

package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (uc *notificationUsecase) ListNotifications(ctx context.Context, actor domain.Actor, unreadOnly bool) ([]domain.Notification, error) {
	return uc.notificationRepo.GetByUserID(ctx, actor.ID, unreadOnly)
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, actor domain.Actor, id int64) error {
	err := uc.notificationRepo.MarkRead(ctx, id, actor.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Notification not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *notificationUsecase) MarkAllRead(ctx context.Context, actor domain.Actor) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, actor.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetSettings returns stored settings, or the defaults when the user never
// saved any
func (uc *notificationUsecase) GetSettings(ctx context.Context, actor domain.Actor) (*domain.NotificationSettings, error) {
	settings, err := uc.notificationRepo.GetSettings(ctx, actor.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.NotificationSettings{
			UserID:             actor.ID,
			EmailOnMessage:     true,
			EmailOnApplication: true,
			EmailOnInterview:   true,
			EmailOnStatus:      true,
		}, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return settings, nil
}

func (uc *notificationUsecase) UpdateSettings(ctx context.Context, actor domain.Actor, s *domain.NotificationSettings) (*domain.NotificationSettings, error) {
	s.UserID = actor.ID
	if err := uc.notificationRepo.UpsertSettings(ctx, s); err != nil {
		return nil, apperror.Internal(err)
	}
	return s, nil
}

// SeedNotifications inserts sample records for the caller. Test fixture only.
func (uc *notificationUsecase) SeedNotifications(ctx context.Context, actor domain.Actor) ([]domain.Notification, error) {
	samples := []domain.Notification{
		{
			UserID:  actor.ID,
			Type:    domain.NotificationTypeNewMessage,
			Title:   "New Message",
			Message: "You have a new message",
		},
		{
			UserID:  actor.ID,
			Type:    domain.NotificationTypeInterviewScheduled,
			Title:   "Interview Scheduled",
			Message: "An interview has been scheduled",
		},
		{
			UserID:  actor.ID,
			Type:    domain.NotificationTypeApplicationStatus,
			Title:   "Application Update",
			Message: "Your application status changed",
		},
	}

	created := make([]domain.Notification, 0, len(samples))
	for i := range samples {
		if err := uc.notificationRepo.Create(ctx, &samples[i]); err != nil {
			return nil, apperror.Internal(err)
		}
		created = append(created, samples[i])
	}
	return created, nil
}

package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/email"
	"jobboard-backend/pkg/logger"
)

// notifier persists notifications and mirrors selected ones to email.
// All failures are logged and swallowed so the triggering operation succeeds
// regardless of delivery.
type notifier struct {
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
	emailService     *email.EmailService
}

func NewNotifier(
	notificationRepo domain.NotificationRepository,
	userRepo domain.UserRepository,
	emailService *email.EmailService,
) domain.Notifier {
	return &notifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
	}
}

// interview lifecycle types that mirror to email when enabled
var interviewEmailTypes = map[string]bool{
	domain.NotificationTypeInterviewScheduled:  true,
	domain.NotificationTypeInterviewConfirmed:  true,
	domain.NotificationTypeRescheduleRequested: true,
	domain.NotificationTypeInterviewUpdated:    true,
	domain.NotificationTypeInterviewCancelled:  true,
	domain.NotificationTypeInterviewCompleted:  true,
	domain.NotificationTypeInterviewNoShow:     true,
}

func (n *notifier) Notify(ctx context.Context, notification *domain.Notification) {
	if err := n.notificationRepo.Create(ctx, notification); err != nil {
		logger.Log.Error("Failed to persist notification",
			"user_id", notification.UserID, "type", notification.Type, "error", err)
		return
	}

	if !n.shouldEmail(ctx, notification) {
		return
	}

	user, err := n.userRepo.GetByID(ctx, notification.UserID)
	if err != nil {
		logger.Log.Error("Failed to load notification recipient", "user_id", notification.UserID, "error", err)
		return
	}

	err = n.emailService.SendInterviewEmail(user.Email, email.InterviewEmailData{
		RecipientName: user.FullName,
		Headline:      notification.Title,
		Body:          notification.Message,
	})
	if err != nil {
		logger.Log.Error("Failed to send notification email", "user_id", notification.UserID, "error", err)
	}
}

func (n *notifier) shouldEmail(ctx context.Context, notification *domain.Notification) bool {
	if n.emailService == nil || !n.emailService.IsConfigured() {
		return false
	}
	if !interviewEmailTypes[notification.Type] {
		return false
	}

	// Missing settings row means defaults: interview emails on
	settings, err := n.notificationRepo.GetSettings(ctx, notification.UserID)
	if err != nil {
		return true
	}
	return settings.EmailOnInterview
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type interviewUsecase struct {
	interviewRepo   domain.InterviewRepository
	applicationRepo domain.ApplicationRepository
	notifier        domain.Notifier
}

func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	applicationRepo domain.ApplicationRepository,
	notifier domain.Notifier,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:   interviewRepo,
		applicationRepo: applicationRepo,
		notifier:        notifier,
	}
}

var validInterviewTypes = map[string]bool{
	domain.InterviewTypeOnline:  true,
	domain.InterviewTypeOffline: true,
	domain.InterviewTypePhone:   true,
}

var validInterviewStatuses = map[string]bool{
	domain.InterviewStatusScheduled:   true,
	domain.InterviewStatusCompleted:   true,
	domain.InterviewStatusCancelled:   true,
	domain.InterviewStatusNoShow:      true,
	domain.InterviewStatusRescheduled: true,
}

// Schedule creates an interview in the Scheduled state. The duplicate check
// and the insert are two separate calls; two concurrent schedules for the
// same application can both pass the check. Known gap, kept as best-effort.
func (uc *interviewUsecase) Schedule(ctx context.Context, actor domain.Actor, input domain.ScheduleInterviewInput) (*domain.Interview, error) {
	app, err := uc.applicationRepo.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if app.RecruiterID != actor.ID {
		return nil, apperror.Forbidden("You can only schedule interviews for your own jobs")
	}

	if err := validateInterviewDetails(input.Type, input.ScheduledAt, input.MeetingLink, input.Location); err != nil {
		return nil, err
	}

	exists, err := uc.interviewRepo.HasActiveForApplication(ctx, input.ApplicationID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("An interview is already scheduled for this application")
	}

	iv := &domain.Interview{
		ApplicationID:   app.ID,
		JobID:           app.JobID,
		RecruiterID:     app.RecruiterID,
		CandidateID:     app.ApplicantID,
		Type:            input.Type,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		Status:          domain.InterviewStatusScheduled,
	}
	if input.MeetingLink != "" {
		iv.MeetingLink = &input.MeetingLink
	}
	if input.Location != "" {
		iv.Location = &input.Location
	}
	if input.Notes != "" {
		iv.Notes = &input.Notes
	}

	if err := uc.interviewRepo.Create(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, app.ID, domain.ApplicationStatusInterviewScheduled); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.notifyCandidate(ctx, iv, actor,
		domain.NotificationTypeInterviewScheduled,
		"Interview Scheduled",
		fmt.Sprintf("An interview has been scheduled for %s", iv.ScheduledAt.Format(time.RFC1123)),
	)

	return iv, nil
}

func (uc *interviewUsecase) GetInterview(ctx context.Context, actor domain.Actor, id int64) (*domain.Interview, error) {
	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if iv.RecruiterID != actor.ID && iv.CandidateID != actor.ID {
		return nil, apperror.Forbidden("You do not have access to this interview")
	}
	return iv, nil
}

func (uc *interviewUsecase) ListMyInterviews(ctx context.Context, actor domain.Actor) ([]domain.Interview, error) {
	if actor.IsRecruiter() {
		return uc.interviewRepo.GetByRecruiterID(ctx, actor.ID)
	}
	return uc.interviewRepo.GetByCandidateID(ctx, actor.ID)
}

// UpdateInterview overwrites any field present in the input. A new date must
// be in the future; a new status must be a known one.
func (uc *interviewUsecase) UpdateInterview(ctx context.Context, actor domain.Actor, id int64, input domain.UpdateInterviewInput) (*domain.Interview, error) {
	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if iv.RecruiterID != actor.ID {
		return nil, apperror.Forbidden("Only the recruiter can update this interview")
	}

	dateChanged := false
	if input.ScheduledAt != nil {
		if !input.ScheduledAt.After(time.Now()) {
			return nil, apperror.BadRequest("Scheduled time must be in the future")
		}
		dateChanged = !iv.ScheduledAt.Equal(*input.ScheduledAt)
		iv.ScheduledAt = *input.ScheduledAt
	}
	if input.Type != nil {
		if !validInterviewTypes[*input.Type] {
			return nil, apperror.BadRequest("Type must be Online, Offline, or Phone")
		}
		iv.Type = *input.Type
	}
	if input.DurationMinutes != nil {
		iv.DurationMinutes = *input.DurationMinutes
	}
	if input.MeetingLink != nil {
		iv.MeetingLink = input.MeetingLink
	}
	if input.Location != nil {
		iv.Location = input.Location
	}
	if input.Notes != nil {
		iv.Notes = input.Notes
	}
	if input.Status != nil {
		if !validInterviewStatuses[*input.Status] {
			return nil, apperror.BadRequest("Invalid interview status")
		}
		iv.Status = *input.Status
	}

	if err := uc.interviewRepo.Update(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	msg := "Your interview details have been updated"
	if dateChanged {
		msg = fmt.Sprintf("Your interview has been moved to %s", iv.ScheduledAt.Format(time.RFC1123))
	}
	uc.notifyCandidate(ctx, iv, actor, domain.NotificationTypeInterviewUpdated, "Interview Updated", msg)

	return iv, nil
}

func (uc *interviewUsecase) Confirm(ctx context.Context, actor domain.Actor, id int64) (*domain.Interview, error) {
	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if iv.CandidateID != actor.ID {
		return nil, apperror.Forbidden("Only the candidate can confirm this interview")
	}

	now := time.Now()
	iv.Confirmed = true
	iv.ConfirmedAt = &now

	if err := uc.interviewRepo.Update(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.notifyRecruiter(ctx, iv, actor,
		domain.NotificationTypeInterviewConfirmed,
		"Interview Confirmed",
		"The candidate confirmed the interview",
	)

	return iv, nil
}

func (uc *interviewUsecase) RequestReschedule(ctx context.Context, actor domain.Actor, id int64, reason string, proposedAt *time.Time) (*domain.Interview, error) {
	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if iv.CandidateID != actor.ID {
		return nil, apperror.Forbidden("Only the candidate can request a reschedule")
	}
	if reason == "" {
		return nil, apperror.BadRequest("A reason is required to request a reschedule")
	}
	if proposedAt != nil && !proposedAt.After(time.Now()) {
		return nil, apperror.BadRequest("Proposed time must be in the future")
	}

	now := time.Now()
	iv.RescheduleRequested = true
	iv.RescheduleReason = &reason
	iv.ProposedAt = proposedAt
	iv.RescheduleRequestedAt = &now

	if err := uc.interviewRepo.Update(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.notifyRecruiter(ctx, iv, actor,
		domain.NotificationTypeRescheduleRequested,
		"Reschedule Requested",
		fmt.Sprintf("The candidate requested a reschedule: %s", reason),
	)

	return iv, nil
}

// Cancel may be called by either party; the other party is notified
func (uc *interviewUsecase) Cancel(ctx context.Context, actor domain.Actor, id int64, reason string) (*domain.Interview, error) {
	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if iv.RecruiterID != actor.ID && iv.CandidateID != actor.ID {
		return nil, apperror.Forbidden("You do not have access to this interview")
	}

	iv.Status = domain.InterviewStatusCancelled
	if reason != "" {
		iv.CancelReason = &reason
	}

	if err := uc.interviewRepo.Update(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	msg := "The interview has been cancelled"
	if reason != "" {
		msg = fmt.Sprintf("The interview has been cancelled: %s", reason)
	}
	if actor.ID == iv.RecruiterID {
		uc.notifyCandidate(ctx, iv, actor, domain.NotificationTypeInterviewCancelled, "Interview Cancelled", msg)
	} else {
		uc.notifyRecruiter(ctx, iv, actor, domain.NotificationTypeInterviewCancelled, "Interview Cancelled", msg)
	}

	return iv, nil
}

func (uc *interviewUsecase) Complete(ctx context.Context, actor domain.Actor, id int64, input domain.CompleteInterviewInput) (*domain.Interview, error) {
	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if iv.RecruiterID != actor.ID {
		return nil, apperror.Forbidden("Only the recruiter can complete this interview")
	}
	if input.Rating != 0 && (input.Rating < 1 || input.Rating > 5) {
		return nil, apperror.BadRequest("Rating must be between 1 and 5")
	}

	iv.Status = domain.InterviewStatusCompleted
	if input.Feedback != "" {
		iv.Feedback = &input.Feedback
	}
	if input.Rating != 0 {
		iv.Rating = &input.Rating
	}
	if input.Notes != "" {
		iv.Notes = &input.Notes
	}

	if err := uc.interviewRepo.Update(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.notifyCandidate(ctx, iv, actor,
		domain.NotificationTypeInterviewCompleted,
		"Interview Completed",
		"Your interview has been marked as completed",
	)

	return iv, nil
}

func (uc *interviewUsecase) MarkNoShow(ctx context.Context, actor domain.Actor, id int64) (*domain.Interview, error) {
	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Interview not found")
	}
	if iv.RecruiterID != actor.ID {
		return nil, apperror.Forbidden("Only the recruiter can mark a no-show")
	}

	iv.Status = domain.InterviewStatusNoShow

	if err := uc.interviewRepo.Update(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.notifyCandidate(ctx, iv, actor,
		domain.NotificationTypeInterviewNoShow,
		"Interview No-Show",
		"You were marked as a no-show for your interview",
	)

	return iv, nil
}

func (uc *interviewUsecase) DeleteInterview(ctx context.Context, actor domain.Actor, id int64) error {
	iv, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Interview not found")
	}
	if iv.RecruiterID != actor.ID {
		return apperror.Forbidden("Only the recruiter can delete this interview")
	}
	return uc.interviewRepo.Delete(ctx, id)
}

// validateInterviewDetails enforces the create-time field rules: known type,
// future date, and the Online/Offline contact requirements
func validateInterviewDetails(ivType string, scheduledAt time.Time, meetingLink, location string) error {
	if !validInterviewTypes[ivType] {
		return apperror.BadRequest("Type must be Online, Offline, or Phone")
	}
	if !scheduledAt.After(time.Now()) {
		return apperror.BadRequest("Scheduled time must be in the future")
	}
	if ivType == domain.InterviewTypeOnline && meetingLink == "" {
		return apperror.BadRequest("A meeting link is required for online interviews")
	}
	if ivType == domain.InterviewTypeOffline && location == "" {
		return apperror.BadRequest("A location is required for offline interviews")
	}
	return nil
}

func (uc *interviewUsecase) notifyCandidate(ctx context.Context, iv *domain.Interview, actor domain.Actor, ntype, title, message string) {
	uc.notifier.Notify(ctx, &domain.Notification{
		UserID:        iv.CandidateID,
		Type:          ntype,
		Title:         title,
		Message:       withJobTitle(message, iv),
		JobID:         &iv.JobID,
		ApplicationID: &iv.ApplicationID,
		ActorID:       &actor.ID,
	})
}

func (uc *interviewUsecase) notifyRecruiter(ctx context.Context, iv *domain.Interview, actor domain.Actor, ntype, title, message string) {
	uc.notifier.Notify(ctx, &domain.Notification{
		UserID:        iv.RecruiterID,
		Type:          ntype,
		Title:         title,
		Message:       withJobTitle(message, iv),
		JobID:         &iv.JobID,
		ApplicationID: &iv.ApplicationID,
		ActorID:       &actor.ID,
	})
}

func withJobTitle(message string, iv *domain.Interview) string {
	if iv.JobTitle != nil && *iv.JobTitle != "" {
		return fmt.Sprintf("%s (%s)", message, *iv.JobTitle)
	}
	return message
}

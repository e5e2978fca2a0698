package usecase

import (
	"context"
	"sort"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	userRepo    domain.UserRepository
	notifier    domain.Notifier
}

func NewMessageUsecase(
	messageRepo domain.MessageRepository,
	userRepo domain.UserRepository,
	notifier domain.Notifier,
) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (uc *messageUsecase) Send(ctx context.Context, actor domain.Actor, receiverID string, jobID *int64, body string) (*domain.Message, error) {
	if body == "" {
		return nil, apperror.BadRequest("Message body cannot be empty")
	}
	if receiverID == actor.ID {
		return nil, apperror.BadRequest("Cannot send a message to yourself")
	}

	if _, err := uc.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, apperror.NotFound("Recipient not found")
	}

	msg := &domain.Message{
		SenderID:   actor.ID,
		ReceiverID: receiverID,
		JobID:      jobID,
		Body:       body,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.notifier.Notify(ctx, &domain.Notification{
		UserID:  receiverID,
		Type:    domain.NotificationTypeNewMessage,
		Title:   "New Message",
		Message: "You have a new message",
		JobID:   jobID,
		ActorID: &actor.ID,
	})

	return msg, nil
}

// ListConversations groups the caller's messages by counterpart in two passes:
// first keep the latest message and unread count per counterpart, then sort
// groups by last-message recency. Recomputed from scratch on every call.
func (uc *messageUsecase) ListConversations(ctx context.Context, actor domain.Actor) ([]domain.Conversation, error) {
	messages, err := uc.messageRepo.GetAllForUser(ctx, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Pass 1: group by counterpart. Messages arrive newest first, so the
	// first message seen per counterpart is the latest one.
	type group struct {
		last   domain.Message
		unread int
	}
	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, msg := range messages {
		other := msg.SenderID
		if other == actor.ID {
			other = msg.ReceiverID
		}

		g, ok := groups[other]
		if !ok {
			g = &group{last: msg}
			groups[other] = g
			order = append(order, other)
		}
		if msg.ReceiverID == actor.ID && !msg.Read {
			g.unread++
		}
	}

	// Pass 2: materialize with counterpart identity, ordered by recency of
	// the last message. The order slice is already newest-first; the sort
	// makes the invariant explicit rather than relying on map insertion.
	sort.SliceStable(order, func(i, j int) bool {
		return groups[order[i]].last.CreatedAt.After(groups[order[j]].last.CreatedAt)
	})

	conversations := make([]domain.Conversation, 0, len(order))
	for _, otherID := range order {
		g := groups[otherID]

		counterpart := domain.UserSummary{ID: otherID}
		if user, err := uc.userRepo.GetByID(ctx, otherID); err == nil {
			counterpart.FullName = user.FullName
			counterpart.Role = user.Role
		}

		conversations = append(conversations, domain.Conversation{
			Counterpart: counterpart,
			LastMessage: g.last,
			UnreadCount: g.unread,
		})
	}

	return conversations, nil
}

// GetThread returns the full exchange with the other user, oldest first, and
// marks the caller's incoming messages as read
func (uc *messageUsecase) GetThread(ctx context.Context, actor domain.Actor, otherID string) ([]domain.Message, error) {
	if _, err := uc.userRepo.GetByID(ctx, otherID); err != nil {
		return nil, apperror.NotFound("User not found")
	}

	// Mark before fetching so the returned thread already reflects the read
	if err := uc.messageRepo.MarkThreadRead(ctx, actor.ID, otherID); err != nil {
		return nil, apperror.Internal(err)
	}

	messages, err := uc.messageRepo.GetThread(ctx, actor.ID, otherID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return messages, nil
}

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

func TestSendMessage(t *testing.T) {
	sender := domain.Actor{ID: "seeker1", Role: domain.RoleJobSeeker}

	t.Run("Should send and notify the receiver", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		userRepo := new(MockUserRepo)
		notifier := &MockNotifier{}
		uc := usecase.NewMessageUsecase(msgRepo, userRepo, notifier)

		userRepo.On("GetByID", mock.Anything, "recruiter1").Return(&domain.User{ID: "recruiter1"}, nil)
		msgRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)

		msg, err := uc.Send(context.Background(), sender, "recruiter1", nil, "Hello")
		assert.NoError(t, err)
		assert.Equal(t, "seeker1", msg.SenderID)
		assert.Len(t, notifier.Sent, 1)
		assert.Equal(t, domain.NotificationTypeNewMessage, notifier.Sent[0].Type)
	})

	t.Run("Should reject an empty body", func(t *testing.T) {
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), new(MockUserRepo), &MockNotifier{})

		_, err := uc.Send(context.Background(), sender, "recruiter1", nil, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("Should reject messaging yourself", func(t *testing.T) {
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), new(MockUserRepo), &MockNotifier{})

		_, err := uc.Send(context.Background(), sender, "seeker1", nil, "Hi me")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "yourself")
	})

	t.Run("Should reject an unknown receiver", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewMessageUsecase(new(MockMessageRepo), userRepo, &MockNotifier{})

		userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.Send(context.Background(), sender, "ghost", nil, "Hello?")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Recipient not found")
	})
}

func TestListConversations(t *testing.T) {
	me := domain.Actor{ID: "me", Role: domain.RoleJobSeeker}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Newest first, as the repository returns them
	history := []domain.Message{
		{ID: 5, SenderID: "bob", ReceiverID: "me", Body: "ping", Read: false, CreatedAt: base.Add(4 * time.Hour)},
		{ID: 4, SenderID: "me", ReceiverID: "alice", Body: "sure", Read: true, CreatedAt: base.Add(3 * time.Hour)},
		{ID: 3, SenderID: "alice", ReceiverID: "me", Body: "free to talk?", Read: false, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 2, SenderID: "bob", ReceiverID: "me", Body: "hello", Read: false, CreatedAt: base.Add(time.Hour)},
		{ID: 1, SenderID: "me", ReceiverID: "alice", Body: "hi", Read: true, CreatedAt: base},
	}

	msgRepo := new(MockMessageRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewMessageUsecase(msgRepo, userRepo, &MockNotifier{})

	msgRepo.On("GetAllForUser", mock.Anything, "me").Return(history, nil)
	userRepo.On("GetByID", mock.Anything, "bob").Return(&domain.User{ID: "bob", FullName: "Bob B", Role: domain.RoleRecruiter}, nil)
	userRepo.On("GetByID", mock.Anything, "alice").Return(&domain.User{ID: "alice", FullName: "Alice A", Role: domain.RoleRecruiter}, nil)

	conversations, err := uc.ListConversations(context.Background(), me)
	assert.NoError(t, err)
	assert.Len(t, conversations, 2)

	// Bob's conversation is the most recent
	assert.Equal(t, "bob", conversations[0].Counterpart.ID)
	assert.Equal(t, "Bob B", conversations[0].Counterpart.FullName)
	assert.Equal(t, int64(5), conversations[0].LastMessage.ID)
	assert.Equal(t, 2, conversations[0].UnreadCount)

	assert.Equal(t, "alice", conversations[1].Counterpart.ID)
	assert.Equal(t, int64(4), conversations[1].LastMessage.ID)
	assert.Equal(t, 1, conversations[1].UnreadCount)
}

func TestGetThread(t *testing.T) {
	me := domain.Actor{ID: "me", Role: domain.RoleJobSeeker}

	t.Run("Should return the thread and mark incoming messages read", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewMessageUsecase(msgRepo, userRepo, &MockNotifier{})

		thread := []domain.Message{
			{ID: 1, SenderID: "me", ReceiverID: "alice", Body: "hi"},
			{ID: 2, SenderID: "alice", ReceiverID: "me", Body: "hello"},
		}
		userRepo.On("GetByID", mock.Anything, "alice").Return(&domain.User{ID: "alice"}, nil)
		msgRepo.On("GetThread", mock.Anything, "me", "alice").Return(thread, nil)
		msgRepo.On("MarkThreadRead", mock.Anything, "me", "alice").Return(nil)

		msgs, err := uc.GetThread(context.Background(), me, "alice")
		assert.NoError(t, err)
		assert.Len(t, msgs, 2)
		msgRepo.AssertCalled(t, "MarkThreadRead", mock.Anything, "me", "alice")
	})

	t.Run("Should mark the thread read before fetching it", func(t *testing.T) {
		msgRepo := new(MockMessageRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewMessageUsecase(msgRepo, userRepo, &MockNotifier{})

		var calls []string
		userRepo.On("GetByID", mock.Anything, "alice").Return(&domain.User{ID: "alice"}, nil)
		msgRepo.On("MarkThreadRead", mock.Anything, "me", "alice").Return(nil).Run(func(mock.Arguments) {
			calls = append(calls, "mark")
		})
		msgRepo.On("GetThread", mock.Anything, "me", "alice").Return([]domain.Message{}, nil).Run(func(mock.Arguments) {
			calls = append(calls, "fetch")
		})

		_, err := uc.GetThread(context.Background(), me, "alice")
		assert.NoError(t, err)
		// fetched after marking, so the response never shows stale unread flags
		assert.Equal(t, []string{"mark", "fetch"}, calls)
	})
}

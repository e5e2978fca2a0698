package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationSettings(t *testing.T) {
	actor := domain.Actor{ID: "u1", Role: domain.RoleJobSeeker}

	t.Run("Should default to all emails enabled when no row exists", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := usecase.NewNotificationUsecase(repo)

		repo.On("GetSettings", mock.Anything, "u1").Return(nil, domain.ErrNotFound)

		settings, err := uc.GetSettings(context.Background(), actor)
		assert.NoError(t, err)
		assert.True(t, settings.EmailOnMessage)
		assert.True(t, settings.EmailOnApplication)
		assert.True(t, settings.EmailOnInterview)
		assert.True(t, settings.EmailOnStatus)
	})

	t.Run("Should force the owner on settings updates", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := usecase.NewNotificationUsecase(repo)

		repo.On("UpsertSettings", mock.Anything, mock.AnythingOfType("*domain.NotificationSettings")).Return(nil).Run(func(args mock.Arguments) {
			s := args.Get(1).(*domain.NotificationSettings)
			assert.Equal(t, "u1", s.UserID)
		})

		_, err := uc.UpdateSettings(context.Background(), actor, &domain.NotificationSettings{UserID: "someone-else"})
		assert.NoError(t, err)
	})

	t.Run("Should map a foreign notification id to not found", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := usecase.NewNotificationUsecase(repo)

		repo.On("MarkRead", mock.Anything, int64(9), "u1").Return(domain.ErrNotFound)

		err := uc.MarkRead(context.Background(), actor, 9)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSeedNotifications(t *testing.T) {
	repo := new(MockNotificationRepo)
	uc := usecase.NewNotificationUsecase(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)

	created, err := uc.SeedNotifications(context.Background(), domain.Actor{ID: "u1"})
	assert.NoError(t, err)
	assert.Len(t, created, 3)
	for _, n := range created {
		assert.Equal(t, "u1", n.UserID)
	}
}

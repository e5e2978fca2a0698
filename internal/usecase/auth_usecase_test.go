package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 1)
}

func TestRegister(t *testing.T) {
	t.Run("Should create the user and return a token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, testTokens())

		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "jane@example.com", u.Email)
			assert.NotEmpty(t, u.ID)
			assert.NotEqual(t, "hunter2secret", u.PasswordHash)
		})

		result, err := uc.Register(context.Background(), "Jane@Example.com", "hunter2secret", "Jane Doe", domain.RoleJobSeeker)
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, domain.RoleJobSeeker, result.User.Role)
	})

	t.Run("Should reject a short password", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), testTokens())

		_, err := uc.Register(context.Background(), "jane@example.com", "short", "Jane", domain.RoleJobSeeker)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8")
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), testTokens())

		_, err := uc.Register(context.Background(), "jane@example.com", "hunter2secret", "Jane", "admin")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "jobseeker or recruiter")
	})

	t.Run("Should map a duplicate email to a friendly error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, testTokens())

		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicate)

		_, err := uc.Register(context.Background(), "jane@example.com", "hunter2secret", "Jane", domain.RoleJobSeeker)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestLogin(t *testing.T) {
	hash, _ := auth.HashPassword("hunter2secret")
	user := &domain.User{ID: "u1", Email: "jane@example.com", PasswordHash: hash, Role: domain.RoleJobSeeker}

	t.Run("Should return a token for valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, testTokens())

		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

		result, err := uc.Login(context.Background(), "jane@example.com", "hunter2secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)

		claims, err := testTokens().Parse(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, domain.RoleJobSeeker, claims.Role)
	})

	t.Run("Should use the same message for unknown email and wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, testTokens())

		userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

		_, errUnknown := uc.Login(context.Background(), "nobody@example.com", "whatever1")
		_, errWrong := uc.Login(context.Background(), "jane@example.com", "wrongpass")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

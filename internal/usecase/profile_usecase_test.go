package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProfileRepo) UpdatePhotoURL(ctx context.Context, userID, url string) error {
	return m.Called(ctx, userID, url).Error(0)
}
func (m *MockProfileRepo) UpdateResumeURL(ctx context.Context, userID, url string) error {
	return m.Called(ctx, userID, url).Error(0)
}
func (m *MockProfileRepo) AddEducation(ctx context.Context, userID string, e *domain.Education) error {
	return m.Called(ctx, userID, e).Error(0)
}
func (m *MockProfileRepo) UpdateEducation(ctx context.Context, userID string, e *domain.Education) error {
	return m.Called(ctx, userID, e).Error(0)
}
func (m *MockProfileRepo) DeleteEducation(ctx context.Context, userID, entryID string) error {
	return m.Called(ctx, userID, entryID).Error(0)
}
func (m *MockProfileRepo) AddExperience(ctx context.Context, userID string, w *domain.WorkExperience) error {
	return m.Called(ctx, userID, w).Error(0)
}
func (m *MockProfileRepo) UpdateExperience(ctx context.Context, userID string, w *domain.WorkExperience) error {
	return m.Called(ctx, userID, w).Error(0)
}
func (m *MockProfileRepo) DeleteExperience(ctx context.Context, userID, entryID string) error {
	return m.Called(ctx, userID, entryID).Error(0)
}

func profileValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestProfileUpdate(t *testing.T) {
	actor := domain.Actor{ID: "user1", Role: domain.RoleJobSeeker}

	t.Run("Should force UserID from the caller", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, profileValidator())

		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "user1", p.UserID)
		})
		repo.On("GetByUserID", mock.Anything, "user1").Return(&domain.Profile{UserID: "user1"}, nil)

		_, err := uc.UpdateProfile(context.Background(), actor, &domain.Profile{
			UserID:   "hacker_try",
			Headline: "Go developer",
		})
		assert.NoError(t, err)
	})

	t.Run("Should reject a non-http link", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), profileValidator())

		_, err := uc.UpdateProfile(context.Background(), actor, &domain.Profile{
			Links: []string{"javascript:alert(1)"},
		})
		assert.Error(t, err)
	})

	t.Run("Should reject a malformed phone", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), profileValidator())

		_, err := uc.UpdateProfile(context.Background(), actor, &domain.Profile{
			Phone: "not-a-phone",
		})
		assert.Error(t, err)
	})

	t.Run("Should return an empty profile when none was saved", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, profileValidator())

		repo.On("GetByUserID", mock.Anything, "user1").Return(nil, domain.ErrNotFound)

		profile, err := uc.GetProfile(context.Background(), actor)
		assert.NoError(t, err)
		assert.Equal(t, "user1", profile.UserID)
		assert.Empty(t, profile.Headline)
	})
}

func TestProfileSubEntries(t *testing.T) {
	actor := domain.Actor{ID: "user1", Role: domain.RoleJobSeeker}

	t.Run("Should assign a fresh identifier on add", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, profileValidator())

		repo.On("AddEducation", mock.Anything, "user1", mock.AnythingOfType("*domain.Education")).Return(nil)

		entry, err := uc.AddEducation(context.Background(), actor, &domain.Education{School: "MIT", StartYear: 2019})
		assert.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("Should map a missing entry to not found", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, profileValidator())

		repo.On("UpdateEducation", mock.Anything, "user1", mock.AnythingOfType("*domain.Education")).Return(domain.ErrNotFound)

		_, err := uc.UpdateEducation(context.Background(), actor, &domain.Education{ID: "e1", School: "MIT"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should require company and title for experience", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), profileValidator())

		_, err := uc.AddExperience(context.Background(), actor, &domain.WorkExperience{Company: "ACME"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})
}

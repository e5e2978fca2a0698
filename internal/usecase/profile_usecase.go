package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo, validate: validate}
}

// GetProfile returns the caller's profile, or an empty one if never saved
func (uc *profileUsecase) GetProfile(ctx context.Context, actor domain.Actor) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, actor.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Profile{UserID: actor.ID}, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, actor domain.Actor, p *domain.Profile) (*domain.Profile, error) {
	// UserID always comes from the caller, never from the payload
	p.UserID = actor.ID

	if err := uc.validate.Struct(p); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.GetProfile(ctx, actor)
}

func (uc *profileUsecase) SetPhotoURL(ctx context.Context, actor domain.Actor, url string) error {
	if err := uc.profileRepo.UpdatePhotoURL(ctx, actor.ID, url); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *profileUsecase) SetResumeURL(ctx context.Context, actor domain.Actor, url string) error {
	if err := uc.profileRepo.UpdateResumeURL(ctx, actor.ID, url); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *profileUsecase) AddEducation(ctx context.Context, actor domain.Actor, e *domain.Education) (*domain.Education, error) {
	if e.School == "" {
		return nil, apperror.BadRequest("School is required")
	}
	e.ID = uuid.NewString()

	if err := uc.profileRepo.AddEducation(ctx, actor.ID, e); err != nil {
		return nil, apperror.Internal(err)
	}
	return e, nil
}

func (uc *profileUsecase) UpdateEducation(ctx context.Context, actor domain.Actor, e *domain.Education) (*domain.Education, error) {
	if e.ID == "" {
		return nil, apperror.BadRequest("Entry identifier is required")
	}
	if e.School == "" {
		return nil, apperror.BadRequest("School is required")
	}

	err := uc.profileRepo.UpdateEducation(ctx, actor.ID, e)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Education entry not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return e, nil
}

func (uc *profileUsecase) RemoveEducation(ctx context.Context, actor domain.Actor, entryID string) error {
	err := uc.profileRepo.DeleteEducation(ctx, actor.ID, entryID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Education entry not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *profileUsecase) AddExperience(ctx context.Context, actor domain.Actor, w *domain.WorkExperience) (*domain.WorkExperience, error) {
	if w.Company == "" || w.Title == "" {
		return nil, apperror.BadRequest("Company and title are required")
	}
	w.ID = uuid.NewString()

	if err := uc.profileRepo.AddExperience(ctx, actor.ID, w); err != nil {
		return nil, apperror.Internal(err)
	}
	return w, nil
}

func (uc *profileUsecase) UpdateExperience(ctx context.Context, actor domain.Actor, w *domain.WorkExperience) (*domain.WorkExperience, error) {
	if w.ID == "" {
		return nil, apperror.BadRequest("Entry identifier is required")
	}
	if w.Company == "" || w.Title == "" {
		return nil, apperror.BadRequest("Company and title are required")
	}

	err := uc.profileRepo.UpdateExperience(ctx, actor.ID, w)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Work experience entry not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return w, nil
}

func (uc *profileUsecase) RemoveExperience(ctx context.Context, actor domain.Actor, entryID string) error {
	err := uc.profileRepo.DeleteExperience(ctx, actor.ID, entryID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Work experience entry not found")
	}
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

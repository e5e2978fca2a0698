package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type recruiterUsecase struct {
	recruiterRepo domain.RecruiterRepository
	validate      *validator.Validate
}

func NewRecruiterUsecase(recruiterRepo domain.RecruiterRepository, validate *validator.Validate) domain.RecruiterUsecase {
	return &recruiterUsecase{recruiterRepo: recruiterRepo, validate: validate}
}

func (uc *recruiterUsecase) GetProfile(ctx context.Context, actor domain.Actor) (*domain.RecruiterProfile, error) {
	profile, err := uc.recruiterRepo.GetProfile(ctx, actor.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.RecruiterProfile{UserID: actor.ID}, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (uc *recruiterUsecase) UpdateProfile(ctx context.Context, actor domain.Actor, p *domain.RecruiterProfile) (*domain.RecruiterProfile, error) {
	p.UserID = actor.ID

	if err := uc.validate.Struct(p); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if err := uc.recruiterRepo.UpsertProfile(ctx, p); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.GetProfile(ctx, actor)
}

func (uc *recruiterUsecase) GetCompany(ctx context.Context, actor domain.Actor) (*domain.Company, error) {
	company, err := uc.recruiterRepo.GetCompany(ctx, actor.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Company{RecruiterID: actor.ID}, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (uc *recruiterUsecase) UpdateCompany(ctx context.Context, actor domain.Actor, c *domain.Company) (*domain.Company, error) {
	c.RecruiterID = actor.ID
	if c.Name == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	if err := uc.validate.Struct(c); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if err := uc.recruiterRepo.UpsertCompany(ctx, c); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.GetCompany(ctx, actor)
}

func (uc *recruiterUsecase) SetLogoURL(ctx context.Context, actor domain.Actor, url string) error {
	if err := uc.recruiterRepo.UpdateLogoURL(ctx, actor.ID, url); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

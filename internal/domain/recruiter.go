package domain

import (
	"context"
	"time"
)

// RecruiterProfile is the recruiter's personal profile, one record per user
type RecruiterProfile struct {
	UserID    string    `json:"user_id"`
	Headline  string    `json:"headline" validate:"max=160"`
	Phone     string    `json:"phone" validate:"omitempty,valid_phone"`
	Position  string    `json:"position"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Company is the recruiter's company profile, one per recruiter
type Company struct {
	RecruiterID string    `json:"recruiter_id"`
	Name        string    `json:"name"`
	Website     string    `json:"website" validate:"omitempty,http_url"`
	Industry    string    `json:"industry"`
	Size        string    `json:"size"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RecruiterRepository interface {
	GetProfile(ctx context.Context, userID string) (*RecruiterProfile, error)
	UpsertProfile(ctx context.Context, p *RecruiterProfile) error
	GetCompany(ctx context.Context, recruiterID string) (*Company, error)
	UpsertCompany(ctx context.Context, c *Company) error
	UpdateLogoURL(ctx context.Context, recruiterID, url string) error
}

type RecruiterUsecase interface {
	GetProfile(ctx context.Context, actor Actor) (*RecruiterProfile, error)
	UpdateProfile(ctx context.Context, actor Actor, p *RecruiterProfile) (*RecruiterProfile, error)
	GetCompany(ctx context.Context, actor Actor) (*Company, error)
	UpdateCompany(ctx context.Context, actor Actor, c *Company) (*Company, error)
	SetLogoURL(ctx context.Context, actor Actor, url string) error
}

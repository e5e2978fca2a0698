package domain

import (
	"context"
	"time"
)

// Profile is the job seeker profile, one record per user
type Profile struct {
	UserID    string    `json:"user_id"`
	Headline  string    `json:"headline" validate:"max=160"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone" validate:"omitempty,valid_phone"`
	Location  string    `json:"location"`
	Skills    []string  `json:"skills"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	ResumeURL *string   `json:"resume_url,omitempty"`
	Links     []string  `json:"links" validate:"dive,http_url"`
	UpdatedAt time.Time `json:"updated_at"`

	Educations  []Education      `json:"educations"`
	Experiences []WorkExperience `json:"experiences"`
}

// Education is a sub-entry addressed by its own stable identifier
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartYear    int    `json:"start_year"`
	EndYear      *int   `json:"end_year,omitempty"`
}

// WorkExperience is a sub-entry addressed by its own stable identifier
type WorkExperience struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	UpdatePhotoURL(ctx context.Context, userID, url string) error
	UpdateResumeURL(ctx context.Context, userID, url string) error

	AddEducation(ctx context.Context, userID string, e *Education) error
	UpdateEducation(ctx context.Context, userID string, e *Education) error
	DeleteEducation(ctx context.Context, userID, entryID string) error

	AddExperience(ctx context.Context, userID string, w *WorkExperience) error
	UpdateExperience(ctx context.Context, userID string, w *WorkExperience) error
	DeleteExperience(ctx context.Context, userID, entryID string) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, actor Actor) (*Profile, error)
	UpdateProfile(ctx context.Context, actor Actor, p *Profile) (*Profile, error)
	SetPhotoURL(ctx context.Context, actor Actor, url string) error
	SetResumeURL(ctx context.Context, actor Actor, url string) error

	AddEducation(ctx context.Context, actor Actor, e *Education) (*Education, error)
	UpdateEducation(ctx context.Context, actor Actor, e *Education) (*Education, error)
	RemoveEducation(ctx context.Context, actor Actor, entryID string) error

	AddExperience(ctx context.Context, actor Actor, w *WorkExperience) (*WorkExperience, error)
	UpdateExperience(ctx context.Context, actor Actor, w *WorkExperience) (*WorkExperience, error)
	RemoveExperience(ctx context.Context, actor Actor, entryID string) error
}

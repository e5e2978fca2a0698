package postgres

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

func (r *recruiterRepo) GetProfile(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	query := `SELECT user_id, headline, phone, position, photo_url, updated_at
              FROM recruiter_profiles WHERE user_id = $1`

	var p domain.RecruiterProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Headline, &p.Phone, &p.Position, &p.PhotoURL, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *recruiterRepo) UpsertProfile(ctx context.Context, p *domain.RecruiterProfile) error {
	query := `
		INSERT INTO recruiter_profiles (user_id, headline, phone, position, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			phone = EXCLUDED.phone,
			position = EXCLUDED.position,
			updated_at = EXCLUDED.updated_at`

	p.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx, query, p.UserID, p.Headline, p.Phone, p.Position, p.UpdatedAt)
	return mapError(err)
}

func (r *recruiterRepo) GetCompany(ctx context.Context, recruiterID string) (*domain.Company, error) {
	query := `SELECT recruiter_id, name, website, industry, size, description, location, logo_url, updated_at
              FROM companies WHERE recruiter_id = $1`

	var c domain.Company
	err := r.db.QueryRow(ctx, query, recruiterID).Scan(
		&c.RecruiterID, &c.Name, &c.Website, &c.Industry, &c.Size, &c.Description, &c.Location, &c.LogoURL, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *recruiterRepo) UpsertCompany(ctx context.Context, c *domain.Company) error {
	query := `
		INSERT INTO companies (recruiter_id, name, website, industry, size, description, location, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (recruiter_id) DO UPDATE SET
			name = EXCLUDED.name,
			website = EXCLUDED.website,
			industry = EXCLUDED.industry,
			size = EXCLUDED.size,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			updated_at = EXCLUDED.updated_at`

	c.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx, query,
		c.RecruiterID, c.Name, c.Website, c.Industry, c.Size, c.Description, c.Location, c.UpdatedAt,
	)
	return mapError(err)
}

// UpdateLogoURL upserts so a logo upload works before the company row exists
func (r *recruiterRepo) UpdateLogoURL(ctx context.Context, recruiterID, url string) error {
	query := `
		INSERT INTO companies (recruiter_id, logo_url, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (recruiter_id) DO UPDATE SET logo_url = EXCLUDED.logo_url, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, recruiterID, url, time.Now())
	return mapError(err)
}

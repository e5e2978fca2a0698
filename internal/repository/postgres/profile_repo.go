package postgres

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT user_id, headline, bio, phone, location, skills, photo_url, resume_url, links, updated_at
              FROM profiles WHERE user_id = $1`

	var p domain.Profile
	var skills, links []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Headline, &p.Bio, &p.Phone, &p.Location,
		pq.Array(&skills), &p.PhotoURL, &p.ResumeURL, pq.Array(&links), &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	p.Skills = skills
	p.Links = links

	if p.Educations, err = r.fetchEducations(ctx, userID); err != nil {
		return nil, err
	}
	if p.Experiences, err = r.fetchExperiences(ctx, userID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, headline, bio, phone, location, skills, links, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			bio = EXCLUDED.bio,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			skills = EXCLUDED.skills,
			links = EXCLUDED.links,
			updated_at = EXCLUDED.updated_at`

	p.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx, query,
		p.UserID, p.Headline, p.Bio, p.Phone, p.Location,
		pq.Array(p.Skills), pq.Array(p.Links), p.UpdatedAt,
	)
	return mapError(err)
}

func (r *profileRepo) UpdatePhotoURL(ctx context.Context, userID, url string) error {
	return r.updateURLColumn(ctx, "photo_url", userID, url)
}

func (r *profileRepo) UpdateResumeURL(ctx context.Context, userID, url string) error {
	return r.updateURLColumn(ctx, "resume_url", userID, url)
}

// updateURLColumn upserts so an upload works even before the profile row exists
func (r *profileRepo) updateURLColumn(ctx context.Context, column, userID, url string) error {
	query := `
		INSERT INTO profiles (user_id, ` + column + `, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET ` + column + ` = EXCLUDED.` + column + `, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, userID, url, time.Now())
	return mapError(err)
}

func (r *profileRepo) fetchEducations(ctx context.Context, userID string) ([]domain.Education, error) {
	query := `SELECT id, school, degree, field_of_study, start_year, end_year
              FROM educations WHERE user_id = $1 ORDER BY start_year DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.StartYear, &e.EndYear); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *profileRepo) AddEducation(ctx context.Context, userID string, e *domain.Education) error {
	query := `INSERT INTO educations (id, user_id, school, degree, field_of_study, start_year, end_year)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, e.ID, userID, e.School, e.Degree, e.FieldOfStudy, e.StartYear, e.EndYear)
	return mapError(err)
}

func (r *profileRepo) UpdateEducation(ctx context.Context, userID string, e *domain.Education) error {
	query := `UPDATE educations SET school = $3, degree = $4, field_of_study = $5, start_year = $6, end_year = $7
              WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, e.ID, userID, e.School, e.Degree, e.FieldOfStudy, e.StartYear, e.EndYear)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) DeleteEducation(ctx context.Context, userID, entryID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) fetchExperiences(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	query := `SELECT id, company, title, description, start_date, end_date
              FROM work_experiences WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WorkExperience
	for rows.Next() {
		var w domain.WorkExperience
		if err := rows.Scan(&w.ID, &w.Company, &w.Title, &w.Description, &w.StartDate, &w.EndDate); err != nil {
			return nil, err
		}
		entries = append(entries, w)
	}
	return entries, nil
}

func (r *profileRepo) AddExperience(ctx context.Context, userID string, w *domain.WorkExperience) error {
	query := `INSERT INTO work_experiences (id, user_id, company, title, description, start_date, end_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, w.ID, userID, w.Company, w.Title, w.Description, w.StartDate, w.EndDate)
	return mapError(err)
}

func (r *profileRepo) UpdateExperience(ctx context.Context, userID string, w *domain.WorkExperience) error {
	query := `UPDATE work_experiences SET company = $3, title = $4, description = $5, start_date = $6, end_date = $7
              WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, w.ID, userID, w.Company, w.Title, w.Description, w.StartDate, w.EndDate)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) DeleteExperience(ctx context.Context, userID, entryID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM work_experiences WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

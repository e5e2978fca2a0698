package postgres

import (
	"context"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (recruiter_id, title, description, company_name, location, salary_min, salary_max, skills, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.RecruiterID, job.Title, job.Description, job.CompanyName, job.Location,
		job.SalaryMin, job.SalaryMax, pq.Array(job.Skills), job.Status,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	return mapError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, recruiter_id, title, description, company_name, location, salary_min, salary_max, skills, status, created_at, updated_at
              FROM jobs WHERE id = $1`

	var job domain.Job
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.RecruiterID, &job.Title, &job.Description, &job.CompanyName, &job.Location,
		&job.SalaryMin, &job.SalaryMax, pq.Array(&skills), &job.Status,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	job.Skills = skills
	return &job, nil
}

func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT id, recruiter_id, title, description, company_name, location, salary_min, salary_max, skills, status, created_at, updated_at
              FROM jobs WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, domain.JobStatusActive, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.RecruiterID, &job.Title, &job.Description, &job.CompanyName, &job.Location,
			&job.SalaryMin, &job.SalaryMax, pq.Array(&skills), &job.Status,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = $1`, domain.JobStatusActive).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchByRecruiterID(ctx context.Context, recruiterID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT id, recruiter_id, title, description, company_name, location, salary_min, salary_max, skills, status, created_at, updated_at
              FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, recruiterID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.RecruiterID, &job.Title, &job.Description, &job.CompanyName, &job.Location,
			&job.SalaryMin, &job.SalaryMax, pq.Array(&skills), &job.Status,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`, recruiterID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, description = $3, company_name = $4, location = $5, salary_min = $6, salary_max = $7, skills = $8, status = $9, updated_at = $10
              WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.CompanyName, job.Location,
		job.SalaryMin, job.SalaryMax, pq.Array(job.Skills), job.Status, job.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes only the job row. Applications and interviews that reference
// it are left in place; their job_id becomes an orphan reference.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

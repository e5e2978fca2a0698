package postgres

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

// Create inserts a saved job. The UNIQUE(user_id, job_id) constraint turns a
// repeat save into domain.ErrDuplicate.
func (r *savedJobRepo) Create(ctx context.Context, sj *domain.SavedJob) error {
	query := `INSERT INTO saved_jobs (user_id, job_id, created_at) VALUES ($1, $2, $3) RETURNING id`

	sj.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, query, sj.UserID, sj.JobID, sj.CreatedAt).Scan(&sj.ID)
	return mapError(err)
}

func (r *savedJobRepo) GetByUserID(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	query := `
		SELECT
			sj.id, sj.user_id, sj.job_id, sj.created_at,
			j.title as job_title,
			j.company_name,
			j.status as job_status
		FROM saved_jobs sj
		LEFT JOIN jobs j ON sj.job_id = j.id
		WHERE sj.user_id = $1
		ORDER BY sj.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []domain.SavedJob
	for rows.Next() {
		var sj domain.SavedJob
		if err := rows.Scan(
			&sj.ID, &sj.UserID, &sj.JobID, &sj.CreatedAt,
			&sj.JobTitle, &sj.CompanyName, &sj.JobStatus,
		); err != nil {
			return nil, err
		}
		saved = append(saved, sj)
	}
	return saved, nil
}

func (r *savedJobRepo) Delete(ctx context.Context, userID string, jobID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

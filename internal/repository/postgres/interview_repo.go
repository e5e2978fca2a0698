package postgres

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const interviewColumns = `
	i.id, i.application_id, i.job_id, i.recruiter_id, i.candidate_id,
	i.type, i.scheduled_at, i.duration_minutes, i.meeting_link, i.location, i.notes, i.status,
	i.confirmed, i.confirmed_at,
	i.reschedule_requested, i.reschedule_reason, i.proposed_at, i.reschedule_requested_at,
	i.feedback, i.rating, i.cancel_reason,
	i.created_at, i.updated_at`

func scanInterview(row interface{ Scan(...any) error }) (*domain.Interview, error) {
	var iv domain.Interview
	err := row.Scan(
		&iv.ID, &iv.ApplicationID, &iv.JobID, &iv.RecruiterID, &iv.CandidateID,
		&iv.Type, &iv.ScheduledAt, &iv.DurationMinutes, &iv.MeetingLink, &iv.Location, &iv.Notes, &iv.Status,
		&iv.Confirmed, &iv.ConfirmedAt,
		&iv.RescheduleRequested, &iv.RescheduleReason, &iv.ProposedAt, &iv.RescheduleRequestedAt,
		&iv.Feedback, &iv.Rating, &iv.CancelReason,
		&iv.CreatedAt, &iv.UpdatedAt,
		&iv.JobTitle, &iv.CandidateName, &iv.RecruiterName,
	)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	query := `
		INSERT INTO interviews (application_id, job_id, recruiter_id, candidate_id, type, scheduled_at, duration_minutes, meeting_link, location, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	now := time.Now()
	iv.CreatedAt = now
	iv.UpdatedAt = now
	if iv.Status == "" {
		iv.Status = domain.InterviewStatusScheduled
	}

	err := r.db.QueryRow(ctx, query,
		iv.ApplicationID, iv.JobID, iv.RecruiterID, iv.CandidateID,
		iv.Type, iv.ScheduledAt, iv.DurationMinutes, iv.MeetingLink, iv.Location, iv.Notes, iv.Status,
		iv.CreatedAt, iv.UpdatedAt,
	).Scan(&iv.ID)
	return mapError(err)
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `,
			j.title as job_title,
			cu.full_name as candidate_name,
			ru.full_name as recruiter_name
		FROM interviews i
		LEFT JOIN jobs j ON i.job_id = j.id
		LEFT JOIN users cu ON i.candidate_id = cu.id
		LEFT JOIN users ru ON i.recruiter_id = ru.id
		WHERE i.id = $1`

	iv, err := scanInterview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return iv, nil
}

func (r *interviewRepo) GetByRecruiterID(ctx context.Context, recruiterID string) ([]domain.Interview, error) {
	return r.fetch(ctx, "i.recruiter_id", recruiterID)
}

func (r *interviewRepo) GetByCandidateID(ctx context.Context, candidateID string) ([]domain.Interview, error) {
	return r.fetch(ctx, "i.candidate_id", candidateID)
}

func (r *interviewRepo) fetch(ctx context.Context, column, userID string) ([]domain.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `,
			j.title as job_title,
			cu.full_name as candidate_name,
			ru.full_name as recruiter_name
		FROM interviews i
		LEFT JOIN jobs j ON i.job_id = j.id
		LEFT JOIN users cu ON i.candidate_id = cu.id
		LEFT JOIN users ru ON i.recruiter_id = ru.id
		WHERE ` + column + ` = $1
		ORDER BY i.scheduled_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, nil
}

// HasActiveForApplication reports whether a non-cancelled interview exists.
// Callers use it as a pre-create check only; it is not atomic with Create.
func (r *interviewRepo) HasActiveForApplication(ctx context.Context, applicationID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM interviews WHERE application_id = $1 AND status <> $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, applicationID, domain.InterviewStatusCancelled).Scan(&exists)
	return exists, err
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	query := `
		UPDATE interviews SET
			type = $2, scheduled_at = $3, duration_minutes = $4, meeting_link = $5, location = $6, notes = $7, status = $8,
			confirmed = $9, confirmed_at = $10,
			reschedule_requested = $11, reschedule_reason = $12, proposed_at = $13, reschedule_requested_at = $14,
			feedback = $15, rating = $16, cancel_reason = $17,
			updated_at = $18
		WHERE id = $1`

	iv.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		iv.ID,
		iv.Type, iv.ScheduledAt, iv.DurationMinutes, iv.MeetingLink, iv.Location, iv.Notes, iv.Status,
		iv.Confirmed, iv.ConfirmedAt,
		iv.RescheduleRequested, iv.RescheduleReason, iv.ProposedAt, iv.RescheduleRequestedAt,
		iv.Feedback, iv.Rating, iv.CancelReason,
		iv.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

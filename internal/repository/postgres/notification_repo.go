package postgres

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, title, message, job_id, application_id, actor_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)
		RETURNING id`

	n.CreatedAt = time.Now()
	n.Read = false

	err := r.db.QueryRow(ctx, query,
		n.UserID, n.Type, n.Title, n.Message, n.JobID, n.ApplicationID, n.ActorID, n.CreatedAt,
	).Scan(&n.ID)
	return mapError(err)
}

func (r *notificationRepo) GetByUserID(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, job_id, application_id, actor_id, read, created_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read = false`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&n.JobID, &n.ApplicationID, &n.ActorID, &n.Read, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id int64, userID string) error {
	query := `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET read = true WHERE user_id = $1 AND read = false`, userID)
	return err
}

func (r *notificationRepo) GetSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	query := `SELECT user_id, email_on_message, email_on_application, email_on_interview, email_on_status, updated_at
              FROM notification_settings WHERE user_id = $1`

	var s domain.NotificationSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.EmailOnMessage, &s.EmailOnApplication, &s.EmailOnInterview, &s.EmailOnStatus, &s.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *notificationRepo) UpsertSettings(ctx context.Context, s *domain.NotificationSettings) error {
	query := `
		INSERT INTO notification_settings (user_id, email_on_message, email_on_application, email_on_interview, email_on_status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			email_on_message = EXCLUDED.email_on_message,
			email_on_application = EXCLUDED.email_on_application,
			email_on_interview = EXCLUDED.email_on_interview,
			email_on_status = EXCLUDED.email_on_status,
			updated_at = EXCLUDED.updated_at`

	s.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx, query,
		s.UserID, s.EmailOnMessage, s.EmailOnApplication, s.EmailOnInterview, s.EmailOnStatus, s.UpdatedAt,
	)
	return mapError(err)
}

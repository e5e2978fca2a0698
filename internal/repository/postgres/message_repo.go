package postgres

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, job_id, body, read, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		RETURNING id`

	msg.CreatedAt = time.Now()
	msg.Read = false

	err := r.db.QueryRow(ctx, query,
		msg.SenderID, msg.ReceiverID, msg.JobID, msg.Body, msg.CreatedAt,
	).Scan(&msg.ID)
	return mapError(err)
}

func (r *messageRepo) GetAllForUser(ctx context.Context, userID string) ([]domain.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, job_id, body, read, created_at
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.JobID, &msg.Body, &msg.Read, &msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *messageRepo) GetThread(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, job_id, body, read, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, userID, otherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.JobID, &msg.Body, &msg.Read, &msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *messageRepo) MarkThreadRead(ctx context.Context, userID, otherID string) error {
	query := `UPDATE messages SET read = true WHERE receiver_id = $1 AND sender_id = $2 AND read = false`
	_, err := r.db.Exec(ctx, query, userID, otherID)
	return err
}

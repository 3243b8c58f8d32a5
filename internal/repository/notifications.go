package repository

import (
	"context"
	"time"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
)

func (r *Repository) CreateNotification(n *domain.Notification) error {
	query := `
		INSERT INTO notifications (from_id, to_id, from_name, title, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{n.FromID, n.ToID, n.FromName, n.Title, n.Message}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.IsRead, &n.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetNotificationsForUser(toID int64) ([]*domain.Notification, error) {
	query := `
		SELECT id, from_id, to_id, from_name, title, message, is_read, created_at
		FROM notifications
		WHERE to_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, toID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n := &domain.Notification{}
		dst := []any{&n.ID, &n.FromID, &n.ToID, &n.FromName, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationRead only touches rows owned by toID, so a user cannot
// mark someone else's notification.
func (r *Repository) MarkNotificationRead(id, toID int64) error {
	query := `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND to_id = $2
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var updated int64
	if err := r.dbpool.QueryRowContext(ctx, query, id, toID).Scan(&updated); err != nil {
		return err
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

func (r *repository) Post(ctx context.Context, studentID int, message string) (model.Notification, error) {
	q, args, err := qb.Insert(notificationsTableName).
		Columns("student_id", "message").
		Values(studentID, message).
		Suffix("returning notification_id, created_at, is_read").
		ToSql()
	if err != nil {
		return model.Notification{}, err
	}

	n := model.Notification{
		StudentID: studentID,
		Message:   message,
	}
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n.NotificationID, &n.CreatedAt, &n.IsRead); err != nil {
		r.log.Error("Post", zap.String("q", q), zap.Any("args", args))
		return model.Notification{}, err
	}
	return n, nil
}

func (r *repository) GetNotification(ctx context.Context, notificationID int) (model.Notification, error) {
	q, args, err := qb.Select("notification_id", "student_id", "message", "created_at", "is_read").
		From(notificationsTableName).
		Where(sq.Eq{"notification_id": notificationID}).
		ToSql()
	if err != nil {
		return model.Notification{}, err
	}
	var n model.Notification
	if err := r.db.GetContext(ctx, &n, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, errs.ErrNotFound
		}
		return model.Notification{}, err
	}
	return n, nil
}

// MarkRead is idempotent: re-marking an already-read notification succeeds
// and touches nothing else.
func (r *repository) MarkRead(ctx context.Context, notificationID int) error {
	q, args, err := qb.Update(notificationsTableName).
		Set("is_read", true).
		Where(sq.Eq{"notification_id": notificationID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) ListNotifications(ctx context.Context, studentID, limit int) ([]model.Notification, error) {
	b := qb.Select("notification_id", "student_id", "message", "created_at", "is_read").
		From(notificationsTableName).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("created_at desc")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Notification
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

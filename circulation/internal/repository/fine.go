package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

// Assess records a fine for a late return. At most one fine exists per
// transaction: the unique index on transaction_id makes a re-invocation a
// no-op that returns the already recorded fine.
func (r *repository) Assess(ctx context.Context, fine model.Fine) (model.Fine, error) {
	q, args, err := qb.Insert(finesTableName).
		Columns("student_id", "resource_id", "transaction_id", "amount", "reason", "status").
		Values(fine.StudentID, fine.ResourceID, fine.TransactionID, fine.Amount, fine.Reason, model.FinePending).
		Suffix("returning fine_id, status, created_at").
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}

	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&fine.FineID, &fine.Status, &fine.CreatedAt); err != nil {
		if isPgErr(err, pgerrcode.UniqueViolation) {
			return r.fineByTransaction(ctx, fine.TransactionID)
		}
		r.log.Error("Assess", zap.String("q", q), zap.Any("args", args))
		return model.Fine{}, err
	}
	return fine, nil
}

func (r *repository) fineByTransaction(ctx context.Context, transactionID int) (model.Fine, error) {
	q, args, err := qb.Select("fine_id", "student_id", "resource_id", "transaction_id", "amount", "reason", "status", "created_at").
		From(finesTableName).
		Where(sq.Eq{"transaction_id": transactionID}).
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var fine model.Fine
	if err := r.db.GetContext(ctx, &fine, q, args...); err != nil {
		return model.Fine{}, err
	}
	return fine, nil
}

func (r *repository) GetFine(ctx context.Context, fineID int) (model.Fine, error) {
	q, args, err := qb.Select("fine_id", "student_id", "resource_id", "transaction_id", "amount", "reason", "status", "created_at").
		From(finesTableName).
		Where(sq.Eq{"fine_id": fineID}).
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var fine model.Fine
	if err := r.db.GetContext(ctx, &fine, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrNotFound
		}
		return model.Fine{}, err
	}
	return fine, nil
}

// Pay flips Pending to Paid with the guard in the statement, mirroring the
// transaction close.
func (r *repository) Pay(ctx context.Context, fineID int) (model.Fine, error) {
	q := fmt.Sprintf(`update %s
	set status = '%s'
	where fine_id = $1 and status = '%s'
	returning fine_id, student_id, resource_id, transaction_id, amount, reason, status, created_at`,
		finesTableName, model.FinePaid, model.FinePending)

	var fine model.Fine
	if err := r.db.GetContext(ctx, &fine, q, fineID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrAlreadyPaid
		}
		return model.Fine{}, err
	}
	return fine, nil
}

func (r *repository) ListFines(ctx context.Context, studentID int) ([]model.Fine, error) {
	q, args, err := qb.Select("fine_id", "student_id", "resource_id", "transaction_id", "amount", "reason", "status", "created_at").
		From(finesTableName).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Fine
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) PendingTotal(ctx context.Context, studentID int) (float64, error) {
	q := fmt.Sprintf(`select coalesce(sum(amount), 0) from %s where student_id = $1 and status = $2`, finesTableName)
	var total float64
	if err := r.db.QueryRowContext(ctx, q, studentID, model.FinePending).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

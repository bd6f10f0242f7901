package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

func (r *repository) CreateRequest(ctx context.Context, studentID, resourceID int) (model.LoanRequest, error) {
	q, args, err := qb.Insert(requestsTableName).
		Columns("student_id", "resource_id", "status").
		Values(studentID, resourceID, model.RequestPending).
		Suffix("returning request_id, request_date").
		ToSql()
	if err != nil {
		return model.LoanRequest{}, err
	}

	req := model.LoanRequest{
		StudentID:  studentID,
		ResourceID: resourceID,
		Status:     model.RequestPending,
	}
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&req.RequestID, &req.RequestDate); err != nil {
		if isPgErr(err, pgerrcode.ForeignKeyViolation) {
			return model.LoanRequest{}, errs.ErrResourceNotFound
		}
		r.log.Error("CreateRequest", zap.String("q", q), zap.Any("args", args))
		return model.LoanRequest{}, err
	}
	return req, nil
}

func (r *repository) SetRequestStatus(ctx context.Context, requestID int, status model.RequestStatus) error {
	q, args, err := qb.Update(requestsTableName).
		Set("status", status).
		Where(sq.Eq{"request_id": requestID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) ListRequests(ctx context.Context, studentID int) ([]model.LoanRequest, error) {
	q := fmt.Sprintf(`
	select rq.request_id, rq.student_id, rq.resource_id, res.name as resource_name, rq.status, rq.request_date
	from %s rq
	join %s res on res.resource_id = rq.resource_id
	where rq.student_id = $1
	order by rq.request_date desc`, requestsTableName, resourcesTableName)

	var items []model.LoanRequest
	if err := r.db.SelectContext(ctx, &items, q, studentID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountActiveRequests(ctx context.Context, studentID int) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s where student_id = $1 and status = $2`, requestsTableName)
	var count int
	if err := r.db.QueryRowContext(ctx, q, studentID, model.RequestPending).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateTransaction(ctx context.Context, studentID, resourceID, requestID int, issueDate, dueDate time.Time) (model.Transaction, error) {
	q, args, err := qb.Insert(transactionsTableName).
		Columns("student_id", "resource_id", "request_id", "issue_date", "due_date", "status").
		Values(studentID, resourceID, requestID, issueDate, dueDate, model.TransactionIssued).
		Suffix("returning transaction_id").
		ToSql()
	if err != nil {
		return model.Transaction{}, err
	}

	trx := model.Transaction{
		StudentID:  studentID,
		ResourceID: resourceID,
		RequestID:  requestID,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Status:     model.TransactionIssued,
	}
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&trx.TransactionID); err != nil {
		r.log.Error("CreateTransaction", zap.String("q", q), zap.Any("args", args))
		return model.Transaction{}, err
	}
	return trx, nil
}

func (r *repository) GetTransaction(ctx context.Context, transactionID int) (model.Transaction, error) {
	q := fmt.Sprintf(`
	select t.transaction_id, t.student_id, t.resource_id, res.name as resource_name,
	       t.request_id, t.issue_date, t.due_date, t.return_date, t.status
	from %s t
	join %s res on res.resource_id = t.resource_id
	where t.transaction_id = $1`, transactionsTableName, resourcesTableName)

	var trx model.Transaction
	if err := r.db.GetContext(ctx, &trx, q, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, errs.ErrNotFound
		}
		return model.Transaction{}, err
	}
	return trx, nil
}

// CloseTransaction flips Issued to Returned. The status guard sits in the
// statement itself so a double-return race loses at commit time, not at read
// time.
func (r *repository) CloseTransaction(ctx context.Context, transactionID int, returnDate time.Time) (model.Transaction, error) {
	q := fmt.Sprintf(`update %s
	set return_date = $2, status = '%s'
	where transaction_id = $1 and status = '%s'
	returning student_id, resource_id, request_id, issue_date, due_date`,
		transactionsTableName, model.TransactionReturned, model.TransactionIssued)

	trx := model.Transaction{
		TransactionID: transactionID,
		ReturnDate:    &returnDate,
		Status:        model.TransactionReturned,
	}
	err := r.db.QueryRowContext(ctx, q, transactionID, returnDate).
		Scan(&trx.StudentID, &trx.ResourceID, &trx.RequestID, &trx.IssueDate, &trx.DueDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, errs.ErrAlreadyReturned
		}
		return model.Transaction{}, err
	}
	return trx, nil
}

func (r *repository) ListTransactions(ctx context.Context, studentID int) ([]model.Transaction, error) {
	q := fmt.Sprintf(`
	select t.transaction_id, t.student_id, t.resource_id, res.name as resource_name,
	       t.request_id, t.issue_date, t.due_date, t.return_date, t.status
	from %s t
	join %s res on res.resource_id = t.resource_id
	where t.student_id = $1
	order by t.issue_date desc`, transactionsTableName, resourcesTableName)

	var items []model.Transaction
	if err := r.db.SelectContext(ctx, &items, q, studentID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountIssued(ctx context.Context, studentID int) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s where student_id = $1 and status = $2`, transactionsTableName)
	var count int
	if err := r.db.QueryRowContext(ctx, q, studentID, model.TransactionIssued).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

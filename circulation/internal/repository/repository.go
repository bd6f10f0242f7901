package repository

import (
	"context"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/kafka"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Inventory owns available_quantity. Both mutations are single conditional
// statements so concurrent callers serialize on the row lock.
type Inventory interface {
	TryReserve(ctx context.Context, resourceID int) (int, error)
	Release(ctx context.Context, resourceID int) (int, error)
}

// Circulation owns the LoanRequest and Transaction lifecycle.
type Circulation interface {
	CreateRequest(ctx context.Context, studentID, resourceID int) (model.LoanRequest, error)
	SetRequestStatus(ctx context.Context, requestID int, status model.RequestStatus) error
	ListRequests(ctx context.Context, studentID int) ([]model.LoanRequest, error)
	CountActiveRequests(ctx context.Context, studentID int) (int, error)
	CreateTransaction(ctx context.Context, studentID, resourceID, requestID int, issueDate, dueDate time.Time) (model.Transaction, error)
	GetTransaction(ctx context.Context, transactionID int) (model.Transaction, error)
	CloseTransaction(ctx context.Context, transactionID int, returnDate time.Time) (model.Transaction, error)
	ListTransactions(ctx context.Context, studentID int) ([]model.Transaction, error)
	CountIssued(ctx context.Context, studentID int) (int, error)
}

// Fines owns fine creation and payment.
type Fines interface {
	Assess(ctx context.Context, fine model.Fine) (model.Fine, error)
	GetFine(ctx context.Context, fineID int) (model.Fine, error)
	Pay(ctx context.Context, fineID int) (model.Fine, error)
	ListFines(ctx context.Context, studentID int) ([]model.Fine, error)
	PendingTotal(ctx context.Context, studentID int) (float64, error)
}

// Notifications is the append-only user-facing message log.
type Notifications interface {
	Post(ctx context.Context, studentID int, message string) (model.Notification, error)
	GetNotification(ctx context.Context, notificationID int) (model.Notification, error)
	MarkRead(ctx context.Context, notificationID int) error
	ListNotifications(ctx context.Context, studentID, limit int) ([]model.Notification, error)
}

// Resources is the catalog: reads plus student contributions.
type Resources interface {
	GetResource(ctx context.Context, resourceID int) (model.Resource, error)
	ListResources(ctx context.Context, filter model.ResourceFilter) ([]model.Resource, error)
	CreateResource(ctx context.Context, studentID int, req model.AddResourceRequest) (int, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CountResources(ctx context.Context) (int, error)
}

// Events stores the consumed circulation event stream.
type Events interface {
	RecordEvent(ctx context.Context, event kafka.CirculationEvent) error
	GetStats(ctx context.Context) ([]model.StudentStats, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	resourcesTableName     = `resources`
	categoriesTableName    = `resource_categories`
	requestsTableName      = `requests`
	transactionsTableName  = `transactions`
	finesTableName         = `fines`
	notificationsTableName = `notifications`
	eventsTableName        = `events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

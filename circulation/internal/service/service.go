package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/config"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/repository"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/kafka"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const lateReturnReason = "Late return"

type Repositories struct {
	Inventory     repository.Inventory
	Circulation   repository.Circulation
	Fines         repository.Fines
	Notifications repository.Notifications
	Resources     repository.Resources
	Events        repository.Events
}

type Service struct {
	log           *zap.Logger
	cfg           config.Circulation
	inventory     repository.Inventory
	circulation   repository.Circulation
	fines         repository.Fines
	notifications repository.Notifications
	resources     repository.Resources
	events        repository.Events
	enqueuer      Enqueuer
}

func NewService(repos Repositories, enqueuer Enqueuer, cfg config.Circulation, log *zap.Logger) *Service {
	return &Service{
		log:           log,
		cfg:           cfg,
		inventory:     repos.Inventory,
		circulation:   repos.Circulation,
		fines:         repos.Fines,
		notifications: repos.Notifications,
		resources:     repos.Resources,
		events:        repos.Events,
		enqueuer:      enqueuer,
	}
}

// SubmitRequest runs the full admission: request row, atomic reservation,
// transaction open, auto-approval. Submission and admission stay two logical
// steps so a waitlist could be slotted in between without changing the
// contract.
func (s *Service) SubmitRequest(ctx context.Context, studentID, resourceID int) (model.SubmitRequestResponse, error) {
	res, err := s.resources.GetResource(ctx, resourceID)
	if err != nil {
		return model.SubmitRequestResponse{}, err
	}

	req, err := s.circulation.CreateRequest(ctx, studentID, resourceID)
	if err != nil {
		return model.SubmitRequestResponse{}, err
	}

	if _, err := s.inventory.TryReserve(ctx, resourceID); err != nil {
		if errors.Is(err, errs.ErrResourceUnavailable) || errors.Is(err, errs.ErrResourceNotFound) {
			if serr := s.circulation.SetRequestStatus(ctx, req.RequestID, model.RequestRejected); serr != nil {
				s.log.Warn("reject request", zap.Int("request_id", req.RequestID), zap.Error(serr))
			}
		}
		return model.SubmitRequestResponse{}, err
	}

	now := time.Now().UTC()
	trx, err := s.circulation.CreateTransaction(ctx, studentID, resourceID, req.RequestID, now, now.AddDate(0, 0, s.cfg.LoanPeriodDays))
	if err != nil {
		// admission did not complete, give the reserved unit back
		if _, rerr := s.inventory.Release(ctx, resourceID); rerr != nil {
			s.log.Error("release after failed issue", zap.Int("resource_id", resourceID), zap.Error(rerr))
		}
		if serr := s.circulation.SetRequestStatus(ctx, req.RequestID, model.RequestRejected); serr != nil {
			s.log.Warn("reject request", zap.Int("request_id", req.RequestID), zap.Error(serr))
		}
		return model.SubmitRequestResponse{}, err
	}

	if err := s.circulation.SetRequestStatus(ctx, req.RequestID, model.RequestApproved); err != nil {
		s.log.Warn("approve request", zap.Int("request_id", req.RequestID), zap.Error(err))
	}
	req.Status = model.RequestApproved
	req.ResourceName = res.Name
	trx.ResourceName = res.Name

	s.notify(ctx, studentID, fmt.Sprintf("Your request for %s has been submitted.", res.Name))
	s.publish(kafka.EventIssued, trx, 0)

	return model.SubmitRequestResponse{Request: req, Transaction: trx}, nil
}

// ReturnItem closes an issued loan. The Issued guard is re-checked inside
// CloseTransaction, so the second of two racing returns fails instead of
// releasing inventory twice.
func (s *Service) ReturnItem(ctx context.Context, transactionID, studentID int) (model.ReturnResponse, error) {
	trx, err := s.circulation.GetTransaction(ctx, transactionID)
	if err != nil {
		return model.ReturnResponse{}, err
	}
	if trx.StudentID != studentID {
		return model.ReturnResponse{}, errs.ErrUnauthorized
	}

	now := time.Now().UTC()
	closed, err := s.circulation.CloseTransaction(ctx, transactionID, now)
	if err != nil {
		return model.ReturnResponse{}, err
	}
	closed.ResourceName = trx.ResourceName

	if _, err := s.inventory.Release(ctx, closed.ResourceID); err != nil {
		return model.ReturnResponse{}, err
	}

	resp := model.ReturnResponse{Transaction: closed}
	if days := daysLate(closed.DueDate, now); days > 0 {
		fine, err := s.fines.Assess(ctx, model.Fine{
			StudentID:     closed.StudentID,
			ResourceID:    closed.ResourceID,
			TransactionID: closed.TransactionID,
			Amount:        fineAmount(days, s.cfg.FineRatePerDay),
			Reason:        lateReturnReason,
		})
		if err != nil {
			return model.ReturnResponse{}, err
		}
		resp.Fine = &fine
		s.notify(ctx, studentID, fmt.Sprintf("Fine of ₹%.2f imposed for late return of %s.", fine.Amount, trx.ResourceName))
		s.publish(kafka.EventFineAssessed, closed, fine.Amount)
	}

	s.notify(ctx, studentID, fmt.Sprintf("You have returned %s.", trx.ResourceName))
	s.publish(kafka.EventReturned, closed, 0)

	return resp, nil
}

func (s *Service) PayFine(ctx context.Context, fineID, studentID int) (model.Fine, error) {
	fine, err := s.fines.GetFine(ctx, fineID)
	if err != nil {
		return model.Fine{}, err
	}
	if fine.StudentID != studentID {
		return model.Fine{}, errs.ErrUnauthorized
	}
	paid, err := s.fines.Pay(ctx, fineID)
	if err != nil {
		return model.Fine{}, err
	}
	s.notify(ctx, studentID, fmt.Sprintf("Fine of ₹%.2f has been paid.", paid.Amount))
	return paid, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, notificationID, studentID int) error {
	n, err := s.notifications.GetNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.StudentID != studentID {
		return errs.ErrUnauthorized
	}
	return s.notifications.MarkRead(ctx, notificationID)
}

func (s *Service) ListRequests(ctx context.Context, studentID int) ([]model.LoanRequest, error) {
	return s.circulation.ListRequests(ctx, studentID)
}

func (s *Service) ListTransactions(ctx context.Context, studentID int) ([]model.Transaction, error) {
	return s.circulation.ListTransactions(ctx, studentID)
}

func (s *Service) ListFines(ctx context.Context, studentID int) (model.FinesInfo, error) {
	items, err := s.fines.ListFines(ctx, studentID)
	if err != nil {
		return model.FinesInfo{}, err
	}
	total, err := s.fines.PendingTotal(ctx, studentID)
	if err != nil {
		return model.FinesInfo{}, err
	}
	return model.FinesInfo{PendingTotal: total, Items: items}, nil
}

func (s *Service) ListNotifications(ctx context.Context, studentID int) ([]model.Notification, error) {
	return s.notifications.ListNotifications(ctx, studentID, 0)
}

func (s *Service) notify(ctx context.Context, studentID int, message string) {
	if _, err := s.notifications.Post(ctx, studentID, message); err != nil {
		s.log.Warn("post notification", zap.Int("student_id", studentID), zap.Error(err))
	}
}

func (s *Service) publish(eventType kafka.EventType, trx model.Transaction, amount float64) {
	event := kafka.CirculationEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		StudentID:     trx.StudentID,
		ResourceID:    trx.ResourceID,
		TransactionID: trx.TransactionID,
		Amount:        amount,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.enqueuer.Enqueue(kafka.CirculationTopic, event); err != nil {
		s.log.Warn("enqueue circulation event", zap.String("type", string(eventType)), zap.Error(err))
	}
}

// daysLate counts whole days overdue, any fraction rounded up. Returning
// exactly at the due date is on time.
func daysLate(due, returned time.Time) int {
	if !returned.After(due) {
		return 0
	}
	return int(math.Ceil(returned.Sub(due).Hours() / 24))
}

func fineAmount(days int, rate float64) float64 {
	return math.Round(float64(days)*rate*100) / 100
}

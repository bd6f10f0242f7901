package service

import (
	"context"
	"testing"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/config"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/repository/mocks"
)

type enqueuerStub struct {
	events []kafka.EventType
}

func (e *enqueuerStub) Enqueue(_ string, v any) error {
	if ev, ok := v.(kafka.CirculationEvent); ok {
		e.events = append(e.events, ev.EventType)
	}
	return nil
}

type testEnv struct {
	inventory     *repo_mocks.MockInventory
	circulation   *repo_mocks.MockCirculation
	fines         *repo_mocks.MockFines
	notifications *repo_mocks.MockNotifications
	resources     *repo_mocks.MockResources
	events        *repo_mocks.MockEvents
	enqueuer      *enqueuerStub
	svc           *Service
}

func newTestEnv(t *testing.T) testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := testEnv{
		inventory:     repo_mocks.NewMockInventory(ctrl),
		circulation:   repo_mocks.NewMockCirculation(ctrl),
		fines:         repo_mocks.NewMockFines(ctrl),
		notifications: repo_mocks.NewMockNotifications(ctrl),
		resources:     repo_mocks.NewMockResources(ctrl),
		events:        repo_mocks.NewMockEvents(ctrl),
		enqueuer:      &enqueuerStub{},
	}
	env.svc = NewService(Repositories{
		Inventory:     env.inventory,
		Circulation:   env.circulation,
		Fines:         env.fines,
		Notifications: env.notifications,
		Resources:     env.resources,
		Events:        env.events,
	}, env.enqueuer, config.Circulation{
		LoanPeriodDays: 14,
		FineRatePerDay: 10,
	}, zap.NewNop())
	return env
}

func TestService_SubmitRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const (
		studentID  = 7
		resourceID = 3
	)

	t.Run("ok. granted and issued", func(t *testing.T) {
		env := newTestEnv(t)

		env.resources.EXPECT().
			GetResource(ctx, resourceID).
			Return(model.Resource{ResourceID: resourceID, Name: "Scientific Calculator"}, nil)
		env.circulation.EXPECT().
			CreateRequest(ctx, studentID, resourceID).
			Return(model.LoanRequest{RequestID: 1, StudentID: studentID, ResourceID: resourceID, Status: model.RequestPending}, nil)
		env.inventory.EXPECT().
			TryReserve(ctx, resourceID).
			Return(0, nil)
		env.circulation.EXPECT().
			CreateTransaction(ctx, studentID, resourceID, 1, gomock.Any(), gomock.Any()).
			Return(model.Transaction{TransactionID: 5, StudentID: studentID, ResourceID: resourceID, RequestID: 1, Status: model.TransactionIssued}, nil)
		env.circulation.EXPECT().
			SetRequestStatus(ctx, 1, model.RequestApproved).
			Return(nil)
		env.notifications.EXPECT().
			Post(ctx, studentID, "Your request for Scientific Calculator has been submitted.").
			Return(model.Notification{}, nil)

		resp, err := env.svc.SubmitRequest(ctx, studentID, resourceID)
		require.NoError(t, err)
		require.Equal(t, model.RequestApproved, resp.Request.Status)
		require.Equal(t, "Scientific Calculator", resp.Transaction.ResourceName)
		require.Equal(t, []kafka.EventType{kafka.EventIssued}, env.enqueuer.events)
	})

	t.Run("err. denied when exhausted", func(t *testing.T) {
		env := newTestEnv(t)

		env.resources.EXPECT().
			GetResource(ctx, resourceID).
			Return(model.Resource{ResourceID: resourceID, Name: "Scientific Calculator"}, nil)
		env.circulation.EXPECT().
			CreateRequest(ctx, studentID, resourceID).
			Return(model.LoanRequest{RequestID: 1, StudentID: studentID, ResourceID: resourceID, Status: model.RequestPending}, nil)
		env.inventory.EXPECT().
			TryReserve(ctx, resourceID).
			Return(0, errs.ErrResourceUnavailable)
		env.circulation.EXPECT().
			SetRequestStatus(ctx, 1, model.RequestRejected).
			Return(nil)

		_, err := env.svc.SubmitRequest(ctx, studentID, resourceID)
		require.ErrorIs(t, err, errs.ErrResourceUnavailable)
		require.Empty(t, env.enqueuer.events)
	})

	t.Run("err. reservation released when issue fails", func(t *testing.T) {
		env := newTestEnv(t)

		env.resources.EXPECT().
			GetResource(ctx, resourceID).
			Return(model.Resource{ResourceID: resourceID, Name: "Scientific Calculator"}, nil)
		env.circulation.EXPECT().
			CreateRequest(ctx, studentID, resourceID).
			Return(model.LoanRequest{RequestID: 1, StudentID: studentID, ResourceID: resourceID, Status: model.RequestPending}, nil)
		env.inventory.EXPECT().
			TryReserve(ctx, resourceID).
			Return(0, nil)
		env.circulation.EXPECT().
			CreateTransaction(ctx, studentID, resourceID, 1, gomock.Any(), gomock.Any()).
			Return(model.Transaction{}, errs.ErrConsistency)
		env.inventory.EXPECT().
			Release(ctx, resourceID).
			Return(1, nil)
		env.circulation.EXPECT().
			SetRequestStatus(ctx, 1, model.RequestRejected).
			Return(nil)

		_, err := env.svc.SubmitRequest(ctx, studentID, resourceID)
		require.Error(t, err)
		require.Empty(t, env.enqueuer.events)
	})

	t.Run("err. resource not found", func(t *testing.T) {
		env := newTestEnv(t)

		env.resources.EXPECT().
			GetResource(ctx, 404).
			Return(model.Resource{}, errs.ErrResourceNotFound)

		_, err := env.svc.SubmitRequest(ctx, studentID, 404)
		require.ErrorIs(t, err, errs.ErrResourceNotFound)
	})
}

func TestService_ReturnItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const (
		studentID     = 7
		resourceID    = 3
		transactionID = 9
	)

	t.Run("ok. on time, no fine", func(t *testing.T) {
		env := newTestEnv(t)

		due := time.Now().UTC().Add(48 * time.Hour)
		env.circulation.EXPECT().
			GetTransaction(ctx, transactionID).
			Return(model.Transaction{TransactionID: transactionID, StudentID: studentID, ResourceID: resourceID, ResourceName: "Lab Coat", DueDate: due, Status: model.TransactionIssued}, nil)
		env.circulation.EXPECT().
			CloseTransaction(ctx, transactionID, gomock.Any()).
			Return(model.Transaction{TransactionID: transactionID, StudentID: studentID, ResourceID: resourceID, DueDate: due, Status: model.TransactionReturned}, nil)
		env.inventory.EXPECT().
			Release(ctx, resourceID).
			Return(1, nil)
		env.notifications.EXPECT().
			Post(ctx, studentID, "You have returned Lab Coat.").
			Return(model.Notification{}, nil)

		resp, err := env.svc.ReturnItem(ctx, transactionID, studentID)
		require.NoError(t, err)
		require.Nil(t, resp.Fine)
		require.Equal(t, []kafka.EventType{kafka.EventReturned}, env.enqueuer.events)
	})

	t.Run("ok. two days late, fine assessed", func(t *testing.T) {
		env := newTestEnv(t)

		due := time.Now().UTC().Add(-30 * time.Hour)
		env.circulation.EXPECT().
			GetTransaction(ctx, transactionID).
			Return(model.Transaction{TransactionID: transactionID, StudentID: studentID, ResourceID: resourceID, ResourceName: "Lab Coat", DueDate: due, Status: model.TransactionIssued}, nil)
		env.circulation.EXPECT().
			CloseTransaction(ctx, transactionID, gomock.Any()).
			Return(model.Transaction{TransactionID: transactionID, StudentID: studentID, ResourceID: resourceID, DueDate: due, Status: model.TransactionReturned}, nil)
		env.inventory.EXPECT().
			Release(ctx, resourceID).
			Return(1, nil)
		env.fines.EXPECT().
			Assess(ctx, model.Fine{
				StudentID:     studentID,
				ResourceID:    resourceID,
				TransactionID: transactionID,
				Amount:        20,
				Reason:        "Late return",
			}).
			Return(model.Fine{FineID: 2, StudentID: studentID, ResourceID: resourceID, TransactionID: transactionID, Amount: 20, Reason: "Late return", Status: model.FinePending}, nil)
		env.notifications.EXPECT().
			Post(ctx, studentID, "Fine of ₹20.00 imposed for late return of Lab Coat.").
			Return(model.Notification{}, nil)
		env.notifications.EXPECT().
			Post(ctx, studentID, "You have returned Lab Coat.").
			Return(model.Notification{}, nil)

		resp, err := env.svc.ReturnItem(ctx, transactionID, studentID)
		require.NoError(t, err)
		require.NotNil(t, resp.Fine)
		require.Equal(t, float64(20), resp.Fine.Amount)
		require.Equal(t, []kafka.EventType{kafka.EventFineAssessed, kafka.EventReturned}, env.enqueuer.events)
	})

	t.Run("err. not owner", func(t *testing.T) {
		env := newTestEnv(t)

		env.circulation.EXPECT().
			GetTransaction(ctx, transactionID).
			Return(model.Transaction{TransactionID: transactionID, StudentID: 99, ResourceID: resourceID}, nil)

		_, err := env.svc.ReturnItem(ctx, transactionID, studentID)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("err. already returned", func(t *testing.T) {
		env := newTestEnv(t)

		env.circulation.EXPECT().
			GetTransaction(ctx, transactionID).
			Return(model.Transaction{TransactionID: transactionID, StudentID: studentID, ResourceID: resourceID, Status: model.TransactionReturned}, nil)
		env.circulation.EXPECT().
			CloseTransaction(ctx, transactionID, gomock.Any()).
			Return(model.Transaction{}, errs.ErrAlreadyReturned)

		_, err := env.svc.ReturnItem(ctx, transactionID, studentID)
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	})
}

func TestService_PayFine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const (
		studentID = 7
		fineID    = 2
	)

	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t)

		env.fines.EXPECT().
			GetFine(ctx, fineID).
			Return(model.Fine{FineID: fineID, StudentID: studentID, Amount: 20, Status: model.FinePending}, nil)
		env.fines.EXPECT().
			Pay(ctx, fineID).
			Return(model.Fine{FineID: fineID, StudentID: studentID, Amount: 20, Status: model.FinePaid}, nil)
		env.notifications.EXPECT().
			Post(ctx, studentID, "Fine of ₹20.00 has been paid.").
			Return(model.Notification{}, nil)

		paid, err := env.svc.PayFine(ctx, fineID, studentID)
		require.NoError(t, err)
		require.Equal(t, model.FinePaid, paid.Status)
	})

	t.Run("err. not owner", func(t *testing.T) {
		env := newTestEnv(t)

		env.fines.EXPECT().
			GetFine(ctx, fineID).
			Return(model.Fine{FineID: fineID, StudentID: 99, Amount: 20, Status: model.FinePending}, nil)

		_, err := env.svc.PayFine(ctx, fineID, studentID)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("err. already paid", func(t *testing.T) {
		env := newTestEnv(t)

		env.fines.EXPECT().
			GetFine(ctx, fineID).
			Return(model.Fine{FineID: fineID, StudentID: studentID, Amount: 20, Status: model.FinePaid}, nil)
		env.fines.EXPECT().
			Pay(ctx, fineID).
			Return(model.Fine{}, errs.ErrAlreadyPaid)

		_, err := env.svc.PayFine(ctx, fineID, studentID)
		require.ErrorIs(t, err, errs.ErrAlreadyPaid)
	})
}

func TestService_MarkNotificationRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	const (
		studentID      = 7
		notificationID = 11
	)

	t.Run("ok. idempotent on re-read", func(t *testing.T) {
		env := newTestEnv(t)

		env.notifications.EXPECT().
			GetNotification(ctx, notificationID).
			Return(model.Notification{NotificationID: notificationID, StudentID: studentID, IsRead: true}, nil)
		env.notifications.EXPECT().
			MarkRead(ctx, notificationID).
			Return(nil)

		require.NoError(t, env.svc.MarkNotificationRead(ctx, notificationID, studentID))
	})

	t.Run("err. not owner", func(t *testing.T) {
		env := newTestEnv(t)

		env.notifications.EXPECT().
			GetNotification(ctx, notificationID).
			Return(model.Notification{NotificationID: notificationID, StudentID: 99}, nil)

		err := env.svc.MarkNotificationRead(ctx, notificationID, studentID)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("err. not found", func(t *testing.T) {
		env := newTestEnv(t)

		env.notifications.EXPECT().
			GetNotification(ctx, notificationID).
			Return(model.Notification{}, errs.ErrNotFound)

		err := env.svc.MarkNotificationRead(ctx, notificationID, studentID)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func Test_daysLate(t *testing.T) {
	t.Parallel()
	due := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		returned time.Time
		want     int
	}{
		{"before due", due.Add(-time.Hour), 0},
		{"exactly at due", due, 0},
		{"one hour late", due.Add(time.Hour), 1},
		{"exactly one day late", due.Add(24 * time.Hour), 1},
		{"one day and a minute late", due.Add(24*time.Hour + time.Minute), 2},
		{"three full days late", due.Add(72 * time.Hour), 3},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, daysLate(due, tt.returned))
		})
	}
}

func Test_fineAmount(t *testing.T) {
	t.Parallel()
	require.Equal(t, float64(20), fineAmount(2, 10))
	require.Equal(t, 7.5, fineAmount(3, 2.5))
	require.Equal(t, 0.3, fineAmount(3, 0.1))
}

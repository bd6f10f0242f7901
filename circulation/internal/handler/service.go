package handler

import (
	"context"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	SubmitRequest(ctx context.Context, studentID, resourceID int) (model.SubmitRequestResponse, error)
	ReturnItem(ctx context.Context, transactionID, studentID int) (model.ReturnResponse, error)
	PayFine(ctx context.Context, fineID, studentID int) (model.Fine, error)
	MarkNotificationRead(ctx context.Context, notificationID, studentID int) error
	ListRequests(ctx context.Context, studentID int) ([]model.LoanRequest, error)
	ListTransactions(ctx context.Context, studentID int) ([]model.Transaction, error)
	ListFines(ctx context.Context, studentID int) (model.FinesInfo, error)
	ListNotifications(ctx context.Context, studentID int) ([]model.Notification, error)
	ListResources(ctx context.Context, filter model.ResourceFilter) ([]model.Resource, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	AddResource(ctx context.Context, studentID int, req model.AddResourceRequest) (model.Resource, error)
	Dashboard(ctx context.Context, studentID int) (model.DashboardInfo, error)
	Stats(ctx context.Context) (model.StatsInfo, error)
}

var _ CirculationService = (*service.Service)(nil)

package service

import (
	"context"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/kafka"
	"golang.org/x/sync/errgroup"
)

const dashboardNotifications = 5

// Dashboard aggregates the per-student summary the UI home page renders.
func (s *Service) Dashboard(ctx context.Context, studentID int) (model.DashboardInfo, error) {
	var info model.DashboardInfo
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		info.TotalResources, err = s.resources.CountResources(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		info.ActiveRequests, err = s.circulation.CountActiveRequests(ctx, studentID)
		return err
	})
	gg.Go(func() error {
		var err error
		info.IssuedItems, err = s.circulation.CountIssued(ctx, studentID)
		return err
	})
	gg.Go(func() error {
		var err error
		info.PendingFines, err = s.fines.PendingTotal(ctx, studentID)
		return err
	})
	gg.Go(func() error {
		var err error
		info.RecentNotifications, err = s.notifications.ListNotifications(ctx, studentID, dashboardNotifications)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.DashboardInfo{}, err
	}
	return info, nil
}

func (s *Service) Stats(ctx context.Context) (model.StatsInfo, error) {
	data, err := s.events.GetStats(ctx)
	if err != nil {
		return model.StatsInfo{}, err
	}
	return model.StatsInfo{Data: data}, nil
}

// RecordEvent persists a consumed circulation event.
func (s *Service) RecordEvent(ctx context.Context, event kafka.CirculationEvent) error {
	return s.events.RecordEvent(ctx, event)
}

package service

import (
	"context"
	"fmt"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
)

func (s *Service) ListResources(ctx context.Context, filter model.ResourceFilter) ([]model.Resource, error) {
	return s.resources.ListResources(ctx, filter)
}

func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.resources.ListCategories(ctx)
}

// AddResource records a student contribution to the catalog.
func (s *Service) AddResource(ctx context.Context, studentID int, req model.AddResourceRequest) (model.Resource, error) {
	resourceID, err := s.resources.CreateResource(ctx, studentID, req)
	if err != nil {
		return model.Resource{}, err
	}
	s.notify(ctx, studentID, fmt.Sprintf("Your resource %q has been added successfully.", req.Name))
	return s.resources.GetResource(ctx, resourceID)
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

const listResourcesLimit = 50

func (r *repository) GetResource(ctx context.Context, resourceID int) (model.Resource, error) {
	q, args, err := qb.Select("r.resource_id", "r.name", "coalesce(rc.category_name, '') as category_name",
		"r.description", "r.total_quantity", "r.available_quantity", "r.student_id").
		From(resourcesTableName + " r").
		LeftJoin(fmt.Sprintf("%s rc on rc.category_id = r.category_id", categoriesTableName)).
		Where(sq.Eq{"r.resource_id": resourceID}).
		ToSql()
	if err != nil {
		return model.Resource{}, err
	}

	var res model.Resource
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Resource{}, errs.ErrResourceNotFound
		}
		return model.Resource{}, err
	}
	return res, nil
}

func (r *repository) ListResources(ctx context.Context, filter model.ResourceFilter) ([]model.Resource, error) {
	b := qb.Select("r.resource_id", "r.name", "coalesce(rc.category_name, '') as category_name",
		"r.description", "r.total_quantity", "r.available_quantity", "r.student_id").
		From(resourcesTableName + " r").
		LeftJoin(fmt.Sprintf("%s rc on rc.category_id = r.category_id", categoriesTableName))

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(sq.Or{sq.ILike{"r.name": pattern}, sq.ILike{"r.description": pattern}})
	}
	if filter.Category != "" {
		b = b.Where(sq.Eq{"rc.category_name": filter.Category})
	}
	if filter.AvailableOnly {
		b = b.Where(sq.Gt{"r.available_quantity": 0})
	}

	q, args, err := b.OrderBy("r.name asc").Limit(listResourcesLimit).ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListResources", zap.String("query", q), zap.Any("args", args))

	var items []model.Resource
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateResource records a student contribution: every unit starts available.
func (r *repository) CreateResource(ctx context.Context, studentID int, req model.AddResourceRequest) (int, error) {
	q, args, err := qb.Insert(resourcesTableName).
		Columns("name", "category_id", "description", "total_quantity", "available_quantity", "student_id").
		Values(req.Name, req.CategoryID, req.Description, req.Quantity, req.Quantity, studentID).
		Suffix("returning resource_id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var resourceID int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&resourceID); err != nil {
		r.log.Error("CreateResource", zap.String("q", q), zap.Any("args", args))
		return 0, err
	}
	return resourceID, nil
}

func (r *repository) ListCategories(ctx context.Context) ([]model.Category, error) {
	q, args, err := qb.Select("category_id", "category_name").
		From(categoriesTableName).
		OrderBy("category_name").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Category
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountResources(ctx context.Context) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s`, resourcesTableName)
	var count int
	if err := r.db.QueryRowContext(ctx, q).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

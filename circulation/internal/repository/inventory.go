package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TryReserve atomically grants one unit of the resource. The check and the
// decrement are a single statement: two racing callers for the last unit get
// exactly one granted row.
func (r *repository) TryReserve(ctx context.Context, resourceID int) (int, error) {
	q := fmt.Sprintf(`update %s
	set available_quantity = available_quantity - 1
	where resource_id = $1 and available_quantity > 0
	returning available_quantity`, resourcesTableName)

	var remaining int
	if err := r.db.QueryRowContext(ctx, q, resourceID).Scan(&remaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			exists, err := r.resourceExists(ctx, resourceID)
			if err != nil {
				return 0, err
			}
			if !exists {
				return 0, errs.ErrResourceNotFound
			}
			return 0, errs.ErrResourceUnavailable
		}
		return 0, err
	}
	return remaining, nil
}

// Release gives a unit back, capped at total_quantity. Hitting the cap on an
// existing resource means some other writer corrupted the ledger.
func (r *repository) Release(ctx context.Context, resourceID int) (int, error) {
	q := fmt.Sprintf(`update %s
	set available_quantity = available_quantity + 1
	where resource_id = $1 and available_quantity < total_quantity
	returning available_quantity`, resourcesTableName)

	var remaining int
	if err := r.db.QueryRowContext(ctx, q, resourceID).Scan(&remaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			exists, err := r.resourceExists(ctx, resourceID)
			if err != nil {
				return 0, err
			}
			if !exists {
				return 0, errs.ErrResourceNotFound
			}
			r.log.DPanic("release would exceed total_quantity",
				zap.Int("resource_id", resourceID))
			return 0, errs.ErrConsistency
		}
		return 0, err
	}
	return remaining, nil
}

func (r *repository) resourceExists(ctx context.Context, resourceID int) (bool, error) {
	q := fmt.Sprintf(`select exists (select 1 from %s where resource_id = $1)`, resourcesTableName)
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, resourceID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

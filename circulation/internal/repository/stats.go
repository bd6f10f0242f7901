package repository

import (
	"context"
	"fmt"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/kafka"
)

func (r *repository) RecordEvent(ctx context.Context, event kafka.CirculationEvent) error {
	q := fmt.Sprintf(`insert into %s (event_id, event_type, student_id, resource_id, transaction_id, amount, timestamp)
	values (:event_id, :event_type, :student_id, :resource_id, :transaction_id, :amount, :timestamp)`, eventsTableName)

	_, err := r.db.NamedExecContext(ctx, q, map[string]interface{}{
		"event_id":       event.EventID,
		"event_type":     string(event.EventType),
		"student_id":     event.StudentID,
		"resource_id":    event.ResourceID,
		"transaction_id": event.TransactionID,
		"amount":         event.Amount,
		"timestamp":      event.Timestamp,
	})
	return err
}

func (r *repository) GetStats(ctx context.Context) ([]model.StudentStats, error) {
	const q = `
	select student_id,
	       count(*) filter (where event_type = 'ISSUED')                         as issued,
	       count(*) filter (where event_type = 'RETURNED')                       as returned,
	       count(*) filter (where event_type = 'FINE_ASSESSED')                  as fines_count,
	       coalesce(sum(amount) filter (where event_type = 'FINE_ASSESSED'), 0) as fines_amount,
	       max(timestamp)                                                       as last_event_at
	from events
	group by student_id
	order by student_id
`
	var stats []model.StudentStats
	if err := r.db.SelectContext(ctx, &stats, q); err != nil {
		return nil, err
	}
	return stats, nil
}

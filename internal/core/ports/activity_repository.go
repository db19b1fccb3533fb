package ports

import (
	"context"

	"tailoring/internal/core/domain/model/activity"
)

// ActivityRepository defines the persistence contract for the activity log.
// The log is append-only and is written through commands; history reads go
// through the query side.
type ActivityRepository interface {
	// Add appends an activity entry to the order's audit trail.
	Add(ctx context.Context, a *activity.Activity) error
}

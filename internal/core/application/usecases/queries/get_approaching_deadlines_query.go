package queries

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var ErrGetApproachingDeadlinesQueryIsNotConstructed = errors.New(
	"GetApproachingDeadlinesQuery must be created via NewGetApproachingDeadlinesQuery constructor",
)

// GetApproachingDeadlinesQuery retrieves open orders whose deadline falls
// within the given number of days from now. Used by the deadline reminder job
// to surface work at risk of running late.
type GetApproachingDeadlinesQuery struct {
	withinDays int

	guard guard.ConstructorGuard
}

// NewGetApproachingDeadlinesQuery creates a query for orders due within the
// given number of days. Days must be positive.
func NewGetApproachingDeadlinesQuery(withinDays int) (GetApproachingDeadlinesQuery, error) {
	if withinDays <= 0 {
		return GetApproachingDeadlinesQuery{}, errs.NewValueIsInvalidError("withinDays")
	}

	return GetApproachingDeadlinesQuery{
		withinDays: withinDays,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetApproachingDeadlinesQuery) Validate() error {
	return q.guard.Validate(ErrGetApproachingDeadlinesQueryIsNotConstructed)
}

// WithinDays returns the lookahead window in days.
func (q GetApproachingDeadlinesQuery) WithinDays() int {
	return q.withinDays
}

// GetApproachingDeadlinesQueryResponse represents one order nearing its deadline.
type GetApproachingDeadlinesQueryResponse struct {
	OrderID  kernel.UUID
	Number   int64
	Status   string
	Deadline time.Time
}

package services

import (
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/task"
)

// StatusResolver is a domain service deriving an order's aggregate status from
// the states of its production tasks. It is a pure function of its inputs:
// given an identical multiset of task types and statuses the result is always
// the same, which keeps it unit-testable without persistence.
//
// Resolution rules:
//  1. Every task completed -> Completed.
//  2. Otherwise the status of the earliest pipeline stage with an in-progress
//     task wins (Cutting before Stitching before Ironing), regardless of later
//     stages also being in progress.
//  3. No task in progress and not all completed (e.g. everything still
//     pending, or a mix of pending and completed): the current status is kept
//     as-is. The order never reverts to New once it has progressed.
//
// Rule 3's mixed pending/completed case is carried over from the legacy
// behavior deliberately; see DESIGN.md before changing it.
type StatusResolver struct{}

// NewStatusResolver creates a new StatusResolver instance.
func NewStatusResolver() StatusResolver {
	return StatusResolver{}
}

// Resolve returns the order status implied by the given tasks, falling back
// to current when the tasks imply no transition. Callers are expected to
// compare the result with the stored status and log a status-change activity
// only when they differ.
func (r StatusResolver) Resolve(current order.Status, tasks []*task.Task) (order.Status, error) {
	allCompleted := true
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return order.StatusUnknown, err
		}
		if t.Status() != task.StatusCompleted {
			allCompleted = false
		}
	}

	if allCompleted {
		return order.StatusCompleted, nil
	}

	if stage, ok := r.earliestInProgressStage(tasks); ok {
		return stage, nil
	}

	return current, nil
}

// earliestInProgressStage picks the pipeline stage of the earliest in-progress
// task, mapped onto the corresponding order status.
func (r StatusResolver) earliestInProgressStage(tasks []*task.Task) (order.Status, bool) {
	bestRank := -1
	bestStatus := order.StatusUnknown

	for _, t := range tasks {
		if t.Status() != task.StatusInProgress {
			continue
		}

		rank := t.TaskType().PipelineRank()
		if bestRank == -1 || rank < bestRank {
			bestRank = rank
			bestStatus = stageStatus(t.TaskType())
		}
	}

	return bestStatus, bestRank != -1
}

func stageStatus(t task.Type) order.Status {
	switch t {
	case task.TypeCutting:
		return order.StatusCutting
	case task.TypeStitching:
		return order.StatusStitching
	case task.TypeIroning:
		return order.StatusIroning
	default:
		return order.StatusUnknown
	}
}

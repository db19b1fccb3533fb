package task

import (
	"fmt"

	"tailoring/internal/pkg/errs"
)

// Status represents the lifecycle state of a single production task.
//
// State transitions:
//
//	Pending ──(start)──> InProgress ──(complete)──> Completed
//
// A task never regresses and never skips InProgress. Completed is final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status: assigned but not started.
	StatusPending

	// StatusInProgress means the assigned worker has started the task.
	StatusInProgress

	// StatusCompleted means the task is done. This is a final state.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
	}
}

// StatusFromString parses a task status from its persisted representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"taskStatus", fmt.Errorf("%q is not a valid task status", s))
}

// Validate checks if the Status value is one of the defined task statuses.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusInProgress && s != StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"taskStatus", fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

// String returns the uppercase name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//
// Starting an already started or completed task is rejected.
func (s Status) Start() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"task status",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}
	return StatusInProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// A task cannot jump from Pending straight to Completed.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewInvalidStateErrorWithCause(
			"task status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return StatusCompleted, nil
}

package task

import (
	"fmt"

	"tailoring/internal/pkg/errs"
)

// Type identifies the production stage a task belongs to.
// Stages form a pipeline ordered Cutting < Stitching < Ironing; the order
// status resolver uses this ordering to pick the earliest in-progress stage.
type Type int

const (
	// TypeUnknown represents an invalid or undefined task type.
	TypeUnknown Type = iota

	// TypeCutting is the fabric cutting stage, first in the pipeline.
	TypeCutting

	// TypeStitching is the stitching stage.
	TypeStitching

	// TypeIroning is the ironing and finishing stage, last in the pipeline.
	TypeIroning
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:   "UNKNOWN",
		TypeCutting:   "CUTTING",
		TypeStitching: "STITCHING",
		TypeIroning:   "IRONING",
	}
}

// TypeFromString parses a task type from its persisted or wire representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"taskType", fmt.Errorf("%q is not a valid task type", s))
}

// Validate checks if the Type value is one of the defined production stages.
func (t Type) Validate() error {
	if t != TypeCutting && t != TypeStitching && t != TypeIroning {
		return errs.NewValueIsInvalidErrorWithCause(
			"taskType", fmt.Errorf("%d is not a valid task type", t))
	}
	return nil
}

// String returns the uppercase name of the task type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// PipelineRank returns the position of the stage in the production pipeline,
// lower meaning earlier. Invalid types rank after every valid stage.
func (t Type) PipelineRank() int {
	switch t {
	case TypeCutting:
		return 0
	case TypeStitching:
		return 1
	case TypeIroning:
		return 2
	default:
		return 3
	}
}

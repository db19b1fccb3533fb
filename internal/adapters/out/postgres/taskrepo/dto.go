// Package taskrepo provides data transfer objects and mapping functions for
// production task persistence.
package taskrepo

import (
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting production tasks.
// Stage and status are stored as their string names; the timestamps mirror
// the task lifecycle and stay NULL until the transition happens.
type TaskDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	WorkerID    uuid.UUID `gorm:"type:uuid;index"`
	TaskType    string    `gorm:"type:varchar(16)"`
	Status      string    `gorm:"type:varchar(16);index"`
	AssignedAt  time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(t *task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID().Bytes(),
		OrderID:     t.OrderID().Bytes(),
		WorkerID:    t.WorkerID().Bytes(),
		TaskType:    t.TaskType().String(),
		Status:      t.Status().String(),
		AssignedAt:  t.AssignedAt(),
		StartedAt:   t.StartedAt(),
		CompletedAt: t.CompletedAt(),
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	taskType, err := task.TypeFromString(dto.TaskType)
	if err != nil {
		return nil, err
	}

	status, err := task.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(
		id,
		orderID,
		workerID,
		taskType,
		status,
		dto.AssignedAt,
		dto.StartedAt,
		dto.CompletedAt,
	)
}

package taskrepo

import (
	"context"
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/task"
	"tailoring/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new task to the database.
func (r *GormTaskRepository) Add(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

// Update saves a task's status and lifecycle timestamps to the database.
func (r *GormTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "StartedAt", "CompletedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

// Get retrieves a task by ID.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every task belonging to the given order,
// oldest assignment first.
func (r *GormTaskRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*task.Task, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Order("assigned_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

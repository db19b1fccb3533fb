package activityrepo

import (
	"context"

	"tailoring/internal/core/domain/model/activity"
	"tailoring/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormActivityRepository implements ActivityRepository using GORM.
type GormActivityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActivityRepository creates a new GORM activity repository.
func NewGormActivityRepository(db *gorm.DB, tracker aggregateTracker) *GormActivityRepository {
	return &GormActivityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new entry to the activity log.
func (r *GormActivityRepository) Add(ctx context.Context, a *activity.Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

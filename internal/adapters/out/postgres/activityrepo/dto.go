// Package activityrepo provides data transfer objects and mapping functions
// for the append-only order activity log.
package activityrepo

import (
	"time"

	"tailoring/internal/core/domain/model/activity"

	"github.com/google/uuid"
)

// ActivityDTO represents one activity log row. Rows are inserted and read,
// never updated or deleted.
type ActivityDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	ActivityType string    `gorm:"type:varchar(32)"`
	Description  string
	OldStatus    *string `gorm:"type:varchar(16)"`
	NewStatus    *string `gorm:"type:varchar(16)"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for activity entities.
func (ActivityDTO) TableName() string {
	return "activities"
}

func fromDomain(a *activity.Activity) ActivityDTO {
	return ActivityDTO{
		ID:           a.ID().Bytes(),
		OrderID:      a.OrderID().Bytes(),
		ActivityType: a.ActivityType().String(),
		Description:  a.Description(),
		OldStatus:    a.OldStatus(),
		NewStatus:    a.NewStatus(),
		CreatedAt:    a.CreatedAt(),
	}
}

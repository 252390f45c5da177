package model

import "time"

// Activity is a row in the dashboard activity feed. Rows are appended by the
// handlers whenever a moderation decision lands and pruned by the flush job.
type Activity struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"not null;size:20;index" json:"type"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	Status    string    `gorm:"size:20" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (Activity) TableName() string {
	return "activities"
}

// Activity type constants
const (
	ActivityTypeVerification = "verification"
	ActivityTypeCredential   = "credential"
	ActivityTypeReview       = "review"
	ActivityTypeUser         = "user"
	ActivityTypeAdmin        = "admin"
	ActivityTypeCategory     = "category"
)

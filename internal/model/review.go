package model

import "time"

type Review struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ClientName string    `gorm:"not null;size:255" json:"clientName"`
	LawyerID   string    `gorm:"size:36;index" json:"lawyerId,omitempty"`
	LawyerName string    `gorm:"not null;size:255" json:"lawyerName"`
	Rating     int       `gorm:"not null" json:"rating"`
	Content    string    `gorm:"type:text" json:"content"`
	Status     string    `gorm:"default:'visible';size:20;index" json:"status"`
	FlagReason string    `gorm:"type:text" json:"flagReason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Review) TableName() string {
	return "reviews"
}

// Review visibility status constants
const (
	ReviewStatusVisible = "visible"
	ReviewStatusHidden  = "hidden"
	ReviewStatusFlagged = "flagged"
)

package model

import "time"

type LawCategory struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex;size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	LawyerCount int       `json:"lawyerCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (LawCategory) TableName() string {
	return "law_categories"
}

package model

import "time"

type UserAccount struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	Name              string    `gorm:"not null;size:255" json:"name"`
	Email             string    `gorm:"not null;size:255" json:"email"`
	Type              string    `gorm:"not null;size:10;index" json:"type"`
	Status            string    `gorm:"default:'active';size:20;index" json:"status"`
	SuspensionReason  string    `gorm:"type:text" json:"suspensionReason,omitempty"`
	Specialty         string    `gorm:"size:255" json:"specialty,omitempty"`
	TotalAppointments int       `json:"totalAppointments"`
	LastActive        time.Time `json:"lastActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (UserAccount) TableName() string {
	return "user_accounts"
}

// User type constants
const (
	UserTypeClient = "client"
	UserTypeLawyer = "lawyer"
)

// User account status constants
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

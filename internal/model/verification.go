package model

import (
	"time"

	"gorm.io/datatypes"
)

type VerificationRequest struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	Name             string         `gorm:"not null;size:255" json:"name"`
	Email            string         `gorm:"not null;size:255" json:"email"`
	Phone            string         `gorm:"size:50" json:"phone"`
	Specialties      datatypes.JSON `json:"specialty"`
	Bio              string         `gorm:"type:text" json:"bio"`
	Country          string         `gorm:"size:100" json:"country"`
	City             string         `gorm:"size:100" json:"city"`
	YearsExperience  int            `json:"yearsExperience"`
	LicenseNumber    string         `gorm:"size:100" json:"licenseNumber"`
	IssuingAuthority string         `gorm:"size:255" json:"issuingAuthority"`
	LicenseYear      string         `gorm:"size:10" json:"licenseYear"`
	BarNumber        string         `gorm:"size:100" json:"barNumber"`
	Education        datatypes.JSON `json:"education"`
	Certifications   datatypes.JSON `json:"certifications"`
	WorkExperience   datatypes.JSON `json:"workExperience"`
	Documents        datatypes.JSON `json:"documents"`
	Status           string         `gorm:"default:'pending';size:20;index" json:"status"`
	ReviewNotes      string         `gorm:"type:text" json:"reviewNotes,omitempty"`
	RejectionReason  string         `gorm:"type:text" json:"rejectionReason,omitempty"`
	ReviewedBy       string         `gorm:"size:36" json:"reviewedBy,omitempty"`
	SubmittedAt      time.Time      `json:"submittedAt"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func (VerificationRequest) TableName() string {
	return "verification_requests"
}

// Decision status constants, shared by verification requests and credentials
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

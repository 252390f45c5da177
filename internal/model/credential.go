package model

import "time"

type Credential struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	LawyerID        string    `gorm:"not null;size:36;index" json:"lawyerId"`
	LawyerName      string    `gorm:"not null;size:255" json:"lawyerName"`
	Type            string    `gorm:"not null;size:20;index" json:"type"`
	Degree          string    `gorm:"size:255" json:"degree,omitempty"`
	Field           string    `gorm:"size:255" json:"field,omitempty"`
	University      string    `gorm:"size:255" json:"university,omitempty"`
	Year            string    `gorm:"size:10" json:"year,omitempty"`
	CertName        string    `gorm:"size:255" json:"certName,omitempty"`
	CertIssuer      string    `gorm:"size:255" json:"certIssuer,omitempty"`
	CertYear        string    `gorm:"size:10" json:"certYear,omitempty"`
	ExpTitle        string    `gorm:"size:255" json:"expTitle,omitempty"`
	ExpCompany      string    `gorm:"size:255" json:"expCompany,omitempty"`
	ExpStartYear    string    `gorm:"size:10" json:"expStartYear,omitempty"`
	ExpEndYear      string    `gorm:"size:10" json:"expEndYear,omitempty"`
	ExpDescription  string    `gorm:"type:text" json:"expDescription,omitempty"`
	DocumentURL     string    `gorm:"size:512" json:"documentUrl,omitempty"`
	Status          string    `gorm:"default:'pending';size:20;index" json:"status"`
	RejectionReason string    `gorm:"type:text" json:"rejectionReason,omitempty"`
	ReviewedBy      string    `gorm:"size:36" json:"reviewedBy,omitempty"`
	SubmittedAt     time.Time `json:"submittedAt"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Credential) TableName() string {
	return "credentials"
}

// Credential type constants
const (
	CredentialTypeEducation   = "education"
	CredentialTypeCertificate = "certificate"
	CredentialTypeExperience  = "experience"
)

// Package fixture holds the static development datasets. They back two
// things: the resilient client's fallback when the API is unreachable, and
// the seed tool that loads a fresh database. IDs here are fixed strings, not
// backend-issued UUIDs; they exist only so development screens have rows.
package fixture

import (
	"time"

	"gorm.io/datatypes"

	"github.com/wakili/console/internal/model"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Reviews returns the review fallback list. Exactly five entries: two
// visible, one hidden, two flagged.
func Reviews() []model.Review {
	return []model.Review{
		{
			ID:         "1",
			ClientName: "Mohammed Ahmed",
			LawyerName: "Ahmed Mohammed Ali",
			Rating:     5,
			Content:    "Excellent lawyer, very cooperative. Highly recommended for anyone needing legal advice.",
			Status:     model.ReviewStatusVisible,
			CreatedAt:  day("2024-01-15"),
		},
		{
			ID:         "2",
			ClientName: "Fatima Hassan",
			LawyerName: "Sara Ahmed Mahmoud",
			Rating:     4,
			Content:    "Very good service, the lawyer was understanding and professional.",
			Status:     model.ReviewStatusVisible,
			CreatedAt:  day("2024-01-14"),
		},
		{
			ID:         "3",
			ClientName: "Ali Mahmoud",
			LawyerName: "Khalid Abdullah Hassan",
			Rating:     1,
			Content:    "This content contains inappropriate language and personal insults.",
			Status:     model.ReviewStatusFlagged,
			FlagReason: "offensive content",
			CreatedAt:  day("2024-01-13"),
		},
		{
			ID:         "4",
			ClientName: "Mona Ibrahim",
			LawyerName: "Ahmed Mohammed Ali",
			Rating:     3,
			Content:    "The service was average, it could have been better.",
			Status:     model.ReviewStatusHidden,
			CreatedAt:  day("2024-01-12"),
		},
		{
			ID:         "5",
			ClientName: "Hussein Ali",
			LawyerName: "Sara Ahmed Mahmoud",
			Rating:     2,
			Content:    "This review was reported for containing misleading information.",
			Status:     model.ReviewStatusFlagged,
			FlagReason: "misleading information",
			CreatedAt:  day("2024-01-11"),
		},
	}
}

func VerificationRequests() []model.VerificationRequest {
	return []model.VerificationRequest{
		{
			ID:               "1",
			Name:             "Ahmed Mohammed Ali",
			Email:            "ahmed.ali@example.com",
			Phone:            "+20 100 555 0101",
			Specialties:      datatypes.JSON([]byte(`["Family Law","Civil Law"]`)),
			Bio:              "Fifteen years of courtroom practice in family and civil disputes.",
			Country:          "Egypt",
			City:             "Cairo",
			YearsExperience:  15,
			LicenseNumber:    "EG-44821",
			IssuingAuthority: "Egyptian Bar Association",
			LicenseYear:      "2009",
			BarNumber:        "BAR-9917",
			Status:           model.StatusPending,
			SubmittedAt:      day("2024-01-15"),
		},
		{
			ID:              "2",
			Name:            "Sara Ahmed Mahmoud",
			Email:           "sara.mahmoud@example.com",
			Phone:           "+20 100 555 0102",
			Specialties:     datatypes.JSON([]byte(`["Commercial Law"]`)),
			Country:         "Egypt",
			City:            "Alexandria",
			YearsExperience: 8,
			LicenseNumber:   "EG-51130",
			Status:          model.StatusPending,
			SubmittedAt:     day("2024-01-14"),
		},
		{
			ID:              "3",
			Name:            "Khalid Abdullah Hassan",
			Email:           "khalid.hassan@example.com",
			Phone:           "+966 50 555 0103",
			Specialties:     datatypes.JSON([]byte(`["Criminal Law"]`)),
			Country:         "Saudi Arabia",
			City:            "Riyadh",
			YearsExperience: 11,
			LicenseNumber:   "SA-20744",
			Status:          model.StatusApproved,
			SubmittedAt:     day("2024-01-10"),
		},
	}
}

func Credentials() []model.Credential {
	return []model.Credential{
		{
			ID:          "1",
			LawyerID:    "2",
			LawyerName:  "Sara Ahmed Mahmoud",
			Type:        model.CredentialTypeEducation,
			Degree:      "LL.M.",
			Field:       "Commercial Law",
			University:  "Alexandria University",
			Year:        "2016",
			Status:      model.StatusPending,
			SubmittedAt: day("2024-01-14"),
		},
		{
			ID:          "2",
			LawyerID:    "1",
			LawyerName:  "Ahmed Mohammed Ali",
			Type:        model.CredentialTypeCertificate,
			CertName:    "Certified Family Mediator",
			CertIssuer:  "Cairo Mediation Center",
			CertYear:    "2020",
			Status:      model.StatusPending,
			SubmittedAt: day("2024-01-13"),
		},
		{
			ID:             "3",
			LawyerID:       "3",
			LawyerName:     "Khalid Abdullah Hassan",
			Type:           model.CredentialTypeExperience,
			ExpTitle:       "Senior Associate",
			ExpCompany:     "Hassan & Partners",
			ExpStartYear:   "2015",
			ExpEndYear:     "2021",
			ExpDescription: "Led the criminal defence practice group.",
			Status:         model.StatusApproved,
			SubmittedAt:    day("2024-01-08"),
		},
	}
}

func UserAccounts() []model.UserAccount {
	return []model.UserAccount{
		{
			ID:         "1",
			Name:       "Mohammed Ahmed",
			Email:      "mohammed.ahmed@example.com",
			Type:       model.UserTypeClient,
			Status:     model.UserStatusActive,
			LastActive: day("2024-01-15"),
			CreatedAt:  day("2023-06-02"),
		},
		{
			ID:                "2",
			Name:              "Ahmed Mohammed Ali",
			Email:             "ahmed.ali@example.com",
			Type:              model.UserTypeLawyer,
			Status:            model.UserStatusActive,
			Specialty:         "Family Law",
			TotalAppointments: 124,
			LastActive:        day("2024-01-15"),
			CreatedAt:         day("2023-03-18"),
		},
		{
			ID:         "3",
			Name:       "Fatima Hassan",
			Email:      "fatima.hassan@example.com",
			Type:       model.UserTypeClient,
			Status:     model.UserStatusActive,
			LastActive: day("2024-01-14"),
			CreatedAt:  day("2023-09-27"),
		},
		{
			ID:               "4",
			Name:             "Omar Saleh",
			Email:            "omar.saleh@example.com",
			Type:             model.UserTypeClient,
			Status:           model.UserStatusSuspended,
			SuspensionReason: "repeated no-shows for booked consultations",
			LastActive:       day("2024-01-05"),
			CreatedAt:        day("2023-11-12"),
		},
		{
			ID:                "5",
			Name:              "Sara Ahmed Mahmoud",
			Email:             "sara.mahmoud@example.com",
			Type:              model.UserTypeLawyer,
			Status:            model.UserStatusActive,
			Specialty:         "Commercial Law",
			TotalAppointments: 67,
			LastActive:        day("2024-01-14"),
			CreatedAt:         day("2023-05-09"),
		},
	}
}

func Admins() []model.Admin {
	return []model.Admin{
		{
			ID:     "1",
			Name:   "Platform Root",
			Email:  "admin@wakili.me",
			Role:   model.RoleSuperAdmin,
			Status: model.AdminStatusActive,
		},
		{
			ID:     "2",
			Name:   "Ahmed Operations",
			Email:  "ahmed@wakili.me",
			Role:   model.RoleAdmin,
			Status: model.AdminStatusActive,
		},
		{
			ID:     "3",
			Name:   "Sara Moderation",
			Email:  "sara@wakili.me",
			Role:   model.RoleModerator,
			Status: model.AdminStatusActive,
		},
	}
}

func LawCategories() []model.LawCategory {
	return []model.LawCategory{
		{ID: "1", Name: "Family Law", Description: "Divorce, custody and family disputes", LawyerCount: 34},
		{ID: "2", Name: "Criminal Law", Description: "Criminal defence and prosecution", LawyerCount: 21},
		{ID: "3", Name: "Commercial Law", Description: "Company, contract and trade matters", LawyerCount: 28},
		{ID: "4", Name: "Labor Law", Description: "Employment contracts and workplace disputes", LawyerCount: 12},
	}
}

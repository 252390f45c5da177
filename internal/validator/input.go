// Package validator holds the creation-flow validation rules. The console
// runs them before making any network call and the API service runs the same
// rules again at the boundary, so the two sides can never disagree.
package validator

import (
	"regexp"
	"strings"
)

// Matches the permissive local@domain.tld shape the admin console has always
// accepted. Not an RFC 5322 parser on purpose.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const MinPasswordLength = 8

// FieldErrors maps an input field name to its validation message. An empty
// map means the input is acceptable.
type FieldErrors map[string]string

func (e FieldErrors) OK() bool {
	return len(e) == 0
}

type NewAdmin struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// ValidateNewAdmin checks a new admin account form. existingEmails are the
// emails already registered; the duplicate check compares them verbatim, the
// way the platform has always stored admin emails.
func ValidateNewAdmin(in NewAdmin, existingEmails []string) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name is required"
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = "email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "invalid email address"
	default:
		for _, existing := range existingEmails {
			if existing == email {
				errs["email"] = "email is already in use"
				break
			}
		}
	}

	if in.Password == "" {
		errs["password"] = "password is required"
	} else if len(in.Password) < MinPasswordLength {
		errs["password"] = "password must be at least 8 characters"
	}
	if _, taken := errs["password"]; !taken && in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = "passwords do not match"
	}

	if in.Role != "" && !validRoles[in.Role] {
		errs["role"] = "unknown role"
	}

	return errs
}

var validRoles = map[string]bool{
	"super_admin": true,
	"admin":       true,
	"moderator":   true,
}

// ValidateNewCategory checks a new law-category form. The duplicate check is
// case-sensitive to match the uniqueness constraint on the categories table.
func ValidateNewCategory(name string, existingNames []string) FieldErrors {
	errs := FieldErrors{}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs["name"] = "category name is required"
		return errs
	}
	for _, existing := range existingNames {
		if existing == trimmed {
			errs["name"] = "category already exists"
			break
		}
	}
	return errs
}

package validator

import "testing"

func TestValidateNewAdmin(t *testing.T) {
	existing := []string{"admin@wakili.me"}

	ok := NewAdmin{
		Name:            "Sara Ahmed",
		Email:           "sara@wakili.me",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		Role:            "moderator",
	}
	if errs := ValidateNewAdmin(ok, existing); !errs.OK() {
		t.Fatalf("expected valid input, got %v", errs)
	}

	cases := []struct {
		name  string
		in    NewAdmin
		field string
	}{
		{"missing name", NewAdmin{Email: "a@b.co", Password: "longenough", ConfirmPassword: "longenough"}, "name"},
		{"missing email", NewAdmin{Name: "x", Password: "longenough", ConfirmPassword: "longenough"}, "email"},
		{"malformed email", NewAdmin{Name: "x", Email: "not-an-email", Password: "longenough", ConfirmPassword: "longenough"}, "email"},
		{"duplicate email", NewAdmin{Name: "x", Email: "admin@wakili.me", Password: "longenough", ConfirmPassword: "longenough"}, "email"},
		{"short password", NewAdmin{Name: "x", Email: "a@b.co", Password: "short", ConfirmPassword: "short"}, "password"},
		{"mismatched confirmation", NewAdmin{Name: "x", Email: "a@b.co", Password: "longenough", ConfirmPassword: "different"}, "confirmPassword"},
		{"unknown role", NewAdmin{Name: "x", Email: "a@b.co", Password: "longenough", ConfirmPassword: "longenough", Role: "owner"}, "role"},
	}

	for _, tc := range cases {
		errs := ValidateNewAdmin(tc.in, existing)
		if _, present := errs[tc.field]; !present {
			t.Errorf("%s: expected error on field %q, got %v", tc.name, tc.field, errs)
		}
	}
}

func TestValidateNewCategory(t *testing.T) {
	existing := []string{"Family Law", "Criminal Law"}

	if errs := ValidateNewCategory("Commercial Law", existing); !errs.OK() {
		t.Fatalf("expected valid input, got %v", errs)
	}
	if errs := ValidateNewCategory("  ", existing); errs.OK() {
		t.Fatal("blank name should be rejected")
	}
	if errs := ValidateNewCategory("Family Law", existing); errs.OK() {
		t.Fatal("duplicate name should be rejected")
	}
	// The duplicate check is case-sensitive
	if errs := ValidateNewCategory("family law", existing); !errs.OK() {
		t.Fatalf("differently-cased name should be accepted, got %v", errs)
	}
}

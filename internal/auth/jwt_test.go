package auth

import (
	"testing"

	"github.com/wakili/console/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	admin := &model.Admin{
		ID:    "adm-1",
		Name:  "Root Admin",
		Email: "admin@wakili.me",
		Role:  model.RoleSuperAdmin,
	}

	token, err := GenerateAccessToken(admin, "testsecret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateAccessToken(token, "testsecret")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.AdminID != "adm-1" || claims.Role != model.RoleSuperAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ValidateAccessToken(token, "othersecret"); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if err := CheckPassword(hash, "correct horse battery"); err != nil {
		t.Fatal("expected password to match")
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected password mismatch")
	}
}

package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/model"
	"gorm.io/gorm"
)

func adminRouter(db *gorm.DB) *gin.Engine {
	h := NewAdminHandler(db)
	r := gin.New()
	r.Use(asAdmin("root", model.RoleSuperAdmin))
	r.GET("/api/admins", h.List)
	r.POST("/api/admins", h.Create)
	r.PATCH("/api/admins/:id", h.Update)
	r.DELETE("/api/admins/:id", h.Delete)
	return r
}

func seedAdmin(t *testing.T, db *gorm.DB, id, email, role string) {
	t.Helper()
	a := model.Admin{
		ID:           id,
		Name:         "Admin " + id,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Status:       model.AdminStatusActive,
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed admin %s: %v", id, err)
	}
}

func TestCreateAdmin(t *testing.T) {
	db := testDB(t)
	r := adminRouter(db)

	w := performJSON(r, http.MethodPost, "/api/admins", CreateAdminRequest{
		Name:     "Layla Omar",
		Email:    "layla@wakili.me",
		Password: "longenough1",
	})
	expectStatus(t, w, http.StatusCreated)

	got := decodeBody[model.Admin](t, w)
	if got.Role != model.RoleAdmin {
		t.Errorf("role = %q, want the admin default", got.Role)
	}
	if got.Status != model.AdminStatusActive {
		t.Errorf("status = %q, want active", got.Status)
	}
	if strings.Contains(w.Body.String(), "longenough1") {
		t.Error("response leaks the plaintext password")
	}
	if strings.Contains(strings.ToLower(w.Body.String()), "passwordhash") {
		t.Error("response leaks the password hash field")
	}

	var stored model.Admin
	if err := db.First(&stored, "email = ?", "layla@wakili.me").Error; err != nil {
		t.Fatalf("created admin not persisted: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "longenough1" {
		t.Error("password was not hashed before storage")
	}
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	db := testDB(t)
	seedAdmin(t, db, "1", "taken@wakili.me", model.RoleAdmin)
	r := adminRouter(db)

	w := performJSON(r, http.MethodPost, "/api/admins", CreateAdminRequest{
		Name:     "Second Account",
		Email:    "taken@wakili.me",
		Password: "longenough1",
	})
	expectStatus(t, w, http.StatusConflict)

	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count != 1 {
		t.Errorf("admin rows = %d, want 1", count)
	}
}

func TestCreateAdminShortPassword(t *testing.T) {
	db := testDB(t)
	r := adminRouter(db)

	w := performJSON(r, http.MethodPost, "/api/admins", CreateAdminRequest{
		Name:     "Layla Omar",
		Email:    "layla@wakili.me",
		Password: "short",
	})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestDeleteSuperAdminRefused(t *testing.T) {
	db := testDB(t)
	seedAdmin(t, db, "1", "root@wakili.me", model.RoleSuperAdmin)
	r := adminRouter(db)

	w := performJSON(r, http.MethodDelete, "/api/admins/1", nil)
	expectStatus(t, w, http.StatusForbidden)

	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count != 1 {
		t.Error("super admin row was deleted")
	}
}

func TestDeleteRegularAdmin(t *testing.T) {
	db := testDB(t)
	seedAdmin(t, db, "2", "mod@wakili.me", model.RoleModerator)
	r := adminRouter(db)

	w := performJSON(r, http.MethodDelete, "/api/admins/2", nil)
	expectStatus(t, w, http.StatusNoContent)

	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count != 0 {
		t.Error("admin row still present after delete")
	}
}

func TestUpdateAdminRejectsUnknownRole(t *testing.T) {
	db := testDB(t)
	seedAdmin(t, db, "1", "mod@wakili.me", model.RoleModerator)
	r := adminRouter(db)

	role := "owner"
	w := performJSON(r, http.MethodPatch, "/api/admins/1", UpdateAdminRequest{Role: &role})
	expectStatus(t, w, http.StatusBadRequest)
}

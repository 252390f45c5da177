package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/model"
	"gorm.io/gorm"
)

func verificationRouter(db *gorm.DB) *gin.Engine {
	h := NewVerificationHandler(db)
	r := gin.New()
	r.Use(asAdmin("admin-1", model.RoleAdmin))
	r.GET("/api/lawyer-verification", h.List)
	r.GET("/api/lawyer-verification/search", h.Search)
	r.GET("/api/lawyer-verification/:id", h.Get)
	r.POST("/api/lawyer-verification/:id/approve", h.Approve)
	r.POST("/api/lawyer-verification/:id/reject", h.Reject)
	return r
}

func seedVerification(t *testing.T, db *gorm.DB, id, name, status string) {
	t.Helper()
	req := model.VerificationRequest{
		ID:          id,
		Name:        name,
		Email:       name + "@example.com",
		Status:      status,
		SubmittedAt: time.Now(),
	}
	if err := db.Create(&req).Error; err != nil {
		t.Fatalf("seed verification %s: %v", id, err)
	}
}

func TestApprovePendingVerification(t *testing.T) {
	db := testDB(t)
	seedVerification(t, db, "1", "Ahmed Mohammed Ali", model.StatusPending)
	r := verificationRouter(db)

	w := performJSON(r, http.MethodPost, "/api/lawyer-verification/1/approve",
		map[string]string{"notes": "license checked"})
	expectStatus(t, w, http.StatusOK)

	got := decodeBody[model.VerificationRequest](t, w)
	if got.Status != model.StatusApproved {
		t.Errorf("status = %q, want approved", got.Status)
	}
	if got.ReviewNotes != "license checked" {
		t.Errorf("reviewNotes = %q", got.ReviewNotes)
	}
	if got.ReviewedBy != "admin-1" {
		t.Errorf("reviewedBy = %q, want admin-1", got.ReviewedBy)
	}

	var activities int64
	db.Model(&model.Activity{}).Where("type = ?", model.ActivityTypeVerification).Count(&activities)
	if activities != 1 {
		t.Errorf("activity rows = %d, want 1", activities)
	}
}

func TestRejectWithoutReasonLeavesRowPending(t *testing.T) {
	db := testDB(t)
	seedVerification(t, db, "1", "Ahmed Mohammed Ali", model.StatusPending)
	r := verificationRouter(db)

	w := performJSON(r, http.MethodPost, "/api/lawyer-verification/1/reject",
		map[string]string{"reason": "   "})
	expectStatus(t, w, http.StatusBadRequest)

	var row model.VerificationRequest
	db.First(&row, "id = ?", "1")
	if row.Status != model.StatusPending {
		t.Errorf("status changed to %q after refused reject", row.Status)
	}
}

func TestDecidedVerificationIsFinal(t *testing.T) {
	db := testDB(t)
	seedVerification(t, db, "1", "Ahmed Mohammed Ali", model.StatusApproved)
	r := verificationRouter(db)

	w := performJSON(r, http.MethodPost, "/api/lawyer-verification/1/reject",
		map[string]string{"reason": "changed my mind"})
	expectStatus(t, w, http.StatusConflict)
}

func TestListVerificationRejectsUnknownStatusFilter(t *testing.T) {
	db := testDB(t)
	r := verificationRouter(db)

	w := performJSON(r, http.MethodGet, "/api/lawyer-verification?status=deleted", nil)
	expectStatus(t, w, http.StatusBadRequest)
}

func TestVerificationSearchIsCaseInsensitive(t *testing.T) {
	db := testDB(t)
	seedVerification(t, db, "1", "Ahmed Mohammed Ali", model.StatusPending)
	seedVerification(t, db, "2", "Sara Hassan", model.StatusPending)
	r := verificationRouter(db)

	w := performJSON(r, http.MethodGet, "/api/lawyer-verification/search?q=AHMED", nil)
	expectStatus(t, w, http.StatusOK)

	got := decodeBody[[]model.VerificationRequest](t, w)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search returned %d rows, want the single Ahmed row", len(got))
	}
}

func TestVerificationNotFound(t *testing.T) {
	db := testDB(t)
	r := verificationRouter(db)

	w := performJSON(r, http.MethodPost, "/api/lawyer-verification/missing/approve", nil)
	expectStatus(t, w, http.StatusNotFound)
}

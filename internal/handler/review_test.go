package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/model"
	"gorm.io/gorm"
)

func reviewRouter(db *gorm.DB) *gin.Engine {
	h := NewReviewHandler(db)
	r := gin.New()
	r.Use(asAdmin("admin-1", model.RoleAdmin))
	r.GET("/api/reviews", h.List)
	r.GET("/api/reviews/stats", h.Stats)
	r.GET("/api/reviews/:id", h.Get)
	r.PATCH("/api/reviews/:id/status", h.UpdateStatus)
	r.POST("/api/reviews/:id/approve", h.Approve)
	r.DELETE("/api/reviews/:id", h.Delete)
	return r
}

func seedReview(t *testing.T, db *gorm.DB, id, status, flagReason string) {
	t.Helper()
	rv := model.Review{
		ID:         id,
		ClientName: "Client " + id,
		LawyerName: "Lawyer " + id,
		Rating:     4,
		Content:    "helpful consultation",
		Status:     status,
		FlagReason: flagReason,
	}
	if err := db.Create(&rv).Error; err != nil {
		t.Fatalf("seed review %s: %v", id, err)
	}
}

func TestReviewVisibilityCycle(t *testing.T) {
	db := testDB(t)
	seedReview(t, db, "1", model.ReviewStatusVisible, "")
	r := reviewRouter(db)

	w := performJSON(r, http.MethodPatch, "/api/reviews/1/status",
		map[string]string{"status": model.ReviewStatusHidden})
	expectStatus(t, w, http.StatusOK)
	if got := decodeBody[model.Review](t, w); got.Status != model.ReviewStatusHidden {
		t.Fatalf("status = %q, want hidden", got.Status)
	}

	w = performJSON(r, http.MethodPatch, "/api/reviews/1/status",
		map[string]string{"status": model.ReviewStatusVisible})
	expectStatus(t, w, http.StatusOK)
	if got := decodeBody[model.Review](t, w); got.Status != model.ReviewStatusVisible {
		t.Fatalf("status = %q, want visible", got.Status)
	}
}

func TestReviewSelfTransitionRefused(t *testing.T) {
	db := testDB(t)
	seedReview(t, db, "1", model.ReviewStatusVisible, "")
	r := reviewRouter(db)

	w := performJSON(r, http.MethodPatch, "/api/reviews/1/status",
		map[string]string{"status": model.ReviewStatusVisible})
	expectStatus(t, w, http.StatusConflict)
}

func TestReviewUnknownStatusRefused(t *testing.T) {
	db := testDB(t)
	seedReview(t, db, "1", model.ReviewStatusVisible, "")
	r := reviewRouter(db)

	w := performJSON(r, http.MethodPatch, "/api/reviews/1/status",
		map[string]string{"status": "deleted"})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestApproveFlaggedReviewClearsFlag(t *testing.T) {
	db := testDB(t)
	seedReview(t, db, "1", model.ReviewStatusFlagged, "inappropriate language")
	r := reviewRouter(db)

	w := performJSON(r, http.MethodPost, "/api/reviews/1/approve", nil)
	expectStatus(t, w, http.StatusOK)

	got := decodeBody[model.Review](t, w)
	if got.Status != model.ReviewStatusVisible {
		t.Errorf("status = %q, want visible", got.Status)
	}
	if got.FlagReason != "" {
		t.Errorf("flagReason = %q, want cleared", got.FlagReason)
	}
}

func TestDeleteReview(t *testing.T) {
	db := testDB(t)
	seedReview(t, db, "1", model.ReviewStatusFlagged, "spam")
	r := reviewRouter(db)

	w := performJSON(r, http.MethodDelete, "/api/reviews/1", nil)
	expectStatus(t, w, http.StatusNoContent)

	var count int64
	db.Model(&model.Review{}).Count(&count)
	if count != 0 {
		t.Error("review row still present after delete")
	}

	w = performJSON(r, http.MethodDelete, "/api/reviews/1", nil)
	expectStatus(t, w, http.StatusNotFound)
}

func TestReviewStats(t *testing.T) {
	db := testDB(t)
	seedReview(t, db, "1", model.ReviewStatusVisible, "")
	seedReview(t, db, "2", model.ReviewStatusVisible, "")
	seedReview(t, db, "3", model.ReviewStatusHidden, "")
	seedReview(t, db, "4", model.ReviewStatusFlagged, "spam")
	r := reviewRouter(db)

	w := performJSON(r, http.MethodGet, "/api/reviews/stats", nil)
	expectStatus(t, w, http.StatusOK)

	got := decodeBody[ReviewStats](t, w)
	if got.Total != 4 || got.Visible != 2 || got.Hidden != 1 || got.Flagged != 1 {
		t.Errorf("stats = %+v", got)
	}
}

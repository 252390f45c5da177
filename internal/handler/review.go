package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/model"
	"github.com/wakili/console/internal/moderation"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	db    *gorm.DB
	rules moderation.Ruleset
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db, rules: moderation.ReviewRules()}
}

func (h *ReviewHandler) List(c *gin.Context) {
	query := h.db.Model(&model.Review{})
	if status := c.Query("status"); status != "" {
		if !h.rules.Known(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var reviews []model.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type ReviewStats struct {
	Total   int64 `json:"total"`
	Visible int64 `json:"visible"`
	Hidden  int64 `json:"hidden"`
	Flagged int64 `json:"flagged"`
}

func (h *ReviewHandler) Stats(c *gin.Context) {
	var stats ReviewStats
	h.db.Model(&model.Review{}).Count(&stats.Total)
	h.db.Model(&model.Review{}).Where("status = ?", model.ReviewStatusVisible).Count(&stats.Visible)
	h.db.Model(&model.Review{}).Where("status = ?", model.ReviewStatusHidden).Count(&stats.Hidden)
	h.db.Model(&model.Review{}).Where("status = ?", model.ReviewStatusFlagged).Count(&stats.Flagged)
	c.JSON(http.StatusOK, stats)
}

func (h *ReviewHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	pattern := "%" + strings.ToLower(q) + "%"
	var reviews []model.Review
	if err := h.db.
		Where("LOWER(client_name) LIKE ? OR LOWER(lawyer_name) LIKE ? OR LOWER(content) LIKE ?",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListForLawyer(c *gin.Context) {
	var reviews []model.Review
	if err := h.db.Where("lawyer_id = ?", c.Param("lawyerId")).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	var review model.Review
	if err := h.db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "review")
		return
	}
	c.JSON(http.StatusOK, review)
}

type UpdateReviewStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a review between visible, hidden and flagged.
func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	var req UpdateReviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	h.setStatus(c, req.Status, "")
}

// Approve clears the flag on a review and restores visibility.
func (h *ReviewHandler) Approve(c *gin.Context) {
	h.setStatus(c, model.ReviewStatusVisible, "flag cleared")
}

func (h *ReviewHandler) setStatus(c *gin.Context, to, note string) {
	var review model.Review
	if err := h.db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "review")
		return
	}

	if !checkTransition(c, h.rules, review.Status, to, "") {
		return
	}

	review.Status = to
	if to != model.ReviewStatusFlagged {
		review.FlagReason = ""
	}
	review.UpdatedAt = time.Now()

	if err := h.db.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update review"})
		return
	}

	message := fmt.Sprintf("review by %s marked %s", review.ClientName, to)
	if note != "" {
		message += " (" + note + ")"
	}
	recordActivity(h.db, model.ActivityTypeReview, message, to)

	c.JSON(http.StatusOK, review)
}

// Delete removes a review permanently. This is the only entity kind the
// console is allowed to delete.
func (h *ReviewHandler) Delete(c *gin.Context) {
	var review model.Review
	if err := h.db.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "review")
		return
	}

	if err := h.db.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}

	recordActivity(h.db, model.ActivityTypeReview,
		fmt.Sprintf("review by %s deleted", review.ClientName), "deleted")

	c.Status(http.StatusNoContent)
}

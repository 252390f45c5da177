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

type VerificationHandler struct {
	db    *gorm.DB
	rules moderation.Ruleset
}

func NewVerificationHandler(db *gorm.DB) *VerificationHandler {
	return &VerificationHandler{db: db, rules: moderation.DecisionRules("verification")}
}

// List returns verification requests, newest submissions first, optionally
// filtered by status.
func (h *VerificationHandler) List(c *gin.Context) {
	query := h.db.Model(&model.VerificationRequest{})
	if status := c.Query("status"); status != "" {
		if !h.rules.Known(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var requests []model.VerificationRequest
	if err := query.Order("submitted_at DESC").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list verification requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Search matches the query against lawyer name and email.
func (h *VerificationHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	pattern := "%" + strings.ToLower(q) + "%"
	var requests []model.VerificationRequest
	if err := h.db.
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern).
		Order("submitted_at DESC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *VerificationHandler) Get(c *gin.Context) {
	var request model.VerificationRequest
	if err := h.db.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "verification request")
		return
	}
	c.JSON(http.StatusOK, request)
}

type ApproveVerificationRequest struct {
	Notes string `json:"notes"`
}

// Approve transitions a pending request to approved. Notes are optional.
func (h *VerificationHandler) Approve(c *gin.Context) {
	var req ApproveVerificationRequest
	c.ShouldBindJSON(&req)

	h.decide(c, model.StatusApproved, req.Notes, "")
}

type RejectVerificationRequest struct {
	Reason string `json:"reason"`
}

// Reject transitions a pending request to rejected. The reason is mandatory
// and is validated before the row is touched.
func (h *VerificationHandler) Reject(c *gin.Context) {
	var req RejectVerificationRequest
	c.ShouldBindJSON(&req)

	h.decide(c, model.StatusRejected, "", strings.TrimSpace(req.Reason))
}

func (h *VerificationHandler) decide(c *gin.Context, to, notes, reason string) {
	var request model.VerificationRequest
	if err := h.db.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "verification request")
		return
	}

	if !checkTransition(c, h.rules, request.Status, to, reason) {
		return
	}

	request.Status = to
	request.ReviewNotes = notes
	request.RejectionReason = reason
	request.ReviewedBy = c.GetString("adminID")
	request.UpdatedAt = time.Now()

	if err := h.db.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update verification request"})
		return
	}

	recordActivity(h.db, model.ActivityTypeVerification,
		fmt.Sprintf("verification request for %s %s", request.Name, to), to)

	c.JSON(http.StatusOK, request)
}

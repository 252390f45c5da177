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

type CredentialHandler struct {
	db    *gorm.DB
	rules moderation.Ruleset
}

func NewCredentialHandler(db *gorm.DB) *CredentialHandler {
	return &CredentialHandler{db: db, rules: moderation.DecisionRules("credential")}
}

func (h *CredentialHandler) List(c *gin.Context) {
	query := h.db.Model(&model.Credential{})
	if status := c.Query("status"); status != "" {
		if !h.rules.Known(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var credentials []model.Credential
	if err := query.Order("submitted_at DESC").Find(&credentials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list credentials"})
		return
	}
	c.JSON(http.StatusOK, credentials)
}

type CredentialStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

func (h *CredentialHandler) Stats(c *gin.Context) {
	var stats CredentialStats
	h.db.Model(&model.Credential{}).Count(&stats.Total)
	h.db.Model(&model.Credential{}).Where("status = ?", model.StatusPending).Count(&stats.Pending)
	h.db.Model(&model.Credential{}).Where("status = ?", model.StatusApproved).Count(&stats.Approved)
	h.db.Model(&model.Credential{}).Where("status = ?", model.StatusRejected).Count(&stats.Rejected)
	c.JSON(http.StatusOK, stats)
}

func (h *CredentialHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	pattern := "%" + strings.ToLower(q) + "%"
	var credentials []model.Credential
	if err := h.db.
		Where("LOWER(lawyer_name) LIKE ? OR LOWER(degree) LIKE ? OR LOWER(cert_name) LIKE ? OR LOWER(exp_title) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("submitted_at DESC").
		Find(&credentials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, credentials)
}

// ListByType returns credentials of one kind: education, certificate or
// experience.
func (h *CredentialHandler) ListByType(c *gin.Context) {
	credType := c.Param("type")
	switch credType {
	case model.CredentialTypeEducation, model.CredentialTypeCertificate, model.CredentialTypeExperience:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credential type"})
		return
	}

	var credentials []model.Credential
	if err := h.db.Where("type = ?", credType).Order("submitted_at DESC").Find(&credentials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list credentials"})
		return
	}
	c.JSON(http.StatusOK, credentials)
}

func (h *CredentialHandler) Get(c *gin.Context) {
	var credential model.Credential
	if err := h.db.First(&credential, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "credential")
		return
	}
	c.JSON(http.StatusOK, credential)
}

func (h *CredentialHandler) Approve(c *gin.Context) {
	h.decide(c, model.StatusApproved, "")
}

type RejectCredentialRequest struct {
	Reason string `json:"reason"`
}

func (h *CredentialHandler) Reject(c *gin.Context) {
	var req RejectCredentialRequest
	c.ShouldBindJSON(&req)

	h.decide(c, model.StatusRejected, strings.TrimSpace(req.Reason))
}

func (h *CredentialHandler) decide(c *gin.Context, to, reason string) {
	var credential model.Credential
	if err := h.db.First(&credential, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "credential")
		return
	}

	if !checkTransition(c, h.rules, credential.Status, to, reason) {
		return
	}

	credential.Status = to
	credential.RejectionReason = reason
	credential.ReviewedBy = c.GetString("adminID")
	credential.UpdatedAt = time.Now()

	if err := h.db.Save(&credential).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update credential"})
		return
	}

	recordActivity(h.db, model.ActivityTypeCredential,
		fmt.Sprintf("%s credential for %s %s", credential.Type, credential.LawyerName, to), to)

	c.JSON(http.StatusOK, credential)
}

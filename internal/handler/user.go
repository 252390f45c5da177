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

type UserHandler struct {
	db    *gorm.DB
	rules moderation.Ruleset
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db, rules: moderation.AccountRules()}
}

func (h *UserHandler) List(c *gin.Context) {
	query := h.db.Model(&model.UserAccount{})
	if userType := c.Query("type"); userType != "" {
		if userType != model.UserTypeClient && userType != model.UserTypeLawyer {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user type filter"})
			return
		}
		query = query.Where("type = ?", userType)
	}

	var users []model.UserAccount
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

type UserStats struct {
	Total     int64 `json:"total"`
	Clients   int64 `json:"clients"`
	Lawyers   int64 `json:"lawyers"`
	Active    int64 `json:"active"`
	Suspended int64 `json:"suspended"`
}

func (h *UserHandler) Stats(c *gin.Context) {
	var stats UserStats
	h.db.Model(&model.UserAccount{}).Count(&stats.Total)
	h.db.Model(&model.UserAccount{}).Where("type = ?", model.UserTypeClient).Count(&stats.Clients)
	h.db.Model(&model.UserAccount{}).Where("type = ?", model.UserTypeLawyer).Count(&stats.Lawyers)
	h.db.Model(&model.UserAccount{}).Where("status = ?", model.UserStatusActive).Count(&stats.Active)
	h.db.Model(&model.UserAccount{}).Where("status = ?", model.UserStatusSuspended).Count(&stats.Suspended)
	c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	pattern := "%" + strings.ToLower(q) + "%"
	var users []model.UserAccount
	if err := h.db.
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListSuspended(c *gin.Context) {
	var users []model.UserAccount
	if err := h.db.Where("status = ?", model.UserStatusSuspended).
		Order("updated_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	var user model.UserAccount
	if err := h.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}

type SuspendUserRequest struct {
	Reason string `json:"reason"`
}

// Suspend takes an active account out of service. The reason is mandatory.
func (h *UserHandler) Suspend(c *gin.Context) {
	var req SuspendUserRequest
	c.ShouldBindJSON(&req)

	h.setStatus(c, model.UserStatusSuspended, strings.TrimSpace(req.Reason))
}

// Reinstate returns a suspended account to active and clears the reason.
func (h *UserHandler) Reinstate(c *gin.Context) {
	h.setStatus(c, model.UserStatusActive, "")
}

func (h *UserHandler) setStatus(c *gin.Context, to, reason string) {
	var user model.UserAccount
	if err := h.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "user")
		return
	}

	if !checkTransition(c, h.rules, user.Status, to, reason) {
		return
	}

	user.Status = to
	user.SuspensionReason = reason
	user.UpdatedAt = time.Now()

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	verb := "reinstated"
	if to == model.UserStatusSuspended {
		verb = "suspended"
	}
	recordActivity(h.db, model.ActivityTypeUser,
		fmt.Sprintf("%s account for %s %s", user.Type, user.Name, verb), to)

	c.JSON(http.StatusOK, user)
}

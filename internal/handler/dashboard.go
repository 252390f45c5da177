package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/cache"
	"github.com/wakili/console/internal/model"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db       *gorm.DB
	cache    *cache.RedisCache
	cacheTTL time.Duration
}

func NewDashboardHandler(db *gorm.DB, redisCache *cache.RedisCache, cacheTTL time.Duration) *DashboardHandler {
	return &DashboardHandler{db: db, cache: redisCache, cacheTTL: cacheTTL}
}

type DashboardStats struct {
	PendingVerifications int64 `json:"pendingVerifications"`
	PendingCredentials   int64 `json:"pendingCredentials"`
	FlaggedReviews       int64 `json:"flaggedReviews"`
	ActiveLawyers        int64 `json:"activeLawyers"`
	ActiveClients        int64 `json:"activeClients"`
	SuspendedAccounts    int64 `json:"suspendedAccounts"`
	TotalReviews         int64 `json:"totalReviews"`
	LawCategories        int64 `json:"lawCategories"`
}

type AccountStatus struct {
	ActiveLawyers       int64 `json:"activeLawyers"`
	PendingVerification int64 `json:"pendingVerification"`
	SuspendedAccounts   int64 `json:"suspendedAccounts"`
}

type NotificationCounter struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
	Label string `json:"label"`
}

type DashboardData struct {
	Stats            DashboardStats        `json:"stats"`
	RecentActivities []model.Activity      `json:"recentActivities"`
	Notifications    []NotificationCounter `json:"notifications"`
	AccountStatus    AccountStatus         `json:"accountStatus"`
}

// Get returns the full dashboard payload.
func (h *DashboardHandler) Get(c *gin.Context) {
	stats := h.stats(c)

	var activities []model.Activity
	h.db.Order("created_at DESC").Limit(10).Find(&activities)

	c.JSON(http.StatusOK, DashboardData{
		Stats:            stats,
		RecentActivities: activities,
		Notifications:    h.notifications(stats),
		AccountStatus: AccountStatus{
			ActiveLawyers:       stats.ActiveLawyers,
			PendingVerification: stats.PendingVerifications,
			SuspendedAccounts:   stats.SuspendedAccounts,
		},
	})
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats(c))
}

func (h *DashboardHandler) GetAccountStatus(c *gin.Context) {
	stats := h.stats(c)
	c.JSON(http.StatusOK, AccountStatus{
		ActiveLawyers:       stats.ActiveLawyers,
		PendingVerification: stats.PendingVerifications,
		SuspendedAccounts:   stats.SuspendedAccounts,
	})
}

// GetActivities returns the activity feed, newest first.
func (h *DashboardHandler) GetActivities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var activities []model.Activity
	if err := h.db.Order("created_at DESC").Limit(limit).Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// stats serves from the Redis cache when possible and recounts otherwise.
// Cache trouble is ignored: counting is cheap enough to do live.
func (h *DashboardHandler) stats(c *gin.Context) DashboardStats {
	if h.cache != nil {
		if raw, err := h.cache.Get(c.Request.Context(), cache.StatsKey); err == nil {
			var cached DashboardStats
			if json.Unmarshal(raw, &cached) == nil {
				return cached
			}
		}
	}

	stats := CountStats(h.db)

	if h.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			_ = h.cache.Set(c.Request.Context(), cache.StatsKey, raw, h.cacheTTL)
		}
	}
	return stats
}

// CountStats recomputes the dashboard counters from the database. The
// background refresher uses it too.
func CountStats(db *gorm.DB) DashboardStats {
	var stats DashboardStats
	db.Model(&model.VerificationRequest{}).Where("status = ?", model.StatusPending).Count(&stats.PendingVerifications)
	db.Model(&model.Credential{}).Where("status = ?", model.StatusPending).Count(&stats.PendingCredentials)
	db.Model(&model.Review{}).Where("status = ?", model.ReviewStatusFlagged).Count(&stats.FlaggedReviews)
	db.Model(&model.UserAccount{}).
		Where("type = ? AND status = ?", model.UserTypeLawyer, model.UserStatusActive).Count(&stats.ActiveLawyers)
	db.Model(&model.UserAccount{}).
		Where("type = ? AND status = ?", model.UserTypeClient, model.UserStatusActive).Count(&stats.ActiveClients)
	db.Model(&model.UserAccount{}).Where("status = ?", model.UserStatusSuspended).Count(&stats.SuspendedAccounts)
	db.Model(&model.Review{}).Count(&stats.TotalReviews)
	db.Model(&model.LawCategory{}).Count(&stats.LawCategories)
	return stats
}

func (h *DashboardHandler) notifications(stats DashboardStats) []NotificationCounter {
	return []NotificationCounter{
		{Type: "verification", Count: stats.PendingVerifications, Label: "verification requests awaiting review"},
		{Type: "credential", Count: stats.PendingCredentials, Label: "credentials awaiting review"},
		{Type: "review", Count: stats.FlaggedReviews, Label: "flagged reviews"},
	}
}

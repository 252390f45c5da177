package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/middleware"
	"github.com/wakili/console/internal/model"
	"github.com/wakili/console/internal/moderation"
	"gorm.io/gorm"
)

// recordActivity appends a dashboard feed row. Feed writes are best-effort;
// a failed insert never fails the request that triggered it.
func recordActivity(db *gorm.DB, activityType, message, status string) {
	db.Create(&model.Activity{
		Type:      activityType,
		Message:   message,
		Status:    status,
		CreatedAt: time.Now(),
	})
}

// checkTransition runs the rule check, records the outcome metric, and
// writes the error response when the transition is refused.
func checkTransition(c *gin.Context, rules moderation.Ruleset, from, to, reason string) bool {
	if err := rules.Check(from, to, reason); err != nil {
		middleware.RecordTransition(rules.Kind, to, false)
		transitionError(c, err)
		return false
	}
	middleware.RecordTransition(rules.Kind, to, true)
	return true
}

// transitionError maps a moderation rule failure to the right HTTP answer:
// missing reason is a bad request, an illegal move is a conflict.
func transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, moderation.ErrReasonRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, moderation.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	}
}

func notFound(c *gin.Context, kind string) {
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", kind)})
}

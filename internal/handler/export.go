package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/model"
	"gorm.io/gorm"
)

type ExportHandler struct {
	db *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

// ExportUsers downloads the user list as JSON or CSV.
func (h *ExportHandler) ExportUsers(c *gin.Context) {
	var users []model.UserAccount
	if err := h.db.Order("created_at ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.Header("Content-Disposition", "attachment; filename=users.json")
		c.JSON(http.StatusOK, users)
	case "csv":
		c.Header("Content-Disposition", "attachment; filename=users.csv")
		c.Header("Content-Type", "text/csv")
		w := csv.NewWriter(c.Writer)
		w.Write([]string{"id", "name", "email", "type", "status", "createdAt"})
		for _, u := range users {
			w.Write([]string{u.ID, u.Name, u.Email, u.Type, u.Status, u.CreatedAt.Format("2006-01-02")})
		}
		w.Flush()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format. Use json or csv"})
	}
}

// ExportReviews downloads the review list as JSON or CSV.
func (h *ExportHandler) ExportReviews(c *gin.Context) {
	var reviews []model.Review
	if err := h.db.Order("created_at ASC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.Header("Content-Disposition", "attachment; filename=reviews.json")
		c.JSON(http.StatusOK, reviews)
	case "csv":
		c.Header("Content-Disposition", "attachment; filename=reviews.csv")
		c.Header("Content-Type", "text/csv")
		w := csv.NewWriter(c.Writer)
		w.Write([]string{"id", "clientName", "lawyerName", "rating", "status", "flagReason", "createdAt"})
		for _, r := range reviews {
			w.Write([]string{
				r.ID, r.ClientName, r.LawyerName,
				strconv.Itoa(r.Rating), r.Status, r.FlagReason,
				r.CreatedAt.Format("2006-01-02"),
			})
		}
		w.Flush()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format. Use json or csv"})
	}
}

package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wakili/console/internal/model"
	"github.com/wakili/console/internal/validator"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []model.LawCategory
	if err := h.db.Order("created_at ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list law categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

type CategoryStats struct {
	Total        int64 `json:"total"`
	TotalLawyers int64 `json:"totalLawyers"`
}

func (h *CategoryHandler) Stats(c *gin.Context) {
	var stats CategoryStats
	h.db.Model(&model.LawCategory{}).Count(&stats.Total)
	h.db.Model(&model.LawCategory{}).Select("COALESCE(SUM(lawyer_count), 0)").Scan(&stats.TotalLawyers)
	c.JSON(http.StatusOK, stats)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	var category model.LawCategory
	if err := h.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "law category")
		return
	}
	c.JSON(http.StatusOK, category)
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create adds a law category. Name uniqueness is case-sensitive, mirroring
// the uniqueness constraint on the table.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var existing []model.LawCategory
	h.db.Select("name").Find(&existing)
	names := make([]string, len(existing))
	for i, cat := range existing {
		names[i] = cat.Name
	}

	if errs := validator.ValidateNewCategory(req.Name, names); !errs.OK() {
		status := http.StatusBadRequest
		if errs["name"] == "category already exists" {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": errs["name"], "fields": errs})
		return
	}

	category := model.LawCategory{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create law category"})
		return
	}

	recordActivity(h.db, model.ActivityTypeCategory,
		fmt.Sprintf("law category %q created", category.Name), "created")

	c.JSON(http.StatusCreated, category)
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var category model.LawCategory
	if err := h.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "law category")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category name is required"})
			return
		}
		var count int64
		h.db.Model(&model.LawCategory{}).Where("name = ? AND id <> ?", name, category.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
			return
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	category.UpdatedAt = time.Now()

	if err := h.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update law category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	var category model.LawCategory
	if err := h.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "law category")
		return
	}

	if err := h.db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete law category"})
		return
	}

	recordActivity(h.db, model.ActivityTypeCategory,
		fmt.Sprintf("law category %q deleted", category.Name), "deleted")

	c.Status(http.StatusNoContent)
}

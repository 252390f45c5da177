package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wakili/console/internal/auth"
	"github.com/wakili/console/internal/model"
	"github.com/wakili/console/internal/validator"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) List(c *gin.Context) {
	var admins []model.Admin
	if err := h.db.Order("created_at ASC").Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list admins"})
		return
	}
	c.JSON(http.StatusOK, admins)
}

type CreateAdminRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// Create registers a new admin account. The same field rules the console
// applies locally run here again; a duplicate email answers 409.
func (h *AdminHandler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	// Console clients send the password once; treat that as confirmed.
	if req.ConfirmPassword == "" {
		req.ConfirmPassword = req.Password
	}
	if req.Role == "" {
		req.Role = model.RoleAdmin
	}

	var existing []model.Admin
	h.db.Select("email").Find(&existing)
	emails := make([]string, len(existing))
	for i, adm := range existing {
		emails[i] = adm.Email
	}

	errs := validator.ValidateNewAdmin(validator.NewAdmin{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	}, emails)
	if !errs.OK() {
		status := http.StatusBadRequest
		if errs["email"] == "email is already in use" {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "validation failed", "fields": errs})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin"})
		return
	}

	admin := model.Admin{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         req.Role,
		Status:       model.AdminStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := h.db.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin"})
		return
	}

	recordActivity(h.db, model.ActivityTypeAdmin,
		fmt.Sprintf("admin account %s created", admin.Email), "created")

	c.JSON(http.StatusCreated, admin)
}

type UpdateAdminRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

func (h *AdminHandler) Update(c *gin.Context) {
	var admin model.Admin
	if err := h.db.First(&admin, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "admin")
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		admin.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		switch *req.Role {
		case model.RoleSuperAdmin, model.RoleAdmin, model.RoleModerator:
			admin.Role = *req.Role
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
			return
		}
	}
	if req.Status != nil {
		switch *req.Status {
		case model.AdminStatusActive, model.AdminStatusInactive:
			admin.Status = *req.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
	}
	admin.UpdatedAt = time.Now()

	if err := h.db.Save(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update admin"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// Delete removes an admin account. Super admin accounts are protected
// unconditionally.
func (h *AdminHandler) Delete(c *gin.Context) {
	var admin model.Admin
	if err := h.db.First(&admin, "id = ?", c.Param("id")).Error; err != nil {
		notFound(c, "admin")
		return
	}

	if admin.Role == model.RoleSuperAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "super admin accounts cannot be deleted"})
		return
	}

	if err := h.db.Delete(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete admin"})
		return
	}

	recordActivity(h.db, model.ActivityTypeAdmin,
		fmt.Sprintf("admin account %s deleted", admin.Email), "deleted")

	c.Status(http.StatusNoContent)
}

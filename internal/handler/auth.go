package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wakili/console/internal/auth"
	"github.com/wakili/console/internal/cache"
	"github.com/wakili/console/internal/model"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db        *gorm.DB
	cache     *cache.RedisCache
	jwtSecret string
}

func NewAuthHandler(db *gorm.DB, redisCache *cache.RedisCache, jwtSecret string) *AuthHandler {
	return &AuthHandler{db: db, cache: redisCache, jwtSecret: jwtSecret}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"`
	Admin        *model.Admin `json:"admin"`
}

// Login exchanges admin credentials for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	var admin model.Admin
	if err := h.db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if admin.Status != model.AdminStatusActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "account is inactive"})
		return
	}
	if err := auth.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	accessToken, err := auth.GenerateAccessToken(&admin, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	refreshToken, err := auth.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	h.db.Create(&model.RefreshToken{
		AdminID:   admin.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(auth.RefreshTokenExpiry),
	})

	c.JSON(http.StatusOK, TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(auth.AccessTokenExpiry.Seconds()),
		Admin:        &admin,
	})
}

// Logout revokes the refresh token and denylists the access token until its
// natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	adminID := c.GetString("adminID")

	h.db.Model(&model.RefreshToken{}).
		Where("admin_id = ? AND revoked = ?", adminID, false).
		Update("revoked", true)

	if h.cache != nil {
		token := c.GetString("accessToken")
		if claims, err := auth.ValidateAccessToken(token, h.jwtSecret); err == nil {
			until := time.Until(claims.ExpiresAt.Time)
			if err := h.cache.DenyToken(c.Request.Context(), token, until); err != nil {
				// Fail open: the token still expires on its own
				c.JSON(http.StatusOK, gin.H{"message": "logged out"})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Verify validates the presented token and returns the admin it belongs to.
func (h *AuthHandler) Verify(c *gin.Context) {
	adminID := c.GetString("adminID")

	var admin model.Admin
	if err := h.db.First(&admin, "id = ?", adminID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Refresh exchanges a live refresh token for a fresh access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	var stored model.RefreshToken
	if err := h.db.Where("token = ? AND revoked = ?", req.RefreshToken, false).First(&stored).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	if time.Now().After(stored.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token expired"})
		return
	}

	var admin model.Admin
	if err := h.db.First(&admin, "id = ?", stored.AdminID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}

	accessToken, err := auth.GenerateAccessToken(&admin, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:        accessToken,
		RefreshToken: req.RefreshToken,
		ExpiresIn:    int(auth.AccessTokenExpiry.Seconds()),
		Admin:        &admin,
	})
}

package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/valentinobarber/site-api/internal/audit"
	"github.com/valentinobarber/site-api/internal/config"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/metrics"
	"github.com/valentinobarber/site-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, auditD *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: auditD}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type ChangeCredentialsRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewUsername     string `json:"newUsername" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_credentials", "Username and password are required.")
		return
	}

	settings, err := h.loadSettings(c)
	if err != nil {
		return
	}

	storedUsername := h.config.BootstrapUsername
	if settings != nil && settings.AdminUsername != "" {
		storedUsername = settings.AdminUsername
	}

	var storedHash string
	if settings != nil {
		storedHash = settings.AdminPassword
	}

	usernameOK := strings.TrimSpace(req.Username) == strings.TrimSpace(storedUsername)
	passwordOK := verifyAdminPassword(storedHash, h.config.BootstrapPassword, req.Password)

	if !usernameOK || !passwordOK {
		metrics.IncAdminLogin("denied")
		httperr.Unauthorized(c, "invalid_credentials", "Username or password is incorrect.")
		return
	}

	token, err := h.generateToken(storedUsername)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create session.")
		return
	}

	metrics.IncAdminLogin("ok")

	h.audit.Dispatch(audit.Event{
		Actor:  storedUsername,
		Action: "admin_login",
		Entity: "settings",
	})

	c.JSON(200, gin.H{
		"token": token,
		"user":  gin.H{"username": storedUsername},
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Current and new password are required.")
		return
	}

	h.updateCredentials(c, "", req.CurrentPassword, req.NewPassword, "admin_password_changed")
}

func (h *AuthHandler) ChangeCredentials(c *gin.Context) {
	var req ChangeCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Current password, new username and new password are required.")
		return
	}

	h.updateCredentials(c, strings.TrimSpace(req.NewUsername), req.CurrentPassword, req.NewPassword, "admin_credentials_changed")
}

func (h *AuthHandler) updateCredentials(
	c *gin.Context,
	newUsername string,
	currentPassword string,
	newPassword string,
	action string,
) {
	if err := validatePasswordStrength(newPassword); err != nil {
		httperr.BadRequest(c, "weak_password", err.Error())
		return
	}

	settings, err := h.loadSettings(c)
	if err != nil {
		return
	}

	var storedHash string
	if settings != nil {
		storedHash = settings.AdminPassword
	}

	if !verifyAdminPassword(storedHash, h.config.BootstrapPassword, currentPassword) {
		httperr.Unauthorized(c, "invalid_current_password", "Current password is incorrect.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not store the new password.")
		return
	}

	if settings == nil {
		settings = &models.Settings{Key: settingsKey}
	}
	if newUsername != "" {
		settings.AdminUsername = newUsername
	}
	settings.AdminPassword = string(hashed)

	if err := h.db.WithContext(c.Request.Context()).Save(settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_credentials", "Could not store the new credentials.")
		return
	}

	h.audit.Dispatch(auditEvent(c, action, "settings", &settings.ID))

	c.JSON(200, gin.H{"success": true})
}

// loadSettings returns nil without error when no settings row exists yet
// (first-run state). Any other failure is written to the response.
func (h *AuthHandler) loadSettings(c *gin.Context) (*models.Settings, error) {
	var settings models.Settings
	err := h.db.WithContext(c.Request.Context()).
		Where("key = ?", settingsKey).
		First(&settings).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if httperr.IsStorageUnavailable(err) {
			httperr.Unavailable(c, "storage_unavailable", "Login is temporarily unavailable.")
			return nil, err
		}
		httperr.Internal(c, "failed_to_load_settings", "Could not verify credentials.")
		return nil, err
	}

	return &settings, nil
}

// --------- Credential checks ---------

// verifyAdminPassword accepts the bootstrap password only while no real hash
// has been stored; once a hash exists the bootstrap path is dead.
func verifyAdminPassword(storedHash, bootstrapPassword, provided string) bool {
	if storedHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(provided)) == nil
	}

	return bootstrapPassword != "" && provided == bootstrapPassword
}

func validatePasswordStrength(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if len(password) > 100 {
		return errors.New("password must be at most 100 characters")
	}
	return nil
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      "admin",
		"username": username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}


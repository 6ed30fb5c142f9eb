package handlers

import (
	"errors"
	"net/http"

	"shiftpro_backend/internal/middleware"
	"shiftpro_backend/internal/services"
	"shiftpro_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// SetupStatus reports whether first-run setup is still pending.
func (h *AuthHandler) SetupStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"needs_setup": h.authService.NeedsSetup()})
}

// Setup handles the first-run company and admin creation.
func (h *AuthHandler) Setup(c *gin.Context) {
	var req services.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	resp, err := h.authService.Setup(req)
	if err != nil {
		utils.LogError(err, "Setup: Error from authService.Setup")
		if errors.Is(err, services.ErrSetupComplete) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Setup has already been completed.", err.Error()))
		} else if errors.Is(err, services.ErrSetupValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Setup failed.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid credentials.", ""))
		} else if errors.Is(err, services.ErrSetupRequired) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "First-run setup is required.", err.Error()))
		} else {
			utils.LogError(err, "Login: Error from authService.Login")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Login failed.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RestoreSession replays a remembered session at shell startup.
func (h *AuthHandler) RestoreSession(c *gin.Context) {
	resp, err := h.authService.RestoreSession()
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No remembered session.", ""))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout clears the persisted session pointer.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetCurrentUser returns the authenticated principal.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No active session.", ""))
		return
	}
	user := *session.User
	user.PasswordHash = ""
	c.JSON(http.StatusOK, user)
}

// RegisterUser creates an additional login principal.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req services.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	user, err := h.authService.RegisterUser(req)
	if err != nil {
		utils.LogError(err, "RegisterUser: Error from authService.RegisterUser")
		if errors.Is(err, services.ErrUserEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A user with this email already exists.", err.Error()))
		} else if errors.Is(err, services.ErrUserValidation) || errors.Is(err, services.ErrRoleUnknown) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create user.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUsers lists the login principals.
func (h *AuthHandler) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.authService.GetUsers()})
}

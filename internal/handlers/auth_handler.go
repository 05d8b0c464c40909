package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techvista_backend/internal/services"
	"techvista_backend/internal/services/dto"
	"techvista_backend/pkg/apperrors"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterPublicRoutes mounts the unauthenticated part of the auth flow.
func (h *AuthHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/verify-otp", h.VerifyOTP)
	rg.POST("/forgot-password", h.ForgotPassword)
	rg.PUT("/reset-password/:token", h.ResetPassword)
}

// RegisterProtectedRoutes mounts the session-scoped endpoints behind the
// auth middleware. Any authenticated role may use these.
func (h *AuthHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/logout", h.Logout)
	rg.GET("/verify", h.Verify)
	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.UpdateProfile)
	rg.POST("/change-password", h.ChangePassword)
}

// RegisterRosterRoutes mounts roster management. The caller must gate the
// group with the admin role so a valid non-admin session gets a 403, not
// a working roster.
func (h *AuthHandler) RegisterRosterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admins", h.ListAdmins)
	rg.POST("/admins", h.CreateAdmin)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.VerifyOTP(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims := h.GetClaims(c)
	if claims == nil {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Verify confirms the session is still good and returns who it belongs to.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := h.GetClaims(c)
	if claims == nil {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	resp, err := h.authService.GetProfile(c.Request.Context(), h.GetDB(c), claims.AdminID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "admin": resp})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := h.GetClaims(c)
	if claims == nil {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	resp, err := h.authService.GetProfile(c.Request.Context(), h.GetDB(c), claims.AdminID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims := h.GetClaims(c)
	if claims == nil {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.UpdateProfile(c.Request.Context(), h.GetDB(c), claims.AdminID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims := h.GetClaims(c)
	if claims == nil {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), h.GetDB(c), claims.AdminID, req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.CreateAdmin(c.Request.Context(), h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) ListAdmins(c *gin.Context) {
	resp, err := h.authService.ListAdmins(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), h.GetDB(c), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	// Same answer whether or not the account exists.
	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.Token = c.Param("token")

	if err := h.authService.ResetPassword(c.Request.Context(), h.GetDB(c), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}

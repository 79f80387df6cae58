package handler

import (
	"strings"
	"time"

	appcompany "github.com/finbooks/backend/internal/application/company"
	"github.com/finbooks/backend/internal/application/identity"
	"github.com/finbooks/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService    *identity.AuthService
	userService    *identity.UserService
	companyService *appcompany.CompanyService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService, userService *identity.UserService, companyService *appcompany.CompanyService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		userService:    userService,
		companyService: companyService,
	}
}

// LoginRequest is the login request body
type LoginRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	CompanyCode  string `json:"company_code"`
	LocationCode string `json:"location_code"`
	YearCode     string `json:"year_code"`
}

// LoginResponse is the login response body
type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresAt   time.Time         `json:"expires_at"`
	FBRToken    string            `json:"fbr_token,omitempty"`
	User        *identity.UserDTO `json:"user"`
}

// ChangePasswordRequest is the change-password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// Login authenticates a user and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Username:     req.Username,
		Password:     req.Password,
		CompanyCode:  req.CompanyCode,
		LocationCode: req.LocationCode,
		YearCode:     req.YearCode,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	// The company's FBR token rides along so the client can submit
	// invoices to the tax authority without a second round trip.
	fbrToken := ""
	companyCode := req.CompanyCode
	if companyCode == "" {
		companyCode = result.User.CompanyCode
	}
	if companyCode != "" {
		if company, err := h.companyService.GetByCode(c.Request.Context(), companyCode); err == nil {
			fbrToken = company.FBRToken
		}
	}

	h.Success(c, LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresAt:   result.ExpiresAt,
		FBRToken:    fbrToken,
		User:        result.User,
	})
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader(middleware.AuthHeaderKey), middleware.BearerPrefix)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// ChangePassword changes the authenticated user's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Password changed"})
}

// RegisterRoutes wires the auth endpoints.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
		auth.PUT("/password", h.ChangePassword)
	}
}

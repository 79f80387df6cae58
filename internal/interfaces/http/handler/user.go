package handler

import (
	"github.com/finbooks/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	BaseHandler
	service *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *identity.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUserRequest is the create-user request body
type CreateUserRequest struct {
	Username        string   `json:"username" binding:"required,min=3,max=50"`
	Password        string   `json:"password" binding:"required,min=6"`
	FullName        string   `json:"full_name" binding:"max=100"`
	Role            string   `json:"role" binding:"omitempty,oneof=admin user"`
	CompanyCode     string   `json:"company_code" binding:"max=2"`
	LocationCode    string   `json:"location_code" binding:"max=2"`
	YearCode        string   `json:"year_code" binding:"max=2"`
	AccessibleMenus []string `json:"accessible_menus"`
}

// UpdateUserRequest is the update-user request body. The username and
// password never change through this endpoint.
type UpdateUserRequest struct {
	FullName        *string  `json:"full_name" binding:"omitempty,max=100"`
	Role            *string  `json:"role" binding:"omitempty,oneof=admin user"`
	CompanyCode     *string  `json:"company_code" binding:"omitempty,max=2"`
	LocationCode    *string  `json:"location_code" binding:"omitempty,max=2"`
	YearCode        *string  `json:"year_code" binding:"omitempty,max=2"`
	AccessibleMenus []string `json:"accessible_menus"`
}

// ResetPasswordRequest is the admin reset-password request body
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.service.Create(c.Request.Context(), identity.CreateUserInput{
		Username:        req.Username,
		Password:        req.Password,
		FullName:        req.FullName,
		Role:            req.Role,
		CompanyCode:     req.CompanyCode,
		LocationCode:    req.LocationCode,
		YearCode:        req.YearCode,
		AccessibleMenus: req.AccessibleMenus,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// Update modifies a user's profile, scope assignment and menus.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.service.Update(c.Request.Context(), identity.UpdateUserInput{
		ID:              id,
		FullName:        req.FullName,
		Role:            req.Role,
		CompanyCode:     req.CompanyCode,
		LocationCode:    req.LocationCode,
		YearCode:        req.YearCode,
		AccessibleMenus: req.AccessibleMenus,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Get returns one user by ID. The password hash never leaves the
// persistence layer.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// List returns a page of users.
func (h *UserHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ResetPassword sets a new password without the current one. Meant
// for administrators; self-service changes go through /auth/password.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Password reset"})
}

// Allow re-enables a user's login.
func (h *UserHandler) Allow(c *gin.Context) {
	h.setAllowed(c, true)
}

// Disallow blocks a user from logging in.
func (h *UserHandler) Disallow(c *gin.Context) {
	h.setAllowed(c, false)
}

func (h *UserHandler) setAllowed(c *gin.Context, allowed bool) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.service.SetAllowed(c.Request.Context(), id, allowed)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes wires the user management endpoints.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/identity/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
		users.PUT("/:id/password", h.ResetPassword)
		users.POST("/:id/allow", h.Allow)
		users.POST("/:id/disallow", h.Disallow)
	}
}

package handler

import (
	appcompany "github.com/finbooks/backend/internal/application/company"
	"github.com/gin-gonic/gin"
)

// LocationHandler handles location HTTP requests
type LocationHandler struct {
	BaseHandler
	service *appcompany.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service *appcompany.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// CreateLocationRequest is the create-location request body.
// Code is optional; when omitted the next free code within the company
// is assigned.
type CreateLocationRequest struct {
	CompanyCode  string `json:"company_code" binding:"required,max=2"`
	Code         string `json:"code" binding:"omitempty,max=2"`
	Name         string `json:"name" binding:"required,max=100"`
	Address      string `json:"address" binding:"max=200"`
	Phone        string `json:"phone" binding:"max=30"`
	IsHeadOffice bool   `json:"is_head_office"`
}

// UpdateLocationRequest is the update-location request body.
type UpdateLocationRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Address      *string `json:"address" binding:"omitempty,max=200"`
	Phone        *string `json:"phone" binding:"omitempty,max=30"`
	IsHeadOffice *bool   `json:"is_head_office"`
}

// Create registers a new location under a company.
func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	location, err := h.service.Create(c.Request.Context(), appcompany.CreateLocationInput{
		CompanyCode:  req.CompanyCode,
		Code:         req.Code,
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		IsHeadOffice: req.IsHeadOffice,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, location)
}

// Update modifies a location in place.
func (h *LocationHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	location, err := h.service.Update(c.Request.Context(), appcompany.UpdateLocationInput{
		ID:           id,
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		IsHeadOffice: req.IsHeadOffice,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, location)
}

// Get returns one location by ID.
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	location, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, location)
}

// List returns a page of locations, optionally scoped to one company
// via ?company_code=.
func (h *LocationHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), c.Query("company_code"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// NextCode previews the code the next location of a company would receive.
func (h *LocationHandler) NextCode(c *gin.Context) {
	companyCode := c.Query("company_code")
	if companyCode == "" {
		h.BadRequest(c, "company_code is required")
		return
	}

	code, err := h.service.NextCode(c.Request.Context(), companyCode)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"next_code": code})
}

// Delete removes a location. Deletion is blocked while any dependent
// records still reference the (company_code, location_code) pair.
func (h *LocationHandler) Delete(c *gin.Context) {
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

// Activate re-enables a location.
func (h *LocationHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate disables a location.
func (h *LocationHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *LocationHandler) setActive(c *gin.Context, active bool) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	location, err := h.service.SetActive(c.Request.Context(), id, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, location)
}

// RegisterRoutes wires the location endpoints.
func (h *LocationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	locations := rg.Group("/tenancy/locations")
	{
		locations.POST("", h.Create)
		locations.GET("", h.List)
		locations.GET("/next-code", h.NextCode)
		locations.GET("/:id", h.Get)
		locations.PUT("/:id", h.Update)
		locations.DELETE("/:id", h.Delete)
		locations.POST("/:id/activate", h.Activate)
		locations.POST("/:id/deactivate", h.Deactivate)
	}
}

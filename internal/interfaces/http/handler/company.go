package handler

import (
	appcompany "github.com/finbooks/backend/internal/application/company"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company HTTP requests
type CompanyHandler struct {
	BaseHandler
	service *appcompany.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service *appcompany.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CreateCompanyRequest is the create-company request body.
// Code is optional; when omitted the next free two-digit code is assigned.
type CreateCompanyRequest struct {
	Code     string `json:"code" binding:"omitempty,max=2"`
	Name     string `json:"name" binding:"required,max=100"`
	Address  string `json:"address" binding:"max=200"`
	City     string `json:"city" binding:"max=50"`
	Phone    string `json:"phone" binding:"max=30"`
	Email    string `json:"email" binding:"omitempty,email"`
	NTN      string `json:"ntn" binding:"max=20"`
	STN      string `json:"stn" binding:"max=20"`
	FBRToken string `json:"fbr_token"`
}

// UpdateCompanyRequest is the update-company request body. Absent
// fields keep their stored values; the code is immutable.
type UpdateCompanyRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Address  *string `json:"address" binding:"omitempty,max=200"`
	City     *string `json:"city" binding:"omitempty,max=50"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	Email    *string `json:"email" binding:"omitempty,email"`
	NTN      *string `json:"ntn" binding:"omitempty,max=20"`
	STN      *string `json:"stn" binding:"omitempty,max=20"`
	FBRToken *string `json:"fbr_token"`
}

// Create registers a new company.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	company, err := h.service.Create(c.Request.Context(), appcompany.CreateCompanyInput{
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Phone:    req.Phone,
		Email:    req.Email,
		NTN:      req.NTN,
		STN:      req.STN,
		FBRToken: req.FBRToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, company)
}

// Update modifies a company in place.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	company, err := h.service.Update(c.Request.Context(), appcompany.UpdateCompanyInput{
		ID:       id,
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Phone:    req.Phone,
		Email:    req.Email,
		NTN:      req.NTN,
		STN:      req.STN,
		FBRToken: req.FBRToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Get returns one company by ID.
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	company, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// List returns a page of companies.
func (h *CompanyHandler) List(c *gin.Context) {
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

// NextCode previews the code the next company would receive.
func (h *CompanyHandler) NextCode(c *gin.Context) {
	code, err := h.service.NextCode(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"next_code": code})
}

// Delete removes a company. Deletion is blocked while any dependent
// records still reference the company code.
func (h *CompanyHandler) Delete(c *gin.Context) {
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

// Activate re-enables a company.
func (h *CompanyHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate disables a company.
func (h *CompanyHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *CompanyHandler) setActive(c *gin.Context, active bool) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	company, err := h.service.SetActive(c.Request.Context(), id, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// RegisterRoutes wires the company endpoints.
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/tenancy/companies")
	{
		companies.POST("", h.Create)
		companies.GET("", h.List)
		companies.GET("/next-code", h.NextCode)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
		companies.POST("/:id/activate", h.Activate)
		companies.POST("/:id/deactivate", h.Deactivate)
	}
}

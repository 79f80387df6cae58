package handler

import (
	appcoding "github.com/finbooks/backend/internal/application/coding"
	"github.com/gin-gonic/gin"
)

// ItemCodeHandler handles HS item description code HTTP requests
type ItemCodeHandler struct {
	BaseHandler
	service *appcoding.ItemCodeService
}

// NewItemCodeHandler creates a new item code handler
func NewItemCodeHandler(service *appcoding.ItemCodeService) *ItemCodeHandler {
	return &ItemCodeHandler{service: service}
}

// CreateItemCodeRequest is the create-item-code request body
type CreateItemCodeRequest struct {
	CompanyCode string `json:"company_code" binding:"required,max=2"`
	HSCode      string `json:"hs_code" binding:"required,max=20"`
	Description string `json:"description" binding:"required,max=200"`
}

// UpdateItemCodeRequest is the update-item-code request body. Only the
// description changes; the HS code itself is immutable.
type UpdateItemCodeRequest struct {
	Description string `json:"description" binding:"required,max=200"`
}

// Create registers a new HS code description for a company.
func (h *ItemCodeHandler) Create(c *gin.Context) {
	var req CreateItemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), appcoding.CreateItemCodeInput{
		CompanyCode: req.CompanyCode,
		HSCode:      req.HSCode,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update changes the description of an item code.
func (h *ItemCodeHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req UpdateItemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.service.UpdateDescription(c.Request.Context(), id, req.Description)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Get returns one item code by ID.
func (h *ItemCodeHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// List returns a page of item codes, optionally scoped to one company.
func (h *ItemCodeHandler) List(c *gin.Context) {
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

// Delete removes an item code.
func (h *ItemCodeHandler) Delete(c *gin.Context) {
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

// RegisterRoutes wires the item code endpoints.
func (h *ItemCodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/coding/item-codes")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Get)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

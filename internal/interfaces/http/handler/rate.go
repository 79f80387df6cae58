package handler

import (
	appcoding "github.com/finbooks/backend/internal/application/coding"
	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateHandler handles discount and tax rate HTTP requests. Both kinds
// share the same request shapes and scoping; only the service calls
// differ.
type RateHandler struct {
	BaseHandler
	service *appcoding.RateService
}

// NewRateHandler creates a new rate handler
func NewRateHandler(service *appcoding.RateService) *RateHandler {
	return &RateHandler{service: service}
}

// CreateRateRequest is the create-rate request body
type CreateRateRequest struct {
	CompanyCode  string          `json:"company_code" binding:"required,max=2"`
	LocationCode string          `json:"location_code" binding:"required,max=2"`
	YearCode     string          `json:"year_code" binding:"required,max=2"`
	HSCode       string          `json:"hs_code" binding:"required,max=20"`
	Rate         decimal.Decimal `json:"rate"`
}

// UpdateRateRequest is the update-rate request body
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

func (req CreateRateRequest) input() appcoding.CreateRateInput {
	return appcoding.CreateRateInput{
		CompanyCode:  req.CompanyCode,
		LocationCode: req.LocationCode,
		YearCode:     req.YearCode,
		HSCode:       req.HSCode,
		Rate:         req.Rate,
	}
}

func scopeFromQuery(c *gin.Context) coding.RateScope {
	return coding.RateScope{
		CompanyCode:  c.Query("company_code"),
		LocationCode: c.Query("location_code"),
		YearCode:     c.Query("year_code"),
	}
}

// CreateDiscountRate registers a discount rate for a scoped HS code.
func (h *RateHandler) CreateDiscountRate(c *gin.Context) {
	var req CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	rate, err := h.service.CreateDiscountRate(c.Request.Context(), req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rate)
}

// UpdateDiscountRate changes the percentage of a discount rate.
func (h *RateHandler) UpdateDiscountRate(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	rate, err := h.service.UpdateDiscountRate(c.Request.Context(), id, req.Rate)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// ListDiscountRates returns a page of discount rates in the scope
// given by ?company_code=&location_code=&year_code=.
func (h *RateHandler) ListDiscountRates(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.ListDiscountRates(c.Request.Context(), scopeFromQuery(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteDiscountRate removes a discount rate.
func (h *RateHandler) DeleteDiscountRate(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.DeleteDiscountRate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateTaxRate registers a tax rate for a scoped HS code.
func (h *RateHandler) CreateTaxRate(c *gin.Context) {
	var req CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	rate, err := h.service.CreateTaxRate(c.Request.Context(), req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rate)
}

// UpdateTaxRate changes the percentage of a tax rate.
func (h *RateHandler) UpdateTaxRate(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	rate, err := h.service.UpdateTaxRate(c.Request.Context(), id, req.Rate)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// ListTaxRates returns a page of tax rates in the scope given by
// ?company_code=&location_code=&year_code=.
func (h *RateHandler) ListTaxRates(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.ListTaxRates(c.Request.Context(), scopeFromQuery(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteTaxRate removes a tax rate.
func (h *RateHandler) DeleteTaxRate(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.DeleteTaxRate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes wires the rate endpoints.
func (h *RateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	discounts := rg.Group("/coding/discount-rates")
	{
		discounts.POST("", h.CreateDiscountRate)
		discounts.GET("", h.ListDiscountRates)
		discounts.PUT("/:id", h.UpdateDiscountRate)
		discounts.DELETE("/:id", h.DeleteDiscountRate)
	}

	taxes := rg.Group("/coding/tax-rates")
	{
		taxes.POST("", h.CreateTaxRate)
		taxes.GET("", h.ListTaxRates)
		taxes.PUT("/:id", h.UpdateTaxRate)
		taxes.DELETE("/:id", h.DeleteTaxRate)
	}
}

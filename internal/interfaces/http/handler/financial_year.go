package handler

import (
	"time"

	appcompany "github.com/finbooks/backend/internal/application/company"
	"github.com/gin-gonic/gin"
)

// FinancialYearHandler handles financial year HTTP requests
type FinancialYearHandler struct {
	BaseHandler
	service *appcompany.FinancialYearService
}

// NewFinancialYearHandler creates a new financial year handler
func NewFinancialYearHandler(service *appcompany.FinancialYearService) *FinancialYearHandler {
	return &FinancialYearHandler{service: service}
}

// CreateFinancialYearRequest is the create-financial-year request body.
// Dates use the YYYY-MM-DD form.
type CreateFinancialYearRequest struct {
	CompanyCode string `json:"company_code" binding:"required,max=2"`
	Code        string `json:"code" binding:"omitempty,max=2"`
	Title       string `json:"title" binding:"required,max=100"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	IsDefault   bool   `json:"is_default"`
}

// UpdateFinancialYearRequest is the update-financial-year request body.
type UpdateFinancialYearRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=100"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsDefault *bool   `json:"is_default"`
}

func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Create opens a new financial year for a company. The first year of a
// company becomes the default automatically.
func (h *FinancialYearHandler) Create(c *gin.Context) {
	var req CreateFinancialYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	year, err := h.service.Create(c.Request.Context(), appcompany.CreateFinancialYearInput{
		CompanyCode: req.CompanyCode,
		Code:        req.Code,
		Title:       req.Title,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, year)
}

// Update modifies a financial year in place.
func (h *FinancialYearHandler) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req UpdateFinancialYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	input := appcompany.UpdateFinancialYearInput{
		ID:        id,
		Title:     req.Title,
		IsDefault: req.IsDefault,
	}
	if req.StartDate != nil {
		start := parseDate(*req.StartDate)
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end := parseDate(*req.EndDate)
		input.EndDate = &end
	}

	year, err := h.service.Update(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, year)
}

// Get returns one financial year by ID.
func (h *FinancialYearHandler) Get(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	year, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, year)
}

// GetDefault returns the company's default financial year.
func (h *FinancialYearHandler) GetDefault(c *gin.Context) {
	companyCode := c.Query("company_code")
	if companyCode == "" {
		h.BadRequest(c, "company_code is required")
		return
	}

	year, err := h.service.GetDefault(c.Request.Context(), companyCode)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, year)
}

// List returns a page of financial years, optionally scoped to one
// company via ?company_code=.
func (h *FinancialYearHandler) List(c *gin.Context) {
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

// NextCode previews the code the next financial year of a company
// would receive.
func (h *FinancialYearHandler) NextCode(c *gin.Context) {
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

// SetDefault flags the year as the company's working default,
// clearing the flag from its siblings.
func (h *FinancialYearHandler) SetDefault(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	year, err := h.service.SetDefault(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, year)
}

// Delete removes a financial year. Deletion is blocked while any
// dependent records still reference the (company_code, year_code) pair.
func (h *FinancialYearHandler) Delete(c *gin.Context) {
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

// RegisterRoutes wires the financial year endpoints.
func (h *FinancialYearHandler) RegisterRoutes(rg *gin.RouterGroup) {
	years := rg.Group("/tenancy/financial-years")
	{
		years.POST("", h.Create)
		years.GET("", h.List)
		years.GET("/next-code", h.NextCode)
		years.GET("/default", h.GetDefault)
		years.GET("/:id", h.Get)
		years.PUT("/:id", h.Update)
		years.DELETE("/:id", h.Delete)
		years.POST("/:id/set-default", h.SetDefault)
	}
}

package handler

import (
	"strconv"

	appcoding "github.com/finbooks/backend/internal/application/coding"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles chart-of-accounts, bank account and cash
// account HTTP requests
type AccountHandler struct {
	BaseHandler
	service *appcoding.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service *appcoding.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccountRequest is the create-account request body. Levels
// above the first must name an existing parent one level up.
type CreateAccountRequest struct {
	CompanyCode string `json:"company_code" binding:"required,max=2"`
	YearCode    string `json:"year_code" binding:"required,max=2"`
	Level       int    `json:"level" binding:"required,min=1,max=4"`
	Code        string `json:"code" binding:"required,max=20"`
	ParentCode  string `json:"parent_code" binding:"max=20"`
	Title       string `json:"title" binding:"required,max=100"`
}

// RetitleAccountRequest is the retitle-account request body
type RetitleAccountRequest struct {
	Title string `json:"title" binding:"required,max=100"`
}

// CreateBankAccountRequest is the create-bank-account request body
type CreateBankAccountRequest struct {
	CompanyCode   string `json:"company_code" binding:"required,max=2"`
	LocationCode  string `json:"location_code" binding:"required,max=2"`
	YearCode      string `json:"year_code" binding:"required,max=2"`
	BankName      string `json:"bank_name" binding:"required,max=100"`
	AccountTitle  string `json:"account_title" binding:"required,max=100"`
	AccountNumber string `json:"account_number" binding:"required,max=50"`
}

// CreateCashAccountRequest is the create-cash-account request body
type CreateCashAccountRequest struct {
	CompanyCode  string `json:"company_code" binding:"required,max=2"`
	LocationCode string `json:"location_code" binding:"required,max=2"`
	YearCode     string `json:"year_code" binding:"required,max=2"`
	Title        string `json:"title" binding:"required,max=100"`
}

// CreateAccount adds a node to the chart of accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	account, err := h.service.CreateAccount(c.Request.Context(), appcoding.CreateAccountInput{
		CompanyCode: req.CompanyCode,
		YearCode:    req.YearCode,
		Level:       req.Level,
		Code:        req.Code,
		ParentCode:  req.ParentCode,
		Title:       req.Title,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// RetitleAccount renames a chart-of-accounts node.
func (h *AccountHandler) RetitleAccount(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req RetitleAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	account, err := h.service.RetitleAccount(c.Request.Context(), id, req.Title)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// ListAccounts returns a page of chart-of-accounts nodes at one level
// within a company and financial year.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		h.BadRequest(c, "Invalid account level")
		return
	}

	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.ListAccounts(c.Request.Context(),
		c.Query("company_code"), c.Query("year_code"), level, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListChildren returns the direct children of a chart-of-accounts node.
func (h *AccountHandler) ListChildren(c *gin.Context) {
	parentCode := c.Query("parent_code")
	if parentCode == "" {
		h.BadRequest(c, "parent_code is required")
		return
	}

	children, err := h.service.ListChildren(c.Request.Context(),
		c.Query("company_code"), c.Query("year_code"), parentCode)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, children)
}

// DeleteAccount removes a chart-of-accounts node. Nodes with children
// cannot be deleted.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateBankAccount registers a bank account in a tenancy scope.
func (h *AccountHandler) CreateBankAccount(c *gin.Context) {
	var req CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	account, err := h.service.CreateBankAccount(c.Request.Context(), appcoding.CreateBankAccountInput{
		CompanyCode:   req.CompanyCode,
		LocationCode:  req.LocationCode,
		YearCode:      req.YearCode,
		BankName:      req.BankName,
		AccountTitle:  req.AccountTitle,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// ListBankAccounts returns a page of bank accounts, optionally scoped
// to one company.
func (h *AccountHandler) ListBankAccounts(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.ListBankAccounts(c.Request.Context(), c.Query("company_code"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteBankAccount removes a bank account.
func (h *AccountHandler) DeleteBankAccount(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.DeleteBankAccount(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateCashAccount registers a cash account in a tenancy scope.
func (h *AccountHandler) CreateCashAccount(c *gin.Context) {
	var req CreateCashAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	account, err := h.service.CreateCashAccount(c.Request.Context(), appcoding.CreateCashAccountInput{
		CompanyCode:  req.CompanyCode,
		LocationCode: req.LocationCode,
		YearCode:     req.YearCode,
		Title:        req.Title,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// ListCashAccounts returns a page of cash accounts, optionally scoped
// to one company.
func (h *AccountHandler) ListCashAccounts(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.ListCashAccounts(c.Request.Context(), c.Query("company_code"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteCashAccount removes a cash account.
func (h *AccountHandler) DeleteCashAccount(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.DeleteCashAccount(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes wires the account endpoints.
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/coding/accounts")
	{
		accounts.POST("", h.CreateAccount)
		accounts.GET("/children", h.ListChildren)
		accounts.GET("/level/:level", h.ListAccounts)
		accounts.PUT("/:id", h.RetitleAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
	}

	banks := rg.Group("/coding/bank-accounts")
	{
		banks.POST("", h.CreateBankAccount)
		banks.GET("", h.ListBankAccounts)
		banks.DELETE("/:id", h.DeleteBankAccount)
	}

	cash := rg.Group("/coding/cash-accounts")
	{
		cash.POST("", h.CreateCashAccount)
		cash.GET("", h.ListCashAccounts)
		cash.DELETE("/:id", h.DeleteCashAccount)
	}
}

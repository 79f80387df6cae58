package handler

import (
	"context"
	"time"

	appcoding "github.com/finbooks/backend/internal/application/coding"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// VoucherHandler handles sales voucher and purchase order HTTP requests
type VoucherHandler struct {
	BaseHandler
	service *appcoding.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(service *appcoding.VoucherService) *VoucherHandler {
	return &VoucherHandler{service: service}
}

// CreateSalesVoucherRequest is the create-sales-voucher request body
type CreateSalesVoucherRequest struct {
	CompanyCode  string          `json:"company_code" binding:"required,max=2"`
	LocationCode string          `json:"location_code" binding:"required,max=2"`
	YearCode     string          `json:"year_code" binding:"required,max=2"`
	VoucherNo    string          `json:"voucher_no" binding:"required,max=30"`
	VoucherDate  string          `json:"voucher_date" binding:"required,datetime=2006-01-02"`
	CustomerName string          `json:"customer_name" binding:"required,max=100"`
	Amount       decimal.Decimal `json:"amount"`
}

// PurchaseOrderLineRequest is one requested order line
type PurchaseOrderLineRequest struct {
	HSCode      string          `json:"hs_code" binding:"required,max=20"`
	Description string          `json:"description" binding:"max=200"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest is the create-purchase-order request body
type CreatePurchaseOrderRequest struct {
	CompanyCode  string                     `json:"company_code" binding:"required,max=2"`
	LocationCode string                     `json:"location_code" binding:"required,max=2"`
	YearCode     string                     `json:"year_code" binding:"required,max=2"`
	OrderNo      string                     `json:"order_no" binding:"required,max=30"`
	OrderDate    string                     `json:"order_date" binding:"required,datetime=2006-01-02"`
	SupplierName string                     `json:"supplier_name" binding:"required,max=100"`
	Lines        []PurchaseOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (req PurchaseOrderLineRequest) input() appcoding.PurchaseOrderLineInput {
	return appcoding.PurchaseOrderLineInput{
		HSCode:      req.HSCode,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	}
}

// CreateSalesVoucher records a sales voucher.
func (h *VoucherHandler) CreateSalesVoucher(c *gin.Context) {
	var req CreateSalesVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	voucherDate, _ := time.Parse("2006-01-02", req.VoucherDate)
	voucher, err := h.service.CreateSalesVoucher(c.Request.Context(), appcoding.CreateSalesVoucherInput{
		CompanyCode:  req.CompanyCode,
		LocationCode: req.LocationCode,
		YearCode:     req.YearCode,
		VoucherNo:    req.VoucherNo,
		VoucherDate:  voucherDate,
		CustomerName: req.CustomerName,
		Amount:       req.Amount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, voucher)
}

// ListSalesVouchers returns a page of sales vouchers, optionally
// scoped to one company.
func (h *VoucherHandler) ListSalesVouchers(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.ListSalesVouchers(c.Request.Context(), c.Query("company_code"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteSalesVoucher removes a sales voucher.
func (h *VoucherHandler) DeleteSalesVoucher(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.DeleteSalesVoucher(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePurchaseOrder records a draft purchase order with its lines.
func (h *VoucherHandler) CreatePurchaseOrder(c *gin.Context) {
	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	lines := make([]appcoding.PurchaseOrderLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = l.input()
	}

	orderDate, _ := time.Parse("2006-01-02", req.OrderDate)
	order, err := h.service.CreatePurchaseOrder(c.Request.Context(), appcoding.CreatePurchaseOrderInput{
		CompanyCode:  req.CompanyCode,
		LocationCode: req.LocationCode,
		YearCode:     req.YearCode,
		OrderNo:      req.OrderNo,
		OrderDate:    orderDate,
		SupplierName: req.SupplierName,
		Lines:        lines,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// GetPurchaseOrder returns one purchase order with its lines.
func (h *VoucherHandler) GetPurchaseOrder(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.service.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ListPurchaseOrders returns a page of purchase orders, optionally
// scoped to one company.
func (h *VoucherHandler) ListPurchaseOrders(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.service.ListPurchaseOrders(c.Request.Context(), c.Query("company_code"), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AddPurchaseOrderLine appends a line to a draft order.
func (h *VoucherHandler) AddPurchaseOrderLine(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	var req PurchaseOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.service.AddPurchaseOrderLine(c.Request.Context(), id, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ConfirmPurchaseOrder moves a draft order to confirmed.
func (h *VoucherHandler) ConfirmPurchaseOrder(c *gin.Context) {
	h.transition(c, h.service.ConfirmPurchaseOrder)
}

// ReceivePurchaseOrder marks a confirmed order as received.
func (h *VoucherHandler) ReceivePurchaseOrder(c *gin.Context) {
	h.transition(c, h.service.ReceivePurchaseOrder)
}

// CancelPurchaseOrder cancels an order that has not been received.
func (h *VoucherHandler) CancelPurchaseOrder(c *gin.Context) {
	h.transition(c, h.service.CancelPurchaseOrder)
}

func (h *VoucherHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (*appcoding.PurchaseOrderDTO, error)) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// DeletePurchaseOrder removes an order and its lines.
func (h *VoucherHandler) DeletePurchaseOrder(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.service.DeletePurchaseOrder(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes wires the voucher and purchase order endpoints.
func (h *VoucherHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vouchers := rg.Group("/coding/sales-vouchers")
	{
		vouchers.POST("", h.CreateSalesVoucher)
		vouchers.GET("", h.ListSalesVouchers)
		vouchers.DELETE("/:id", h.DeleteSalesVoucher)
	}

	orders := rg.Group("/coding/purchase-orders")
	{
		orders.POST("", h.CreatePurchaseOrder)
		orders.GET("", h.ListPurchaseOrders)
		orders.GET("/:id", h.GetPurchaseOrder)
		orders.POST("/:id/lines", h.AddPurchaseOrderLine)
		orders.POST("/:id/confirm", h.ConfirmPurchaseOrder)
		orders.POST("/:id/receive", h.ReceivePurchaseOrder)
		orders.POST("/:id/cancel", h.CancelPurchaseOrder)
		orders.DELETE("/:id", h.DeletePurchaseOrder)
	}
}

package coding

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/coding"
	"github.com/finbooks/backend/internal/domain/shared"
)

// VoucherService handles sales vouchers and purchase orders
type VoucherService struct {
	voucherRepo coding.SalesVoucherRepository
	orderRepo   coding.PurchaseOrderRepository
	logger      *zap.Logger
}

// NewVoucherService creates a new voucher service
func NewVoucherService(
	voucherRepo coding.SalesVoucherRepository,
	orderRepo coding.PurchaseOrderRepository,
	logger *zap.Logger,
) *VoucherService {
	return &VoucherService{
		voucherRepo: voucherRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// CreateSalesVoucherInput contains input for recording a sales voucher
type CreateSalesVoucherInput struct {
	CompanyCode  string
	LocationCode string
	YearCode     string
	VoucherNo    string
	VoucherDate  time.Time
	CustomerName string
	Amount       decimal.Decimal
}

// CreateSalesVoucher records a new sales voucher
func (s *VoucherService) CreateSalesVoucher(ctx context.Context, input CreateSalesVoucherInput) (*SalesVoucherDTO, error) {
	voucher, err := coding.NewSalesVoucher(input.CompanyCode, input.LocationCode, input.YearCode,
		input.VoucherNo, input.VoucherDate, input.CustomerName, input.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		s.logger.Error("failed to create sales voucher",
			zap.String("voucher_no", input.VoucherNo), zap.Error(err))
		return nil, err
	}

	s.logger.Info("sales voucher recorded",
		zap.String("voucher_no", voucher.VoucherNo),
		zap.String("amount", voucher.Amount.String()))
	return toSalesVoucherDTO(voucher), nil
}

// ListSalesVouchers returns the company's sales vouchers with pagination
func (s *VoucherService) ListSalesVouchers(ctx context.Context, companyCode string, filter shared.Filter) (*ListResult[*SalesVoucherDTO], error) {
	filter.Normalize()
	vouchers, total, err := s.voucherRepo.FindByCompany(ctx, companyCode, filter)
	if err != nil {
		s.logger.Error("failed to list sales vouchers", zap.Error(err))
		return nil, err
	}

	dtos := make([]*SalesVoucherDTO, len(vouchers))
	for i, v := range vouchers {
		dtos[i] = toSalesVoucherDTO(v)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// DeleteSalesVoucher deletes a sales voucher by ID
func (s *VoucherService) DeleteSalesVoucher(ctx context.Context, id string) error {
	return s.voucherRepo.Delete(ctx, id)
}

// PurchaseOrderLineInput is one requested order line
type PurchaseOrderLineInput struct {
	HSCode      string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// CreatePurchaseOrderInput contains input for creating a purchase order
type CreatePurchaseOrderInput struct {
	CompanyCode  string
	LocationCode string
	YearCode     string
	OrderNo      string
	OrderDate    time.Time
	SupplierName string
	Lines        []PurchaseOrderLineInput
}

// CreatePurchaseOrder creates a new draft purchase order
func (s *VoucherService) CreatePurchaseOrder(ctx context.Context, input CreatePurchaseOrderInput) (*PurchaseOrderDTO, error) {
	lines := make([]coding.PurchaseOrderLine, len(input.Lines))
	for i, l := range input.Lines {
		lines[i] = coding.PurchaseOrderLine{
			HSCode:      l.HSCode,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		}
	}

	order, err := coding.NewPurchaseOrder(input.CompanyCode, input.LocationCode, input.YearCode,
		input.OrderNo, input.OrderDate, input.SupplierName, lines)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("failed to create purchase order",
			zap.String("order_no", input.OrderNo), zap.Error(err))
		return nil, err
	}

	s.logger.Info("purchase order created",
		zap.String("order_no", order.OrderNo),
		zap.String("total", order.Total().String()))
	return toPurchaseOrderDTO(order), nil
}

// GetPurchaseOrder returns a purchase order by ID
func (s *VoucherService) GetPurchaseOrder(ctx context.Context, id string) (*PurchaseOrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderDTO(order), nil
}

// ListPurchaseOrders returns the company's purchase orders with pagination
func (s *VoucherService) ListPurchaseOrders(ctx context.Context, companyCode string, filter shared.Filter) (*ListResult[*PurchaseOrderDTO], error) {
	filter.Normalize()
	orders, total, err := s.orderRepo.FindByCompany(ctx, companyCode, filter)
	if err != nil {
		s.logger.Error("failed to list purchase orders", zap.Error(err))
		return nil, err
	}

	dtos := make([]*PurchaseOrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = toPurchaseOrderDTO(o)
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// AddPurchaseOrderLine appends a line to a draft order
func (s *VoucherService) AddPurchaseOrderLine(ctx context.Context, id string, input PurchaseOrderLineInput) (*PurchaseOrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = order.AddLine(coding.PurchaseOrderLine{
		HSCode:      input.HSCode,
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
	})
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toPurchaseOrderDTO(order), nil
}

// ConfirmPurchaseOrder moves a draft order to confirmed
func (s *VoucherService) ConfirmPurchaseOrder(ctx context.Context, id string) (*PurchaseOrderDTO, error) {
	return s.transitionOrder(ctx, id, (*coding.PurchaseOrder).Confirm)
}

// ReceivePurchaseOrder marks a confirmed order as received
func (s *VoucherService) ReceivePurchaseOrder(ctx context.Context, id string) (*PurchaseOrderDTO, error) {
	return s.transitionOrder(ctx, id, (*coding.PurchaseOrder).MarkReceived)
}

// CancelPurchaseOrder cancels an order that has not been received
func (s *VoucherService) CancelPurchaseOrder(ctx context.Context, id string) (*PurchaseOrderDTO, error) {
	return s.transitionOrder(ctx, id, (*coding.PurchaseOrder).Cancel)
}

func (s *VoucherService) transitionOrder(ctx context.Context, id string, transition func(*coding.PurchaseOrder) error) (*PurchaseOrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := transition(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("failed to update purchase order",
			zap.String("order_no", order.OrderNo), zap.Error(err))
		return nil, err
	}

	s.logger.Info("purchase order status changed",
		zap.String("order_no", order.OrderNo),
		zap.String("status", string(order.Status)))
	return toPurchaseOrderDTO(order), nil
}

// DeletePurchaseOrder deletes a purchase order by ID
func (s *VoucherService) DeletePurchaseOrder(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

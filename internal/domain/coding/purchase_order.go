package coding

import (
	"strings"
	"time"

	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus tracks a purchase order through its lifecycle.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderConfirmed PurchaseOrderStatus = "confirmed"
	PurchaseOrderReceived  PurchaseOrderStatus = "received"
	PurchaseOrderCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrderLine is one item line on a purchase order.
type PurchaseOrderLine struct {
	HSCode      string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Total is quantity times unit price.
func (l PurchaseOrderLine) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// PurchaseOrder is an order placed with a supplier within a tenancy
// scope. Line amounts are decimals; the order total is always derived,
// never stored independently of the lines.
type PurchaseOrder struct {
	shared.BaseEntity
	CompanyCode  string
	LocationCode string
	YearCode     string
	OrderNo      string
	OrderDate    time.Time
	SupplierName string
	Status       PurchaseOrderStatus
	Lines        []PurchaseOrderLine
}

// NewPurchaseOrder creates a draft purchase order with at least one line.
func NewPurchaseOrder(companyCode, locationCode, yearCode, orderNo string, orderDate time.Time, supplierName string, lines []PurchaseOrderLine) (*PurchaseOrder, error) {
	if companyCode == "" || locationCode == "" || yearCode == "" {
		return nil, shared.NewDomainError("INVALID_SCOPE", "Company, location and financial year codes are required")
	}
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order number is required")
	}
	supplierName = strings.TrimSpace(supplierName)
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_ORDER", "Supplier name is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Purchase order must have at least one line")
	}
	for _, l := range lines {
		if err := validateLine(l); err != nil {
			return nil, err
		}
	}

	return &PurchaseOrder{
		BaseEntity:   shared.NewBaseEntity(),
		CompanyCode:  companyCode,
		LocationCode: locationCode,
		YearCode:     yearCode,
		OrderNo:      orderNo,
		OrderDate:    orderDate,
		SupplierName: supplierName,
		Status:       PurchaseOrderDraft,
		Lines:        lines,
	}, nil
}

// AddLine appends a line to a draft order.
func (po *PurchaseOrder) AddLine(line PurchaseOrderLine) error {
	if po.Status != PurchaseOrderDraft {
		return shared.NewDomainError("INVALID_STATE", "Lines can only be added to a draft order")
	}
	if err := validateLine(line); err != nil {
		return err
	}
	po.Lines = append(po.Lines, line)
	return nil
}

// Total sums the line totals.
func (po *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range po.Lines {
		total = total.Add(l.Total())
	}
	return total
}

// Confirm moves a draft order to confirmed.
func (po *PurchaseOrder) Confirm() error {
	if po.Status != PurchaseOrderDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft orders can be confirmed")
	}
	po.Status = PurchaseOrderConfirmed
	return nil
}

// MarkReceived moves a confirmed order to received.
func (po *PurchaseOrder) MarkReceived() error {
	if po.Status != PurchaseOrderConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Only confirmed orders can be received")
	}
	po.Status = PurchaseOrderReceived
	return nil
}

// Cancel cancels an order that has not been received.
func (po *PurchaseOrder) Cancel() error {
	if po.Status == PurchaseOrderReceived {
		return shared.NewDomainError("INVALID_STATE", "Received orders cannot be cancelled")
	}
	if po.Status == PurchaseOrderCancelled {
		return shared.NewDomainError("INVALID_STATE", "Order is already cancelled")
	}
	po.Status = PurchaseOrderCancelled
	return nil
}

func validateLine(l PurchaseOrderLine) error {
	if strings.TrimSpace(l.HSCode) == "" {
		return shared.NewDomainError("INVALID_ORDER_LINE", "Line HS code is required")
	}
	if !l.Quantity.IsPositive() {
		return shared.NewDomainError("INVALID_ORDER_LINE", "Line quantity must be positive")
	}
	if l.UnitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_ORDER_LINE", "Line unit price cannot be negative")
	}
	return nil
}

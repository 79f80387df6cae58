package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// CompanySortFields contains allowed sort fields for companies
var CompanySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"city":       true,
	"is_active":  true,
}

// LocationSortFields contains allowed sort fields for locations
var LocationSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"company_code": true,
	"code":         true,
	"name":         true,
	"is_default":   true,
	"is_active":    true,
}

// FinancialYearSortFields contains allowed sort fields for financial years
var FinancialYearSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"company_code": true,
	"code":         true,
	"title":        true,
	"start_date":   true,
	"end_date":     true,
	"is_default":   true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"username":     true,
	"full_name":    true,
	"role":         true,
	"company_code": true,
	"is_allowed":   true,
}

// ItemCodeSortFields contains allowed sort fields for item description codes
var ItemCodeSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"hs_code":     true,
	"description": true,
}

// PurchaseOrderSortFields contains allowed sort fields for purchase orders
var PurchaseOrderSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"order_no":      true,
	"order_date":    true,
	"supplier_name": true,
	"status":        true,
}

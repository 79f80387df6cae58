// Package refguard implements the pre-delete dependency scan that keeps
// soft foreign keys honest. Parents (companies, locations, financial
// years) may only be deleted when no dependent record still references
// their natural key; dependents register a count query per kind at
// startup, so the catalogue is checked at compile time instead of being
// a list of model-name strings.
package refguard

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/finbooks/backend/internal/domain/shared"
)

// ParentKind identifies which parent entity a dependent is registered
// against.
type ParentKind string

const (
	ParentCompany       ParentKind = "company"
	ParentLocation      ParentKind = "location"
	ParentFinancialYear ParentKind = "financial_year"
)

// Key carries the natural key of the entity being deleted. CompanyCode
// is always set; LocationCode and YearCode are set for their respective
// parent kinds. Count queries must match on every populated field
// simultaneously, never on CompanyCode alone.
type Key struct {
	CompanyCode  string
	LocationCode string
	YearCode     string
}

// Fields lists the populated natural key field names, for reporting.
func (k Key) Fields() []string {
	fields := []string{"company_code"}
	if k.LocationCode != "" {
		fields = append(fields, "location_code")
	}
	if k.YearCode != "" {
		fields = append(fields, "year_code")
	}
	return fields
}

// CountFunc counts the dependent records of one kind that reference the
// given natural key.
type CountFunc func(ctx context.Context, key Key) (int64, error)

// Dependent is one registered dependent kind.
type Dependent struct {
	Kind  string
	Count CountFunc
}

// Registry holds the dependent catalogue per parent kind. Registration
// happens once at startup; scans are concurrent-safe afterwards.
type Registry struct {
	mu         sync.RWMutex
	dependents map[ParentKind][]Dependent
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		dependents: make(map[ParentKind][]Dependent),
	}
}

// Register adds a dependent kind under a parent. Registering the same
// kind twice for one parent panics: that is always a wiring bug.
func (r *Registry) Register(parent ParentKind, kind string, count CountFunc) {
	if kind == "" || count == nil {
		panic("refguard: dependent kind and count func are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.dependents[parent] {
		if d.Kind == kind {
			panic(fmt.Sprintf("refguard: %q already registered for parent %q", kind, parent))
		}
	}
	r.dependents[parent] = append(r.dependents[parent], Dependent{Kind: kind, Count: count})
}

// Kinds returns the registered dependent kinds for a parent, sorted.
func (r *Registry) Kinds(parent ParentKind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.dependents[parent]))
	for _, d := range r.dependents[parent] {
		kinds = append(kinds, d.Kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Scan counts references to the key across every dependent kind
// registered for the parent and returns the kinds with a non-zero
// count. A failing count query fails the whole scan: skipping a kind
// would let a guarded delete proceed on incomplete information.
func (r *Registry) Scan(ctx context.Context, parent ParentKind, key Key) ([]shared.Reference, error) {
	r.mu.RLock()
	dependents := r.dependents[parent]
	r.mu.RUnlock()

	var refs []shared.Reference
	for _, d := range dependents {
		count, err := d.Count(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("refguard: counting %s references for %s: %w", d.Kind, parent, err)
		}
		if count > 0 {
			refs = append(refs, shared.Reference{
				Kind:          d.Kind,
				Count:         count,
				MatchedFields: key.Fields(),
			})
		}
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Kind < refs[j].Kind })
	return refs, nil
}

// Check runs Scan and converts a non-empty report into a
// ReferenceConflictError for the named entity.
func (r *Registry) Check(ctx context.Context, parent ParentKind, entity string, key Key) error {
	refs, err := r.Scan(ctx, parent, key)
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		return shared.NewReferenceConflictError(entity, refs)
	}
	return nil
}

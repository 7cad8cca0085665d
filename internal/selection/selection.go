// Package selection is the view-model behind the product table: which
// products are ticked, which page is visible, and which status filter is
// applied. It is pure state-transition code with no rendering or transport
// dependency.
package selection

import "github.com/Raghav-rv28/variable-pricing/internal/domain"

// Scope controls what "select all" operates on
type Scope string

const (
	// ScopePage selects or clears only the identifiers visible on the
	// current page
	ScopePage Scope = "page"
	// ScopeCollection selects or clears the whole filtered set
	ScopeCollection Scope = "collection"
)

// State holds the selection, filter and pagination state for one loaded
// product list
type State struct {
	products     []domain.Product
	selected     map[string]struct{}
	scope        Scope
	statusFilter map[domain.ProductStatus]struct{}
	page         int
	pageSize     int
}

// New creates an empty state with the given page size
func New(pageSize int) *State {
	if pageSize < 1 {
		pageSize = 50
	}
	return &State{
		selected:     make(map[string]struct{}),
		scope:        ScopePage,
		statusFilter: make(map[domain.ProductStatus]struct{}),
		page:         1,
		pageSize:     pageSize,
	}
}

// SetProducts replaces the loaded product list. A fresh fetch (collection or
// search change) invalidates the whole selection and returns to page 1.
func (s *State) SetProducts(products []domain.Product) {
	s.products = products
	s.selected = make(map[string]struct{})
	s.page = 1
}

// SetStatusFilter replaces the status filter. An empty filter means no
// filtering. Re-applying the same filter is a no-op on the filtered result.
func (s *State) SetStatusFilter(statuses []domain.ProductStatus) {
	s.statusFilter = make(map[domain.ProductStatus]struct{}, len(statuses))
	for _, st := range statuses {
		s.statusFilter[st] = struct{}{}
	}
	s.clampPage()
}

// SetScope switches between page and collection select-all semantics. The
// all-selected indicator is scope-dependent and must be recomputed by the
// caller via AllSelected.
func (s *State) SetScope(scope Scope) {
	s.scope = scope
}

// Scope returns the current select-all scope
func (s *State) Scope() Scope {
	return s.scope
}

// Filtered returns the products passing the status filter, before pagination
func (s *State) Filtered() []domain.Product {
	if len(s.statusFilter) == 0 {
		return s.products
	}
	filtered := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := s.statusFilter[p.Status]; ok {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Page returns the current page slice of the filtered products
func (s *State) Page() []domain.Product {
	filtered := s.Filtered()
	start := (s.page - 1) * s.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// PageNumber returns the current 1-based page number
func (s *State) PageNumber() int {
	return s.page
}

// TotalPages returns the page count of the filtered set
func (s *State) TotalPages() int {
	n := len(s.Filtered())
	if n == 0 {
		return 1
	}
	return (n + s.pageSize - 1) / s.pageSize
}

// NextPage advances to the next page if there is one
func (s *State) NextPage() {
	if s.page < s.TotalPages() {
		s.page++
	}
}

// PrevPage moves back one page if possible
func (s *State) PrevPage() {
	if s.page > 1 {
		s.page--
	}
}

func (s *State) clampPage() {
	if total := s.TotalPages(); s.page > total {
		s.page = total
	}
}

// Select adds or removes a single product from the selection
func (s *State) Select(productID string, selected bool) {
	if selected {
		s.selected[productID] = struct{}{}
	} else {
		delete(s.selected, productID)
	}
}

// SelectAll selects everything in scope: the visible page in page scope, the
// whole filtered set in collection scope
func (s *State) SelectAll() {
	var scoped []domain.Product
	if s.scope == ScopePage {
		scoped = s.Page()
	} else {
		scoped = s.Filtered()
	}
	for _, p := range scoped {
		s.selected[p.ID] = struct{}{}
	}
}

// ClearAll deselects everything in scope. In page scope only the visible
// page's identifiers are removed; selections on other pages survive.
func (s *State) ClearAll() {
	if s.scope == ScopePage {
		for _, p := range s.Page() {
			delete(s.selected, p.ID)
		}
		return
	}
	s.selected = make(map[string]struct{})
}

// AllSelected reports whether everything in the current scope is selected
func (s *State) AllSelected() bool {
	var scoped []domain.Product
	if s.scope == ScopePage {
		scoped = s.Page()
	} else {
		scoped = s.Filtered()
	}
	if len(scoped) == 0 {
		return false
	}
	for _, p := range scoped {
		if _, ok := s.selected[p.ID]; !ok {
			return false
		}
	}
	return true
}

// SelectedCount returns the number of selected product identifiers
func (s *State) SelectedCount() int {
	return len(s.selected)
}

// IsSelected reports whether a product is in the selection
func (s *State) IsSelected(productID string) bool {
	_, ok := s.selected[productID]
	return ok
}

// SelectedProducts returns the selected products out of the filtered set, in
// list order. These are what the bulk updater receives.
func (s *State) SelectedProducts() []domain.Product {
	out := make([]domain.Product, 0, len(s.selected))
	for _, p := range s.Filtered() {
		if _, ok := s.selected[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

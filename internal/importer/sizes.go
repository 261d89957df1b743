package importer

import "context"

// SizeRegistry memoizes size resolution for one import run so repeated
// labels hit storage once. 10", 10'' and 10 all resolve to the same row
// because quote characters are stripped before lookup.
type SizeRegistry struct {
	store     Store
	companyID uint
	cache     map[string]uint
	resolved  []ImportRecord
}

func NewSizeRegistry(store Store, companyID uint) *SizeRegistry {
	return &SizeRegistry{
		store:     store,
		companyID: companyID,
		cache:     make(map[string]uint),
	}
}

// Resolve maps a raw header label to a size ID, creating the size on first
// sight. A blank label resolves to nil without error.
func (r *SizeRegistry) Resolve(ctx context.Context, rawLabel string) (*uint, error) {
	code := stripQuotes(rawLabel)
	if code == "" {
		return nil, nil
	}
	if id, ok := r.cache[code]; ok {
		return &id, nil
	}
	id, err := r.store.EnsureSize(ctx, r.companyID, code, code)
	if err != nil {
		return nil, err
	}
	r.cache[code] = id
	r.resolved = append(r.resolved, ImportRecord{ID: id, Name: code})
	return &id, nil
}

// Resolved lists the sizes this run touched, in first-seen order.
func (r *SizeRegistry) Resolved() []ImportRecord {
	return r.resolved
}

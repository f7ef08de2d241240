package store

import (
	"sync"

	"github.com/madhupandey29/shofy-storefront/models"
)

// FacetStore holds the shop page's selected facet values. Facets never
// interact: toggling one never alters another's selection, even where one is
// conceptually a sub-facet of another. All mutation goes through Toggle and
// Clear; each emits the new selection to the listener. The listener runs
// under the store's lock so emissions arrive in mutation order; it must not
// call back into the store.
type FacetStore struct {
	mu       sync.Mutex
	selected models.FacetSelection
	onChange func(models.FacetSelection)
}

// NewFacetStore creates an empty store. onChange may be nil.
func NewFacetStore(onChange func(models.FacetSelection)) *FacetStore {
	return &FacetStore{
		selected: models.FacetSelection{},
		onChange: onChange,
	}
}

// Toggle removes value from the facet's selection when present, appends it
// otherwise, and returns the resulting selection.
func (f *FacetStore) Toggle(key, value string) models.FacetSelection {
	f.mu.Lock()
	cur := f.selected[key]
	next := make([]string, 0, len(cur)+1)
	found := false
	for _, v := range cur {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, value)
	}
	f.selected[key] = next
	snap := f.snapshotLocked()
	f.emitLocked(snap)
	f.mu.Unlock()
	return snap
}

// Clear removes the facet key entirely. Downstream filtering must treat the
// missing key exactly like an empty set.
func (f *FacetStore) Clear(key string) models.FacetSelection {
	f.mu.Lock()
	delete(f.selected, key)
	snap := f.snapshotLocked()
	f.emitLocked(snap)
	f.mu.Unlock()
	return snap
}

// Selection returns a copy of the current selection.
func (f *FacetStore) Selection() models.FacetSelection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Has reports whether the facet key is physically present, which is how
// consumers distinguish "never touched" from "explicitly cleared".
func (f *FacetStore) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.selected[key]
	return ok
}

func (f *FacetStore) snapshotLocked() models.FacetSelection {
	snap := make(models.FacetSelection, len(f.selected))
	for k, vs := range f.selected {
		cp := make([]string, len(vs))
		copy(cp, vs)
		snap[k] = cp
	}
	return snap
}

func (f *FacetStore) emitLocked(snap models.FacetSelection) {
	if f.onChange != nil {
		f.onChange(snap)
	}
}

package store

import (
	"sync"

	"github.com/madhupandey29/shofy-storefront/models"
	"github.com/madhupandey29/shofy-storefront/normalize"
)

// The three cross-component UI flags live here as explicit state machines.
// Components read them and drive them only through the defined operations;
// there is no other way to mutate the flags.

// ModalState is the quick-view modal's visible state. Nonce increments on
// every Open so consumers can tell "reopened with the same product" from
// "nothing changed".
type ModalState struct {
	Open    bool            `json:"open"`
	Product *models.Product `json:"product,omitempty"`
	Nonce   uint64          `json:"nonce"`
}

// ProductModal holds the quick-view flag plus the selected product,
// normalized on the way in.
type ProductModal struct {
	mu    sync.Mutex
	state ModalState
}

func NewProductModal() *ProductModal {
	return &ProductModal{}
}

// Open selects a raw catalog record and shows the modal. The record is
// normalized immediately; malformed input still opens, with whatever fields
// survived.
func (m *ProductModal) Open(raw normalize.Raw) ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Open = true
	m.state.Product = normalize.Normalize(raw)
	m.state.Nonce++
	return m.state
}

func (m *ProductModal) Close() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Open = false
	m.state.Product = nil
	return m.state
}

func (m *ProductModal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// OverlayState is the global search overlay's visible state.
type OverlayState struct {
	Open  bool   `json:"open"`
	Query string `json:"query"`
}

// SearchOverlay holds the overlay flag and the raw (pre-debounce) query
// string.
type SearchOverlay struct {
	mu    sync.Mutex
	state OverlayState
}

func NewSearchOverlay() *SearchOverlay {
	return &SearchOverlay{}
}

func (o *SearchOverlay) Open() OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Open = true
	return o.state
}

// Close hides the overlay and drops the query, so reopening starts blank.
func (o *SearchOverlay) Close() OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = OverlayState{}
	return o.state
}

func (o *SearchOverlay) SetQuery(q string) OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Open = true
	o.state.Query = q
	return o.state
}

func (o *SearchOverlay) State() OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// FilterSidebar is the shop filter drawer's open flag.
type FilterSidebar struct {
	mu   sync.Mutex
	open bool
}

func NewFilterSidebar() *FilterSidebar {
	return &FilterSidebar{}
}

func (s *FilterSidebar) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	return s.open
}

func (s *FilterSidebar) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	return s.open
}

func (s *FilterSidebar) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

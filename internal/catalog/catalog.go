package catalog

import "sort"

// Product represents one catalog entry. The catalog is keyed by the string
// `id` (the dataset's SKU). JSON tags follow the snake_case names used by the
// exported dataset so the same file can be loaded unchanged.
type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	ImageURL *string `json:"image_url,omitempty"`
	// Price is in whole rupees. Zero means "price unknown" — the dataset uses
	// 0 as the sentinel for a missing price, so consumers must never render a
	// zero price as ₹0.
	Price    int      `json:"price"`
	Gender   string   `json:"gender,omitempty"`
	Colors   []string `json:"colors,omitempty"`
	Style    []string `json:"style,omitempty"`
	Occasion []string `json:"occasion,omitempty"`
	Season   []string `json:"season,omitempty"`
}

// Store is an immutable catalog snapshot: a lookup table keyed by product id
// plus a stable iteration order. Build a new Store instead of mutating one.
type Store struct {
	byID  map[string]Product
	order []string
}

// NewStore builds a snapshot from the given products, preserving their order.
// Later duplicates of the same id overwrite earlier ones.
func NewStore(products []Product) *Store {
	s := &Store{
		byID:  make(map[string]Product, len(products)),
		order: make([]string, 0, len(products)),
	}
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if _, exists := s.byID[p.ID]; !exists {
			s.order = append(s.order, p.ID)
		}
		s.byID[p.ID] = p
	}
	return s
}

// NewStoreFromMap builds a snapshot from an id-keyed map (the shape of the
// exported products.json). Map iteration order is not stable, so ids are
// sorted to make the snapshot order deterministic for a fixed catalog.
func NewStoreFromMap(products map[string]Product) *Store {
	ids := make([]string, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ordered := make([]Product, 0, len(ids))
	for _, id := range ids {
		p := products[id]
		if p.ID == "" {
			p.ID = id
		}
		ordered = append(ordered, p)
	}
	return NewStore(ordered)
}

// Get looks up a product by id.
func (s *Store) Get(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// List returns all products in the snapshot's stable order.
func (s *Store) List() []Product {
	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len reports the number of products in the snapshot.
func (s *Store) Len() int {
	return len(s.order)
}

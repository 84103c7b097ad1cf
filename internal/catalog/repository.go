package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Repository loads the full catalog from its backing source. The service
// calls Load once at startup and again on an explicit reload.
type Repository interface {
	Load() (*Store, error)
}

// StaticRepository serves a fixed seed list. Useful for tests and as the
// fallback when no catalog file or database is configured.
type StaticRepository struct {
	seed []Product
}

func NewStaticRepository(seed []Product) *StaticRepository {
	return &StaticRepository{seed: seed}
}

func (r *StaticRepository) Load() (*Store, error) {
	return NewStore(r.seed), nil
}

// FileRepository reads an id-keyed JSON object of products (the shape
// produced by the dataset export).
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load() (*Store, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products map[string]Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", r.path, err)
	}
	return NewStoreFromMap(products), nil
}

// DefaultSeed is a small built-in catalog used when no external source is
// configured, so the API works out of the box in local development.
func DefaultSeed() []Product {
	img := func(s string) *string { return &s }
	return []Product{
		{ID: "sku-1001", Title: "Classic Crew Tee", Brand: "Arrowline", Category: "top", Price: 499, ImageURL: img("/products/classic-crew-tee.jpg"), Gender: "unisex", Colors: []string{"neutral"}, Style: []string{"casual"}, Occasion: []string{"casual"}, Season: []string{"all"}},
		{ID: "sku-1002", Title: "Slim Fit Chinos", Brand: "Arrowline", Category: "bottom", Price: 1299, ImageURL: img("/products/slim-fit-chinos.jpg"), Gender: "unisex", Colors: []string{"neutral"}, Style: []string{"casual"}, Occasion: []string{"casual"}, Season: []string{"all"}},
		{ID: "sku-1003", Title: "Court Low Sneakers", Brand: "Stride", Category: "footwear", Price: 2499, ImageURL: img("/products/court-low-sneakers.jpg"), Gender: "unisex", Colors: []string{"neutral"}, Style: []string{"casual"}, Occasion: []string{"casual"}, Season: []string{"all"}},
		{ID: "sku-1004", Title: "Canvas Belt", Brand: "Stride", Category: "accessory", Price: 399, ImageURL: img("/products/canvas-belt.jpg"), Gender: "unisex", Colors: []string{"neutral"}, Style: []string{"casual"}, Occasion: []string{"casual"}, Season: []string{"all"}},
		{ID: "sku-1005", Title: "Sneaker Cleaner Spray", Brand: "Stride", Category: "footwear", Price: 299, ImageURL: img("/products/cleaner-spray.jpg"), Gender: "unisex", Colors: []string{"neutral"}, Style: []string{"casual"}, Occasion: []string{"casual"}, Season: []string{"all"}},
	}
}

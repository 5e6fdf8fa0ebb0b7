// Package seed provides the dataset the in-memory stores start from.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"simusmart/internal/model"
)

//go:embed default.json
var defaultDataset []byte

// Dataset is the initial content of every store.
type Dataset struct {
	Categories []model.Category    `json:"categories"`
	Products   []model.Product     `json:"products"`
	Orders     []model.Order       `json:"orders"`
	Reviews    []model.Review      `json:"reviews"`
	Settings   model.StoreSettings `json:"settings"`
}

// Loader defines the interface for loading a dataset.
type Loader interface {
	// Load reads the dataset at path. An empty path selects the embedded default.
	Load(ctx context.Context, path string) (*Dataset, error)
}

// Default returns the embedded default dataset.
func Default() (*Dataset, error) {
	ds, err := decode(bytes.NewReader(defaultDataset))
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded dataset: %w", err)
	}
	return ds, nil
}

// Validate checks the invariants the stores rely on: unique ids per
// collection and ratings within bounds.
func (d *Dataset) Validate() error {
	if err := uniqueIDs("category", len(d.Categories), func(i int) string { return d.Categories[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("product", len(d.Products), func(i int) string { return d.Products[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("order", len(d.Orders), func(i int) string { return d.Orders[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("review", len(d.Reviews), func(i int) string { return d.Reviews[i].ID }); err != nil {
		return err
	}

	for _, r := range d.Reviews {
		if r.Rating < model.MinRating || r.Rating > model.MaxRating {
			return fmt.Errorf("review %s: rating %d out of range", r.ID, r.Rating)
		}
	}

	for _, p := range d.Products {
		if p.Price < 0 || p.Stock < 0 {
			return fmt.Errorf("product %s: price and stock must not be negative", p.ID)
		}
	}

	return nil
}

func uniqueIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf("%s at index %d has no id", kind, i)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("duplicate %s id %q", kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

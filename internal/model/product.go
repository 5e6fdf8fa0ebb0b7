package model

// Product represents an item in the storefront catalogue.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Price is in minor currency units.
	Price int64 `json:"price"`

	ImageURLs   []string `json:"imageUrls"`
	Category    string   `json:"category"`
	Colors      []string `json:"colors"`
	Stock       int      `json:"stock"`
	Description string   `json:"description"`
}

// PrimaryImage returns the first image URL, or "" when there is none.
func (p Product) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.ImageURLs = cloneStrings(p.ImageURLs)
	p.Colors = cloneStrings(p.Colors)
	return p
}

// ProductFilter narrows a product listing. Zero values match everything.
type ProductFilter struct {
	// Query is matched case-insensitively as a substring of the name.
	Query string
	// Category must equal the product's category name exactly.
	Category string
}

// Category represents a product category. Products reference categories
// by Name, not by ID.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

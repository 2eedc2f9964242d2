package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MultilingualText holds the same text in the four storefront languages.
// Lookup fallback order is defined by Resolve.
type MultilingualText struct {
	NL string `json:"nl"`
	FR string `json:"fr"`
	EN string `json:"en"`
	TR string `json:"tr"`
}

// Resolve returns the text for the given language, falling back to English,
// then Dutch, then the empty string.
func (t MultilingualText) Resolve(lang string) string {
	if s := t.field(lang); s != "" {
		return s
	}
	if t.EN != "" {
		return t.EN
	}
	if t.NL != "" {
		return t.NL
	}
	return ""
}

func (t MultilingualText) field(lang string) string {
	switch lang {
	case "nl":
		return t.NL
	case "fr":
		return t.FR
	case "en":
		return t.EN
	case "tr":
		return t.TR
	default:
		return ""
	}
}

// Category represents a product category in the catalog.
type Category struct {
	ID          string           `json:"id"`
	Name        MultilingualText `json:"name"`
	Description MultilingualText `json:"description"`
	Image       string           `json:"image,omitempty"`
	ParentID    string           `json:"parent_id,omitempty"`
	IsActive    bool             `json:"is_active"`
	SortOrder   int              `json:"sort_order"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Product represents a catalog product. The cart holds products by value;
// the backend owns the canonical record.
type Product struct {
	ID             string            `json:"id"`
	Name           MultilingualText  `json:"name"`
	Description    MultilingualText  `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock"`
	SKU            string            `json:"sku"`
	CategoryID     string            `json:"category_id"`
	Images         []string          `json:"images"`
	IsActive       bool              `json:"is_active"`
	Unit           string            `json:"unit"`
	Brand          string            `json:"brand"`
	Specifications map[string]string `json:"specifications"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// InStock reports whether the product has remaining stock.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// LocalizedProduct is a product with its multilingual fields resolved to a
// single language, as served to the storefront UI.
type LocalizedProduct struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock"`
	SKU            string            `json:"sku"`
	CategoryID     string            `json:"category_id"`
	Images         []string          `json:"images"`
	IsActive       bool              `json:"is_active"`
	Unit           string            `json:"unit"`
	Brand          string            `json:"brand"`
	Specifications map[string]string `json:"specifications"`
}

// Localize resolves the product's multilingual fields for the given language.
func (p Product) Localize(lang string) LocalizedProduct {
	return LocalizedProduct{
		ID:             p.ID,
		Name:           p.Name.Resolve(lang),
		Description:    p.Description.Resolve(lang),
		Price:          p.Price,
		Stock:          p.Stock,
		SKU:            p.SKU,
		CategoryID:     p.CategoryID,
		Images:         p.Images,
		IsActive:       p.IsActive,
		Unit:           p.Unit,
		Brand:          p.Brand,
		Specifications: p.Specifications,
	}
}

// LocalizedCategory is a category with its multilingual fields resolved.
type LocalizedCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// Localize resolves the category's multilingual fields for the given language.
func (c Category) Localize(lang string) LocalizedCategory {
	return LocalizedCategory{
		ID:          c.ID,
		Name:        c.Name.Resolve(lang),
		Description: c.Description.Resolve(lang),
		Image:       c.Image,
		ParentID:    c.ParentID,
		IsActive:    c.IsActive,
		SortOrder:   c.SortOrder,
	}
}

package domain

import (
	"math"
	"strings"
)

// CategoryRef is the category summary embedded in every product read.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is an item for sale that belongs to exactly one category.
//
// CategoryID is the foreign key used on writes. Category is populated by
// the store on every read and is what callers expose to clients.
type Product struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Price      float64     `json:"price"`
	CategoryID int64       `json:"-"`
	Category   CategoryRef `json:"category"`
}

// NewProduct creates a Product for insertion after validating its fields.
func NewProduct(name string, price float64, categoryID int64) (*Product, error) {
	p := &Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the fields required to create a product.
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", MsgNameRequired)
	}
	if err := ValidatePrice(p.Price); err != nil {
		return err
	}
	if p.CategoryID == 0 {
		return NewValidationError("categoryId", MsgCategoryIDRequired)
	}
	return nil
}

// ValidatePrice rejects negative and non-finite prices.
func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return NewValidationError("price", MsgPriceInvalid)
	}
	return nil
}

// ProductPatch holds the fields of a partial product update.
// A nil field is left unchanged.
type ProductPatch struct {
	Name       *string
	Price      *float64
	CategoryID *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.CategoryID == nil
}

// Validate checks only the fields that are present.
func (p ProductPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return NewValidationError("name", MsgNameEmpty)
	}
	if p.Price != nil {
		if err := ValidatePrice(*p.Price); err != nil {
			return err
		}
	}
	if p.CategoryID != nil && *p.CategoryID <= 0 {
		return NewValidationError("categoryId", MsgCategoryIDNotFound)
	}
	return nil
}

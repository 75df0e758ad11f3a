package domain

import "fmt"

// Category groups products under a unique name.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCategory creates a Category with the given name.
// The ID is left zero; the store assigns it on insert.
func NewCategory(name string) (*Category, error) {
	c := &Category{Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the category has a name.
func (c *Category) Validate() error {
	if c.Name == "" {
		return NewValidationError("name", MsgNameRequired)
	}
	return nil
}

// CategoryExistsMessage renders the conflict message for a duplicate category name.
func CategoryExistsMessage(name string) string {
	return fmt.Sprintf(categoryExistsTemplate, name)
}

// Package service holds the catalog use cases. Services enforce the rules
// that need the store: category name uniqueness, category existence for
// product writes, and the translation of store failures into the error
// vocabulary the API layer maps to HTTP responses.
//
// Field-shape validation lives in internal/domain and internal/api; services
// re-run the domain checks so they are safe to call directly.
package service

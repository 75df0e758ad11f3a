package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// pathID reads a positive integer path parameter. On failure it writes a
// 400 naming the entity and returns false.
func pathID(w http.ResponseWriter, r *http.Request, param, entity string) (int64, bool) {
	id, err := shared.ParseID(chi.URLParam(r, param))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid "+entity+" ID format", err)
		return 0, false
	}
	return id, true
}

// decodeBody reads the request body as a JSON object. On failure it writes
// a 400 and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request) (shared.Fields, bool) {
	fields, err := shared.DecodeFields(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, domain.MsgInvalidRequestBody, err)
		return nil, false
	}
	return fields, true
}

// categoryNameFrom extracts the name of a category create or update body.
func categoryNameFrom(fields shared.Fields) (string, error) {
	name, ok := fields.Text("name")
	if !ok || name == "" {
		return "", domain.NewValidationError("name", domain.MsgNameRequired)
	}
	return name, nil
}

// createProductRequest holds the members of a product create body once
// their presence and JSON types have been checked.
type createProductRequest struct {
	Name       string
	Price      float64
	CategoryID int64
}

// createProductFrom checks a product create body in field order: name,
// price, then categoryId.
func createProductFrom(fields shared.Fields) (createProductRequest, error) {
	var req createProductRequest

	name, ok := fields.Text("name")
	if !ok || name == "" {
		return req, domain.NewValidationError("name", domain.MsgNameRequired)
	}
	req.Name = name

	if !fields.IsSet("price") {
		return req, domain.NewValidationError("price", domain.MsgPriceRequired)
	}
	price, ok := fields.Number("price")
	if !ok {
		return req, domain.NewValidationError("price", domain.MsgPriceInvalid)
	}
	if err := domain.ValidatePrice(price); err != nil {
		return req, err
	}
	req.Price = price

	if !fields.IsSet("categoryId") {
		return req, domain.NewValidationError("categoryId", domain.MsgCategoryIDRequired)
	}
	categoryID, ok := fields.Int("categoryId")
	if !ok {
		return req, domain.NewValidationError("categoryId", domain.MsgCategoryIDNotInt)
	}
	if categoryID == 0 {
		return req, domain.NewValidationError("categoryId", domain.MsgCategoryIDRequired)
	}
	req.CategoryID = categoryID

	return req, nil
}

// productPatchFrom builds a patch from the members present in a product
// update body. A member sent as null counts as present and invalid.
func productPatchFrom(fields shared.Fields) (domain.ProductPatch, error) {
	var patch domain.ProductPatch

	if fields.Has("name") {
		name, ok := fields.Text("name")
		if !ok || strings.TrimSpace(name) == "" {
			return patch, domain.NewValidationError("name", domain.MsgNameEmpty)
		}
		patch.Name = &name
	}

	if fields.Has("price") {
		price, ok := fields.Number("price")
		if !ok {
			return patch, domain.NewValidationError("price", domain.MsgPriceInvalid)
		}
		if err := domain.ValidatePrice(price); err != nil {
			return patch, err
		}
		patch.Price = &price
	}

	if fields.Has("categoryId") {
		if !fields.IsSet("categoryId") {
			return patch, domain.NewValidationError("categoryId", domain.MsgCategoryIDNotFound)
		}
		categoryID, ok := fields.Int("categoryId")
		if !ok {
			return patch, domain.NewValidationError("categoryId", domain.MsgCategoryIDNotInt)
		}
		patch.CategoryID = &categoryID
	}

	return patch, nil
}

package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func books(id int64, name string, price float64) *domain.Product {
	return &domain.Product{
		ID:         id,
		Name:       name,
		Price:      price,
		CategoryID: 1,
		Category:   domain.CategoryRef{ID: 1, Name: "Books"},
	}
}

func TestProductHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantCalled bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created with embedded category",
			body:       `{"name":"Dune","price":12.5,"categoryId":1}`,
			wantCalled: true,
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":7,"name":"Dune","price":12.5,"category":{"id":1,"name":"Books"}}`,
		},
		{
			name:       "zero price",
			body:       `{"name":"Dune","price":0,"categoryId":1}`,
			wantCalled: true,
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":7,"name":"Dune","price":0,"category":{"id":1,"name":"Books"}}`,
		},
		{
			name:       "missing name",
			body:       `{"price":12.5,"categoryId":1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Name is required"}`,
		},
		{
			name:       "name checked before price",
			body:       `{"price":-1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Name is required"}`,
		},
		{
			name:       "missing price",
			body:       `{"name":"Dune","categoryId":1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Price is required"}`,
		},
		{
			name:       "negative price",
			body:       `{"name":"Dune","price":-5,"categoryId":1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Price must be a non-negative number"}`,
		},
		{
			name:       "non-numeric price",
			body:       `{"name":"Dune","price":"cheap","categoryId":1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Price must be a non-negative number"}`,
		},
		{
			name:       "missing category id",
			body:       `{"name":"Dune","price":12.5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Category id is required"}`,
		},
		{
			name:       "fractional category id",
			body:       `{"name":"Dune","price":12.5,"categoryId":1.5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Category id must be an integer"}`,
		},
		{
			name:       "unknown category is not found",
			body:       `{"name":"Dune","price":12.5,"categoryId":99}`,
			createErr:  service.ErrCategoryRefNotFound,
			wantCalled: true,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Category id not found"}`,
		},
		{
			name:       "body is not an object",
			body:       `"Dune"`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request format"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			svc := &mockProductService{
				t: t,
				createFn: func(_ context.Context, name string, price float64, categoryID int64) (*domain.Product, error) {
					called = true
					if tc.createErr != nil {
						return nil, tc.createErr
					}
					p := books(7, name, price)
					p.CategoryID = categoryID
					return p, nil
				},
			}

			w := doRequest(t, newTestRouter(nil, svc), http.MethodPost, "/products", tc.body)

			assert.Equal(t, tc.wantCalled, called)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestProductHandler_ListAndGet(t *testing.T) {
	svc := &mockProductService{
		t: t,
		listFn: func(context.Context) ([]*domain.Product, error) {
			return []*domain.Product{books(1, "Dune", 12.5)}, nil
		},
		getFn: func(_ context.Context, id int64) (*domain.Product, error) {
			if id == 1 {
				return books(1, "Dune", 12.5), nil
			}
			return nil, service.ErrProductNotFound
		},
	}
	router := newTestRouter(nil, svc)

	w := doRequest(t, router, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Dune","price":12.5,"category":{"id":1,"name":"Books"}}]`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "categoryId")

	w = doRequest(t, router, http.MethodGet, "/products/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Dune","price":12.5,"category":{"id":1,"name":"Books"}}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/products/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/products/two", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid product ID format"}`, w.Body.String())
}

func TestProductHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		updateErr  error
		wantCalled bool
		wantPatch  func(t *testing.T, patch domain.ProductPatch)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "price only",
			body:       `{"price":20}`,
			wantCalled: true,
			wantPatch: func(t *testing.T, patch domain.ProductPatch) {
				require.NotNil(t, patch.Price)
				assert.Equal(t, 20.0, *patch.Price)
				assert.Nil(t, patch.Name)
				assert.Nil(t, patch.CategoryID)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "all fields",
			body:       `{"name":"Dune Messiah","price":9,"categoryId":2}`,
			wantCalled: true,
			wantPatch: func(t *testing.T, patch domain.ProductPatch) {
				require.NotNil(t, patch.Name)
				assert.Equal(t, "Dune Messiah", *patch.Name)
				require.NotNil(t, patch.CategoryID)
				assert.Equal(t, int64(2), *patch.CategoryID)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty patch",
			body:       `{}`,
			wantCalled: true,
			wantPatch: func(t *testing.T, patch domain.ProductPatch) {
				assert.True(t, patch.IsEmpty())
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "blank name",
			body:       `{"name":"  "}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Name cannot be empty"}`,
		},
		{
			name:       "null name",
			body:       `{"name":null}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Name cannot be empty"}`,
		},
		{
			name:       "negative price",
			body:       `{"price":-5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Price must be a non-negative number"}`,
		},
		{
			name:       "null category",
			body:       `{"categoryId":null}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Category id not found"}`,
		},
		{
			name:       "string category",
			body:       `{"categoryId":"2"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Category id must be an integer"}`,
		},
		{
			name:       "unknown category is a validation failure",
			body:       `{"categoryId":42}`,
			updateErr:  service.ErrInvalidCategoryRef,
			wantCalled: true,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Category id not found"}`,
		},
		{
			name:       "missing product",
			body:       `{"price":20}`,
			updateErr:  service.ErrProductNotFound,
			wantCalled: true,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Product not found"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			svc := &mockProductService{
				t: t,
				updateFn: func(_ context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
					called = true
					assert.Equal(t, int64(7), id)
					if tc.wantPatch != nil {
						tc.wantPatch(t, patch)
					}
					if tc.updateErr != nil {
						return nil, tc.updateErr
					}
					return books(7, "Dune", 20), nil
				},
			}

			w := doRequest(t, newTestRouter(nil, svc), http.MethodPut, "/products/7", tc.body)

			assert.Equal(t, tc.wantCalled, called)
			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestProductHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
		wantBody   string
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{
			name:       "missing",
			deleteErr:  service.ErrProductNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Product not found"}`,
		},
		{
			name:       "store failure",
			deleteErr:  &service.ServiceError{Service: "product", Operation: "delete", Err: errors.New("timeout")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"product service delete failed: timeout"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockProductService{
				t:        t,
				deleteFn: func(context.Context, int64) error { return tc.deleteErr },
			}

			w := doRequest(t, newTestRouter(nil, svc), http.MethodDelete, "/products/3", "")

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody == "" {
				assert.Empty(t, w.Body.String())
				return
			}
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestProductHandler_ListByCategory(t *testing.T) {
	svc := &mockProductService{
		t: t,
		listByCategoryFn: func(_ context.Context, categoryID int64) ([]*domain.Product, error) {
			if categoryID != 1 {
				return nil, service.ErrCategoryRefNotFound
			}
			return []*domain.Product{books(2, "Dune", 12.5), books(1, "Emma", 8)}, nil
		},
	}
	router := newTestRouter(nil, svc)

	w := doRequest(t, router, http.MethodGet, "/products/category/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":2,"name":"Dune","price":12.5,"category":{"id":1,"name":"Books"}},
		{"id":1,"name":"Emma","price":8,"category":{"id":1,"name":"Books"}}
	]`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/products/category/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Category id not found"}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/products/category/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid category ID format"}`, w.Body.String())
}

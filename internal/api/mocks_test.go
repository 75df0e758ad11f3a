package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/stretchr/testify/require"
)

// mockCategoryService is a function-field mock of service.CategoryService.
// Unset functions fail the test when called.
type mockCategoryService struct {
	t        *testing.T
	createFn func(ctx context.Context, name string) (*domain.Category, error)
	listFn   func(ctx context.Context) ([]*domain.Category, error)
	updateFn func(ctx context.Context, id int64, name string) (*domain.Category, error)
	deleteFn func(ctx context.Context, id int64) error
}

var _ service.CategoryService = (*mockCategoryService)(nil)

func (m *mockCategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	require.NotNil(m.t, m.createFn, "unexpected Create call")
	return m.createFn(ctx, name)
}

func (m *mockCategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	require.NotNil(m.t, m.listFn, "unexpected List call")
	return m.listFn(ctx)
}

func (m *mockCategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	require.NotNil(m.t, m.updateFn, "unexpected Update call")
	return m.updateFn(ctx, id, name)
}

func (m *mockCategoryService) Delete(ctx context.Context, id int64) error {
	require.NotNil(m.t, m.deleteFn, "unexpected Delete call")
	return m.deleteFn(ctx, id)
}

// mockProductService is a function-field mock of service.ProductService.
type mockProductService struct {
	t                *testing.T
	createFn         func(ctx context.Context, name string, price float64, categoryID int64) (*domain.Product, error)
	listFn           func(ctx context.Context) ([]*domain.Product, error)
	getFn            func(ctx context.Context, id int64) (*domain.Product, error)
	updateFn         func(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	deleteFn         func(ctx context.Context, id int64) error
	listByCategoryFn func(ctx context.Context, categoryID int64) ([]*domain.Product, error)
}

var _ service.ProductService = (*mockProductService)(nil)

func (m *mockProductService) Create(
	ctx context.Context,
	name string,
	price float64,
	categoryID int64,
) (*domain.Product, error) {
	require.NotNil(m.t, m.createFn, "unexpected Create call")
	return m.createFn(ctx, name, price, categoryID)
}

func (m *mockProductService) List(ctx context.Context) ([]*domain.Product, error) {
	require.NotNil(m.t, m.listFn, "unexpected List call")
	return m.listFn(ctx)
}

func (m *mockProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	require.NotNil(m.t, m.getFn, "unexpected Get call")
	return m.getFn(ctx, id)
}

func (m *mockProductService) Update(
	ctx context.Context,
	id int64,
	patch domain.ProductPatch,
) (*domain.Product, error) {
	require.NotNil(m.t, m.updateFn, "unexpected Update call")
	return m.updateFn(ctx, id, patch)
}

func (m *mockProductService) Delete(ctx context.Context, id int64) error {
	require.NotNil(m.t, m.deleteFn, "unexpected Delete call")
	return m.deleteFn(ctx, id)
}

func (m *mockProductService) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	require.NotNil(m.t, m.listByCategoryFn, "unexpected ListByCategory call")
	return m.listByCategoryFn(ctx, categoryID)
}

// newTestRouter mounts the handlers for whichever services are non-nil.
func newTestRouter(categories service.CategoryService, products service.ProductService) http.Handler {
	r := chi.NewRouter()
	if categories != nil {
		NewCategoryHandler(categories, nil).RegisterRoutes(r)
	}
	if products != nil {
		NewProductHandler(products, nil).RegisterRoutes(r)
	}
	return r
}

// doRequest sends a request through h and returns the recorder.
func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

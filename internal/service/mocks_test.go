package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCategoryStore is a function-field mock of store.CategoryStore.
// Unset functions fail the test when called.
type mockCategoryStore struct {
	t           *testing.T
	createFn    func(ctx context.Context, c *domain.Category) error
	getByIDFn   func(ctx context.Context, id int64) (*domain.Category, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Category, error)
	listFn      func(ctx context.Context) ([]*domain.Category, error)
	updateFn    func(ctx context.Context, c *domain.Category) error
	deleteFn    func(ctx context.Context, id int64) error
	withTxCalls int
}

var _ store.CategoryStore = (*mockCategoryStore)(nil)

func (m *mockCategoryStore) Create(ctx context.Context, c *domain.Category) error {
	require.NotNil(m.t, m.createFn, "unexpected Create call")
	return m.createFn(ctx, c)
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	require.NotNil(m.t, m.getByIDFn, "unexpected GetByID call")
	return m.getByIDFn(ctx, id)
}

func (m *mockCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	require.NotNil(m.t, m.getByNameFn, "unexpected GetByName call")
	return m.getByNameFn(ctx, name)
}

func (m *mockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	require.NotNil(m.t, m.listFn, "unexpected List call")
	return m.listFn(ctx)
}

func (m *mockCategoryStore) Update(ctx context.Context, c *domain.Category) error {
	require.NotNil(m.t, m.updateFn, "unexpected Update call")
	return m.updateFn(ctx, c)
}

func (m *mockCategoryStore) Delete(ctx context.Context, id int64) error {
	require.NotNil(m.t, m.deleteFn, "unexpected Delete call")
	return m.deleteFn(ctx, id)
}

func (m *mockCategoryStore) WithTx(*sql.Tx) store.CategoryStore {
	m.withTxCalls++
	return m
}

// mockProductStore is a function-field mock of store.ProductStore.
type mockProductStore struct {
	t                *testing.T
	createFn         func(ctx context.Context, p *domain.Product) error
	getByIDFn        func(ctx context.Context, id int64) (*domain.Product, error)
	listFn           func(ctx context.Context) ([]*domain.Product, error)
	listByCategoryFn func(ctx context.Context, categoryID int64) ([]*domain.Product, error)
	updateFn         func(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	deleteFn         func(ctx context.Context, id int64) error
}

var _ store.ProductStore = (*mockProductStore)(nil)

func (m *mockProductStore) Create(ctx context.Context, p *domain.Product) error {
	require.NotNil(m.t, m.createFn, "unexpected Create call")
	return m.createFn(ctx, p)
}

func (m *mockProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	require.NotNil(m.t, m.getByIDFn, "unexpected GetByID call")
	return m.getByIDFn(ctx, id)
}

func (m *mockProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	require.NotNil(m.t, m.listFn, "unexpected List call")
	return m.listFn(ctx)
}

func (m *mockProductStore) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	require.NotNil(m.t, m.listByCategoryFn, "unexpected ListByCategory call")
	return m.listByCategoryFn(ctx, categoryID)
}

func (m *mockProductStore) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	require.NotNil(m.t, m.updateFn, "unexpected Update call")
	return m.updateFn(ctx, id, patch)
}

func (m *mockProductStore) Delete(ctx context.Context, id int64) error {
	require.NotNil(m.t, m.deleteFn, "unexpected Delete call")
	return m.deleteFn(ctx, id)
}

// newTxDB returns a sqlmock database that expects one transaction ending in
// commit (ok) or rollback.
func newTxDB(t *testing.T, commit bool) *sql.DB {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db
}

// newIdleDB returns a sqlmock database that expects no calls.
func newIdleDB(t *testing.T) *sql.DB {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db
}

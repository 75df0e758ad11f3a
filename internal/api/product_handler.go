package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/service"
)

// ProductHandler handles product HTTP requests.
type ProductHandler struct {
	productService service.ProductService
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		productService: productService,
		logger:         logger.With(slog.String("component", "product_handler")),
	}
}

// RegisterRoutes mounts the product endpoints on r.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
		r.Get("/category/{categoryId}", h.ListProductsByCategory)
		r.Get("/{id}", h.GetProduct)
		r.Put("/{id}", h.UpdateProduct)
		r.Delete("/{id}", h.DeleteProduct)
	})
}

// CreateProduct handles POST /products.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeBody(w, r)
	if !ok {
		return
	}

	req, err := createProductFrom(fields)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	product, err := h.productService.Create(r.Context(), req.Name, req.Price, req.CategoryID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("product created",
		slog.Int64("product_id", product.ID),
		slog.Int64("category_id", product.Category.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, productToResponse(product))
}

// ListProducts handles GET /products.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, productsToResponse(products))
}

// GetProduct handles GET /products/{id}.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "product")
	if !ok {
		return
	}

	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// UpdateProduct handles PUT /products/{id}. Only the members present in the
// body are validated and applied.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "product")
	if !ok {
		return
	}

	fields, ok := decodeBody(w, r)
	if !ok {
		return
	}

	patch, err := productPatchFrom(fields)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	product, err := h.productService.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// DeleteProduct handles DELETE /products/{id}.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "product")
	if !ok {
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("product deleted",
		slog.Int64("product_id", id))
	shared.RespondNoContent(w)
}

// ListProductsByCategory handles GET /products/category/{categoryId}.
func (h *ProductHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "categoryId", "category")
	if !ok {
		return
	}

	products, err := h.productService.ListByCategory(r.Context(), categoryID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, productsToResponse(products))
}

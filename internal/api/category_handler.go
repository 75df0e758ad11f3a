package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/service"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger.With(slog.String("component", "category_handler")),
	}
}

// RegisterRoutes mounts the category endpoints on r.
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Post("/", h.CreateCategory)
		r.Get("/", h.ListCategories)
		r.Put("/{id}", h.UpdateCategory)
		r.Delete("/{id}", h.DeleteCategory)
	})
}

// CreateCategory handles POST /categories.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeBody(w, r)
	if !ok {
		return
	}

	name, err := categoryNameFrom(fields)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	category, err := h.categoryService.Create(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, categoryToResponse(category))
}

// ListCategories handles GET /categories.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categoriesToResponse(categories))
}

// UpdateCategory handles PUT /categories/{id}.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "category")
	if !ok {
		return
	}

	fields, ok := decodeBody(w, r)
	if !ok {
		return
	}

	name, err := categoryNameFrom(fields)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("category renamed",
		slog.Int64("category_id", category.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// DeleteCategory handles DELETE /categories/{id}.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "category")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: domain.MsgCategoryDeleted})
}

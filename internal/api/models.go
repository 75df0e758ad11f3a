package api

import "github.com/phrazzld/catalog-api/internal/domain"

// CategoryResponse is the JSON representation of a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductResponse is the JSON representation of a product. It carries the
// embedded category and has no categoryId member.
type ProductResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Price    float64          `json:"price"`
	Category CategoryResponse `json:"category"`
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func categoriesToResponse(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryToResponse(c))
	}
	return out
}

func productToResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Category: CategoryResponse{
			ID:   p.Category.ID,
			Name: p.Category.Name,
		},
	}
}

func productsToResponse(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(p))
	}
	return out
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// ProductsHandler serves the read-only catalog.
type ProductsHandler struct {
	products repository.ProductRepository
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products repository.ProductRepository) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// List GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	items, err := h.products.List(c.Context())
	if err != nil {
		return err
	}

	resp := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, dto.ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return c.JSON(fiber.Map{"data": resp})
}

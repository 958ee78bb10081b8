// internal/handler/catalog.go
package handler

import (
	"log/slog"
	"net/http"

	"product-intel/internal/catalog"
	"product-intel/internal/prompt"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ListCategories godoc
// @Summary List or search product categories
// @Param q query string false "Search in id, name and keywords"
// @Success 200 {array} domain.ProductIntelligence
// @Router /api/v1/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, nonNil(h.catalog.Search(q)))
		return
	}
	c.JSON(http.StatusOK, h.catalog.ListAll())
}

// GetCategory godoc
// @Summary Get one product category
// @Param id path string true "Category id, e.g. pet_supplies"
// @Success 200 {object} domain.ProductIntelligence
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	rec, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetPrompt godoc
// @Summary Build an AI prompt for a category
// @Param id path string true "Category id"
// @Param length query string false "short (default) or medium"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{id}/prompt [get]
func (h *CatalogHandler) GetPrompt(c *gin.Context) {
	length, err := prompt.ParseLength(c.Query("length"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	text, err := prompt.Build(rec, length)
	if err != nil {
		slog.Error("Prompt build failed", "error", err, "category", rec.ID, "length", length)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": rec.ID,
		"length":   length,
		"prompt":   text,
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

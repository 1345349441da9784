package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	registry services.CategoryRegistrar
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(registry services.CategoryRegistrar) *CategoryHandler {
	return &CategoryHandler{registry: registry}
}

// SubcategoryRequest represents the payload for adding a subcategory
type SubcategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetCategories returns the registry contents
// @Summary     List categories
// @Description List category names in registration order with styles and the subcategory hierarchy
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Categories, styles, hierarchy"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.registry.AvailableCategories(),
		"styles":     h.registry.Styles(),
		"hierarchy":  h.registry.Hierarchy(),
	})
}

// AddSubcategory registers a subcategory under a category
// @Summary     Add a subcategory
// @Description Append a subcategory to the category's list. Case-insensitive duplicates are a no-op returning the existing entry.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Category name"
// @Param       request body SubcategoryRequest true "Subcategory name"
// @Success     201 {object} map[string]string "Registered subcategory"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{name}/subcategories [post]
func (h *CategoryHandler) AddSubcategory(c *gin.Context) {
	var req SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Subcategory name is required"))
		return
	}

	canonical, err := h.registry.RegisterSubcategory(c.Param("name"), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subcategory": canonical})
}

// DeleteSubcategory removes a subcategory from a category
// @Summary     Delete a subcategory
// @Description Remove the exact-match subcategory from the category's list. Existing transactions keep their subcategory value.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Category name"
// @Param       sub path string true "Subcategory name"
// @Success     200 {object} MessageResponse "Subcategory deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{name}/subcategories/{sub} [delete]
func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.registry.DeleteSubcategory(c.Param("name"), c.Param("sub")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted"})
}

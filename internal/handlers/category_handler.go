package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	ledger services.LedgerServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(ledger services.LedgerServicer) *CategoryHandler {
	return &CategoryHandler{ledger: ledger}
}

// CategoryRequest represents the request payload for creating or updating a
// category. Member ids select who the category applies to; an empty list
// means the whole household. is_household is always derived server-side.
type CategoryRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	Budget    *float64 `json:"budget" binding:"required,gt=0"`
	Type      string   `json:"type" binding:"omitempty,category_type"`
	MemberIDs []string `json:"member_ids"`
}

// CreateCategory adds a spending category
// @Summary     Create a category
// @Description Create a new spending category with a monthly budget
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} map[string]interface{} "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.ledger.AddCategory(services.CategoryInput{
		Name:      req.Name,
		Budget:    *req.Budget,
		Type:      models.CategoryType(req.Type),
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategories lists categories
// @Summary     List categories
// @Description List all categories, or only those available to one member
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       member_id query string false "Restrict to household categories plus this member's"
// @Success     200 {object} map[string]interface{} "List of categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var categories []models.Category
	if memberID := c.Query("member_id"); memberID != "" {
		categories = h.ledger.CategoriesForMember(memberID)
	} else {
		categories = h.ledger.Categories()
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// UpdateCategory replaces a category's fields
// @Summary     Update category
// @Description Update an existing category in place, keeping its id
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Param       request body CategoryRequest true "Updated category details"
// @Success     200 {object} map[string]interface{} "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.ledger.UpdateCategory(c.Param("id"), services.CategoryInput{
		Name:      req.Name,
		Budget:    *req.Budget,
		Type:      models.CategoryType(req.Type),
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory removes a category
// @Summary     Delete category
// @Description Delete a category. Transactions referencing it are kept and
// @Description shown as "Unknown".
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.ledger.DeleteCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog "auction-marketplace/internal/catalogService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"
)

type CatalogServiceInterface interface {
	ListCategories() ([]model.Category, error)
	ListSupportPrograms() []catalog.SupportProgram
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListCategoriesHandler handles GET /catalog/categories
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListCategories()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListCategoriesHandler: failed to list categories", map[string]any{"error": err.Error()})
		return
	}

	if categories == nil {
		categories = []model.Category{}
	}

	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
}

// ListSupportProgramsHandler handles GET /catalog/support-programs
func (h *CatalogHandler) ListSupportProgramsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.ListSupportPrograms(), "support programs retrieved successfully")
}

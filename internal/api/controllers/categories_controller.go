package controllers

import (
	"aistore/internal/services"
	"aistore/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CategoriesController struct {
	catalogService services.CatalogServiceInterface
}

func NewCategoriesController(catalogService services.CatalogServiceInterface) *CategoriesController {
	return &CategoriesController{
		catalogService: catalogService,
	}
}

// ListCategories godoc
// @Summary List active categories
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (cc *CategoriesController) ListCategories(c *gin.Context) {
	categories, err := cc.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "")
}

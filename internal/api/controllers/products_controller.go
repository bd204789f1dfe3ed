package controllers

import (
	"net/http"

	"aistore/internal/repositories"
	"aistore/internal/services"
	"aistore/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsController struct {
	catalogService services.CatalogServiceInterface
}

func NewProductsController(catalogService services.CatalogServiceInterface) *ProductsController {
	return &ProductsController{
		catalogService: catalogService,
	}
}

// ListProducts godoc
// @Summary List active products
// @Description Storefront product listing with optional category, search and sort filters
// @Tags Products
// @Produce json
// @Param category query string false "Category id"
// @Param search query string false "Name/description search"
// @Param sort query string false "price_asc | price_desc"
// @Success 200 {object} utils.APIResponse
// @Router /products [get]
func (p *ProductsController) ListProducts(c *gin.Context) {
	filter := repositories.ProductFilter{
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
		ActiveOnly: true,
	}

	if category := c.Query("category"); category != "" {
		categoryID, err := uuid.Parse(category)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
			return
		}
		filter.CategoryID = &categoryID
	}

	products, err := p.catalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "")
}

// GetProduct godoc
// @Summary Get a product by id
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /products/{id} [get]
func (p *ProductsController) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := p.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "")
}

package controllers

import (
	"net/http"

	"aistore/internal/models/db_models"
	"aistore/internal/models/request_models"
	"aistore/internal/repositories"
	"aistore/internal/services"
	"aistore/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminController is the back-office surface: dashboard stats and CRUD
// over products, categories, orders and users. Every route behind it is
// guarded by the admin role middleware.
type AdminController struct {
	catalogService   services.CatalogServiceInterface
	orderService     services.OrderServiceInterface
	accountService   services.AccountServiceInterface
	dashboardService services.DashboardServiceInterface
}

func NewAdminController(
	catalogService services.CatalogServiceInterface,
	orderService services.OrderServiceInterface,
	accountService services.AccountServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *AdminController {
	return &AdminController{
		catalogService:   catalogService,
		orderService:     orderService,
		accountService:   accountService,
		dashboardService: dashboardService,
	}
}

// GetStats godoc
// @Summary Back-office overview statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/stats [get]
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "")
}

// ListAllProducts godoc
// @Summary List every product, including inactive ones
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/products [get]
func (ac *AdminController) ListAllProducts(c *gin.Context) {
	products, err := ac.catalogService.ListProducts(c.Request.Context(), repositories.ProductFilter{})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "")
}

// CreateProduct godoc
// @Summary Create a product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateProductRequest true "Product payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/products [post]
func (ac *AdminController) CreateProduct(c *gin.Context) {
	var req request_models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := ac.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, product, "Product created successfully")
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Param request body request_models.UpdateProductRequest true "Product patch"
// @Success 200 {object} utils.APIResponse
// @Router /admin/products/{id} [put]
func (ac *AdminController) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req request_models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := ac.catalogService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product updated successfully")
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Success 200 {object} utils.APIResponse
// @Router /admin/products/{id} [delete]
func (ac *AdminController) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := ac.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product deleted successfully")
}

// ListAllCategories godoc
// @Summary List every category
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/categories [get]
func (ac *AdminController) ListAllCategories(c *gin.Context) {
	categories, err := ac.catalogService.ListAllCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "")
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateCategoryRequest true "Category payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/categories [post]
func (ac *AdminController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := ac.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, category, "Category created successfully")
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category id"
// @Param request body request_models.UpdateCategoryRequest true "Category patch"
// @Success 200 {object} utils.APIResponse
// @Router /admin/categories/{id} [put]
func (ac *AdminController) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := ac.catalogService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category updated successfully")
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category id"
// @Success 200 {object} utils.APIResponse
// @Router /admin/categories/{id} [delete]
func (ac *AdminController) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := ac.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}

// ListAllOrders godoc
// @Summary List every order
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/orders [get]
func (ac *AdminController) ListAllOrders(c *gin.Context) {
	orders, err := ac.orderService.ListAllOrders(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "")
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Cancellation and refunds are performed here, never by checkout
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Param request body request_models.UpdateOrderStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/orders/{id}/status [put]
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req request_models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ac.orderService.UpdateOrderStatus(c.Request.Context(), id, db_models.OrderStatus(req.Status)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Order status updated successfully")
}

// ListUsers godoc
// @Summary List every user profile
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/users [get]
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.accountService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "")
}

// UpdateUser godoc
// @Summary Update a user's role, tier or name
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body request_models.UpdateUserRequest true "User patch"
// @Success 200 {object} utils.APIResponse
// @Router /admin/users/{id} [put]
func (ac *AdminController) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ac.accountService.UpdateUser(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User updated successfully")
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse
// @Router /admin/users/{id} [delete]
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := ac.accountService.DeleteUser(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

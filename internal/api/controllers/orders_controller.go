package controllers

import (
	"net/http"

	"aistore/internal/services"
	"aistore/pkg/middleware"
	"aistore/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdersController struct {
	orderService services.OrderServiceInterface
}

func NewOrdersController(orderService services.OrderServiceInterface) *OrdersController {
	return &OrdersController{
		orderService: orderService,
	}
}

// ListMyOrders godoc
// @Summary List the authenticated user's orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /orders [get]
func (oc *OrdersController) ListMyOrders(c *gin.Context) {
	orders, err := oc.orderService.ListMyOrders(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "")
}

// GetOrder godoc
// @Summary Get one of the authenticated user's orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /orders/{id} [get]
func (oc *OrdersController) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := oc.orderService.GetOrder(c.Request.Context(), middleware.CurrentUserID(c), orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "")
}

// ListMySubscriptions godoc
// @Summary List the authenticated user's subscriptions
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions [get]
func (oc *OrdersController) ListMySubscriptions(c *gin.Context) {
	subs, err := oc.orderService.ListMySubscriptions(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "")
}

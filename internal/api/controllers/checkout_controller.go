package controllers

import (
	"net/http"

	"aistore/internal/models/request_models"
	"aistore/internal/services"
	"aistore/pkg/middleware"
	"aistore/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService services.CheckoutServiceInterface
}

func NewCheckoutController(checkoutService services.CheckoutServiceInterface) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

// Checkout godoc
// @Summary Convert the cart into an order and subscriptions
// @Description Creates the order, its line items and one subscription per
// @Description cart item, then clears the cart. An Idempotency-Key header
// @Description (or body field) lets a retried request return the prior
// @Description order instead of creating a duplicate.
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body request_models.CheckoutRequest false "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /checkout [post]
func (cc *CheckoutController) Checkout(c *gin.Context) {
	var req request_models.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	key := req.IdempotencyKey
	if header := c.GetHeader("Idempotency-Key"); header != "" {
		key = header
	}

	resp, err := cc.checkoutService.Checkout(c.Request.Context(), middleware.CurrentUserID(c), key, req.PaymentMethod)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order completed successfully")
}

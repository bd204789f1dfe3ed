package controllers

import (
	"net/http"

	"aistore/internal/models/db_models"
	"aistore/internal/models/request_models"
	"aistore/internal/services"
	"aistore/pkg/middleware"
	"aistore/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartController struct {
	cartService services.CartServiceInterface
}

func NewCartController(cartService services.CartServiceInterface) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// GetCart godoc
// @Summary Get the authenticated user's cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /cart [get]
func (cc *CartController) GetCart(c *gin.Context) {
	cart, err := cc.cartService.GetCart(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cart, "")
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Increments quantity when the product/plan combination already exists
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AddCartItemRequest true "Add to cart payload"
// @Success 200 {object} utils.APIResponse
// @Router /cart/items [post]
func (cc *CartController) AddItem(c *gin.Context) {
	var req request_models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	cart, err := cc.cartService.AddItem(c.Request.Context(), middleware.CurrentUserID(c), productID, db_models.SubscriptionType(req.SubscriptionType))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cart, "Item added to cart")
}

// UpdateQuantity godoc
// @Summary Update a cart item's quantity
// @Description A quantity of zero or less removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item id"
// @Param request body request_models.UpdateQuantityRequest true "Quantity payload"
// @Success 200 {object} utils.APIResponse
// @Router /cart/items/{id} [put]
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	var req request_models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cart, err := cc.cartService.UpdateQuantity(c.Request.Context(), middleware.CurrentUserID(c), itemID, req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cart, "")
}

// RemoveItem godoc
// @Summary Remove an item from the cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item id"
// @Success 200 {object} utils.APIResponse
// @Router /cart/items/{id} [delete]
func (cc *CartController) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	cart, err := cc.cartService.RemoveItem(c.Request.Context(), middleware.CurrentUserID(c), itemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cart, "Item removed from cart")
}

// ClearCart godoc
// @Summary Remove every item from the cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /cart [delete]
func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.cartService.ClearCart(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Cart cleared")
}

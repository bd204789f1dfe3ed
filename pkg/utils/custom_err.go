package utils

import "errors"

var (
	ErrUnauthenticated         = errors.New("unauthenticated")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrCheckoutInProgress      = errors.New("checkout already in progress")
	ErrCartItemNotFound        = errors.New("cart item not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrAccountNotFound         = errors.New("account not found")
	ErrEmailAlreadyExists      = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidSubscriptionType = errors.New("invalid subscription type")
	ErrInvalidQuantity         = errors.New("invalid quantity")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrCheckoutFailed          = errors.New("failed to process order")
	ErrDatabaseError           = errors.New("database error")
)

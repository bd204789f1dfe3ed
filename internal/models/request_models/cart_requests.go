package request_models

type AddCartItemRequest struct {
	ProductID        string `json:"product_id" binding:"required,uuid"`
	SubscriptionType string `json:"subscription_type" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	// Optional: a client-supplied key so retries of the same checkout
	// attempt can be detected. Generated server-side when blank.
	IdempotencyKey string `json:"idempotency_key"`
	PaymentMethod  string `json:"payment_method"`
}

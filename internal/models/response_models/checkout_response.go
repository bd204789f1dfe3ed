package response_models

import "github.com/google/uuid"

type CheckoutResponse struct {
	OrderID        uuid.UUID `json:"order_id"`
	TotalAmount    float64   `json:"total_amount"`
	ItemCount      int       `json:"item_count"`
	IdempotencyKey string    `json:"idempotency_key"`
	// AlreadyCompleted is true when the idempotency key matched a prior
	// completed attempt and no new writes were performed.
	AlreadyCompleted bool `json:"already_completed,omitempty"`
}

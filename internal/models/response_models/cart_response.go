package response_models

import "aistore/internal/models/db_models"

// CartItemView decorates a cart row with its resolved unit price so the
// displayed line total always matches what checkout will bill.
type CartItemView struct {
	db_models.CartItem
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Items     []CartItemView `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"item_count"`
}

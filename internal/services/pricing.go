package services

import "aistore/internal/models/db_models"

// yearlyFallbackMultiplier is applied when an admin has not set an
// explicit yearly price. The constant is billing-relevant: changing it
// would alter charged totals for every product without a yearly price.
const yearlyFallbackMultiplier = 10

// PlanPrice resolves the unit price for a product at a plan tier. It is
// the single resolution point used by cart totals, checkout snapshots
// and order summaries, so the displayed total always equals the billed
// total.
func PlanPrice(product *db_models.Product, subType db_models.SubscriptionType) float64 {
	if product == nil {
		return 0
	}
	switch subType {
	case db_models.SubTypeMonthly:
		if product.MonthlyPrice != nil {
			return *product.MonthlyPrice
		}
		return product.Price
	case db_models.SubTypeYearly:
		if product.YearlyPrice != nil {
			return *product.YearlyPrice
		}
		return product.Price * yearlyFallbackMultiplier
	case db_models.SubTypeLifetime:
		return product.Price
	default:
		return product.Price
	}
}

// CartTotal sums resolved line prices over the given items.
func CartTotal(items []db_models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += PlanPrice(item.Product, item.SubscriptionType) * float64(item.Quantity)
	}
	return total
}

// CartItemCount sums quantities; display only, no invariant beyond
// being non-negative.
func CartItemCount(items []db_models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

package services

import (
	"testing"

	"aistore/internal/models/db_models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestPlanPrice_ExplicitTierPrices(t *testing.T) {
	product := &db_models.Product{
		Price:        100,
		MonthlyPrice: floatPtr(12),
		YearlyPrice:  floatPtr(120),
	}

	assert.Equal(t, 12.0, PlanPrice(product, db_models.SubTypeMonthly))
	assert.Equal(t, 120.0, PlanPrice(product, db_models.SubTypeYearly))
	assert.Equal(t, 100.0, PlanPrice(product, db_models.SubTypeLifetime))
}

func TestPlanPrice_Fallbacks(t *testing.T) {
	product := &db_models.Product{Price: 20}

	// No explicit tier prices: monthly and lifetime fall back to the
	// base price, yearly to base * 10.
	assert.Equal(t, 20.0, PlanPrice(product, db_models.SubTypeMonthly))
	assert.Equal(t, 200.0, PlanPrice(product, db_models.SubTypeYearly))
	assert.Equal(t, 20.0, PlanPrice(product, db_models.SubTypeLifetime))
}

func TestPlanPrice_NilProduct(t *testing.T) {
	assert.Equal(t, 0.0, PlanPrice(nil, db_models.SubTypeMonthly))
}

func TestCartTotal_MixedTiers(t *testing.T) {
	p1 := &db_models.Product{Price: 30, MonthlyPrice: floatPtr(10)}
	p2 := &db_models.Product{Price: 50}

	items := []db_models.CartItem{
		{Product: p1, SubscriptionType: db_models.SubTypeMonthly, Quantity: 2},
		{Product: p2, SubscriptionType: db_models.SubTypeLifetime, Quantity: 1},
	}

	assert.Equal(t, 70.0, CartTotal(items))
	assert.Equal(t, 3, CartItemCount(items))
}

func TestCartTotal_SkipsMissingProduct(t *testing.T) {
	items := []db_models.CartItem{
		{Product: nil, SubscriptionType: db_models.SubTypeMonthly, Quantity: 3},
		{Product: &db_models.Product{Price: 5}, SubscriptionType: db_models.SubTypeLifetime, Quantity: 1},
	}

	assert.Equal(t, 5.0, CartTotal(items))
}

func TestCartTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CartTotal(nil))
	assert.Equal(t, 0, CartItemCount(nil))
}

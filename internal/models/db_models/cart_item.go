package db_models

import "github.com/google/uuid"

type SubscriptionType string

const (
	SubTypeMonthly  SubscriptionType = "monthly"
	SubTypeYearly   SubscriptionType = "yearly"
	SubTypeLifetime SubscriptionType = "lifetime"
)

// ValidSubscriptionType reports whether t is one of the three plan tiers.
func ValidSubscriptionType(t SubscriptionType) bool {
	switch t {
	case SubTypeMonthly, SubTypeYearly, SubTypeLifetime:
		return true
	}
	return false
}

// CartItem is a pending line item. A cart holds at most one row per
// (user, product, subscription type); adding the same combination again
// increments Quantity instead of duplicating.
type CartItem struct {
	BaseModel
	UserID           uuid.UUID        `gorm:"index;not null" json:"user_id"`
	ProductID        uuid.UUID        `gorm:"index;not null" json:"product_id"`
	Quantity         int              `gorm:"not null;default:1" json:"quantity"`
	SubscriptionType SubscriptionType `gorm:"type:varchar(16);not null" json:"subscription_type"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

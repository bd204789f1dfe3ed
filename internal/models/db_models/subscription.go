package db_models

import "github.com/google/uuid"

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	SubStatusExpired   SubscriptionStatus = "expired"
	SubStatusTrial     SubscriptionStatus = "trial"
)

// Subscription is materialized from an order item at checkout.
// ExpiresAt is nil exactly when SubscriptionType is lifetime, and
// AutoRenew is false exactly then as well.
type Subscription struct {
	BaseModel
	UserID           uuid.UUID          `gorm:"index;not null" json:"user_id"`
	ProductID        uuid.UUID          `gorm:"index;not null" json:"product_id"`
	OrderID          uuid.UUID          `gorm:"index" json:"order_id"`
	Status           SubscriptionStatus `gorm:"type:varchar(16);default:active;index" json:"status"`
	SubscriptionType SubscriptionType   `gorm:"type:varchar(16);not null" json:"subscription_type"`
	StartsAt         int64              `gorm:"not null" json:"starts_at"`
	ExpiresAt        *int64             `json:"expires_at"`
	TrialEndsAt      *int64             `json:"trial_ends_at"`
	AutoRenew        bool               `gorm:"default:true" json:"auto_renew"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

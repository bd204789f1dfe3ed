package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CheckoutAttemptStatus string

const (
	AttemptStatusProcessing CheckoutAttemptStatus = "processing"
	AttemptStatusCompleted  CheckoutAttemptStatus = "completed"
	AttemptStatusFailed     CheckoutAttemptStatus = "failed"
)

// CheckoutAttempt records one run of the checkout write sequence. The
// idempotency key lets a retried checkout detect a prior completed run
// and return its order instead of inserting a duplicate. FailedStep
// names the write that broke a partial attempt, so partial checkouts
// are distinguishable from guard-time failures.
type CheckoutAttempt struct {
	BaseModel
	UserID         uuid.UUID             `gorm:"index:idx_attempt_user_key;not null" json:"user_id"`
	IdempotencyKey string                `gorm:"index:idx_attempt_user_key;not null" json:"idempotency_key"`
	OrderID        *uuid.UUID            `gorm:"index" json:"order_id"`
	Status         CheckoutAttemptStatus `gorm:"type:varchar(16);default:processing;index" json:"status"`
	FailedStep     string                `json:"failed_step,omitempty"`
	ItemCount      int                   `json:"item_count"`
	TotalAmount    float64               `gorm:"type:numeric(10,2)" json:"total_amount"`
	Metadata       datatypes.JSON        `gorm:"type:jsonb;default:'{}'" json:"-"`
}

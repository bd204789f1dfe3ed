package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product is a sellable AI tool. Price is the lifetime/base price in
// dollars; MonthlyPrice and YearlyPrice override the plan resolution
// when set by an admin.
type Product struct {
	BaseModel
	Name                 string         `gorm:"not null" json:"name"`
	Description          string         `json:"description"`
	CategoryID           *uuid.UUID     `gorm:"index" json:"category_id"`
	Price                float64        `gorm:"type:numeric(10,2);not null" json:"price"`
	MonthlyPrice         *float64       `gorm:"type:numeric(10,2)" json:"monthly_price"`
	YearlyPrice          *float64       `gorm:"type:numeric(10,2)" json:"yearly_price"`
	Features             datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"features"`
	ImageURL             string         `json:"image_url"`
	DemoURL              string         `json:"demo_url"`
	IsActive             bool           `gorm:"default:true;index" json:"is_active"`
	SubscriptionRequired bool           `gorm:"default:true" json:"subscription_required"`
	TrialDays            int32          `gorm:"default:0" json:"trial_days"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

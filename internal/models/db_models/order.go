package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// Order is created in pending state at checkout start and moved to
// completed only after every dependent write succeeded. Cancelled and
// refunded are admin-only transitions.
type Order struct {
	BaseModel
	UserID        uuid.UUID   `gorm:"index;not null" json:"user_id"`
	TotalAmount   float64     `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Status        OrderStatus `gorm:"type:varchar(16);default:pending;index" json:"status"`
	PaymentMethod string      `json:"payment_method"`
	PaymentID     string      `json:"payment_id"`

	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}

// OrderItem snapshots the resolved plan price at purchase time. Rows are
// immutable once written; later product price changes never touch them.
type OrderItem struct {
	BaseModel
	OrderID          uuid.UUID        `gorm:"index;not null" json:"order_id"`
	ProductID        uuid.UUID        `gorm:"index;not null" json:"product_id"`
	Quantity         int              `gorm:"not null" json:"quantity"`
	Price            float64          `gorm:"type:numeric(10,2);not null" json:"price"`
	SubscriptionType SubscriptionType `gorm:"type:varchar(16)" json:"subscription_type"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

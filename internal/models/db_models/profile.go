package db_models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierBasic      SubscriptionTier = "basic"
	TierPro        SubscriptionTier = "pro"
	TierEnterprise SubscriptionTier = "enterprise"
)

type Profile struct {
	BaseModel
	Email            string           `gorm:"unique;not null" json:"email"`
	PasswordHash     string           `json:"-"`
	FullName         string           `json:"full_name"`
	Company          string           `json:"company"`
	AvatarURL        string           `json:"avatar_url"`
	Role             UserRole         `gorm:"default:user;index" json:"role"`
	SubscriptionTier SubscriptionTier `gorm:"default:free" json:"subscription_tier"`
}

package request_models

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateUserRequest struct {
	Role             *string `json:"role"`
	SubscriptionTier *string `json:"subscription_tier"`
	FullName         *string `json:"full_name"`
}

package request_models

type CreateProductRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Description          string   `json:"description"`
	CategoryID           *string  `json:"category_id" binding:"omitempty,uuid"`
	Price                float64  `json:"price" binding:"required,gt=0"`
	MonthlyPrice         *float64 `json:"monthly_price" binding:"omitempty,gt=0"`
	YearlyPrice          *float64 `json:"yearly_price" binding:"omitempty,gt=0"`
	Features             []string `json:"features"`
	ImageURL             string   `json:"image_url"`
	DemoURL              string   `json:"demo_url"`
	IsActive             *bool    `json:"is_active"`
	SubscriptionRequired *bool    `json:"subscription_required"`
	TrialDays            int32    `json:"trial_days"`
}

type UpdateProductRequest struct {
	Name                 *string  `json:"name"`
	Description          *string  `json:"description"`
	CategoryID           *string  `json:"category_id" binding:"omitempty,uuid"`
	Price                *float64 `json:"price" binding:"omitempty,gt=0"`
	MonthlyPrice         *float64 `json:"monthly_price"`
	YearlyPrice          *float64 `json:"yearly_price"`
	Features             []string `json:"features"`
	ImageURL             *string  `json:"image_url"`
	DemoURL              *string  `json:"demo_url"`
	IsActive             *bool    `json:"is_active"`
	SubscriptionRequired *bool    `json:"subscription_required"`
	TrialDays            *int32   `json:"trial_days"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

package response_models

type AdminStats struct {
	TotalProducts   int64   `json:"total_products"`
	TotalOrders     int64   `json:"total_orders"`
	TotalUsers      int64   `json:"total_users"`
	TotalCategories int64   `json:"total_categories"`
	TotalRevenue    float64 `json:"total_revenue"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	PendingOrders   int64   `json:"pending_orders"`
}

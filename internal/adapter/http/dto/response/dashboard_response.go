package response

import "taller_pos/internal/usecase"

type DashboardStatsResponse struct {
	TotalUsers     int     `json:"total_users"`
	ActiveUsers    int     `json:"active_users"`
	TotalCustomers int     `json:"total_customers"`
	TotalOrders    int     `json:"total_orders"`
	PendingOrders  int     `json:"pending_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
}

func FromDashboardStats(s usecase.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalUsers:     s.TotalUsers,
		ActiveUsers:    s.ActiveUsers,
		TotalCustomers: s.TotalCustomers,
		TotalOrders:    s.TotalOrders,
		PendingOrders:  s.PendingOrders,
		TotalRevenue:   s.TotalRevenue,
	}
}

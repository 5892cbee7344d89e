package usecase

import (
	"context"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// DashboardStats is the admin landing-page aggregate.
type DashboardStats struct {
	TotalUsers     int     `json:"total_users"`
	ActiveUsers    int     `json:"active_users"`
	TotalCustomers int     `json:"total_customers"`
	TotalOrders    int     `json:"total_orders"`
	PendingOrders  int     `json:"pending_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
}

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	orderRepo    interfaces.IOrderRepository
	customerRepo interfaces.ICustomerRepository
	userRepo     interfaces.IUserRepository
	identity     interfaces.IIdentityService
	logger       *zap.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	orderRepo interfaces.IOrderRepository,
	customerRepo interfaces.ICustomerRepository,
	userRepo interfaces.IUserRepository,
	identity interfaces.IIdentityService,
	logger *zap.Logger,
) *DashboardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		identity:     identity,
		logger:       logger,
	}
}

// Stats aggregates the counters shown on the admin dashboard. Revenue is
// the summed budget of delivered orders; pending counts every order still
// moving through the pipeline.
func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	user, err := u.identity.CurrentUser(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	if !user.IsAdmin() {
		return DashboardStats{}, ErrPermissionDenied
	}

	totalUsers, activeUsers, err := u.userRepo.CountUsers(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	totalCustomers, err := u.customerRepo.CountCustomers(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		TotalCustomers: totalCustomers,
		TotalOrders:    len(orders),
	}
	for _, o := range orders {
		if o.Status == entities.StatusEntregado {
			stats.TotalRevenue += o.Presupuesto
		}
		if !o.Status.IsTerminal() {
			stats.PendingOrders++
		}
	}

	u.logger.Debug("dashboard stats computed", zap.Int("orders", stats.TotalOrders))
	return stats, nil
}

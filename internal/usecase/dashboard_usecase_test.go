package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_pos/internal/domain/entities"
	mock_interfaces "taller_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Stats(t *testing.T) {
	t.Run("non-admin denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityService(ctrl)
		identity.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{
			ID: "user-2", Role: entities.RoleVendedor, IsActive: true,
		}, nil)
		uc := NewDashboardUseCase(nil, nil, nil, identity, nil)

		_, err := uc.Stats(context.Background())
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("aggregates counters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewDashboardUseCase(orderRepo, customerRepo, userRepo, adminIdentity(ctrl), nil)

		userRepo.EXPECT().CountUsers(gomock.Any()).Return(8, 5, nil)
		customerRepo.EXPECT().CountCustomers(gomock.Any()).Return(42, nil)
		orderRepo.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{Status: entities.StatusEntregado, Presupuesto: 1000},
			{Status: entities.StatusEntregado, Presupuesto: 500},
			{Status: entities.StatusPendienteAutorizacion, Presupuesto: 200},
			{Status: entities.StatusCancelado, Presupuesto: 300},
			{Status: entities.StatusProductosValidados, Presupuesto: 700},
		}, nil)

		stats, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalUsers != 8 || stats.ActiveUsers != 5 || stats.TotalCustomers != 42 {
			t.Fatalf("unexpected counts: %+v", stats)
		}
		if stats.TotalOrders != 5 || stats.PendingOrders != 2 {
			t.Fatalf("unexpected order counts: %+v", stats)
		}
		if stats.TotalRevenue != 1500 {
			t.Fatalf("unexpected revenue: %v", stats.TotalRevenue)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"taller_pos/internal/domain/entities"
	mock_interfaces "taller_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func adminIdentity(ctrl *gomock.Controller) *mock_interfaces.MockIIdentityService {
	identity := mock_interfaces.NewMockIIdentityService(ctrl)
	identity.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{
		ID: "user-1", Role: entities.RoleSuperAdmin, IsActive: true,
	}, nil).AnyTimes()
	identity.EXPECT().LogAction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return identity
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), entities.Order{CustomerID: "  "})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("success prices products and transfers diagnostic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, adminIdentity(ctrl), nil)

		repo.EXPECT().GetByFolio(gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || !strings.HasPrefix(o.Folio, "PED-") {
					t.Fatalf("unexpected id/folio: %+v", o)
				}
				if o.Status != entities.StatusPendienteAutorizacion {
					t.Fatalf("expected initial status, got %s", o.Status)
				}
				// Captured part: 100 * 1.16 / 0.61 with payment type 39.
				p := o.Productos[0]
				if p.PrecioVentaPublico < 190.16 || p.PrecioVentaPublico > 190.17 {
					t.Fatalf("unexpected price: %+v", p)
				}
				// Diagnostic service line projected onto Servicios.
				if len(o.Servicios) != 1 || !o.Servicios[0].FromDiagnostic {
					t.Fatalf("expected projected service, got %+v", o.Servicios)
				}
				if o.Presupuesto == 0 {
					t.Fatalf("expected recomputed presupuesto")
				}
				return o, nil
			},
		)

		_, err := uc.CreateOrder(context.Background(), entities.Order{
			CustomerID: "cust-1",
			Productos:  []entities.Product{{Descripcion: "Filtro", Cantidad: 1, Costo: 100, Porcentaje: 39}},
			Diagnostic: &entities.VehicleDiagnostic{Items: []entities.DiagnosticItem{{
				ID: "item-1", Item: "Balatas", Severity: entities.SeverityUrgent,
				ServiceSKU: "SRV-1", ServiceName: "Cambio de balatas", ServicePrice: 800,
			}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("folio fallback after exhausted attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, adminIdentity(ctrl), nil)

		// Every candidate collides; the fallback folio must skip the check.
		repo.EXPECT().GetByFolio(gomock.Any(), gomock.Any()).Return(entities.Order{ID: "taken"}, nil).Times(folioAttempts)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				parts := strings.Split(o.Folio, "-")
				if len(parts) != 3 || parts[0] != "PED" || len(parts[2]) != 8 {
					t.Fatalf("expected uuid fallback folio, got %s", o.Folio)
				}
				return o, nil
			},
		)

		_, err := uc.CreateOrder(context.Background(), entities.Order{CustomerID: "cust-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_SubmitAuthorization(t *testing.T) {
	pending := func() entities.Order {
		return entities.Order{
			ID: "order-1", Folio: "PED-1", CustomerID: "cust-1",
			Status: entities.StatusPendienteAutorizacion,
			Diagnostic: &entities.VehicleDiagnostic{Items: []entities.DiagnosticItem{
				{ID: "item-1", Item: "Balatas", Severity: entities.SeverityUrgent, EstimatedCost: 500},
				{ID: "item-2", Item: "Bujías", Severity: entities.SeverityRecommended, EstimatedCost: 300},
			}},
		}
	}

	t.Run("rejected item without reason refused before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, adminIdentity(ctrl), nil)

		// Only the read is expected; no save/update calls may happen.
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(pending(), nil)

		_, err := uc.SubmitAuthorization(context.Background(), "order-1", []AuthorizationDecision{
			{DiagnosticItemID: "item-1", IsAuthorized: true},
			{DiagnosticItemID: "item-2", IsAuthorized: false, RejectionReason: "   "},
		})
		if !errors.Is(err, ErrMissingRejectReason) {
			t.Fatalf("expected ErrMissingRejectReason, got %v", err)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, adminIdentity(ctrl), nil)

		o := pending()
		o.Status = entities.StatusAutorizado
		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(o, nil)

		_, err := uc.SubmitAuthorization(context.Background(), "order-1", nil)
		if !errors.Is(err, ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized, got %v", err)
		}
	})

	t.Run("success records lost sales and advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, adminIdentity(ctrl), nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(pending(), nil)
		repo.EXPECT().SaveAuthorizationItems(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.DiagnosticItemAuthorization) error {
				if len(items) != 2 {
					t.Fatalf("expected 2 authorization records, got %d", len(items))
				}
				return nil
			},
		)
		repo.EXPECT().SaveLostSales(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sales []entities.LostSale) error {
				if len(sales) != 1 || sales[0].RejectionReason != "muy caro" {
					t.Fatalf("unexpected lost sales: %+v", sales)
				}
				return nil
			},
		)
		repo.EXPECT().UpdateLines(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				// item-1 is advisory (no service SKU) so its approval adds a product line.
				if len(o.Productos) != 1 || !o.Productos[0].FromDiagnostic {
					t.Fatalf("expected committed advisory product, got %+v", o.Productos)
				}
				if o.TotalAuthorizedAmount != 500 || o.TotalRejectedAmount != 300 {
					t.Fatalf("unexpected totals: %+v", o)
				}
				return o, nil
			},
		)
		repo.EXPECT().UpdateStatus(gomock.Any(), "order-1", entities.StatusAutorizado, gomock.Any()).
			Return(entities.Order{ID: "order-1", Status: entities.StatusAutorizado}, nil)

		res, err := uc.SubmitAuthorization(context.Background(), "order-1", []AuthorizationDecision{
			{DiagnosticItemID: "item-1", IsAuthorized: true},
			{DiagnosticItemID: "item-2", IsAuthorized: false, RejectionReason: "muy caro"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusAutorizado {
			t.Fatalf("expected Autorizado, got %s", res.Status)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	t.Run("permission denied for technician outside captura", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		identity := mock_interfaces.NewMockIIdentityService(ctrl)
		identity.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{
			ID: "user-2", Role: entities.RoleTecnico, IsActive: true,
		}, nil)
		uc := NewOrderUseCase(repo, nil, identity, nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.StatusProductosValidados,
		}, nil)

		_, err := uc.Cancel(context.Background(), "order-1")
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("terminal order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, adminIdentity(ctrl), nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.StatusEntregado,
		}, nil)

		_, err := uc.Cancel(context.Background(), "order-1")
		if !errors.Is(err, ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, adminIdentity(ctrl), nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.StatusPendienteAutorizacion,
		}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "order-1", entities.StatusCancelado, nil).
			Return(entities.Order{ID: "order-1", Status: entities.StatusCancelado}, nil)

		res, err := uc.Cancel(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusCancelado {
			t.Fatalf("expected Cancelado, got %s", res.Status)
		}
	})
}

func TestOrderUseCase_BudgetSnapshot(t *testing.T) {
	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewOrderUseCase(repo, customers, adminIdentity(ctrl), nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1", CustomerID: "cust-1"}, nil)
		customers.EXPECT().GetCustomer(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.BudgetSnapshot(context.Background(), "order-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success with vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewOrderUseCase(repo, customers, adminIdentity(ctrl), nil)

		repo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", CustomerID: "cust-1", VehicleID: "veh-1",
			Productos: []entities.Product{{Descripcion: "Filtro", Cantidad: 2, Precio: 100}},
			Servicios: []entities.Service{{Nombre: "Afinación", Precio: 300}},
		}, nil)
		customers.EXPECT().GetCustomer(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)
		customers.EXPECT().GetVehicle(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)

		snap, err := uc.BudgetSnapshot(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.ProductsTotal != 200 || snap.ServicesTotal != 300 || snap.Total != 500 {
			t.Fatalf("unexpected totals: %+v", snap)
		}
		if snap.Vehicle == nil || snap.Vehicle.ID != "veh-1" {
			t.Fatalf("expected vehicle in snapshot")
		}
	})
}

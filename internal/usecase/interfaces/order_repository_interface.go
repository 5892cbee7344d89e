package interfaces

import (
	"context"

	"taller_pos/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/mock_order_repository.go -package=mock_interfaces

// IOrderRepository abstracts DynamoDB persistence for work orders.
//
// UpdateStatus is the generic "write status plus arbitrary additional
// columns" primitive every phase transition uses; it returns the
// canonical row after the write so callers apply the server's state to
// their local copy instead of re-stamping their own guess.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByFolio(ctx context.Context, folio string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)

	// Queues for the two approval gates.
	ListPendingAdminValidation(ctx context.Context) ([]entities.Order, error)
	ListPendingPreOC(ctx context.Context) ([]entities.Order, error)

	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, extra map[string]interface{}) (entities.Order, error)
	UpdateLines(ctx context.Context, o entities.Order) (entities.Order, error)

	SaveAuthorizationItems(ctx context.Context, orderID string, items []entities.DiagnosticItemAuthorization) error
	SaveLostSales(ctx context.Context, sales []entities.LostSale) error
}

package interfaces

import (
	"context"

	"taller_pos/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/mock_payment_repository.go -package=mock_interfaces

// IPaymentRepository abstracts DynamoDB persistence for DeliveryPayment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.DeliveryPayment) (entities.DeliveryPayment, error)
	GetByID(ctx context.Context, id string) (entities.DeliveryPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.DeliveryPayment, error)
}

package interfaces

import (
	"context"

	"taller_pos/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/mock_customer_repository.go -package=mock_interfaces

// ICustomerRepository gives the core read access to the customers and
// vehicles tables: report snapshots and dashboard counts only.
type ICustomerRepository interface {
	GetCustomer(ctx context.Context, id string) (entities.Customer, error)
	GetVehicle(ctx context.Context, id string) (entities.Vehicle, error)
	CountCustomers(ctx context.Context) (int, error)
}

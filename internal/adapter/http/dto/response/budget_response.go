package response

import (
	"time"

	"taller_pos/internal/domain/entities"
)

// BudgetSnapshotResponse is the Order+Customer+Vehicle view the report
// renderer consumes. The totals are frozen at generation time.
type BudgetSnapshotResponse struct {
	Order         OrderResponse     `json:"order"`
	Customer      entities.Customer `json:"customer"`
	Vehicle       *entities.Vehicle `json:"vehicle,omitempty"`
	ProductsTotal float64           `json:"products_total"`
	ServicesTotal float64           `json:"services_total"`
	Total         float64           `json:"total"`
	GeneratedAt   time.Time         `json:"generated_at"`
}

func FromBudgetSnapshot(s entities.BudgetSnapshot) BudgetSnapshotResponse {
	return BudgetSnapshotResponse{
		Order:         FromOrder(s.Order),
		Customer:      s.Customer,
		Vehicle:       s.Vehicle,
		ProductsTotal: s.ProductsTotal,
		ServicesTotal: s.ServicesTotal,
		Total:         s.Total,
		GeneratedAt:   s.GeneratedAt,
	}
}

package response

import (
	"time"

	"taller_pos/internal/domain/entities"
)

type OrderResponse struct {
	ID         string `json:"id"`
	Folio      string `json:"folio"`
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id,omitempty"`
	Tienda     string `json:"tienda,omitempty"`
	Division   string `json:"division,omitempty"`

	Productos  []entities.Product          `json:"productos"`
	Servicios  []entities.Service          `json:"servicios"`
	Diagnostic *entities.VehicleDiagnostic `json:"diagnostic,omitempty"`

	Presupuesto float64 `json:"presupuesto"`
	Status      string  `json:"status"`

	Promotion          string `json:"promotion,omitempty"`
	TechnicianName     string `json:"technician_name,omitempty"`
	PurchaseOrderFolio string `json:"purchase_order_folio,omitempty"`

	TotalAuthorizedAmount float64 `json:"total_authorized_amount,omitempty"`
	TotalRejectedAmount   float64 `json:"total_rejected_amount,omitempty"`

	IsProcessingXML           bool `json:"is_processing_xml,omitempty"`
	IsValidatingProducts      bool `json:"is_validating_products,omitempty"`
	IsProcessingProducts      bool `json:"is_processing_products,omitempty"`
	IsGeneratingPurchaseOrder bool `json:"is_generating_purchase_order,omitempty"`

	AdminValidation      string `json:"admin_validation_status,omitempty"`
	AdminValidationNotes string `json:"admin_validation_notes,omitempty"`
	PreOCValidation      string `json:"pre_oc_validation_status,omitempty"`
	PreOCValidationNotes string `json:"pre_oc_validation_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		Folio:      o.Folio,
		CustomerID: o.CustomerID,
		VehicleID:  o.VehicleID,
		Tienda:     o.Tienda,
		Division:   o.Division,

		Productos:  o.Productos,
		Servicios:  o.Servicios,
		Diagnostic: o.Diagnostic,

		Presupuesto: o.Presupuesto,
		Status:      string(o.Status),

		Promotion:          o.Promotion,
		TechnicianName:     o.TechnicianName,
		PurchaseOrderFolio: o.PurchaseOrderFolio,

		TotalAuthorizedAmount: o.TotalAuthorizedAmount,
		TotalRejectedAmount:   o.TotalRejectedAmount,

		IsProcessingXML:           o.IsProcessingXML,
		IsValidatingProducts:      o.IsValidatingProducts,
		IsProcessingProducts:      o.IsProcessingProducts,
		IsGeneratingPurchaseOrder: o.IsGeneratingPurchaseOrder,

		AdminValidation:      string(o.AdminValidation),
		AdminValidationNotes: o.AdminValidationNotes,
		PreOCValidation:      string(o.PreOCValidation),
		PreOCValidationNotes: o.PreOCValidationNotes,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

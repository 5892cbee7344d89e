package request

import (
	"strings"

	"taller_pos/internal/domain/entities"
)

type ProductRequest struct {
	Descripcion string  `json:"descripcion" binding:"required"`
	Cantidad    int     `json:"cantidad" binding:"required"`
	Costo       float64 `json:"costo"`
	Precio      float64 `json:"precio"`
	Porcentaje  int     `json:"porcentaje"`
	SKU         string  `json:"sku"`
	Proveedor   string  `json:"proveedor"`
}

type ServiceRequest struct {
	SKU         string  `json:"sku"`
	Nombre      string  `json:"nombre" binding:"required"`
	Categoria   string  `json:"categoria"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio" binding:"required"`
}

type DiagnosticItemRequest struct {
	ID            string  `json:"id"`
	Category      string  `json:"category"`
	Item          string  `json:"item" binding:"required"`
	Description   string  `json:"description"`
	Severity      string  `json:"severity" binding:"required"`
	EstimatedCost float64 `json:"estimatedCost"`
	ServiceSKU    string  `json:"serviceSku"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	Notes         string  `json:"notes"`
}

type DiagnosticPartRequest struct {
	SKU         string  `json:"sku"`
	Descripcion string  `json:"descripcion" binding:"required"`
	Cantidad    int     `json:"cantidad" binding:"required"`
	Costo       float64 `json:"costo"`
	Precio      float64 `json:"precio"`
	Porcentaje  int     `json:"porcentaje"`
	Severity    string  `json:"severity"`
}

type VehicleInfoRequest struct {
	Plate   string `json:"plate"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Year    string `json:"year"`
	Color   string `json:"color"`
	Mileage string `json:"mileage"`
}

type DiagnosticRequest struct {
	VehicleInfo    VehicleInfoRequest      `json:"vehicleInfo"`
	Items          []DiagnosticItemRequest `json:"items" binding:"required"`
	Parts          []DiagnosticPartRequest `json:"parts"`
	TechnicianName string                  `json:"technicianName"`
}

// CreateOrderRequest is the capture payload for a new work order. Line
// items are optional at creation; the diagnostic, when present, is
// projected onto the order lines by the use case.
type CreateOrderRequest struct {
	CustomerID     string             `json:"customer_id" binding:"required"`
	VehicleID      string             `json:"vehicle_id"`
	Tienda         string             `json:"tienda"`
	Division       string             `json:"division"`
	Promotion      string             `json:"promotion"`
	TechnicianName string             `json:"technician_name"`
	Productos      []ProductRequest   `json:"productos"`
	Servicios      []ServiceRequest   `json:"servicios"`
	Diagnostic     *DiagnosticRequest `json:"diagnostic"`
}

type UpdateProductsRequest struct {
	Productos []ProductRequest `json:"productos" binding:"required"`
}

type UpdateServicesRequest struct {
	Servicios []ServiceRequest `json:"servicios" binding:"required"`
}

type AuthorizationDecisionRequest struct {
	DiagnosticItemID string `json:"diagnostic_item_id" binding:"required"`
	IsAuthorized     *bool  `json:"is_authorized" binding:"required"`
	RejectionReason  string `json:"rejection_reason"`
	Notes            string `json:"notes"`
}

type AuthorizationRequest struct {
	Decisions []AuthorizationDecisionRequest `json:"decisions" binding:"required"`
}

func (r CreateOrderRequest) ToOrder() entities.Order {
	o := entities.Order{
		CustomerID:     strings.TrimSpace(r.CustomerID),
		VehicleID:      strings.TrimSpace(r.VehicleID),
		Tienda:         r.Tienda,
		Division:       r.Division,
		Promotion:      r.Promotion,
		TechnicianName: r.TechnicianName,
		Productos:      ToProducts(r.Productos),
		Servicios:      ToServices(r.Servicios),
	}
	if r.Diagnostic != nil {
		d := r.Diagnostic.ToDiagnostic()
		o.Diagnostic = &d
	}
	return o
}

func ToProducts(in []ProductRequest) []entities.Product {
	out := make([]entities.Product, 0, len(in))
	for _, p := range in {
		out = append(out, entities.Product{
			Descripcion: p.Descripcion,
			Cantidad:    p.Cantidad,
			Costo:       p.Costo,
			Precio:      p.Precio,
			Porcentaje:  p.Porcentaje,
			SKU:         p.SKU,
			Proveedor:   p.Proveedor,
		})
	}
	return out
}

func ToServices(in []ServiceRequest) []entities.Service {
	out := make([]entities.Service, 0, len(in))
	for _, s := range in {
		out = append(out, entities.Service{
			SKU:         s.SKU,
			Nombre:      s.Nombre,
			Categoria:   s.Categoria,
			Descripcion: s.Descripcion,
			Precio:      s.Precio,
		})
	}
	return out
}

func (r DiagnosticRequest) ToDiagnostic() entities.VehicleDiagnostic {
	d := entities.VehicleDiagnostic{
		VehicleInfo: entities.VehicleInfo{
			Plate:   r.VehicleInfo.Plate,
			Brand:   r.VehicleInfo.Brand,
			Model:   r.VehicleInfo.Model,
			Year:    r.VehicleInfo.Year,
			Color:   r.VehicleInfo.Color,
			Mileage: r.VehicleInfo.Mileage,
		},
		TechnicianName: r.TechnicianName,
	}
	for _, it := range r.Items {
		d.Items = append(d.Items, entities.DiagnosticItem{
			ID:            it.ID,
			Category:      it.Category,
			Item:          it.Item,
			Description:   it.Description,
			Severity:      entities.DiagnosticSeverity(it.Severity),
			EstimatedCost: it.EstimatedCost,
			ServiceSKU:    it.ServiceSKU,
			ServiceName:   it.ServiceName,
			ServicePrice:  it.ServicePrice,
			Notes:         it.Notes,
		})
	}
	for _, p := range r.Parts {
		d.Parts = append(d.Parts, entities.DiagnosticPart{
			SKU:         p.SKU,
			Descripcion: p.Descripcion,
			Cantidad:    p.Cantidad,
			Costo:       p.Costo,
			Precio:      p.Precio,
			Porcentaje:  p.Porcentaje,
			Severity:    entities.DiagnosticSeverity(p.Severity),
		})
	}
	return d
}

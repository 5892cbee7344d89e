package entities

import "time"

// OrderStatus is the lifecycle status of a work order (pedido).
//
// Domain notes:
//   - Status strings are the exact values persisted and filtered on; they
//     are user-facing and stay in Spanish.
//   - Orders move strictly forward through the phase sequence or divert to
//     a terminal rejection status; there is no backward transition.
type OrderStatus string

const (
	StatusPendienteAutorizacion OrderStatus = "Pendiente de Autorización"
	StatusAutorizado            OrderStatus = "Autorizado"
	StatusProcesandoXML         OrderStatus = "Procesando XML"
	StatusPendienteValidacion   OrderStatus = "Pendiente de Validación de Productos"
	StatusValidandoProductos    OrderStatus = "Validando Productos"
	StatusProductosValidados    OrderStatus = "Productos Validados"
	StatusProcesandoProductos   OrderStatus = "Procesando Productos"
	StatusProductosProcesados   OrderStatus = "Productos Procesados"
	StatusPreOCValidado         OrderStatus = "Pre-OC Validado"
	StatusGenerandoOC           OrderStatus = "Generando Orden de Compra"
	StatusOCGenerada            OrderStatus = "OC Generada"
	StatusEntregado             OrderStatus = "Entregado"
	StatusCancelado             OrderStatus = "Cancelado"
	StatusRechazadoAdmin        OrderStatus = "Rechazado por Admin"
	StatusPreOCRechazado        OrderStatus = "Pre-OC Rechazado"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusEntregado, StatusCancelado, StatusRechazadoAdmin, StatusPreOCRechazado:
		return true
	}
	return false
}

// ValidationStatus is the approval sub-state used by the admin validation
// and pre-OC validation gates. The empty value means the gate has not been
// reached yet.
type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "pending"
	ValidationApproved ValidationStatus = "approved"
	ValidationRejected ValidationStatus = "rejected"
)

// Product is a part (refacción) line on an order.
//
// Pricing fields are populated by the pricing calculator; PorcentajeMargen
// is only set on the new-product path, the edit path leaves it untouched.
type Product struct {
	Descripcion        string  `json:"descripcion"`
	Cantidad           int     `json:"cantidad"`
	Costo              float64 `json:"costo,omitempty"`
	CostoConIva        float64 `json:"costoConIva,omitempty"`
	Precio             float64 `json:"precio"`
	PrecioVentaPublico float64 `json:"precioVentaPublico,omitempty"`
	Margen             float64 `json:"margen,omitempty"`
	Porcentaje         int     `json:"porcentaje,omitempty"`
	PorcentajeMargen   float64 `json:"porcentajeMargen,omitempty"`
	SKU                string  `json:"sku,omitempty"`
	SKUOriginal        string  `json:"skuOriginal,omitempty"`
	SKUFinal           string  `json:"skuFinal,omitempty"`
	Proveedor          string  `json:"proveedor,omitempty"`
	FromDiagnostic     bool    `json:"fromDiagnostic,omitempty"`
	DiagnosticSeverity string  `json:"diagnosticSeverity,omitempty"`
}

// Service is a labor (mano de obra) line on an order.
type Service struct {
	SKU                string  `json:"sku"`
	Nombre             string  `json:"nombre"`
	Categoria          string  `json:"categoria"`
	Descripcion        string  `json:"descripcion"`
	Precio             float64 `json:"precio"`
	FromDiagnostic     bool    `json:"fromDiagnostic,omitempty"`
	DiagnosticSeverity string  `json:"diagnosticSeverity,omitempty"`
}

// Order is the central aggregate: a work order for an automotive service
// center, owning its products, services and diagnostic.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (folio-index): folio
//   - GSI2 (status-index): status
//
// Invariant: Status and the two validation sub-states stay consistent —
// an order is never in StatusProductosProcesados while AdminValidation is
// not ValidationApproved. The phase use case enforces this on every write.
type Order struct {
	ID         string    `json:"id"`
	Folio      string    `json:"folio"`
	CustomerID string    `json:"customer_id"`
	VehicleID  string    `json:"vehicle_id,omitempty"`
	Tienda     string    `json:"tienda"`
	Division   string    `json:"division"`
	Productos  []Product `json:"productos"`
	Servicios  []Service `json:"servicios"`

	Diagnostic *VehicleDiagnostic `json:"diagnostic,omitempty"`

	Presupuesto float64     `json:"presupuesto"`
	Status      OrderStatus `json:"status"`

	Promotion          string `json:"promotion,omitempty"`
	TechnicianName     string `json:"technician_name,omitempty"`
	PurchaseOrderFolio string `json:"purchase_order_folio,omitempty"`

	TotalAuthorizedAmount float64 `json:"total_authorized_amount,omitempty"`
	TotalRejectedAmount   float64 `json:"total_rejected_amount,omitempty"`

	// Transient in-progress flags; always reset in failure branches so a
	// reader never sees a stuck "processing" order.
	IsProcessingXML           bool `json:"is_processing_xml,omitempty"`
	IsValidatingProducts      bool `json:"is_validating_products,omitempty"`
	IsProcessingProducts      bool `json:"is_processing_products,omitempty"`
	IsGeneratingPurchaseOrder bool `json:"is_generating_purchase_order,omitempty"`

	AdminValidation      ValidationStatus `json:"admin_validation_status,omitempty"`
	AdminValidationNotes string           `json:"admin_validation_notes,omitempty"`
	AdminValidatedBy     string           `json:"admin_validated_by,omitempty"`
	AdminValidatedAt     *time.Time       `json:"admin_validated_at,omitempty"`

	PreOCValidation      ValidationStatus `json:"pre_oc_validation_status,omitempty"`
	PreOCValidationNotes string           `json:"pre_oc_validation_notes,omitempty"`
	PreOCValidatedBy     string           `json:"pre_oc_validated_by,omitempty"`
	PreOCValidatedAt     *time.Time       `json:"pre_oc_validated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasContent reports whether the order carries at least one product,
// service or diagnostic finding. Required to leave the initial phase.
func (o Order) HasContent() bool {
	if len(o.Productos) > 0 || len(o.Servicios) > 0 {
		return true
	}
	return o.Diagnostic != nil && len(o.Diagnostic.Items) > 0
}

// ProductsTotal sums precio*cantidad over all products.
func (o Order) ProductsTotal() float64 {
	total := 0.0
	for _, p := range o.Productos {
		total += p.Precio * float64(p.Cantidad)
	}
	return total
}

// ServicesTotal sums precio over all services.
func (o Order) ServicesTotal() float64 {
	total := 0.0
	for _, s := range o.Servicios {
		total += s.Precio
	}
	return total
}

// RecalculatePresupuesto refreshes the budget total from the current line
// items and returns the new value.
func (o *Order) RecalculatePresupuesto() float64 {
	o.Presupuesto = o.ProductsTotal() + o.ServicesTotal()
	return o.Presupuesto
}

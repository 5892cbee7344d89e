package entities

import "time"

// DiagnosticSeverity is the triage level a technician assigns to a finding.
//
// "urgent" and "recommended" findings are presented to the customer for
// authorization; "good" findings carry no cost and require no action.
type DiagnosticSeverity string

const (
	SeverityUrgent      DiagnosticSeverity = "urgent"
	SeverityRecommended DiagnosticSeverity = "recommended"
	SeverityGood        DiagnosticSeverity = "good"
)

// RequiresAuthorization reports whether a finding of this severity must be
// surfaced for customer sign-off.
func (s DiagnosticSeverity) RequiresAuthorization() bool {
	return s == SeverityUrgent || s == SeverityRecommended
}

// DiagnosticItem is one technician finding. Items that carry both a
// service SKU and a service name are projectable onto the order's labor
// lines; items without them are pure observations.
type DiagnosticItem struct {
	ID            string             `json:"id,omitempty"`
	Category      string             `json:"category"`
	Item          string             `json:"item"`
	Description   string             `json:"description"`
	Severity      DiagnosticSeverity `json:"severity"`
	EstimatedCost float64            `json:"estimatedCost,omitempty"`

	ServiceSKU   string  `json:"serviceSku,omitempty"`
	ServiceName  string  `json:"serviceName,omitempty"`
	ServicePrice float64 `json:"servicePrice,omitempty"`

	IsAuthorized    bool   `json:"isAuthorized,omitempty"`
	IsRejected      bool   `json:"isRejected,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// DiagnosticPart is a part recommendation attached to a diagnostic.
type DiagnosticPart struct {
	SKU         string             `json:"sku,omitempty"`
	Descripcion string             `json:"descripcion"`
	Cantidad    int                `json:"cantidad"`
	Costo       float64            `json:"costo,omitempty"`
	Precio      float64            `json:"precio"`
	Margen      float64            `json:"margen,omitempty"`
	Porcentaje  int                `json:"porcentaje,omitempty"`
	Severity    DiagnosticSeverity `json:"severity,omitempty"`
}

// VehicleInfo is the vehicle snapshot captured with a diagnostic.
type VehicleInfo struct {
	Plate   string `json:"plate,omitempty"`
	Brand   string `json:"brand,omitempty"`
	Model   string `json:"model,omitempty"`
	Year    string `json:"year,omitempty"`
	Color   string `json:"color,omitempty"`
	Mileage string `json:"mileage,omitempty"`
}

// VehicleDiagnostic is the technician's full inspection result for an
// order. The order owns it exclusively.
type VehicleDiagnostic struct {
	VehicleInfo    VehicleInfo      `json:"vehicleInfo"`
	Items          []DiagnosticItem `json:"items"`
	Parts          []DiagnosticPart `json:"parts,omitempty"`
	TechnicianName string           `json:"technicianName,omitempty"`
}

// DiagnosticItemAuthorization is the persisted record of one customer
// authorization decision over a diagnostic item.
type DiagnosticItemAuthorization struct {
	ID               string             `json:"id,omitempty"`
	OrderID          string             `json:"order_id"`
	DiagnosticItemID string             `json:"diagnostic_item_id"`
	ItemName         string             `json:"item_name"`
	Category         string             `json:"category"`
	Description      string             `json:"description"`
	Severity         DiagnosticSeverity `json:"severity"`
	EstimatedCost    float64            `json:"estimated_cost"`
	IsAuthorized     bool               `json:"is_authorized"`
	RejectionReason  string             `json:"rejection_reason,omitempty"`
	AuthorizedAt     *time.Time         `json:"authorization_date,omitempty"`
	Notes            string             `json:"notes,omitempty"`
}

// LostSale records a rejected diagnostic item for statistical review.
type LostSale struct {
	ID              string             `json:"id,omitempty"`
	OrderID         string             `json:"order_id"`
	OrderFolio      string             `json:"order_folio"`
	ItemName        string             `json:"item_name"`
	Description     string             `json:"description"`
	Severity        DiagnosticSeverity `json:"severity"`
	EstimatedCost   float64            `json:"estimated_cost"`
	RejectionReason string             `json:"rejection_reason"`
	CreatedAt       time.Time          `json:"created_at"`
}

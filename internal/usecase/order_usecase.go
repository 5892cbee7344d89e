package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/domain/permissions"
	"taller_pos/internal/domain/pricing"
	"taller_pos/internal/domain/workflow"
	"taller_pos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidFolio         = errors.New("invalid folio")
	ErrInvalidCustomerID    = errors.New("invalid customer_id")
	ErrOrderFinalized       = errors.New("order is in a final state")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrMissingRejectReason  = errors.New("rejection reason required for every rejected item")
	ErrNoAuthorizableItems  = errors.New("order has no items pending authorization")
	ErrCustomerNotFound     = errors.New("customer not found")
)

// folioAttempts bounds the uniqueness loop before the UUID fallback.
const folioAttempts = 10

// AuthorizationDecision is one customer decision over a diagnostic item,
// as submitted by the advisor.
type AuthorizationDecision struct {
	DiagnosticItemID string `json:"diagnostic_item_id"`
	IsAuthorized     bool   `json:"is_authorized"`
	RejectionReason  string `json:"rejection_reason,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// IOrderUseCase exposes the capture-phase operations on a work order:
// creation, line editing, diagnostic capture and the customer
// authorization that moves the order into the procurement pipeline.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByFolio(ctx context.Context, folio string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)

	UpdateProducts(ctx context.Context, orderID string, products []entities.Product) (entities.Order, error)
	UpdateServices(ctx context.Context, orderID string, services []entities.Service) (entities.Order, error)
	SaveDiagnostic(ctx context.Context, orderID string, d entities.VehicleDiagnostic) (entities.Order, error)

	SubmitAuthorization(ctx context.Context, orderID string, decisions []AuthorizationDecision) (entities.Order, error)
	Cancel(ctx context.Context, orderID string) (entities.Order, error)

	BudgetSnapshot(ctx context.Context, orderID string) (entities.BudgetSnapshot, error)
}

type OrderUseCase struct {
	repo         interfaces.IOrderRepository
	customerRepo interfaces.ICustomerRepository
	identity     interfaces.IIdentityService
	logger       *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, customerRepo interfaces.ICustomerRepository, identity interfaces.IIdentityService, logger *zap.Logger) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{repo: repo, customerRepo: customerRepo, identity: identity, logger: logger}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.CustomerID = strings.TrimSpace(o.CustomerID)
	if o.CustomerID == "" {
		return entities.Order{}, ErrInvalidCustomerID
	}

	folio, err := u.uniqueFolio(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.Folio = folio
	o.Status = entities.StatusPendienteAutorizacion
	o.AdminValidation = ""
	o.PreOCValidation = ""
	o.CreatedAt = now
	o.UpdatedAt = now

	priceProducts(o.Productos)
	if o.Diagnostic != nil {
		o.TransferDiagnostic()
	}
	o.RecalculatePresupuesto()

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.logger.Error("order create failed", zap.String("folio", folio), zap.Error(err))
		return entities.Order{}, err
	}

	u.audit(ctx, "order_created", map[string]interface{}{"order_id": created.ID, "folio": created.Folio})
	u.logger.Info("order created", zap.String("order_id", created.ID), zap.String("folio", created.Folio))
	return created, nil
}

// uniqueFolio builds a PED-<yyyymmdd>-<millis>-<rand4> folio and retries
// against the store up to folioAttempts times. If every candidate
// collides it falls back to a UUID-derived folio that skips the
// uniqueness check entirely.
func (u *OrderUseCase) uniqueFolio(ctx context.Context) (string, error) {
	day := time.Now().UTC().Format("20060102")

	for i := 0; i < folioAttempts; i++ {
		candidate := fmt.Sprintf("PED-%s-%d-%04d", day, time.Now().UnixMilli(), rand.Intn(10000))
		existing, err := u.repo.GetByFolio(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return candidate, nil
		}
	}

	u.logger.Warn("folio uniqueness loop exhausted, using uuid fallback")
	return fmt.Sprintf("PED-%s-%s", day, uuid.NewString()[:8]), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByFolio(ctx context.Context, folio string) (entities.Order, error) {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return entities.Order{}, ErrInvalidFolio
	}

	o, err := u.repo.GetByFolio(ctx, folio)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) UpdateProducts(ctx context.Context, orderID string, products []entities.Product) (entities.Order, error) {
	o, err := u.editableOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	priceProducts(products)
	o.Productos = products
	o.RecalculatePresupuesto()
	o.UpdatedAt = time.Now().UTC()

	return u.repo.UpdateLines(ctx, o)
}

func (u *OrderUseCase) UpdateServices(ctx context.Context, orderID string, services []entities.Service) (entities.Order, error) {
	o, err := u.editableOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	o.Servicios = services
	o.RecalculatePresupuesto()
	o.UpdatedAt = time.Now().UTC()

	return u.repo.UpdateLines(ctx, o)
}

func (u *OrderUseCase) SaveDiagnostic(ctx context.Context, orderID string, d entities.VehicleDiagnostic) (entities.Order, error) {
	o, err := u.editableOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	for i := range d.Items {
		if d.Items[i].ID == "" {
			d.Items[i].ID = uuid.NewString()
		}
	}

	o.Diagnostic = &d
	if d.TechnicianName != "" {
		o.TechnicianName = d.TechnicianName
	}
	o.TransferDiagnosticToExisting()
	o.UpdatedAt = time.Now().UTC()

	return u.repo.UpdateLines(ctx, o)
}

// SubmitAuthorization records the customer's per-item decisions. Every
// rejected item must carry a non-empty reason; the whole submission is
// refused before any write otherwise. Rejected items are additionally
// recorded as lost sales, authorized advisory findings (no service
// projection) are committed as product lines, and the order advances to
// Autorizado.
func (u *OrderUseCase) SubmitAuthorization(ctx context.Context, orderID string, decisions []AuthorizationDecision) (entities.Order, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status != entities.StatusPendienteAutorizacion {
		return entities.Order{}, fmt.Errorf("%w: %s", ErrOrderFinalized, o.Status)
	}
	if ok, reason := workflow.CanAdvance(o); !ok {
		return entities.Order{}, fmt.Errorf("%w: %s", ErrPermissionDenied, reason)
	}
	if err := u.checkPermission(ctx, o, permissions.ActionAdvance); err != nil {
		return entities.Order{}, err
	}
	if o.Diagnostic == nil || len(o.Diagnostic.Items) == 0 {
		if len(decisions) > 0 {
			return entities.Order{}, ErrNoAuthorizableItems
		}
	}

	for _, d := range decisions {
		if !d.IsAuthorized && strings.TrimSpace(d.RejectionReason) == "" {
			return entities.Order{}, ErrMissingRejectReason
		}
	}

	byItem := make(map[string]AuthorizationDecision, len(decisions))
	for _, d := range decisions {
		byItem[d.DiagnosticItemID] = d
	}

	now := time.Now().UTC()
	var records []entities.DiagnosticItemAuthorization
	var lost []entities.LostSale
	totalAuthorized, totalRejected := 0.0, 0.0

	if o.Diagnostic != nil {
		for i := range o.Diagnostic.Items {
			item := &o.Diagnostic.Items[i]
			d, ok := byItem[item.ID]
			if !ok {
				continue
			}

			item.IsAuthorized = d.IsAuthorized
			item.IsRejected = !d.IsAuthorized
			item.RejectionReason = strings.TrimSpace(d.RejectionReason)
			if d.Notes != "" {
				item.Notes = d.Notes
			}

			records = append(records, entities.DiagnosticItemAuthorization{
				ID:               uuid.NewString(),
				OrderID:          o.ID,
				DiagnosticItemID: item.ID,
				ItemName:         item.Item,
				Category:         item.Category,
				Description:      item.Description,
				Severity:         item.Severity,
				EstimatedCost:    item.EstimatedCost,
				IsAuthorized:     d.IsAuthorized,
				RejectionReason:  item.RejectionReason,
				AuthorizedAt:     &now,
				Notes:            item.Notes,
			})

			if d.IsAuthorized {
				totalAuthorized += item.EstimatedCost
				// Advisory findings carry no projected service line;
				// authorization is what commits their cost to the order.
				if item.ServiceSKU == "" && item.EstimatedCost > 0 {
					o.Productos = append(o.Productos, entities.Product{
						Descripcion:        item.Item,
						Cantidad:           1,
						Precio:             item.EstimatedCost,
						FromDiagnostic:     true,
						DiagnosticSeverity: string(item.Severity),
					})
				}
			} else {
				totalRejected += item.EstimatedCost
				lost = append(lost, entities.LostSale{
					ID:              uuid.NewString(),
					OrderID:         o.ID,
					OrderFolio:      o.Folio,
					ItemName:        item.Item,
					Description:     item.Description,
					Severity:        item.Severity,
					EstimatedCost:   item.EstimatedCost,
					RejectionReason: item.RejectionReason,
					CreatedAt:       now,
				})
			}
		}
	}

	if len(records) > 0 {
		if err := u.repo.SaveAuthorizationItems(ctx, o.ID, records); err != nil {
			return entities.Order{}, err
		}
	}
	if len(lost) > 0 {
		if err := u.repo.SaveLostSales(ctx, lost); err != nil {
			return entities.Order{}, err
		}
	}

	o.TotalAuthorizedAmount = totalAuthorized
	o.TotalRejectedAmount = totalRejected
	o.RecalculatePresupuesto()
	o.UpdatedAt = now
	if _, err := u.repo.UpdateLines(ctx, o); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusAutorizado, map[string]interface{}{
		"total_authorized_amount": totalAuthorized,
		"total_rejected_amount":   totalRejected,
	})
	if err != nil {
		return entities.Order{}, err
	}

	u.audit(ctx, "order_authorized", map[string]interface{}{
		"order_id":         o.ID,
		"folio":            o.Folio,
		"total_authorized": totalAuthorized,
		"total_rejected":   totalRejected,
	})
	u.logger.Info("authorization submitted",
		zap.String("order_id", o.ID),
		zap.Int("decisions", len(decisions)),
		zap.Int("lost_sales", len(lost)))
	return updated, nil
}

func (u *OrderUseCase) Cancel(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status.IsTerminal() {
		return entities.Order{}, ErrOrderFinalized
	}
	if err := u.checkPermission(ctx, o, permissions.ActionEdit); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusCancelado, nil)
	if err != nil {
		return entities.Order{}, err
	}

	u.audit(ctx, "order_cancelled", map[string]interface{}{"order_id": o.ID, "folio": o.Folio})
	return updated, nil
}

// BudgetSnapshot assembles the Order+Customer+Vehicle view handed to the
// report renderer. The snapshot is read-only and internally consistent at
// the moment of generation.
func (u *OrderUseCase) BudgetSnapshot(ctx context.Context, orderID string) (entities.BudgetSnapshot, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.BudgetSnapshot{}, err
	}

	customer, err := u.customerRepo.GetCustomer(ctx, o.CustomerID)
	if err != nil {
		return entities.BudgetSnapshot{}, err
	}
	if customer.ID == "" {
		return entities.BudgetSnapshot{}, ErrCustomerNotFound
	}

	snapshot := entities.BudgetSnapshot{
		Order:         o,
		Customer:      customer,
		ProductsTotal: o.ProductsTotal(),
		ServicesTotal: o.ServicesTotal(),
		GeneratedAt:   time.Now().UTC(),
	}
	snapshot.Total = snapshot.ProductsTotal + snapshot.ServicesTotal

	if o.VehicleID != "" {
		vehicle, err := u.customerRepo.GetVehicle(ctx, o.VehicleID)
		if err != nil {
			return entities.BudgetSnapshot{}, err
		}
		if vehicle.ID != "" {
			snapshot.Vehicle = &vehicle
		}
	}

	return snapshot, nil
}

// editableOrder loads the order and applies the shared guards for
// line-editing operations.
func (u *OrderUseCase) editableOrder(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.Status.IsTerminal() {
		return entities.Order{}, ErrOrderFinalized
	}
	if err := u.checkPermission(ctx, o, permissions.ActionEdit); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (u *OrderUseCase) checkPermission(ctx context.Context, o entities.Order, action permissions.Action) error {
	user, err := u.identity.CurrentUser(ctx)
	if err != nil {
		return err
	}
	phase := workflow.PhaseFromStatus(o.Status)
	if !permissions.CanPerform(user.Role, phase, action) {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, permissions.DeniedMessage(phase, action))
	}
	return nil
}

func (u *OrderUseCase) audit(ctx context.Context, action string, payload map[string]interface{}) {
	if err := u.identity.LogAction(ctx, action, payload); err != nil {
		u.logger.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}
}

// priceProducts applies the divisor pricing strategy to manually captured
// parts. Parts without a cost (diagnostic projections, free items) are
// left untouched; a part already priced only has its price and margin
// refreshed, keeping the stored margin percentage.
func priceProducts(products []entities.Product) {
	for i := range products {
		p := &products[i]
		if p.FromDiagnostic || p.Costo <= 0 {
			continue
		}

		if p.PrecioVentaPublico == 0 {
			q := pricing.NewQuote(p.Costo, p.Porcentaje)
			p.CostoConIva = q.CostoConIva
			p.PrecioVentaPublico = q.PrecioVentaPublico
			p.Margen = q.Margen
			p.PorcentajeMargen = q.PorcentajeMargen
			p.Precio = q.PrecioVentaPublico
			continue
		}

		precio, margen := pricing.Recalculate(p.Costo, p.Porcentaje)
		p.CostoConIva = p.Costo * pricing.IVARate
		p.PrecioVentaPublico = precio
		p.Margen = margen
		p.Precio = precio
	}
}

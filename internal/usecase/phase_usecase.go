package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/domain/permissions"
	"taller_pos/internal/domain/workflow"
	"taller_pos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPhase             = errors.New("order is not in the required phase for this action")
	ErrNoInvoices               = errors.New("at least one invoice is required")
	ErrMissingValidationNotes   = errors.New("rejection notes are required")
	ErrValidationAlreadyDecided = errors.New("validation already decided")
)

// Simulated processing pauses. They pace the UI, they are not real work;
// the waiter makes them synchronous in tests.
const (
	validateProductsDelay = 2 * time.Second
	processProductsDelay  = 3 * time.Second
	generateOCDelay       = 2 * time.Second
)

// IPhaseUseCase drives the forward-only lifecycle of an order after
// authorization: XML intake, the two approval gates, purchase order
// generation and delivery. Every transition checks the permission gate
// before writing, and every failure branch resets the transient
// processing flag so no order is left stuck "in progress".
type IPhaseUseCase interface {
	ProcessXMLInvoices(ctx context.Context, orderID string, invoices []entities.OrderInvoice) (entities.Order, error)
	ValidateProducts(ctx context.Context, orderID string) (entities.Order, error)
	AdminValidate(ctx context.Context, orderID string, approve bool, notes string) (entities.Order, error)
	ProcessProducts(ctx context.Context, orderID string) (entities.Order, error)
	PreOCValidate(ctx context.Context, orderID string, approve bool, notes string) (entities.Order, error)
	GeneratePurchaseOrder(ctx context.Context, orderID string) (entities.Order, error)
	MarkDelivered(ctx context.Context, orderID string, capturePayment bool, paymentPayload json.RawMessage) (entities.Order, error)

	ListPendingAdminValidation(ctx context.Context) ([]entities.Order, error)
	ListPendingPreOC(ctx context.Context) ([]entities.Order, error)
	ListPayments(ctx context.Context, orderID string) ([]entities.DeliveryPayment, error)
}

type PhaseUseCase struct {
	repo        interfaces.IOrderRepository
	xmlRepo     interfaces.IXmlProductsRepository
	paymentRepo interfaces.IPaymentRepository
	gateway     interfaces.IPaymentGateway
	waiter      interfaces.IWaiter
	identity    interfaces.IIdentityService
	logger      *zap.Logger
}

var _ IPhaseUseCase = (*PhaseUseCase)(nil)

func NewPhaseUseCase(
	repo interfaces.IOrderRepository,
	xmlRepo interfaces.IXmlProductsRepository,
	paymentRepo interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	waiter interfaces.IWaiter,
	identity interfaces.IIdentityService,
	logger *zap.Logger,
) *PhaseUseCase {
	if waiter == nil {
		waiter = interfaces.NewClockWaiter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhaseUseCase{
		repo:        repo,
		xmlRepo:     xmlRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		waiter:      waiter,
		identity:    identity,
		logger:      logger,
	}
}

// ProcessXMLInvoices ingests the supplier invoices for an authorized
// order and runs the simulated validation pass over their line items.
// On any ingest failure the order status is rolled back to Autorizado;
// this is the only compensated multi-step flow.
func (u *PhaseUseCase) ProcessXMLInvoices(ctx context.Context, orderID string, invoices []entities.OrderInvoice) (entities.Order, error) {
	o, err := u.orderInStatus(ctx, orderID, entities.StatusAutorizado)
	if err != nil {
		return entities.Order{}, err
	}
	if len(invoices) == 0 {
		return entities.Order{}, ErrNoInvoices
	}
	if _, err := u.advancer(ctx, o); err != nil {
		return entities.Order{}, err
	}

	if _, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusProcesandoXML, map[string]interface{}{
		"is_processing_xml": true,
	}); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.ingestInvoices(ctx, o, invoices)
	if err != nil {
		u.logger.Error("xml processing failed, rolling back", zap.String("order_id", o.ID), zap.Error(err))
		if _, rbErr := u.repo.UpdateStatus(ctx, o.ID, entities.StatusAutorizado, map[string]interface{}{
			"is_processing_xml": false,
		}); rbErr != nil {
			u.logger.Error("xml rollback failed", zap.String("order_id", o.ID), zap.Error(rbErr))
		}
		return entities.Order{}, err
	}
	return updated, nil
}

func (u *PhaseUseCase) ingestInvoices(ctx context.Context, o entities.Order, invoices []entities.OrderInvoice) (entities.Order, error) {
	now := time.Now().UTC()
	var all []entities.XmlProduct
	perInvoice := make([][]entities.XmlProduct, len(invoices))

	for i := range invoices {
		invoices[i].ID = uuid.NewString()
		invoices[i].OrderID = o.ID
		invoices[i].UploadedAt = now

		for _, p := range invoices[i].XmlProducts {
			p.ID = uuid.NewString()
			p.InvoiceID = invoices[i].ID
			p.OrderID = o.ID
			if p.Proveedor == "" {
				p.Proveedor = invoices[i].Proveedor
			}
			perInvoice[i] = append(perInvoice[i], p)
		}
		all = append(all, perInvoice[i]...)
	}

	simulateValidationSplit(all)

	// The split ran over the combined list; copy the flags back per
	// invoice for the stored counters.
	flags := make(map[string]entities.XmlProduct, len(all))
	for _, p := range all {
		flags[p.ID] = p
	}
	for i := range invoices {
		validados, nuevos := 0, 0
		for _, p := range perInvoice[i] {
			if flags[p.ID].IsValidated {
				validados++
			}
			if flags[p.ID].IsNew {
				nuevos++
			}
		}
		invoices[i].Validados = validados
		invoices[i].Nuevos = nuevos
		invoices[i].XmlProducts = nil

		if _, err := u.xmlRepo.InsertInvoice(ctx, invoices[i]); err != nil {
			return entities.Order{}, err
		}
	}

	if len(all) > 0 {
		if err := u.xmlRepo.InsertProducts(ctx, all); err != nil {
			return entities.Order{}, err
		}
	}

	u.logger.Info("xml invoices processed",
		zap.String("order_id", o.ID),
		zap.Int("invoices", len(invoices)),
		zap.Int("products", len(all)))

	return u.repo.UpdateStatus(ctx, o.ID, entities.StatusPendienteValidacion, map[string]interface{}{
		"is_processing_xml": false,
	})
}

// ValidateProducts is the manual trigger that moves an order through the
// simulated product validation pass and parks it at the admin approval
// gate.
func (u *PhaseUseCase) ValidateProducts(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.orderInStatus(ctx, orderID, entities.StatusPendienteValidacion)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := u.advancer(ctx, o); err != nil {
		return entities.Order{}, err
	}

	if _, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusValidandoProductos, map[string]interface{}{
		"is_validating_products": true,
	}); err != nil {
		return entities.Order{}, err
	}

	if err := u.waiter.Wait(ctx, validateProductsDelay); err != nil {
		u.resetTo(ctx, o.ID, entities.StatusPendienteValidacion, "is_validating_products")
		return entities.Order{}, err
	}

	return u.repo.UpdateStatus(ctx, o.ID, entities.StatusProductosValidados, map[string]interface{}{
		"admin_validation_status": string(entities.ValidationPending),
		"is_validating_products":  false,
	})
}

// AdminValidate records the administrator's decision at the first gate.
// Approval keeps the order in Productos Validados with the sub-state
// flipped; rejection is terminal and requires notes.
func (u *PhaseUseCase) AdminValidate(ctx context.Context, orderID string, approve bool, notes string) (entities.Order, error) {
	o, err := u.orderInStatus(ctx, orderID, entities.StatusProductosValidados)
	if err != nil {
		return entities.Order{}, err
	}
	if o.AdminValidation == entities.ValidationApproved || o.AdminValidation == entities.ValidationRejected {
		return entities.Order{}, ErrValidationAlreadyDecided
	}

	user, err := u.gatekeeper(ctx, o, permissions.ActionEdit)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	if approve {
		updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusProductosValidados, map[string]interface{}{
			"admin_validation_status": string(entities.ValidationApproved),
			"admin_validation_notes":  notes,
			"admin_validated_by":      user.ID,
			"admin_validated_at":      now.Format(time.RFC3339),
		})
		if err != nil {
			return entities.Order{}, err
		}
		u.audit(ctx, "order_admin_approved", map[string]interface{}{"order_id": o.ID, "folio": o.Folio})
		return updated, nil
	}

	if strings.TrimSpace(notes) == "" {
		return entities.Order{}, ErrMissingValidationNotes
	}
	updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusRechazadoAdmin, map[string]interface{}{
		"admin_validation_status": string(entities.ValidationRejected),
		"admin_validation_notes":  notes,
		"admin_validated_by":      user.ID,
		"admin_validated_at":      now.Format(time.RFC3339),
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.audit(ctx, "order_admin_rejected", map[string]interface{}{"order_id": o.ID, "folio": o.Folio, "notes": notes})
	return updated, nil
}

// ProcessProducts runs the SKU assignment pass over the order's XML
// products and parks the order at the pre-OC gate. It refuses to run
// until the admin gate is approved.
func (u *PhaseUseCase) ProcessProducts(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.orderInStatus(ctx, orderID, entities.StatusProductosValidados)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := u.advancer(ctx, o); err != nil {
		return entities.Order{}, err
	}

	if _, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusProcesandoProductos, map[string]interface{}{
		"is_processing_products": true,
	}); err != nil {
		return entities.Order{}, err
	}

	if err := u.waiter.Wait(ctx, processProductsDelay); err != nil {
		u.resetTo(ctx, o.ID, entities.StatusProductosValidados, "is_processing_products")
		return entities.Order{}, err
	}

	if err := u.assignSKUs(ctx, o.ID); err != nil {
		u.resetTo(ctx, o.ID, entities.StatusProductosValidados, "is_processing_products")
		return entities.Order{}, err
	}

	return u.repo.UpdateStatus(ctx, o.ID, entities.StatusProductosProcesados, map[string]interface{}{
		"pre_oc_validation_status": string(entities.ValidationPending),
		"is_processing_products":   false,
	})
}

func (u *PhaseUseCase) assignSKUs(ctx context.Context, orderID string) error {
	products, err := u.xmlRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.SKUFinal != "" || p.Clase == "" {
			continue
		}
		original, final := GenerateSKU(p.Clase, i+1)
		if err := u.xmlRepo.UpdateSKU(ctx, p.ID, original, final); err != nil {
			return err
		}
	}
	return nil
}

// PreOCValidate records the second gate decision. Approval moves the
// order to Pre-OC Validado; rejection is terminal.
func (u *PhaseUseCase) PreOCValidate(ctx context.Context, orderID string, approve bool, notes string) (entities.Order, error) {
	o, err := u.orderInStatus(ctx, orderID, entities.StatusProductosProcesados)
	if err != nil {
		return entities.Order{}, err
	}
	if o.PreOCValidation == entities.ValidationApproved || o.PreOCValidation == entities.ValidationRejected {
		return entities.Order{}, ErrValidationAlreadyDecided
	}

	user, err := u.gatekeeper(ctx, o, permissions.ActionEdit)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	if approve {
		updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusPreOCValidado, map[string]interface{}{
			"pre_oc_validation_status": string(entities.ValidationApproved),
			"pre_oc_validation_notes":  notes,
			"pre_oc_validated_by":      user.ID,
			"pre_oc_validated_at":      now.Format(time.RFC3339),
		})
		if err != nil {
			return entities.Order{}, err
		}
		u.audit(ctx, "order_pre_oc_approved", map[string]interface{}{"order_id": o.ID, "folio": o.Folio})
		return updated, nil
	}

	if strings.TrimSpace(notes) == "" {
		return entities.Order{}, ErrMissingValidationNotes
	}
	updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusPreOCRechazado, map[string]interface{}{
		"pre_oc_validation_status": string(entities.ValidationRejected),
		"pre_oc_validation_notes":  notes,
		"pre_oc_validated_by":      user.ID,
		"pre_oc_validated_at":      now.Format(time.RFC3339),
	})
	if err != nil {
		return entities.Order{}, err
	}
	u.audit(ctx, "order_pre_oc_rejected", map[string]interface{}{"order_id": o.ID, "folio": o.Folio, "notes": notes})
	return updated, nil
}

// GeneratePurchaseOrder mints the OC folio and commits the purchase
// order for a pre-OC-approved order.
func (u *PhaseUseCase) GeneratePurchaseOrder(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.orderInStatus(ctx, orderID, entities.StatusPreOCValidado)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := u.advancer(ctx, o); err != nil {
		return entities.Order{}, err
	}

	if _, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusGenerandoOC, map[string]interface{}{
		"is_generating_purchase_order": true,
	}); err != nil {
		return entities.Order{}, err
	}

	if err := u.waiter.Wait(ctx, generateOCDelay); err != nil {
		u.resetTo(ctx, o.ID, entities.StatusPreOCValidado, "is_generating_purchase_order")
		return entities.Order{}, err
	}

	folio := fmt.Sprintf("OC-%d-%04d", time.Now().UTC().Year(), rand.Intn(9000)+1000)
	updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusOCGenerada, map[string]interface{}{
		"purchase_order_folio":         folio,
		"is_generating_purchase_order": false,
	})
	if err != nil {
		return entities.Order{}, err
	}

	u.audit(ctx, "purchase_order_generated", map[string]interface{}{"order_id": o.ID, "oc_folio": folio})
	u.logger.Info("purchase order generated", zap.String("order_id", o.ID), zap.String("oc_folio", folio))
	return updated, nil
}

// MarkDelivered closes the order. When capturePayment is set the budget
// total is charged through the payment gateway and recorded; a gateway
// failure is logged but never blocks the delivered state.
func (u *PhaseUseCase) MarkDelivered(ctx context.Context, orderID string, capturePayment bool, paymentPayload json.RawMessage) (entities.Order, error) {
	o, err := u.orderInStatus(ctx, orderID, entities.StatusOCGenerada)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := u.advancer(ctx, o); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.StatusEntregado, nil)
	if err != nil {
		return entities.Order{}, err
	}

	if capturePayment {
		u.capturePayment(ctx, o, paymentPayload)
	}

	u.audit(ctx, "order_delivered", map[string]interface{}{"order_id": o.ID, "folio": o.Folio})
	u.logger.Info("order delivered", zap.String("order_id", o.ID), zap.String("folio", o.Folio))
	return updated, nil
}

func (u *PhaseUseCase) capturePayment(ctx context.Context, o entities.Order, payload json.RawMessage) {
	if u.gateway == nil || u.paymentRepo == nil {
		u.logger.Warn("payment capture requested but gateway not configured", zap.String("order_id", o.ID))
		return
	}

	req := map[string]interface{}{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &req)
	}
	// The budget in the store is the source of truth for the amount.
	req["transaction_amount"] = o.Presupuesto
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = o.Folio
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Pedido %s", o.Folio)
	}
	body, err := json.Marshal(req)
	if err != nil {
		u.logger.Warn("payment payload marshal failed", zap.String("order_id", o.ID), zap.Error(err))
		return
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		u.logger.Warn("payment gateway failed, delivery not blocked", zap.String("order_id", o.ID), zap.Error(err))
		return
	}

	var parsed map[string]interface{}
	_ = json.Unmarshal(providerResp, &parsed)

	p := entities.DeliveryPayment{
		ID:                 providerID,
		OrderID:            o.ID,
		Amount:             o.Presupuesto,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := u.paymentRepo.Create(ctx, p); err != nil {
		u.logger.Warn("payment record create failed", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited":
		return entities.PaymentStatusAprobado
	case "rejected", "cancelled":
		return entities.PaymentStatusNegado
	}
	return entities.PaymentStatusPendiente
}

func (u *PhaseUseCase) ListPendingAdminValidation(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListPendingAdminValidation(ctx)
}

func (u *PhaseUseCase) ListPendingPreOC(ctx context.Context) ([]entities.Order, error) {
	return u.repo.ListPendingPreOC(ctx)
}

// ListPayments returns the payments recorded against an order at
// delivery, newest data straight from the payments table.
func (u *PhaseUseCase) ListPayments(ctx context.Context, orderID string) ([]entities.DeliveryPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if u.paymentRepo == nil {
		return nil, nil
	}
	return u.paymentRepo.ListByOrderID(ctx, orderID)
}

// orderInStatus loads the order and checks it sits at the expected
// committed status.
func (u *PhaseUseCase) orderInStatus(ctx context.Context, orderID string, want entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.Status != want {
		return entities.Order{}, fmt.Errorf("%w: have %q, need %q", ErrInvalidPhase, o.Status, want)
	}
	return o, nil
}

// advancer applies both advance guards: the workflow's own preconditions
// (content, approved sub-states) and the role gate.
func (u *PhaseUseCase) advancer(ctx context.Context, o entities.Order) (entities.User, error) {
	if ok, reason := workflow.CanAdvance(o); !ok {
		return entities.User{}, fmt.Errorf("%w: %s", ErrPermissionDenied, reason)
	}

	user, err := u.identity.CurrentUser(ctx)
	if err != nil {
		return entities.User{}, err
	}
	phase := workflow.PhaseFromStatus(o.Status)
	if !permissions.CanAdvance(user.Role, phase, o.Status, o.AdminValidation) {
		return entities.User{}, fmt.Errorf("%w: %s", ErrPermissionDenied, permissions.DeniedMessage(phase, permissions.ActionAdvance))
	}
	return user, nil
}

// gatekeeper is the role-only check used by the two approval decisions.
func (u *PhaseUseCase) gatekeeper(ctx context.Context, o entities.Order, action permissions.Action) (entities.User, error) {
	user, err := u.identity.CurrentUser(ctx)
	if err != nil {
		return entities.User{}, err
	}
	phase := workflow.PhaseFromStatus(o.Status)
	if !permissions.CanPerform(user.Role, phase, action) {
		return entities.User{}, fmt.Errorf("%w: %s", ErrPermissionDenied, permissions.DeniedMessage(phase, action))
	}
	return user, nil
}

// resetTo clears a transient processing flag after a failed transition so
// the order never sticks in a loading state.
func (u *PhaseUseCase) resetTo(ctx context.Context, orderID string, status entities.OrderStatus, flag string) {
	if _, err := u.repo.UpdateStatus(ctx, orderID, status, map[string]interface{}{flag: false}); err != nil {
		u.logger.Error("processing flag reset failed",
			zap.String("order_id", orderID),
			zap.String("flag", flag),
			zap.Error(err))
	}
}

func (u *PhaseUseCase) audit(ctx context.Context, action string, payload map[string]interface{}) {
	if err := u.identity.LogAction(ctx, action, payload); err != nil {
		u.logger.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}
}

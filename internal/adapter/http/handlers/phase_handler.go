package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	request "taller_pos/internal/adapter/http/dto/request"
	response "taller_pos/internal/adapter/http/dto/response"
	"taller_pos/internal/domain/entities"
	"taller_pos/internal/infrastructure/identity"
	"taller_pos/internal/usecase"
	"taller_pos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPhasePayload = pkg.NewDomainErrorSimple("INVALID_PHASE_INPUT", "Invalid phase payload", http.StatusBadRequest)
)

// PhaseHandler drives the post-authorization pipeline endpoints: XML
// intake, the two validation gates, SKU processing, purchase order
// generation and delivery.

type PhaseHandler struct {
	usecase usecase.IPhaseUseCase
}

func NewPhaseHandler(uc usecase.IPhaseUseCase) *PhaseHandler {
	return &PhaseHandler{usecase: uc}
}

func (h *PhaseHandler) ProcessXMLInvoices(c *gin.Context) {
	var payload request.ProcessXMLRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPhasePayload.HTTPStatus, errInvalidPhasePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ProcessXMLInvoices(c.Request.Context(), c.Param("id"), payload.ToInvoices())
	if err != nil {
		appErr := mapPhaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *PhaseHandler) ValidateProducts(c *gin.Context) {
	h.advance(c, h.usecase.ValidateProducts)
}

func (h *PhaseHandler) ProcessProducts(c *gin.Context) {
	h.advance(c, h.usecase.ProcessProducts)
}

func (h *PhaseHandler) GeneratePurchaseOrder(c *gin.Context) {
	h.advance(c, h.usecase.GeneratePurchaseOrder)
}

func (h *PhaseHandler) AdminValidate(c *gin.Context) {
	h.validateGate(c, h.usecase.AdminValidate)
}

func (h *PhaseHandler) PreOCValidate(c *gin.Context) {
	h.validateGate(c, h.usecase.PreOCValidate)
}

func (h *PhaseHandler) Deliver(c *gin.Context) {
	var payload request.DeliverRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPhasePayload.HTTPStatus, errInvalidPhasePayload.ToHTTPError())
			return
		}
	}
	if payload.MPPayload == nil {
		payload.MPPayload = json.RawMessage("{}")
	}

	updated, err := h.usecase.MarkDelivered(c.Request.Context(), c.Param("id"), payload.CapturePayment, payload.MPPayload)
	if err != nil {
		appErr := mapPhaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *PhaseHandler) ListPendingAdminValidation(c *gin.Context) {
	orders, err := h.usecase.ListPendingAdminValidation(c.Request.Context())
	if err != nil {
		appErr := mapPhaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *PhaseHandler) ListPendingPreOC(c *gin.Context) {
	orders, err := h.usecase.ListPendingPreOC(c.Request.Context())
	if err != nil {
		appErr := mapPhaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *PhaseHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPhaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeliveryPayments(payments))
}

func (h *PhaseHandler) advance(c *gin.Context, fn func(ctx context.Context, orderID string) (entities.Order, error)) {
	updated, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPhaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *PhaseHandler) validateGate(c *gin.Context, fn func(ctx context.Context, orderID string, approve bool, notes string) (entities.Order, error)) {
	var payload request.ValidationDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPhasePayload.HTTPStatus, errInvalidPhasePayload.ToHTTPError())
		return
	}

	updated, err := fn(c.Request.Context(), c.Param("id"), *payload.Approve, payload.Notes)
	if err != nil {
		appErr := mapPhaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func mapPhaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrNoInvoices),
		errors.Is(err, usecase.ErrMissingValidationNotes):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPhase),
		errors.Is(err, usecase.ErrValidationAlreadyDecided):
		return pkg.NewDomainErrorSimple("INVALID_PHASE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", err.Error(), http.StatusForbidden)
	case errors.Is(err, identity.ErrNoUserInContext),
		errors.Is(err, identity.ErrUserNotFound),
		errors.Is(err, identity.ErrUserInactive):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unknown or inactive user", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

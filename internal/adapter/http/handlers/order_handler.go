package handlers

import (
	"errors"
	"net/http"

	request "taller_pos/internal/adapter/http/dto/request"
	response "taller_pos/internal/adapter/http/dto/response"
	"taller_pos/internal/infrastructure/identity"
	"taller_pos/internal/usecase"
	"taller_pos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles the capture-phase order endpoints: creation, line
// editing, diagnostic capture, authorization and the budget snapshot.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToOrder())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// ListOrders returns every order, or a single-element list when the folio
// query parameter is present.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	if folio := c.Query("folio"); folio != "" {
		order, err := h.usecase.GetByFolio(c.Request.Context(), folio)
		if err != nil {
			appErr := mapOrderError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, []response.OrderResponse{response.FromOrder(order)})
		return
	}

	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) UpdateProducts(c *gin.Context) {
	var payload request.UpdateProductsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateProducts(c.Request.Context(), c.Param("id"), request.ToProducts(payload.Productos))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) UpdateServices(c *gin.Context) {
	var payload request.UpdateServicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateServices(c.Request.Context(), c.Param("id"), request.ToServices(payload.Servicios))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) SaveDiagnostic(c *gin.Context) {
	var payload request.DiagnosticRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SaveDiagnostic(c.Request.Context(), c.Param("id"), payload.ToDiagnostic())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) SubmitAuthorization(c *gin.Context) {
	var payload request.AuthorizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	decisions := make([]usecase.AuthorizationDecision, 0, len(payload.Decisions))
	for _, d := range payload.Decisions {
		decisions = append(decisions, usecase.AuthorizationDecision{
			DiagnosticItemID: d.DiagnosticItemID,
			IsAuthorized:     d.IsAuthorized != nil && *d.IsAuthorized,
			RejectionReason:  d.RejectionReason,
			Notes:            d.Notes,
		})
	}

	updated, err := h.usecase.SubmitAuthorization(c.Request.Context(), c.Param("id"), decisions)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	updated, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) GetBudget(c *gin.Context) {
	snapshot, err := h.usecase.BudgetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetSnapshot(snapshot))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidFolio),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrMissingRejectReason),
		errors.Is(err, usecase.ErrNoAuthorizableItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderFinalized):
		return pkg.NewDomainErrorSimple("ORDER_FINALIZED", err.Error(), http.StatusConflict)
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

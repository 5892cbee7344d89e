package handlers

import (
	"errors"
	"net/http"

	response "taller_pos/internal/adapter/http/dto/response"
	"taller_pos/internal/infrastructure/identity"
	"taller_pos/internal/usecase"
	"taller_pos/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin landing-page aggregates.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Admin role required", http.StatusForbidden)
	case errors.Is(err, identity.ErrNoUserInContext),
		errors.Is(err, identity.ErrUserNotFound),
		errors.Is(err, identity.ErrUserInactive):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unknown or inactive user", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

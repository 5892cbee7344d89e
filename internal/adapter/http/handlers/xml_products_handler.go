package handlers

import (
	"errors"
	"net/http"

	request "taller_pos/internal/adapter/http/dto/request"
	response "taller_pos/internal/adapter/http/dto/response"
	"taller_pos/internal/usecase"
	"taller_pos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClassifyPayload = pkg.NewDomainErrorSimple("INVALID_CLASSIFICATION_INPUT", "Invalid classification payload", http.StatusBadRequest)
)

// XmlProductsHandler handles the reconciliation endpoints for invoice
// line items: per-supplier grouping, manual classification and the
// not-found review list.

type XmlProductsHandler struct {
	usecase usecase.IXmlProductsUseCase
}

func NewXmlProductsHandler(uc usecase.IXmlProductsUseCase) *XmlProductsHandler {
	return &XmlProductsHandler{usecase: uc}
}

func (h *XmlProductsHandler) GroupByProvider(c *gin.Context) {
	groups, err := h.usecase.GroupByProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapXmlProductsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProviderGroups(groups))
}

func (h *XmlProductsHandler) Classify(c *gin.Context) {
	var payload request.ClassifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClassifyPayload.HTTPStatus, errInvalidClassifyPayload.ToHTTPError())
		return
	}

	classified, err := h.usecase.Classify(c.Request.Context(), c.Param("id"), payload.ToClassification())
	if err != nil {
		appErr := mapXmlProductsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromXmlProduct(classified))
}

func (h *XmlProductsHandler) MarkNotFound(c *gin.Context) {
	marked, err := h.usecase.MarkNotFound(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapXmlProductsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromXmlProduct(marked))
}

func (h *XmlProductsHandler) ListNotFound(c *gin.Context) {
	products, err := h.usecase.ListNotFound(c.Request.Context())
	if err != nil {
		appErr := mapXmlProductsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotFoundList(products))
}

func mapXmlProductsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidXmlProductID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrIncompleteClassification):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrXmlProductNotFound):
		return pkg.NewDomainErrorSimple("XML_PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

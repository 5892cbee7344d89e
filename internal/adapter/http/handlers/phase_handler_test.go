package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_pos/internal/adapter/http/handlers/mocks"
	"taller_pos/internal/domain/entities"
	"taller_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPhaseHandler_ProcessXMLInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing invoices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhaseUseCase(ctrl)
		h := NewPhaseHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/xml-invoices", h.ProcessXMLInvoices)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/xml-invoices", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhaseUseCase(ctrl)
		h := NewPhaseHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/xml-invoices", h.ProcessXMLInvoices)

		uc.EXPECT().ProcessXMLInvoices(gomock.Any(), "ord-1", gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidPhase)

		body := `{"invoices":[{"invoice_folio":"F-1","proveedor":"ACME","products":[{"descripcion":"Balata","cantidad":2,"precio":150}]}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/xml-invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success computes missing totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhaseUseCase(ctrl)
		h := NewPhaseHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/xml-invoices", h.ProcessXMLInvoices)

		uc.EXPECT().ProcessXMLInvoices(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, invoices []entities.OrderInvoice) (entities.Order, error) {
				if len(invoices) != 1 || len(invoices[0].XmlProducts) != 1 {
					t.Fatalf("unexpected invoices: %+v", invoices)
				}
				if invoices[0].XmlProducts[0].Total != 300 {
					t.Fatalf("expected computed total 300, got %v", invoices[0].XmlProducts[0].Total)
				}
				return entities.Order{ID: "ord-1", Status: entities.StatusPendienteValidacion}, nil
			})

		body := `{"invoices":[{"invoice_folio":"F-1","proveedor":"ACME","products":[{"descripcion":"Balata","cantidad":2,"precio":150}]}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/xml-invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPhaseHandler_AdminValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing approve field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhaseUseCase(ctrl)
		h := NewPhaseHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/admin-validation", h.AdminValidate)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/admin-validation", bytes.NewBufferString(`{"notes":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject forwards notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhaseUseCase(ctrl)
		h := NewPhaseHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/admin-validation", h.AdminValidate)

		uc.EXPECT().AdminValidate(gomock.Any(), "ord-1", false, "costos fuera de rango").Return(entities.Order{ID: "ord-1", Status: entities.StatusRechazadoAdmin}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/admin-validation", bytes.NewBufferString(`{"approve":false,"notes":"costos fuera de rango"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhaseUseCase(ctrl)
		h := NewPhaseHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/admin-validation", h.AdminValidate)

		uc.EXPECT().AdminValidate(gomock.Any(), "ord-1", true, "").Return(entities.Order{}, usecase.ErrValidationAlreadyDecided)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/admin-validation", bytes.NewBufferString(`{"approve":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPhaseHandler_Deliver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body defaults payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhaseUseCase(ctrl)
		h := NewPhaseHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/deliver", h.Deliver)

		uc.EXPECT().MarkDelivered(gomock.Any(), "ord-1", false, json.RawMessage("{}")).Return(entities.Order{ID: "ord-1", Status: entities.StatusEntregado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/deliver", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("capture forwards payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhaseUseCase(ctrl)
		h := NewPhaseHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/deliver", h.Deliver)

		uc.EXPECT().MarkDelivered(gomock.Any(), "ord-1", true, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ bool, payload json.RawMessage) (entities.Order, error) {
				var mp map[string]any
				if err := json.Unmarshal(payload, &mp); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if mp["payment_method_id"] != "visa" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.Order{ID: "ord-1", Status: entities.StatusEntregado}, nil
			})

		body := `{"capture_payment":true,"mp_payload":{"payment_method_id":"visa","installments":1}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/deliver", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapPhaseError(t *testing.T) {
	if got := mapPhaseError(usecase.ErrNoInvoices); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPhaseError(usecase.ErrMissingValidationNotes); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPhaseError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPhaseError(usecase.ErrInvalidPhase); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPhaseError(usecase.ErrPermissionDenied); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapPhaseError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"taller_pos/internal/domain/entities"
	mock_interfaces "taller_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGenerateSKU(t *testing.T) {
	year := time.Now().Year()
	cases := []struct {
		clase    string
		index    int
		original string
		final    string
	}{
		{"Filtros", 7, "FIL007", fmt.Sprintf("FIL-007-%d", year)},
		{"aceites", 12, "ACE012", fmt.Sprintf("ACE-012-%d", year)},
		{"BU", 1, "BU001", fmt.Sprintf("BU-001-%d", year)},
		{"frenos", 123, "FRE123", fmt.Sprintf("FRE-123-%d", year)},
	}

	for _, tc := range cases {
		t.Run(tc.clase, func(t *testing.T) {
			original, final := GenerateSKU(tc.clase, tc.index)
			if original != tc.original {
				t.Fatalf("expected %s, got %s", tc.original, original)
			}
			if final != tc.final {
				t.Fatalf("expected %s, got %s", tc.final, final)
			}
		})
	}
}

func TestSimulateValidationSplit(t *testing.T) {
	skuPattern := regexp.MustCompile(`^SKU-[A-Z0-9]{9}$`)

	cases := []struct {
		name      string
		count     int
		validated int
	}{
		{"empty", 0, 0},
		{"single item goes to manual", 1, 0},
		{"two items go to manual", 2, 0},
		{"three items", 3, 1},
		{"ten items", 10, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products := make([]entities.XmlProduct, tc.count)
			simulateValidationSplit(products)

			for i, p := range products {
				if i < tc.validated {
					if !p.IsValidated || p.IsNew {
						t.Fatalf("product %d should be validated: %+v", i, p)
					}
					if !skuPattern.MatchString(p.SKU) {
						t.Fatalf("unexpected random SKU: %q", p.SKU)
					}
				} else {
					if p.IsValidated || !p.IsNew {
						t.Fatalf("product %d should be new: %+v", i, p)
					}
				}
			}
		})
	}
}

func TestXmlProductsUseCase_Classify(t *testing.T) {
	stored := entities.XmlProduct{ID: "p-1", Descripcion: "Balata", Precio: 200, IsNew: true}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewXmlProductsUseCase(nil, nil)
		_, err := uc.Classify(context.Background(), "  ", entities.XmlClassification{})
		if !errors.Is(err, ErrInvalidXmlProductID) {
			t.Fatalf("expected ErrInvalidXmlProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIXmlProductsRepository(ctrl)
		uc := NewXmlProductsUseCase(repo, nil)

		repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(entities.XmlProduct{}, nil)

		_, err := uc.Classify(context.Background(), "p-1", entities.XmlClassification{})
		if !errors.Is(err, ErrXmlProductNotFound) {
			t.Fatalf("expected ErrXmlProductNotFound, got %v", err)
		}
	})

	t.Run("incomplete classification", func(t *testing.T) {
		incomplete := []entities.XmlClassification{
			{Linea: "260", Clase: "271", Subclase: "10", Margen: 30},
			{Division: "0134", Clase: "271", Subclase: "10", Margen: 30},
			{Division: "0134", Linea: "260", Subclase: "10", Margen: 30},
			{Division: "0134", Linea: "260", Clase: "271", Margen: 30},
			{Division: "0134", Linea: "260", Clase: "271", Subclase: "10"},
			{Division: " ", Linea: "260", Clase: "271", Subclase: "10", Margen: 30},
		}

		for i, c := range incomplete {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIXmlProductsRepository(ctrl)
			uc := NewXmlProductsUseCase(repo, nil)
			repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(stored, nil)

			if _, err := uc.Classify(context.Background(), "p-1", c); !errors.Is(err, ErrIncompleteClassification) {
				t.Fatalf("case %d: expected ErrIncompleteClassification, got %v", i, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("success derives markup price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIXmlProductsRepository(ctrl)
		uc := NewXmlProductsUseCase(repo, nil)

		repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(stored, nil)
		repo.EXPECT().Classify(gomock.Any(), "p-1", gomock.Any(), false).DoAndReturn(
			func(_ context.Context, _ string, c entities.XmlClassification, _ bool) error {
				// 200 * (1 + 30/100)
				if c.PrecioVenta != 260 {
					t.Fatalf("unexpected sale price: %v", c.PrecioVenta)
				}
				return nil
			},
		)

		res, err := uc.Classify(context.Background(), "p-1", entities.XmlClassification{
			Division: "0134", Linea: "260", Clase: "271", Subclase: "10", Margen: 30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PrecioVenta != 260 || res.NotFound {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestXmlProductsUseCase_MarkNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIXmlProductsRepository(ctrl)
	uc := NewXmlProductsUseCase(repo, nil)

	repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(entities.XmlProduct{ID: "p-1"}, nil)
	repo.EXPECT().Classify(gomock.Any(), "p-1", gomock.Any(), true).DoAndReturn(
		func(_ context.Context, _ string, c entities.XmlClassification, _ bool) error {
			if c.Division != "0134" || c.Linea != "260" || c.Clase != "271" {
				t.Fatalf("unexpected fallback bucket: %+v", c)
			}
			return nil
		},
	)

	res, err := uc.MarkNotFound(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NotFound {
		t.Fatalf("expected NotFound flag: %+v", res)
	}
}

func TestXmlProductsUseCase_GroupByProvider(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewXmlProductsUseCase(nil, nil)
		_, err := uc.GroupByProvider(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("groups by supplier with rfc from first invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIXmlProductsRepository(ctrl)
		uc := NewXmlProductsUseCase(repo, nil)

		repo.EXPECT().ListByOrder(gomock.Any(), "order-1").Return([]entities.XmlProduct{
			{ID: "p-1", Proveedor: "Norte", Total: 100, IsValidated: true},
			{ID: "p-2", Proveedor: "Sur", Total: 50, IsNew: true},
			{ID: "p-3", Proveedor: "Norte", Total: 200, IsNew: true},
		}, nil)
		repo.EXPECT().ListInvoicesByOrder(gomock.Any(), "order-1").Return([]entities.OrderInvoice{
			{Proveedor: "Norte", RFCProveedor: "NOR123"},
			{Proveedor: "Sur", RFCProveedor: "SUR456"},
		}, nil)

		groups, err := uc.GroupByProvider(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		norte := groups[0]
		if norte.Proveedor != "Norte" || norte.RFC != "NOR123" {
			t.Fatalf("unexpected first group: %+v", norte)
		}
		if norte.MontoTotal != 300 || norte.TotalValidados != 1 || norte.TotalNuevos != 1 {
			t.Fatalf("unexpected counters: %+v", norte)
		}
	})
}

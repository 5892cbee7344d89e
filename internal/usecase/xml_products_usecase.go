package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/domain/pricing"
	"taller_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrXmlProductNotFound       = errors.New("xml product not found")
	ErrInvalidXmlProductID      = errors.New("invalid xml product id")
	ErrIncompleteClassification = errors.New("all four classification codes and a positive margin are required")
)

// Fallback classification bucket for products the operator could not
// locate in the catalog; reviewed later for statistics.
const (
	notFoundDivision = "0134"
	notFoundLinea    = "260"
	notFoundClase    = "271"
)

// newProductsTail is how many trailing line items the simulated
// validation pass routes to manual classification.
const newProductsTail = 2

const skuAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// IXmlProductsUseCase covers the reconciliation of invoice line items:
// per-supplier grouping, manual classification of "new" products and the
// not-found review list.
type IXmlProductsUseCase interface {
	GroupByProvider(ctx context.Context, orderID string) ([]entities.ProductosPorProveedor, error)
	Classify(ctx context.Context, productID string, c entities.XmlClassification) (entities.XmlProduct, error)
	MarkNotFound(ctx context.Context, productID string) (entities.XmlProduct, error)
	ListNotFound(ctx context.Context) ([]entities.XmlProduct, error)
}

type XmlProductsUseCase struct {
	repo   interfaces.IXmlProductsRepository
	logger *zap.Logger
}

var _ IXmlProductsUseCase = (*XmlProductsUseCase)(nil)

func NewXmlProductsUseCase(repo interfaces.IXmlProductsRepository, logger *zap.Logger) *XmlProductsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &XmlProductsUseCase{repo: repo, logger: logger}
}

// GroupByProvider regroups the order's invoice line items by supplier
// name, with the RFC looked up from the first matching invoice.
func (u *XmlProductsUseCase) GroupByProvider(ctx context.Context, orderID string) ([]entities.ProductosPorProveedor, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	products, err := u.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	invoices, err := u.repo.ListInvoicesByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return entities.GroupProductsByProvider(products, invoices), nil
}

// Classify applies the operator-supplied catalog codes to a "new"
// product. All four codes must be non-empty and the margin positive; the
// sale price is a flat markup on the invoice price, a deliberately
// different formula than the divisor pricing of manual parts.
func (u *XmlProductsUseCase) Classify(ctx context.Context, productID string, c entities.XmlClassification) (entities.XmlProduct, error) {
	p, err := u.product(ctx, productID)
	if err != nil {
		return entities.XmlProduct{}, err
	}

	c.Division = strings.TrimSpace(c.Division)
	c.Linea = strings.TrimSpace(c.Linea)
	c.Clase = strings.TrimSpace(c.Clase)
	c.Subclase = strings.TrimSpace(c.Subclase)
	if c.Division == "" || c.Linea == "" || c.Clase == "" || c.Subclase == "" || c.Margen <= 0 {
		return entities.XmlProduct{}, ErrIncompleteClassification
	}

	c.PrecioVenta = pricing.MarkupPrice(p.Precio, c.Margen)
	if err := u.repo.Classify(ctx, p.ID, c, false); err != nil {
		return entities.XmlProduct{}, err
	}

	p.Division = c.Division
	p.Linea = c.Linea
	p.Clase = c.Clase
	p.Subclase = c.Subclase
	p.Margen = c.Margen
	p.PrecioVenta = c.PrecioVenta
	p.NotFound = false

	u.logger.Info("xml product classified",
		zap.String("product_id", p.ID),
		zap.String("clase", c.Clase),
		zap.Float64("margen", c.Margen))
	return p, nil
}

// MarkNotFound routes a product the operator could not locate into the
// fixed fallback bucket.
func (u *XmlProductsUseCase) MarkNotFound(ctx context.Context, productID string) (entities.XmlProduct, error) {
	p, err := u.product(ctx, productID)
	if err != nil {
		return entities.XmlProduct{}, err
	}

	c := entities.XmlClassification{
		Division: notFoundDivision,
		Linea:    notFoundLinea,
		Clase:    notFoundClase,
	}
	if err := u.repo.Classify(ctx, p.ID, c, true); err != nil {
		return entities.XmlProduct{}, err
	}

	p.Division = c.Division
	p.Linea = c.Linea
	p.Clase = c.Clase
	p.NotFound = true

	u.logger.Info("xml product marked not found", zap.String("product_id", p.ID))
	return p, nil
}

func (u *XmlProductsUseCase) ListNotFound(ctx context.Context) ([]entities.XmlProduct, error) {
	return u.repo.ListNotFound(ctx)
}

func (u *XmlProductsUseCase) product(ctx context.Context, productID string) (entities.XmlProduct, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.XmlProduct{}, ErrInvalidXmlProductID
	}

	p, err := u.repo.GetProduct(ctx, productID)
	if err != nil {
		return entities.XmlProduct{}, err
	}
	if p.ID == "" {
		return entities.XmlProduct{}, ErrXmlProductNotFound
	}
	return p, nil
}

// GenerateSKU derives the catalog codes for a processed product from its
// classification code and a 1-based sequence index. Deterministic given
// (code, index, current year).
func GenerateSKU(clase string, index int) (original, final string) {
	prefix := strings.ToUpper(clase)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	original = fmt.Sprintf("%s%03d", prefix, index)
	final = fmt.Sprintf("%s-%03d-%d", prefix, index, time.Now().Year())
	return original, final
}

// simulateValidationSplit is the placeholder catalog-matching pass: the
// first max(N-2, 0) items are marked validated with a random SKU, the
// trailing items routed to manual classification. Count-based on purpose;
// real content matching would replace this wholesale.
func simulateValidationSplit(products []entities.XmlProduct) {
	validated := len(products) - newProductsTail
	if validated < 0 {
		validated = 0
	}

	for i := range products {
		if i < validated {
			products[i].IsValidated = true
			products[i].SKU = randomSKU()
		} else {
			products[i].IsNew = true
		}
	}
}

func randomSKU() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = skuAlphabet[rand.Intn(len(skuAlphabet))]
	}
	return "SKU-" + string(b)
}

package interfaces

import (
	"context"

	"taller_pos/internal/domain/entities"
)

//go:generate mockgen -source=xml_products_repository_interface.go -destination=mocks/mock_xml_products_repository.go -package=mock_interfaces

// IXmlProductsRepository persists supplier invoices and their extracted
// line items. Rows are owned by this layer and referenced by order id;
// the use cases regroup them in memory.
type IXmlProductsRepository interface {
	InsertInvoice(ctx context.Context, inv entities.OrderInvoice) (entities.OrderInvoice, error)
	InsertProducts(ctx context.Context, products []entities.XmlProduct) error

	GetProduct(ctx context.Context, id string) (entities.XmlProduct, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.XmlProduct, error)
	ListInvoicesByOrder(ctx context.Context, orderID string) ([]entities.OrderInvoice, error)
	ListNotFound(ctx context.Context) ([]entities.XmlProduct, error)

	Classify(ctx context.Context, productID string, c entities.XmlClassification, notFound bool) error
	UpdateSKU(ctx context.Context, productID, skuOriginal, skuFinal string) error
}

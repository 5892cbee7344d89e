package repository

import (
	"context"
	"strconv"
	"time"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultXmlProductsTableName   = "xml_products"
	defaultOrderInvoicesTableName = "order_invoices"

	xmlProductsOrderIndex = "order_id-index"
	invoicesOrderIndex    = "order_id-index"
)

type xmlProductItem struct {
	ID        string `dynamodbav:"id"`
	InvoiceID string `dynamodbav:"invoice_id,omitempty"`
	OrderID   string `dynamodbav:"order_id"`

	Descripcion string `dynamodbav:"descripcion"`
	Cantidad    string `dynamodbav:"cantidad"`
	Precio      string `dynamodbav:"precio"`
	Total       string `dynamodbav:"total"`
	Unidad      string `dynamodbav:"unidad,omitempty"`
	Proveedor   string `dynamodbav:"proveedor"`

	ClaveProdServ string `dynamodbav:"clave_prod_serv,omitempty"`
	ClaveUnidad   string `dynamodbav:"clave_unidad,omitempty"`

	SKU      string `dynamodbav:"sku,omitempty"`
	Division string `dynamodbav:"division,omitempty"`
	Linea    string `dynamodbav:"linea,omitempty"`
	Clase    string `dynamodbav:"clase,omitempty"`
	Subclase string `dynamodbav:"subclase,omitempty"`

	Margen      string `dynamodbav:"margen,omitempty"`
	PrecioVenta string `dynamodbav:"precio_venta,omitempty"`

	IsValidated bool `dynamodbav:"is_validated"`
	IsNew       bool `dynamodbav:"is_new"`
	IsProcessed bool `dynamodbav:"is_processed"`
	NotFound    bool `dynamodbav:"not_found"`

	SKUOriginal string `dynamodbav:"sku_original,omitempty"`
	SKUFinal    string `dynamodbav:"sku_final,omitempty"`
}

type orderInvoiceItem struct {
	ID           string `dynamodbav:"id"`
	OrderID      string `dynamodbav:"order_id"`
	InvoiceFolio string `dynamodbav:"invoice_folio"`
	XMLContent   string `dynamodbav:"xml_content,omitempty"`
	TotalAmount  string `dynamodbav:"total_amount"`
	Proveedor    string `dynamodbav:"proveedor"`
	RFCProveedor string `dynamodbav:"rfc_proveedor,omitempty"`
	Validados    int    `dynamodbav:"validados"`
	Nuevos       int    `dynamodbav:"nuevos"`
	UploadedAt   string `dynamodbav:"upload_date"`
}

// XmlProductsDynamoRepository persists invoice line items and their
// source invoices in DynamoDB.
//
// Table requirements (both tables):
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type XmlProductsDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	invoicesTable string
}

var _ interfaces.IXmlProductsRepository = (*XmlProductsDynamoRepository)(nil)

func NewXmlProductsDynamoRepository(ddb *dynamodb.Client) *XmlProductsDynamoRepository {
	return &XmlProductsDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("XML_PRODUCTS_TABLE", defaultXmlProductsTableName),
		invoicesTable: getenvDefault("ORDER_INVOICES_TABLE", defaultOrderInvoicesTableName),
	}
}

func (r *XmlProductsDynamoRepository) InsertInvoice(ctx context.Context, inv entities.OrderInvoice) (entities.OrderInvoice, error) {
	it := orderInvoiceItem{
		ID:           inv.ID,
		OrderID:      inv.OrderID,
		InvoiceFolio: inv.InvoiceFolio,
		XMLContent:   inv.XMLContent,
		TotalAmount:  floatToString(inv.TotalAmount),
		Proveedor:    inv.Proveedor,
		RFCProveedor: inv.RFCProveedor,
		Validados:    inv.Validados,
		Nuevos:       inv.Nuevos,
		UploadedAt:   inv.UploadedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderInvoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.invoicesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.OrderInvoice{}, err
	}
	return inv, nil
}

func (r *XmlProductsDynamoRepository) InsertProducts(ctx context.Context, products []entities.XmlProduct) error {
	for _, p := range products {
		av, err := attributevalue.MarshalMap(toXmlProductItem(p))
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *XmlProductsDynamoRepository) GetProduct(ctx context.Context, id string) (entities.XmlProduct, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.XmlProduct{}, err
	}
	if len(out.Item) == 0 {
		return entities.XmlProduct{}, nil
	}

	var it xmlProductItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.XmlProduct{}, err
	}
	return fromXmlProductItem(it), nil
}

func (r *XmlProductsDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.XmlProduct, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(xmlProductsOrderIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	products := make([]entities.XmlProduct, 0, len(out.Items))
	for _, raw := range out.Items {
		var it xmlProductItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		products = append(products, fromXmlProductItem(it))
	}
	return products, nil
}

func (r *XmlProductsDynamoRepository) ListInvoicesByOrder(ctx context.Context, orderID string) ([]entities.OrderInvoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.invoicesTable),
		IndexName:              aws.String(invoicesOrderIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.OrderInvoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderInvoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromOrderInvoiceItem(it))
	}
	return invoices, nil
}

func (r *XmlProductsDynamoRepository) ListNotFound(ctx context.Context) ([]entities.XmlProduct, error) {
	var products []entities.XmlProduct
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("not_found = :true"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it xmlProductItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromXmlProductItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return products, nil
}

func (r *XmlProductsDynamoRepository) Classify(ctx context.Context, productID string, c entities.XmlClassification, notFound bool) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: productID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #division = :division, #linea = :linea, #clase = :clase, #subclase = :subclase, " +
			"#margen = :margen, #precio_venta = :precio_venta, #not_found = :not_found, #is_new = :is_new, #is_validated = :is_validated"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#division":     "division",
			"#linea":        "linea",
			"#clase":        "clase",
			"#subclase":     "subclase",
			"#margen":       "margen",
			"#precio_venta": "precio_venta",
			"#not_found":    "not_found",
			"#is_new":       "is_new",
			"#is_validated": "is_validated",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":division":     &types.AttributeValueMemberS{Value: c.Division},
			":linea":        &types.AttributeValueMemberS{Value: c.Linea},
			":clase":        &types.AttributeValueMemberS{Value: c.Clase},
			":subclase":     &types.AttributeValueMemberS{Value: c.Subclase},
			":margen":       &types.AttributeValueMemberS{Value: floatToString(c.Margen)},
			":precio_venta": &types.AttributeValueMemberS{Value: floatToString(c.PrecioVenta)},
			":not_found":    &types.AttributeValueMemberBOOL{Value: notFound},
			":is_new":       &types.AttributeValueMemberBOOL{Value: false},
			":is_validated": &types.AttributeValueMemberBOOL{Value: !notFound},
		},
	})
	return err
}

func (r *XmlProductsDynamoRepository) UpdateSKU(ctx context.Context, productID, skuOriginal, skuFinal string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: productID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #sku_original = :orig, #sku_final = :final, #is_processed = :processed"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#sku_original": "sku_original",
			"#sku_final":    "sku_final",
			"#is_processed": "is_processed",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":orig":      &types.AttributeValueMemberS{Value: skuOriginal},
			":final":     &types.AttributeValueMemberS{Value: skuFinal},
			":processed": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	return err
}

func toXmlProductItem(p entities.XmlProduct) xmlProductItem {
	return xmlProductItem{
		ID:            p.ID,
		InvoiceID:     p.InvoiceID,
		OrderID:       p.OrderID,
		Descripcion:   p.Descripcion,
		Cantidad:      floatToString(p.Cantidad),
		Precio:        floatToString(p.Precio),
		Total:         floatToString(p.Total),
		Unidad:        p.Unidad,
		Proveedor:     p.Proveedor,
		ClaveProdServ: p.ClaveProdServ,
		ClaveUnidad:   p.ClaveUnidad,
		SKU:           p.SKU,
		Division:      p.Division,
		Linea:         p.Linea,
		Clase:         p.Clase,
		Subclase:      p.Subclase,
		Margen:        floatToString(p.Margen),
		PrecioVenta:   floatToString(p.PrecioVenta),
		IsValidated:   p.IsValidated,
		IsNew:         p.IsNew,
		IsProcessed:   p.IsProcessed,
		NotFound:      p.NotFound,
		SKUOriginal:   p.SKUOriginal,
		SKUFinal:      p.SKUFinal,
	}
}

func fromXmlProductItem(it xmlProductItem) entities.XmlProduct {
	cantidad, _ := strconv.ParseFloat(it.Cantidad, 64)
	precio, _ := strconv.ParseFloat(it.Precio, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	margen, _ := strconv.ParseFloat(it.Margen, 64)
	precioVenta, _ := strconv.ParseFloat(it.PrecioVenta, 64)

	return entities.XmlProduct{
		ID:            it.ID,
		InvoiceID:     it.InvoiceID,
		OrderID:       it.OrderID,
		Descripcion:   it.Descripcion,
		Cantidad:      cantidad,
		Precio:        precio,
		Total:         total,
		Unidad:        it.Unidad,
		Proveedor:     it.Proveedor,
		ClaveProdServ: it.ClaveProdServ,
		ClaveUnidad:   it.ClaveUnidad,
		SKU:           it.SKU,
		Division:      it.Division,
		Linea:         it.Linea,
		Clase:         it.Clase,
		Subclase:      it.Subclase,
		Margen:        margen,
		PrecioVenta:   precioVenta,
		IsValidated:   it.IsValidated,
		IsNew:         it.IsNew,
		IsProcessed:   it.IsProcessed,
		NotFound:      it.NotFound,
		SKUOriginal:   it.SKUOriginal,
		SKUFinal:      it.SKUFinal,
	}
}

func fromOrderInvoiceItem(it orderInvoiceItem) entities.OrderInvoice {
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	uploadedAt, _ := time.Parse(time.RFC3339Nano, it.UploadedAt)

	return entities.OrderInvoice{
		ID:           it.ID,
		OrderID:      it.OrderID,
		InvoiceFolio: it.InvoiceFolio,
		XMLContent:   it.XMLContent,
		TotalAmount:  total,
		Proveedor:    it.Proveedor,
		RFCProveedor: it.RFCProveedor,
		Validados:    it.Validados,
		Nuevos:       it.Nuevos,
		UploadedAt:   uploadedAt,
	}
}

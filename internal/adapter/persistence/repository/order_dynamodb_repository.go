package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
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
	defaultOrdersTableName         = "orders"
	defaultAuthorizationsTableName = "diagnostic_authorizations"
	defaultLostSalesTableName      = "lost_sales"

	ordersFolioIndex  = "folio-index"
	ordersStatusIndex = "status-index"
)

// Line items and the diagnostic are stored as JSON documents inside the
// order row; they are always read and replaced as a whole.
type orderItem struct {
	ID         string `dynamodbav:"id"`
	Folio      string `dynamodbav:"folio"`
	CustomerID string `dynamodbav:"customer_id"`
	VehicleID  string `dynamodbav:"vehicle_id,omitempty"`
	Tienda     string `dynamodbav:"tienda,omitempty"`
	Division   string `dynamodbav:"division,omitempty"`

	ProductosJSON  string `dynamodbav:"productos_json,omitempty"`
	ServiciosJSON  string `dynamodbav:"servicios_json,omitempty"`
	DiagnosticJSON string `dynamodbav:"diagnostic_json,omitempty"`

	Presupuesto string `dynamodbav:"presupuesto"`
	Status      string `dynamodbav:"status"`

	Promotion          string `dynamodbav:"promotion,omitempty"`
	TechnicianName     string `dynamodbav:"technician_name,omitempty"`
	PurchaseOrderFolio string `dynamodbav:"purchase_order_folio,omitempty"`

	TotalAuthorizedAmount string `dynamodbav:"total_authorized_amount,omitempty"`
	TotalRejectedAmount   string `dynamodbav:"total_rejected_amount,omitempty"`

	IsProcessingXML           bool `dynamodbav:"is_processing_xml"`
	IsValidatingProducts      bool `dynamodbav:"is_validating_products"`
	IsProcessingProducts      bool `dynamodbav:"is_processing_products"`
	IsGeneratingPurchaseOrder bool `dynamodbav:"is_generating_purchase_order"`

	AdminValidationStatus string `dynamodbav:"admin_validation_status,omitempty"`
	AdminValidationNotes  string `dynamodbav:"admin_validation_notes,omitempty"`
	AdminValidatedBy      string `dynamodbav:"admin_validated_by,omitempty"`
	AdminValidatedAt      string `dynamodbav:"admin_validated_at,omitempty"`

	PreOCValidationStatus string `dynamodbav:"pre_oc_validation_status,omitempty"`
	PreOCValidationNotes  string `dynamodbav:"pre_oc_validation_notes,omitempty"`
	PreOCValidatedBy      string `dynamodbav:"pre_oc_validated_by,omitempty"`
	PreOCValidatedAt      string `dynamodbav:"pre_oc_validated_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type authorizationRecordItem struct {
	ID               string `dynamodbav:"id"`
	OrderID          string `dynamodbav:"order_id"`
	DiagnosticItemID string `dynamodbav:"diagnostic_item_id"`
	ItemName         string `dynamodbav:"item_name"`
	Category         string `dynamodbav:"category,omitempty"`
	Description      string `dynamodbav:"description,omitempty"`
	Severity         string `dynamodbav:"severity"`
	EstimatedCost    string `dynamodbav:"estimated_cost"`
	IsAuthorized     bool   `dynamodbav:"is_authorized"`
	RejectionReason  string `dynamodbav:"rejection_reason,omitempty"`
	AuthorizedAt     string `dynamodbav:"authorization_date,omitempty"`
	Notes            string `dynamodbav:"notes,omitempty"`
}

type lostSaleItem struct {
	ID              string `dynamodbav:"id"`
	OrderID         string `dynamodbav:"order_id"`
	OrderFolio      string `dynamodbav:"order_folio"`
	ItemName        string `dynamodbav:"item_name"`
	Description     string `dynamodbav:"description,omitempty"`
	Severity        string `dynamodbav:"severity"`
	EstimatedCost   string `dynamodbav:"estimated_cost"`
	RejectionReason string `dynamodbav:"rejection_reason"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: folio-index (PK: folio)
//   - GSI: status-index (PK: status)
//
// Authorization records and lost sales live in their own tables keyed by
// id; they are write-mostly statistics rows.

type OrderDynamoRepository struct {
	ddb                 *dynamodb.Client
	tableName           string
	authorizationsTable string
	lostSalesTable      string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:                 ddb,
		tableName:           getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		authorizationsTable: getenvDefault("AUTHORIZATIONS_TABLE", defaultAuthorizationsTableName),
		lostSalesTable:      getenvDefault("LOST_SALES_TABLE", defaultLostSalesTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) GetByFolio(ctx context.Context, folio string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersFolioIndex),
		KeyConditionExpression: aws.String("folio = :folio"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":folio": &types.AttributeValueMemberS{Value: folio},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			o, err := fromOrderItem(it)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) ListPendingAdminValidation(ctx context.Context) ([]entities.Order, error) {
	return r.queueByStatus(ctx, entities.StatusProductosValidados, "admin_validation_status")
}

func (r *OrderDynamoRepository) ListPendingPreOC(ctx context.Context) ([]entities.Order, error) {
	return r.queueByStatus(ctx, entities.StatusProductosProcesados, "pre_oc_validation_status")
}

func (r *OrderDynamoRepository) queueByStatus(ctx context.Context, status entities.OrderStatus, subState string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("#sub = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#sub":    subState,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.ValidationPending)},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		o, err := fromOrderItem(it)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// UpdateStatus writes the status plus any additional columns in one
// update expression and returns the canonical row after the write.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, extra map[string]interface{}) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}

		keys := make([]string, 0, len(extra))
		for k := range extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			ph := fmt.Sprintf("#x%d", i)
			vph := fmt.Sprintf(":x%d", i)
			expr += fmt.Sprintf(", %s = %s", ph, vph)
			names[ph] = k
			vals[vph] = toAttributeValue(extra[k])
		}
		return expr, vals, names
	})
}

// UpdateLines replaces the order's line items, diagnostic and the fields
// derived from them.
func (r *OrderDynamoRepository) UpdateLines(ctx context.Context, o entities.Order) (entities.Order, error) {
	productos, servicios, diagnostic, err := marshalLines(o)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, o.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #productos = :productos, #servicios = :servicios, #diagnostic = :diagnostic, " +
			"#presupuesto = :presupuesto, #technician = :technician, " +
			"#total_auth = :total_auth, #total_rej = :total_rej, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":productos":   &types.AttributeValueMemberS{Value: productos},
			":servicios":   &types.AttributeValueMemberS{Value: servicios},
			":diagnostic":  &types.AttributeValueMemberS{Value: diagnostic},
			":presupuesto": &types.AttributeValueMemberS{Value: floatToString(o.Presupuesto)},
			":technician":  &types.AttributeValueMemberS{Value: o.TechnicianName},
			":total_auth":  &types.AttributeValueMemberS{Value: floatToString(o.TotalAuthorizedAmount)},
			":total_rej":   &types.AttributeValueMemberS{Value: floatToString(o.TotalRejectedAmount)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#productos":   "productos_json",
			"#servicios":   "servicios_json",
			"#diagnostic":  "diagnostic_json",
			"#presupuesto": "presupuesto",
			"#technician":  "technician_name",
			"#total_auth":  "total_authorized_amount",
			"#total_rej":   "total_rejected_amount",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SaveAuthorizationItems(ctx context.Context, orderID string, items []entities.DiagnosticItemAuthorization) error {
	for _, rec := range items {
		it := authorizationRecordItem{
			ID:               rec.ID,
			OrderID:          orderID,
			DiagnosticItemID: rec.DiagnosticItemID,
			ItemName:         rec.ItemName,
			Category:         rec.Category,
			Description:      rec.Description,
			Severity:         string(rec.Severity),
			EstimatedCost:    floatToString(rec.EstimatedCost),
			IsAuthorized:     rec.IsAuthorized,
			RejectionReason:  rec.RejectionReason,
			Notes:            rec.Notes,
		}
		if rec.AuthorizedAt != nil {
			it.AuthorizedAt = rec.AuthorizedAt.UTC().Format(time.RFC3339Nano)
		}

		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.authorizationsTable),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderDynamoRepository) SaveLostSales(ctx context.Context, sales []entities.LostSale) error {
	for _, s := range sales {
		it := lostSaleItem{
			ID:              s.ID,
			OrderID:         s.OrderID,
			OrderFolio:      s.OrderFolio,
			ItemName:        s.ItemName,
			Description:     s.Description,
			Severity:        string(s.Severity),
			EstimatedCost:   floatToString(s.EstimatedCost),
			RejectionReason: s.RejectionReason,
			CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339Nano),
		}

		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.lostSalesTable),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func toAttributeValue(v interface{}) types.AttributeValue {
	switch t := v.(type) {
	case bool:
		return &types.AttributeValueMemberBOOL{Value: t}
	case float64:
		return &types.AttributeValueMemberS{Value: floatToString(t)}
	case int:
		return &types.AttributeValueMemberS{Value: strconv.Itoa(t)}
	case string:
		return &types.AttributeValueMemberS{Value: t}
	}
	return &types.AttributeValueMemberS{Value: fmt.Sprintf("%v", v)}
}

func marshalLines(o entities.Order) (productos, servicios, diagnostic string, err error) {
	p, err := json.Marshal(o.Productos)
	if err != nil {
		return "", "", "", err
	}
	s, err := json.Marshal(o.Servicios)
	if err != nil {
		return "", "", "", err
	}
	d := []byte("null")
	if o.Diagnostic != nil {
		if d, err = json.Marshal(o.Diagnostic); err != nil {
			return "", "", "", err
		}
	}
	return string(p), string(s), string(d), nil
}

func toOrderItem(o entities.Order) (orderItem, error) {
	productos, servicios, diagnostic, err := marshalLines(o)
	if err != nil {
		return orderItem{}, err
	}

	it := orderItem{
		ID:         o.ID,
		Folio:      o.Folio,
		CustomerID: o.CustomerID,
		VehicleID:  o.VehicleID,
		Tienda:     o.Tienda,
		Division:   o.Division,

		ProductosJSON:  productos,
		ServiciosJSON:  servicios,
		DiagnosticJSON: diagnostic,

		Presupuesto: floatToString(o.Presupuesto),
		Status:      string(o.Status),

		Promotion:          o.Promotion,
		TechnicianName:     o.TechnicianName,
		PurchaseOrderFolio: o.PurchaseOrderFolio,

		TotalAuthorizedAmount: floatToString(o.TotalAuthorizedAmount),
		TotalRejectedAmount:   floatToString(o.TotalRejectedAmount),

		IsProcessingXML:           o.IsProcessingXML,
		IsValidatingProducts:      o.IsValidatingProducts,
		IsProcessingProducts:      o.IsProcessingProducts,
		IsGeneratingPurchaseOrder: o.IsGeneratingPurchaseOrder,

		AdminValidationStatus: string(o.AdminValidation),
		AdminValidationNotes:  o.AdminValidationNotes,
		AdminValidatedBy:      o.AdminValidatedBy,

		PreOCValidationStatus: string(o.PreOCValidation),
		PreOCValidationNotes:  o.PreOCValidationNotes,
		PreOCValidatedBy:      o.PreOCValidatedBy,

		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.AdminValidatedAt != nil {
		it.AdminValidatedAt = o.AdminValidatedAt.UTC().Format(time.RFC3339Nano)
	}
	if o.PreOCValidatedAt != nil {
		it.PreOCValidatedAt = o.PreOCValidatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	presupuesto, _ := strconv.ParseFloat(it.Presupuesto, 64)
	totalAuth, _ := strconv.ParseFloat(it.TotalAuthorizedAmount, 64)
	totalRej, _ := strconv.ParseFloat(it.TotalRejectedAmount, 64)

	o := entities.Order{
		ID:         it.ID,
		Folio:      it.Folio,
		CustomerID: it.CustomerID,
		VehicleID:  it.VehicleID,
		Tienda:     it.Tienda,
		Division:   it.Division,

		Presupuesto: presupuesto,
		Status:      entities.OrderStatus(it.Status),

		Promotion:          it.Promotion,
		TechnicianName:     it.TechnicianName,
		PurchaseOrderFolio: it.PurchaseOrderFolio,

		TotalAuthorizedAmount: totalAuth,
		TotalRejectedAmount:   totalRej,

		IsProcessingXML:           it.IsProcessingXML,
		IsValidatingProducts:      it.IsValidatingProducts,
		IsProcessingProducts:      it.IsProcessingProducts,
		IsGeneratingPurchaseOrder: it.IsGeneratingPurchaseOrder,

		AdminValidation:      entities.ValidationStatus(it.AdminValidationStatus),
		AdminValidationNotes: it.AdminValidationNotes,
		AdminValidatedBy:     it.AdminValidatedBy,

		PreOCValidation:      entities.ValidationStatus(it.PreOCValidationStatus),
		PreOCValidationNotes: it.PreOCValidationNotes,
		PreOCValidatedBy:     it.PreOCValidatedBy,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if it.ProductosJSON != "" {
		if err := json.Unmarshal([]byte(it.ProductosJSON), &o.Productos); err != nil {
			return entities.Order{}, err
		}
	}
	if it.ServiciosJSON != "" {
		if err := json.Unmarshal([]byte(it.ServiciosJSON), &o.Servicios); err != nil {
			return entities.Order{}, err
		}
	}
	if it.DiagnosticJSON != "" && it.DiagnosticJSON != "null" {
		o.Diagnostic = &entities.VehicleDiagnostic{}
		if err := json.Unmarshal([]byte(it.DiagnosticJSON), o.Diagnostic); err != nil {
			return entities.Order{}, err
		}
	}
	if it.AdminValidatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.AdminValidatedAt); err == nil {
			o.AdminValidatedAt = &t
		}
	}
	if it.PreOCValidatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PreOCValidatedAt); err == nil {
			o.PreOCValidatedAt = &t
		}
	}
	return o, nil
}

package repository

import (
	"context"
	"errors"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "service_orders"
	ordersClientIDIndex    = "client_id-index"
)

type orderLineItemRecord struct {
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Discount    string `dynamodbav:"discount"`
	LineTotal   string `dynamodbav:"line_total"`
	ProductID   string `dynamodbav:"product_id,omitempty"`
	ServiceID   string `dynamodbav:"service_id,omitempty"`
}

type serviceOrderRecord struct {
	ID              string                `dynamodbav:"id"`
	ClientID        string                `dynamodbav:"client_id"`
	EquipmentTypeID string                `dynamodbav:"equipment_type_id,omitempty"`
	BrandID         string                `dynamodbav:"brand_id,omitempty"`
	Model           string                `dynamodbav:"model,omitempty"`
	ReportedProblem string                `dynamodbav:"reported_problem,omitempty"`
	TechnicalNotes  string                `dynamodbav:"technical_notes,omitempty"`
	StatusID        string                `dynamodbav:"status_id,omitempty"`
	AmountPaid      string                `dynamodbav:"amount_paid"`
	AmountPending   string                `dynamodbav:"amount_pending"`
	PaymentMethod   string                `dynamodbav:"payment_method,omitempty"`
	DeliveryDate    string                `dynamodbav:"delivery_date,omitempty"`
	NetTotal        string                `dynamodbav:"net_total"`
	Items           []orderLineItemRecord `dynamodbav:"items"`
	CreatedAt       string                `dynamodbav:"created_at"`
	UpdatedAt       string                `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// Line items are stored inline on the order record: every save is a full
// item-list replacement, which matches the whole-payload save contract. The
// persisted net_total and amount_pending attributes are write-time summaries
// only; reads recompute every aggregate from the item list.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) SaveWithItems(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderRecord(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	// Upsert: the same call covers first save and re-save; the full item
	// list replaces whatever was stored before.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var rec serviceOrderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderRecord(rec), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder
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
			var rec serviceOrderRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderRecord(rec))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec serviceOrderRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		orders = append(orders, fromServiceOrderRecord(rec))
	}
	return orders, nil
}

func (r *ServiceOrderDynamoRepository) UpdateFields(ctx context.Context, id string, fields interfaces.OrderSettlementFields) (entities.ServiceOrder, error) {
	expr := "SET #amount_paid = :amount_paid, #amount_pending = :amount_pending, #payment_method = :payment_method, #delivery_date = :delivery_date, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":amount_paid":    &types.AttributeValueMemberS{Value: decToString(fields.AmountPaid)},
		":amount_pending": &types.AttributeValueMemberS{Value: decToString(fields.AmountPending)},
		":payment_method": &types.AttributeValueMemberS{Value: fields.PaymentMethod},
		":delivery_date":  &types.AttributeValueMemberS{Value: timeToString(fields.DeliveryDate)},
		":updated_at":     &types.AttributeValueMemberS{Value: timeToString(nowUTC())},
	}
	names := map[string]string{
		"#amount_paid":    "amount_paid",
		"#amount_pending": "amount_pending",
		"#payment_method": "payment_method",
		"#delivery_date":  "delivery_date",
		"#updated_at":     "updated_at",
	}
	if fields.StatusID != "" {
		expr += ", #status_id = :status_id"
		values[":status_id"] = &types.AttributeValueMemberS{Value: fields.StatusID}
		names["#status_id"] = "status_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var rec serviceOrderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderRecord(rec), nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceOrderDynamoRepository) CountByClientID(ctx context.Context, clientID string) (int, error) {
	return r.countByAttribute(ctx, "client_id", clientID)
}

func (r *ServiceOrderDynamoRepository) CountByBrandID(ctx context.Context, brandID string) (int, error) {
	return r.countByAttribute(ctx, "brand_id", brandID)
}

func (r *ServiceOrderDynamoRepository) CountByEquipmentTypeID(ctx context.Context, equipmentTypeID string) (int, error) {
	return r.countByAttribute(ctx, "equipment_type_id", equipmentTypeID)
}

func (r *ServiceOrderDynamoRepository) CountByStatusID(ctx context.Context, statusID string) (int, error) {
	return r.countByAttribute(ctx, "status_id", statusID)
}

// countByAttribute answers the taxonomy delete guard ("is this entity still
// referenced by any order"). Order volume in a single shop stays small, so a
// filtered count scan is acceptable here.
func (r *ServiceOrderDynamoRepository) countByAttribute(ctx context.Context, attr, value string) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#attr = :val"),
			ExpressionAttributeNames: map[string]string{
				"#attr": attr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":val": &types.AttributeValueMemberS{Value: value},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return total, nil
}

func toServiceOrderRecord(o entities.ServiceOrder) serviceOrderRecord {
	items := make([]orderLineItemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineItemRecord{
			ID:          it.ID.Value,
			Kind:        string(it.Kind),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   decToString(it.UnitPrice),
			Discount:    decToString(it.Discount),
			LineTotal:   decToString(it.LineTotal),
			ProductID:   it.ProductID,
			ServiceID:   it.ServiceID,
		})
	}

	rec := serviceOrderRecord{
		ID:              o.ID,
		ClientID:        o.ClientID,
		EquipmentTypeID: o.EquipmentTypeID,
		BrandID:         o.BrandID,
		Model:           o.Model,
		ReportedProblem: o.ReportedProblem,
		TechnicalNotes:  o.TechnicalNotes,
		StatusID:        o.StatusID,
		AmountPaid:      decToString(o.AmountPaid),
		AmountPending:   decToString(o.PendingBalance()),
		PaymentMethod:   o.PaymentMethod,
		NetTotal:        decToString(o.NetTotal()),
		Items:           items,
		CreatedAt:       timeToString(o.CreatedAt),
		UpdatedAt:       timeToString(o.UpdatedAt),
	}
	if o.DeliveryDate != nil {
		rec.DeliveryDate = timeToString(*o.DeliveryDate)
	}
	return rec
}

func fromServiceOrderRecord(rec serviceOrderRecord) entities.ServiceOrder {
	items := make([]entities.OrderLineItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, entities.OrderLineItem{
			ID:          entities.PersistedItemID(it.ID),
			Kind:        entities.ItemKind(it.Kind),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   decFromString(it.UnitPrice),
			Discount:    decFromString(it.Discount),
			LineTotal:   decFromString(it.LineTotal),
			ProductID:   it.ProductID,
			ServiceID:   it.ServiceID,
		})
	}

	o := entities.ServiceOrder{
		ID:              rec.ID,
		ClientID:        rec.ClientID,
		EquipmentTypeID: rec.EquipmentTypeID,
		BrandID:         rec.BrandID,
		Model:           rec.Model,
		ReportedProblem: rec.ReportedProblem,
		TechnicalNotes:  rec.TechnicalNotes,
		StatusID:        rec.StatusID,
		AmountPaid:      decFromString(rec.AmountPaid),
		PaymentMethod:   rec.PaymentMethod,
		Items:           items,
		CreatedAt:       timeFromString(rec.CreatedAt),
		UpdatedAt:       timeFromString(rec.UpdatedAt),
	}
	if rec.DeliveryDate != "" {
		dt := timeFromString(rec.DeliveryDate)
		o.DeliveryDate = &dt
	}
	return o
}

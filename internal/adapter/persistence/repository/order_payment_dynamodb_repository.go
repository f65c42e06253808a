package repository

import (
	"context"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "order_payments"
	paymentsOrderIDIndex     = "order_id-index"
)

type orderPaymentRecord struct {
	ID                string `dynamodbav:"id"`
	OrderID           string `dynamodbav:"order_id"`
	Amount            string `dynamodbav:"amount"`
	Method            string `dynamodbav:"method,omitempty"`
	Date              string `dynamodbav:"date"`
	GatewayPayloadRaw string `dynamodbav:"gateway_payload_raw,omitempty"`
}

// OrderPaymentDynamoRepository persists OrderPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Payments are append-only settlement records. There is no update or delete
// path; the payment history is the audit trail.

type OrderPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderPaymentRepository = (*OrderPaymentDynamoRepository)(nil)

func NewOrderPaymentDynamoRepository(ddb *dynamodb.Client) *OrderPaymentDynamoRepository {
	return &OrderPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *OrderPaymentDynamoRepository) Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
	av, err := attributevalue.MarshalMap(toOrderPaymentRecord(p))
	if err != nil {
		return entities.OrderPayment{}, err
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
		return entities.OrderPayment{}, err
	}
	return p, nil
}

func (r *OrderPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderPayment{}, nil
	}

	var rec orderPaymentRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.OrderPayment{}, err
	}
	return fromOrderPaymentRecord(rec), nil
}

func (r *OrderPaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.OrderPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec orderPaymentRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		payments = append(payments, fromOrderPaymentRecord(rec))
	}
	return payments, nil
}

func toOrderPaymentRecord(p entities.OrderPayment) orderPaymentRecord {
	return orderPaymentRecord{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Amount:            decToString(p.Amount),
		Method:            p.Method,
		Date:              timeToString(p.Date),
		GatewayPayloadRaw: string(p.GatewayPayloadRaw),
	}
}

func fromOrderPaymentRecord(rec orderPaymentRecord) entities.OrderPayment {
	return entities.OrderPayment{
		ID:                rec.ID,
		OrderID:           rec.OrderID,
		Amount:            decFromString(rec.Amount),
		Method:            rec.Method,
		Date:              timeFromString(rec.Date),
		GatewayPayloadRaw: []byte(rec.GatewayPayloadRaw),
	}
}

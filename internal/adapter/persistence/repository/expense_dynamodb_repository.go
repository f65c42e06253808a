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

const defaultExpensesTableName = "expenses"

type expenseRecord struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category,omitempty"`
	Amount      string `dynamodbav:"amount"`
	Date        string `dynamodbav:"date"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseRecord(e))
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Item) == 0 {
		return entities.Expense{}, nil
	}

	var rec expenseRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseRecord(rec), nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	var expenses []entities.Expense
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
			var rec expenseRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			expenses = append(expenses, fromExpenseRecord(rec))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return expenses, nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseRecord(e))
	if err != nil {
		return entities.Expense{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteRecordByID(ctx, r.ddb, r.tableName, id)
}

func toExpenseRecord(e entities.Expense) expenseRecord {
	return expenseRecord{
		ID:          e.ID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      decToString(e.Amount),
		Date:        timeToString(e.Date),
		CreatedAt:   timeToString(e.CreatedAt),
		UpdatedAt:   timeToString(e.UpdatedAt),
	}
}

func fromExpenseRecord(rec expenseRecord) entities.Expense {
	return entities.Expense{
		ID:          rec.ID,
		Description: rec.Description,
		Category:    rec.Category,
		Amount:      decFromString(rec.Amount),
		Date:        timeFromString(rec.Date),
		CreatedAt:   timeFromString(rec.CreatedAt),
		UpdatedAt:   timeFromString(rec.UpdatedAt),
	}
}

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
	defaultBrandsTableName         = "brands"
	defaultEquipmentTypesTableName = "equipment_types"
	defaultStatusesTableName       = "order_statuses"
)

type labelRecord struct {
	ID        string `dynamodbav:"id"`
	Label     string `dynamodbav:"label"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type statusRecord struct {
	ID        string `dynamodbav:"id"`
	Label     string `dynamodbav:"label"`
	IsInitial bool   `dynamodbav:"is_initial"`
	IsPartial bool   `dynamodbav:"is_partial"`
	IsFinal   bool   `dynamodbav:"is_final"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BrandDynamoRepository persists equipment brands in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BrandDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBrandRepository = (*BrandDynamoRepository)(nil)

func NewBrandDynamoRepository(ddb *dynamodb.Client) *BrandDynamoRepository {
	return &BrandDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BRANDS_TABLE", defaultBrandsTableName),
	}
}

func (r *BrandDynamoRepository) Create(ctx context.Context, b entities.Brand) (entities.Brand, error) {
	rec := labelRecord{ID: b.ID, Label: b.Label, CreatedAt: timeToString(b.CreatedAt), UpdatedAt: timeToString(b.UpdatedAt)}
	if err := putLabelRecord(ctx, r.ddb, r.tableName, rec, false); err != nil {
		return entities.Brand{}, err
	}
	return b, nil
}

func (r *BrandDynamoRepository) GetByID(ctx context.Context, id string) (entities.Brand, error) {
	rec, found, err := getLabelRecord(ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Brand{}, err
	}
	return entities.Brand{ID: rec.ID, Label: rec.Label, CreatedAt: timeFromString(rec.CreatedAt), UpdatedAt: timeFromString(rec.UpdatedAt)}, nil
}

func (r *BrandDynamoRepository) List(ctx context.Context) ([]entities.Brand, error) {
	recs, err := scanLabelRecords(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	brands := make([]entities.Brand, 0, len(recs))
	for _, rec := range recs {
		brands = append(brands, entities.Brand{ID: rec.ID, Label: rec.Label, CreatedAt: timeFromString(rec.CreatedAt), UpdatedAt: timeFromString(rec.UpdatedAt)})
	}
	return brands, nil
}

func (r *BrandDynamoRepository) Update(ctx context.Context, b entities.Brand) (entities.Brand, error) {
	rec := labelRecord{ID: b.ID, Label: b.Label, CreatedAt: timeToString(b.CreatedAt), UpdatedAt: timeToString(b.UpdatedAt)}
	if err := putLabelRecord(ctx, r.ddb, r.tableName, rec, true); err != nil {
		return entities.Brand{}, err
	}
	return b, nil
}

func (r *BrandDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteRecordByID(ctx, r.ddb, r.tableName, id)
}

// EquipmentTypeDynamoRepository persists equipment types in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EquipmentTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEquipmentTypeRepository = (*EquipmentTypeDynamoRepository)(nil)

func NewEquipmentTypeDynamoRepository(ddb *dynamodb.Client) *EquipmentTypeDynamoRepository {
	return &EquipmentTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENT_TYPES_TABLE", defaultEquipmentTypesTableName),
	}
}

func (r *EquipmentTypeDynamoRepository) Create(ctx context.Context, e entities.EquipmentType) (entities.EquipmentType, error) {
	rec := labelRecord{ID: e.ID, Label: e.Label, CreatedAt: timeToString(e.CreatedAt), UpdatedAt: timeToString(e.UpdatedAt)}
	if err := putLabelRecord(ctx, r.ddb, r.tableName, rec, false); err != nil {
		return entities.EquipmentType{}, err
	}
	return e, nil
}

func (r *EquipmentTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.EquipmentType, error) {
	rec, found, err := getLabelRecord(ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.EquipmentType{}, err
	}
	return entities.EquipmentType{ID: rec.ID, Label: rec.Label, CreatedAt: timeFromString(rec.CreatedAt), UpdatedAt: timeFromString(rec.UpdatedAt)}, nil
}

func (r *EquipmentTypeDynamoRepository) List(ctx context.Context) ([]entities.EquipmentType, error) {
	recs, err := scanLabelRecords(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	equipmentTypes := make([]entities.EquipmentType, 0, len(recs))
	for _, rec := range recs {
		equipmentTypes = append(equipmentTypes, entities.EquipmentType{ID: rec.ID, Label: rec.Label, CreatedAt: timeFromString(rec.CreatedAt), UpdatedAt: timeFromString(rec.UpdatedAt)})
	}
	return equipmentTypes, nil
}

func (r *EquipmentTypeDynamoRepository) Update(ctx context.Context, e entities.EquipmentType) (entities.EquipmentType, error) {
	rec := labelRecord{ID: e.ID, Label: e.Label, CreatedAt: timeToString(e.CreatedAt), UpdatedAt: timeToString(e.UpdatedAt)}
	if err := putLabelRecord(ctx, r.ddb, r.tableName, rec, true); err != nil {
		return entities.EquipmentType{}, err
	}
	return e, nil
}

func (r *EquipmentTypeDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteRecordByID(ctx, r.ddb, r.tableName, id)
}

// StatusDynamoRepository persists the order status taxonomy in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type StatusDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusRepository = (*StatusDynamoRepository)(nil)

func NewStatusDynamoRepository(ddb *dynamodb.Client) *StatusDynamoRepository {
	return &StatusDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_STATUSES_TABLE", defaultStatusesTableName),
	}
}

func (r *StatusDynamoRepository) Create(ctx context.Context, s entities.OrderStatus) (entities.OrderStatus, error) {
	av, err := attributevalue.MarshalMap(toStatusRecord(s))
	if err != nil {
		return entities.OrderStatus{}, err
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
		return entities.OrderStatus{}, err
	}
	return s, nil
}

func (r *StatusDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderStatus{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderStatus{}, nil
	}

	var rec statusRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.OrderStatus{}, err
	}
	return fromStatusRecord(rec), nil
}

func (r *StatusDynamoRepository) List(ctx context.Context) ([]entities.OrderStatus, error) {
	var statuses []entities.OrderStatus
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
			var rec statusRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			statuses = append(statuses, fromStatusRecord(rec))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return statuses, nil
}

func (r *StatusDynamoRepository) Update(ctx context.Context, s entities.OrderStatus) (entities.OrderStatus, error) {
	av, err := attributevalue.MarshalMap(toStatusRecord(s))
	if err != nil {
		return entities.OrderStatus{}, err
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
		return entities.OrderStatus{}, err
	}
	return s, nil
}

func (r *StatusDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteRecordByID(ctx, r.ddb, r.tableName, id)
}

func toStatusRecord(s entities.OrderStatus) statusRecord {
	return statusRecord{
		ID:        s.ID,
		Label:     s.Label,
		IsInitial: s.IsInitial,
		IsPartial: s.IsPartial,
		IsFinal:   s.IsFinal,
		CreatedAt: timeToString(s.CreatedAt),
		UpdatedAt: timeToString(s.UpdatedAt),
	}
}

func fromStatusRecord(rec statusRecord) entities.OrderStatus {
	return entities.OrderStatus{
		ID:        rec.ID,
		Label:     rec.Label,
		IsInitial: rec.IsInitial,
		IsPartial: rec.IsPartial,
		IsFinal:   rec.IsFinal,
		CreatedAt: timeFromString(rec.CreatedAt),
		UpdatedAt: timeFromString(rec.UpdatedAt),
	}
}

func putLabelRecord(ctx context.Context, ddb *dynamodb.Client, table string, rec labelRecord, mustExist bool) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return err
	}
	cond := "attribute_not_exists(#id)"
	if mustExist {
		cond = "attribute_exists(#id)"
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func getLabelRecord(ctx context.Context, ddb *dynamodb.Client, table, id string) (labelRecord, bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return labelRecord{}, false, err
	}
	if len(out.Item) == 0 {
		return labelRecord{}, false, nil
	}
	var rec labelRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return labelRecord{}, false, err
	}
	return rec, true, nil
}

func scanLabelRecords(ctx context.Context, ddb *dynamodb.Client, table string) ([]labelRecord, error) {
	var recs []labelRecord
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec labelRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			recs = append(recs, rec)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return recs, nil
}

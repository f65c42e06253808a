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
	defaultProductsTableName = "products"
	defaultServicesTableName = "services"
)

// Both catalog tables share the same record shape: a priced label.
type catalogRecord struct {
	ID        string `dynamodbav:"id"`
	Label     string `dynamodbav:"label"`
	Price     string `dynamodbav:"price"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists the product (parts) catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	rec := catalogRecord{ID: p.ID, Label: p.Label, Price: decToString(p.Price), CreatedAt: timeToString(p.CreatedAt), UpdatedAt: timeToString(p.UpdatedAt)}
	if err := putCatalogRecord(ctx, r.ddb, r.tableName, rec, false); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	rec, found, err := getCatalogRecord(ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return entities.Product{ID: rec.ID, Label: rec.Label, Price: decFromString(rec.Price), CreatedAt: timeFromString(rec.CreatedAt), UpdatedAt: timeFromString(rec.UpdatedAt)}, nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	recs, err := scanCatalogRecords(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	products := make([]entities.Product, 0, len(recs))
	for _, rec := range recs {
		products = append(products, entities.Product{ID: rec.ID, Label: rec.Label, Price: decFromString(rec.Price), CreatedAt: timeFromString(rec.CreatedAt), UpdatedAt: timeFromString(rec.UpdatedAt)})
	}
	return products, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	rec := catalogRecord{ID: p.ID, Label: p.Label, Price: decToString(p.Price), CreatedAt: timeToString(p.CreatedAt), UpdatedAt: timeToString(p.UpdatedAt)}
	if err := putCatalogRecord(ctx, r.ddb, r.tableName, rec, true); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteRecordByID(ctx, r.ddb, r.tableName, id)
}

// ServiceCatalogDynamoRepository persists the service (labor) catalog in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb *dynamodb.Client) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceCatalogDynamoRepository) Create(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	rec := catalogRecord{ID: s.ID, Label: s.Label, Price: decToString(s.Price), CreatedAt: timeToString(s.CreatedAt), UpdatedAt: timeToString(s.UpdatedAt)}
	if err := putCatalogRecord(ctx, r.ddb, r.tableName, rec, false); err != nil {
		return entities.CatalogService{}, err
	}
	return s, nil
}

func (r *ServiceCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogService, error) {
	rec, found, err := getCatalogRecord(ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.CatalogService{}, err
	}
	return entities.CatalogService{ID: rec.ID, Label: rec.Label, Price: decFromString(rec.Price), CreatedAt: timeFromString(rec.CreatedAt), UpdatedAt: timeFromString(rec.UpdatedAt)}, nil
}

func (r *ServiceCatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogService, error) {
	recs, err := scanCatalogRecords(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	services := make([]entities.CatalogService, 0, len(recs))
	for _, rec := range recs {
		services = append(services, entities.CatalogService{ID: rec.ID, Label: rec.Label, Price: decFromString(rec.Price), CreatedAt: timeFromString(rec.CreatedAt), UpdatedAt: timeFromString(rec.UpdatedAt)})
	}
	return services, nil
}

func (r *ServiceCatalogDynamoRepository) Update(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	rec := catalogRecord{ID: s.ID, Label: s.Label, Price: decToString(s.Price), CreatedAt: timeToString(s.CreatedAt), UpdatedAt: timeToString(s.UpdatedAt)}
	if err := putCatalogRecord(ctx, r.ddb, r.tableName, rec, true); err != nil {
		return entities.CatalogService{}, err
	}
	return s, nil
}

func (r *ServiceCatalogDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteRecordByID(ctx, r.ddb, r.tableName, id)
}

func putCatalogRecord(ctx context.Context, ddb *dynamodb.Client, table string, rec catalogRecord, mustExist bool) error {
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

func getCatalogRecord(ctx context.Context, ddb *dynamodb.Client, table, id string) (catalogRecord, bool, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return catalogRecord{}, false, err
	}
	if len(out.Item) == 0 {
		return catalogRecord{}, false, nil
	}
	var rec catalogRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return catalogRecord{}, false, err
	}
	return rec, true, nil
}

func scanCatalogRecords(ctx context.Context, ddb *dynamodb.Client, table string) ([]catalogRecord, error) {
	var recs []catalogRecord
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
			var rec catalogRecord
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

func deleteRecordByID(ctx context.Context, ddb *dynamodb.Client, table, id string) error {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

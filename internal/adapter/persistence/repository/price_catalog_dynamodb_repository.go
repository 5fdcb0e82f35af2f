package repository

import (
	"context"
	"errors"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type catalogEntryItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Unit        string `dynamodbav:"unit"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
	Category    string `dynamodbav:"category,omitempty"`
	Position    int64  `dynamodbav:"position"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PriceCatalogDynamoRepository persists PriceCatalogEntry items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small and read whole; ordering is applied by entities.PriceCatalog.
type PriceCatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPriceCatalogRepository = (*PriceCatalogDynamoRepository)(nil)

func NewPriceCatalogDynamoRepository(ddb DynamoAPI, tableName string) *PriceCatalogDynamoRepository {
	return &PriceCatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PriceCatalogDynamoRepository) List(ctx context.Context) ([]entities.PriceCatalogEntry, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	out := make([]entities.PriceCatalogEntry, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it catalogEntryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromCatalogEntryItem(it))
		}
	}
	return out, nil
}

func (r *PriceCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.PriceCatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceCatalogEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceCatalogEntry{}, nil
	}

	var it catalogEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PriceCatalogEntry{}, err
	}
	return fromCatalogEntryItem(it), nil
}

func (r *PriceCatalogDynamoRepository) Create(ctx context.Context, e entities.PriceCatalogEntry) (entities.PriceCatalogEntry, error) {
	return e, r.put(ctx, e, "attribute_not_exists(#id)")
}

// Update overwrites an existing entry. A missing entry yields a zero value, as for lookups.
func (r *PriceCatalogDynamoRepository) Update(ctx context.Context, e entities.PriceCatalogEntry) (entities.PriceCatalogEntry, error) {
	err := r.put(ctx, e, "attribute_exists(#id)")
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return entities.PriceCatalogEntry{}, nil
	}
	return e, err
}

func (r *PriceCatalogDynamoRepository) put(ctx context.Context, e entities.PriceCatalogEntry, condition string) error {
	av, err := attributevalue.MarshalMap(catalogEntryItem{
		ID:          e.ID,
		Description: e.Description,
		Unit:        e.Unit,
		UnitPrice:   int64(e.UnitPrice),
		Category:    e.Category,
		Position:    e.Position,
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func fromCatalogEntryItem(it catalogEntryItem) entities.PriceCatalogEntry {
	return entities.PriceCatalogEntry{
		ID:          it.ID,
		Description: it.Description,
		Unit:        it.Unit,
		UnitPrice:   entities.Money(it.UnitPrice),
		Category:    it.Category,
		Position:    it.Position,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

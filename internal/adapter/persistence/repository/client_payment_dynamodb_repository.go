package repository

import (
	"context"
	"sort"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type clientPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ProjectID          string                 `dynamodbav:"project_id"`
	Amount             int64                  `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	TransactionID      string                 `dynamodbav:"transaction_id,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ClientPaymentDynamoRepository persists ClientPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type ClientPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientPaymentRepository = (*ClientPaymentDynamoRepository)(nil)

func NewClientPaymentDynamoRepository(ddb DynamoAPI, tableName string) *ClientPaymentDynamoRepository {
	return &ClientPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientPaymentDynamoRepository) Create(ctx context.Context, p entities.ClientPayment) (entities.ClientPayment, error) {
	av, err := attributevalue.MarshalMap(toClientPaymentItem(p))
	if err != nil {
		return entities.ClientPayment{}, err
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
		return entities.ClientPayment{}, err
	}
	return p, nil
}

func (r *ClientPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ClientPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientPayment{}, nil
	}

	var it clientPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientPayment{}, err
	}
	return fromClientPaymentItem(it), nil
}

func (r *ClientPaymentDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientPayment, error) {
	raw, err := queryByProject(ctx, r.ddb, r.tableName, projectID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.ClientPayment, 0, len(raw))
	for _, item := range raw {
		var it clientPaymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		items = append(items, fromClientPaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func (r *ClientPaymentDynamoRepository) deleteByProjectID(ctx context.Context, projectID string) error {
	items, err := queryByProject(ctx, r.ddb, r.tableName, projectID)
	if err != nil {
		return err
	}
	return batchDeleteByID(ctx, r.ddb, r.tableName, items)
}

func toClientPaymentItem(p entities.ClientPayment) clientPaymentItem {
	return clientPaymentItem{
		ID:                 p.ID,
		ProjectID:          p.ProjectID,
		Amount:             int64(p.Amount),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		TransactionID:      p.TransactionID,
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromClientPaymentItem(it clientPaymentItem) entities.ClientPayment {
	return entities.ClientPayment{
		ID:                 it.ID,
		ProjectID:          it.ProjectID,
		Amount:             entities.Money(it.Amount),
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		TransactionID:      it.TransactionID,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}

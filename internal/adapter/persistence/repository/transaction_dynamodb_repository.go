package repository

import (
	"context"
	"sort"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type transactionItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	Category    string `dynamodbav:"category"`
	Amount      int64  `dynamodbav:"amount"`
	Date        string `dynamodbav:"date"`
	Description string `dynamodbav:"description,omitempty"`
	Reference   string `dynamodbav:"reference,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// TransactionDynamoRepository persists the project ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type TransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoAPI, tableName string) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(transactionItem{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Category:    string(t.Category),
		Amount:      int64(t.Amount),
		Date:        formatTime(t.Date),
		Description: t.Description,
		Reference:   t.Reference,
		CreatedAt:   formatTime(t.CreatedAt),
	})
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

// ListByProjectID returns the ledger ordered by date.
func (r *TransactionDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Transaction, error) {
	raw, err := queryByProject(ctx, r.ddb, r.tableName, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Transaction, 0, len(raw))
	for _, item := range raw {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.Transaction{
			ID:          it.ID,
			ProjectID:   it.ProjectID,
			Category:    entities.TransactionCategory(it.Category),
			Amount:      entities.Money(it.Amount),
			Date:        parseTime(it.Date),
			Description: it.Description,
			Reference:   it.Reference,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *TransactionDynamoRepository) deleteByProjectID(ctx context.Context, projectID string) error {
	items, err := queryByProject(ctx, r.ddb, r.tableName, projectID)
	if err != nil {
		return err
	}
	return batchDeleteByID(ctx, r.ddb, r.tableName, items)
}

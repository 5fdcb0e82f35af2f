package repository

import (
	"context"
	"fmt"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type projectItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	BudgetValue int64  `dynamodbav:"budget_value"`
	Status      string `dynamodbav:"status"`
	EstimateID  string `dynamodbav:"estimate_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Delete also removes the project's rows from the payments and transactions tables.
type ProjectDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	transactions *TransactionDynamoRepository
	payments     *ClientPaymentDynamoRepository
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI, tableName string, transactions *TransactionDynamoRepository, payments *ClientPaymentDynamoRepository) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName, transactions: transactions, payments: payments}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(projectItem{
		ID:          p.ID,
		Name:        p.Name,
		BudgetValue: int64(p.BudgetValue),
		Status:      string(p.Status),
		EstimateID:  p.EstimateID,
		CreatedAt:   formatTime(p.CreatedAt),
	})
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return entities.Project{
		ID:          it.ID,
		Name:        it.Name,
		BudgetValue: entities.Money(it.BudgetValue),
		Status:      entities.ProjectStatus(it.Status),
		EstimateID:  it.EstimateID,
		CreatedAt:   parseTime(it.CreatedAt),
	}, nil
}

// Delete removes the project's payments, then its transactions, then the project
// item. The cascade is not atomic: a failure can leave some ledger rows deleted,
// but the project item survives until everything below it is gone, so a retry
// finishes the job. Payments go before transactions so a remaining payment never
// points at a deleted cash_in row.
func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	if r.payments != nil {
		if err := r.payments.deleteByProjectID(ctx, id); err != nil {
			return fmt.Errorf("delete payments of project %s: %w", id, err)
		}
	}
	if r.transactions != nil {
		if err := r.transactions.deleteByProjectID(ctx, id); err != nil {
			return fmt.Errorf("delete transactions of project %s: %w", id, err)
		}
	}
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

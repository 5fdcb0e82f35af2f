package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in memory keyed by table and id. Conditions are not
// evaluated; tests inject the failures they need.
type fakeDynamo struct {
	DynamoAPI

	items     map[string]map[string]map[string]types.AttributeValue
	putErr    error
	updateErr error

	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	deletes []*dynamodb.DeleteItemInput
	batches []*dynamodb.BatchWriteItemInput

	// query and batchErr are keyed by table name.
	query    map[string][]map[string]types.AttributeValue
	batchErr map[string]error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		items:    map[string]map[string]map[string]types.AttributeValue{},
		query:    map[string][]map[string]types.AttributeValue{},
		batchErr: map[string]error{},
	}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	table := aws.ToString(in.TableName)
	if f.items[table] == nil {
		f.items[table] = map[string]map[string]types.AttributeValue{}
	}
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.items[table][id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[aws.ToString(in.TableName)][id]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deletes = append(f.deletes, in)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{Items: f.query[aws.ToString(in.TableName)]}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	for table := range in.RequestItems {
		if err := f.batchErr[table]; err != nil {
			return nil, err
		}
	}
	f.batches = append(f.batches, in)
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func sampleDocument() (entities.Estimate, []entities.EstimateLine) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	e := entities.Estimate{
		ID:            "est-1",
		Title:         "Gudang Cikarang",
		ClientName:    "PT Maju",
		Location:      "Cikarang",
		TaxPercentage: decimal.NewFromInt(11),
		Subtotal:      10_000_000,
		TaxAmount:     1_100_000,
		Total:         11_100_000,
		Status:        entities.EstimateStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	lines := []entities.EstimateLine{
		{ID: "cat-a", IsCategory: true, ItemNumber: "A", Label: "Pekerjaan Persiapan"},
		{
			ID:         "leaf-1",
			ParentID:   "cat-a",
			ItemNumber: "A.1",
			Unit:       "m2",
			Quantity:   decimal.RequireFromString("2.5"),
			UnitPrice:  4_000_000,
			LineTotal:  10_000_000,
			Position:   1,
		},
	}
	return e, lines
}

func TestEstimateDynamoRepository_CreateAndLoad(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewEstimateDynamoRepository(ddb, "estimates")
	e, lines := sampleDocument()

	created, err := repo.Create(context.Background(), e, lines)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(ddb.puts[0].ConditionExpression))

	got, err := repo.GetByID(context.Background(), "est-1")
	require.NoError(t, err)
	assert.Equal(t, entities.Money(11_100_000), got.Total)
	assert.True(t, got.TaxPercentage.Equal(decimal.NewFromInt(11)))
	assert.True(t, got.CreatedAt.Equal(e.CreatedAt))

	loaded, err := repo.LoadLines(context.Background(), "est-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "A.1", loaded[1].ItemNumber)
	assert.True(t, loaded[1].Quantity.Equal(decimal.RequireFromString("2.5")))

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestEstimateDynamoRepository_UpdateWithLines(t *testing.T) {
	t.Run("bumps version behind a condition", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewEstimateDynamoRepository(ddb, "estimates")
		e, lines := sampleDocument()
		e.Version = 4

		saved, err := repo.UpdateWithLines(context.Background(), e, lines)
		require.NoError(t, err)
		assert.Equal(t, int64(5), saved.Version)

		in := ddb.puts[0]
		assert.Contains(t, aws.ToString(in.ConditionExpression), "#version = :expected_version")
		assert.Equal(t, "4", in.ExpressionAttributeValues[":expected_version"].(*types.AttributeValueMemberN).Value)
		assert.Equal(t, "5", in.Item["version"].(*types.AttributeValueMemberN).Value)
	})

	t.Run("condition failure is a version conflict", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		repo := NewEstimateDynamoRepository(ddb, "estimates")
		e, lines := sampleDocument()

		_, err := repo.UpdateWithLines(context.Background(), e, lines)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = errors.New("throttled")
		repo := NewEstimateDynamoRepository(ddb, "estimates")
		e, lines := sampleDocument()

		_, err := repo.UpdateWithLines(context.Background(), e, lines)
		require.Error(t, err)
		assert.False(t, errors.Is(err, interfaces.ErrVersionConflict))
	})
}

func TestEstimateDynamoRepository_Update(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewEstimateDynamoRepository(ddb, "estimates")
	e, _ := sampleDocument()
	e.Version = 2
	e.LinkedProjectID = "prj-1"

	saved, err := repo.Update(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.Version)

	in := ddb.updates[0]
	expr := aws.ToString(in.UpdateExpression)
	assert.True(t, strings.HasPrefix(expr, "SET "))
	assert.Contains(t, expr, "#linked_project_id = :linked_project_id")
	assert.Contains(t, expr, "#version = :next_version")
	assert.NotContains(t, expr, "lines")
	assert.Equal(t, "prj-1", in.ExpressionAttributeValues[":linked_project_id"].(*types.AttributeValueMemberS).Value)

	ddb.updateErr = &types.ConditionalCheckFailedException{Message: aws.String("conflict")}
	_, err = repo.Update(context.Background(), e)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
}

func projectRows(prefix string, n int) []map[string]types.AttributeValue {
	rows := make([]map[string]types.AttributeValue, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: fmt.Sprintf("%s-%d", prefix, i)},
			"project_id": &types.AttributeValueMemberS{Value: "prj-1"},
		})
	}
	return rows
}

func TestProjectDynamoRepository_DeleteCascadesTransactions(t *testing.T) {
	t.Run("payments, then transactions, then the project", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.query["transactions"] = projectRows("tx", 30)
		ddb.query["client_payments"] = projectRows("pay", 2)
		txs := NewTransactionDynamoRepository(ddb, "transactions")
		payments := NewClientPaymentDynamoRepository(ddb, "client_payments")
		repo := NewProjectDynamoRepository(ddb, "projects", txs, payments)

		require.NoError(t, repo.Delete(context.Background(), "prj-1"))

		require.Len(t, ddb.batches, 3)
		assert.Len(t, ddb.batches[0].RequestItems["client_payments"], 2)
		assert.Len(t, ddb.batches[1].RequestItems["transactions"], 25)
		assert.Len(t, ddb.batches[2].RequestItems["transactions"], 5)
		require.Len(t, ddb.deletes, 1)
		assert.Equal(t, "projects", aws.ToString(ddb.deletes[0].TableName))
	})

	t.Run("failed cascade keeps the project item", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.query["transactions"] = projectRows("tx", 3)
		ddb.query["client_payments"] = projectRows("pay", 1)
		ddb.batchErr["transactions"] = errors.New("throttled")
		repo := NewProjectDynamoRepository(ddb, "projects",
			NewTransactionDynamoRepository(ddb, "transactions"),
			NewClientPaymentDynamoRepository(ddb, "client_payments"),
		)

		err := repo.Delete(context.Background(), "prj-1")
		require.Error(t, err)
		assert.Empty(t, ddb.deletes)
	})
}

func TestTransactionDynamoRepository_ListOrdersByDate(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.query["transactions"] = []map[string]types.AttributeValue{
		{
			"id":         &types.AttributeValueMemberS{Value: "tx-2"},
			"project_id": &types.AttributeValueMemberS{Value: "prj-1"},
			"category":   &types.AttributeValueMemberS{Value: "labor"},
			"amount":     &types.AttributeValueMemberN{Value: "500"},
			"date":       &types.AttributeValueMemberS{Value: "2026-02-02T00:00:00Z"},
		},
		{
			"id":         &types.AttributeValueMemberS{Value: "tx-1"},
			"project_id": &types.AttributeValueMemberS{Value: "prj-1"},
			"category":   &types.AttributeValueMemberS{Value: "cash_in"},
			"amount":     &types.AttributeValueMemberN{Value: "900"},
			"date":       &types.AttributeValueMemberS{Value: "2026-01-15T00:00:00Z"},
		},
	}
	repo := NewTransactionDynamoRepository(ddb, "transactions")

	got, err := repo.ListByProjectID(context.Background(), "prj-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "tx-1", got[0].ID)
	assert.Equal(t, entities.TransactionCategoryCashIn, got[0].Category)
	assert.Equal(t, entities.Money(900), got[0].Amount)
}

func TestPriceCatalogDynamoRepository_UpdateMissing(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	repo := NewPriceCatalogDynamoRepository(ddb, "price_catalog")

	got, err := repo.Update(context.Background(), entities.PriceCatalogEntry{ID: "c1", Description: "Beton"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.puts[0].ConditionExpression))
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type estimateLineItem struct {
	ID             string `dynamodbav:"id"`
	ParentID       string `dynamodbav:"parent_id,omitempty"`
	IsCategory     bool   `dynamodbav:"is_category"`
	ItemNumber     string `dynamodbav:"item_number"`
	Label          string `dynamodbav:"label,omitempty"`
	Description    string `dynamodbav:"description,omitempty"`
	Unit           string `dynamodbav:"unit,omitempty"`
	Quantity       string `dynamodbav:"quantity"`
	UnitPrice      int64  `dynamodbav:"unit_price"`
	LineTotal      int64  `dynamodbav:"line_total"`
	CostCategory   string `dynamodbav:"cost_category,omitempty"`
	CatalogEntryID string `dynamodbav:"catalog_entry_id,omitempty"`
	Position       int    `dynamodbav:"position"`
}

type estimateItem struct {
	ID              string             `dynamodbav:"id"`
	Title           string             `dynamodbav:"title"`
	ProjectType     string             `dynamodbav:"project_type,omitempty"`
	ClientName      string             `dynamodbav:"client_name"`
	Location        string             `dynamodbav:"location"`
	LinkedProjectID string             `dynamodbav:"linked_project_id,omitempty"`
	TaxPercentage   string             `dynamodbav:"tax_percentage"`
	Subtotal        int64              `dynamodbav:"subtotal"`
	TaxAmount       int64              `dynamodbav:"tax_amount"`
	Total           int64              `dynamodbav:"total"`
	Status          string             `dynamodbav:"status"`
	RejectionReason string             `dynamodbav:"rejection_reason,omitempty"`
	Version         int64              `dynamodbav:"version"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
	Lines           []estimateLineItem `dynamodbav:"lines"`
}

// headerAttributes are projected by List so line sets are not read back.
var headerAttributes = []string{
	"id", "title", "project_type", "client_name", "location", "linked_project_id",
	"tax_percentage", "subtotal", "tax_amount", "total", "status", "rejection_reason",
	"version", "created_at", "updated_at",
}

// EstimateDynamoRepository persists estimate documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The line tree is stored inside the estimate item (attribute "lines") so that a
// header and its lines are always written by a single conditional request. Every
// write carries the condition version = expected and bumps the version.
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate, lines []entities.EstimateLine) (entities.Estimate, error) {
	e.Version = 1
	av, err := attributevalue.MarshalMap(toEstimateItem(e, lines))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	it, found, err := r.get(ctx, id, false)
	if err != nil || !found {
		return entities.Estimate{}, err
	}
	e, _ := fromEstimateItem(it)
	return e, nil
}

func (r *EstimateDynamoRepository) LoadLines(ctx context.Context, estimateID string) ([]entities.EstimateLine, error) {
	it, found, err := r.get(ctx, estimateID, true)
	if err != nil || !found {
		return nil, err
	}
	_, lines := fromEstimateItem(it)
	return lines, nil
}

// List scans the table and returns headers newest first.
func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	projection, names := projectionOf(headerAttributes)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String(projection),
		ExpressionAttributeNames: names,
	})

	out := make([]entities.Estimate, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, _ := fromEstimateItem(it)
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update rewrites the header fields and leaves the stored lines untouched.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e, nil)
	set := map[string]types.AttributeValue{
		":title":             &types.AttributeValueMemberS{Value: it.Title},
		":project_type":      &types.AttributeValueMemberS{Value: it.ProjectType},
		":client_name":       &types.AttributeValueMemberS{Value: it.ClientName},
		":location":          &types.AttributeValueMemberS{Value: it.Location},
		":linked_project_id": &types.AttributeValueMemberS{Value: it.LinkedProjectID},
		":tax_percentage":    &types.AttributeValueMemberS{Value: it.TaxPercentage},
		":subtotal":          &types.AttributeValueMemberN{Value: strconv.FormatInt(it.Subtotal, 10)},
		":tax_amount":        &types.AttributeValueMemberN{Value: strconv.FormatInt(it.TaxAmount, 10)},
		":total":             &types.AttributeValueMemberN{Value: strconv.FormatInt(it.Total, 10)},
		":status":            &types.AttributeValueMemberS{Value: it.Status},
		":rejection_reason":  &types.AttributeValueMemberS{Value: it.RejectionReason},
		":updated_at":        &types.AttributeValueMemberS{Value: it.UpdatedAt},
	}

	names := make(map[string]string, len(set))
	clauses := make([]string, 0, len(set)+1)
	for placeholder := range set {
		attr := strings.TrimPrefix(placeholder, ":")
		names["#"+attr] = attr
		clauses = append(clauses, fmt.Sprintf("#%s = %s", attr, placeholder))
	}
	sort.Strings(clauses)
	clauses = append(clauses, "#version = :next_version")
	set[":next_version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(e.Version+1, 10)}
	set[":expected_version"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(e.Version, 10)}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: e.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		UpdateExpression:          aws.String("SET " + strings.Join(clauses, ", ")),
		ExpressionAttributeValues: set,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#version": "version"}),
	})
	if err != nil {
		return entities.Estimate{}, versionConflict(err)
	}
	e.Version++
	return e, nil
}

// UpdateWithLines replaces the header and the whole line set in one PutItem.
func (r *EstimateDynamoRepository) UpdateWithLines(ctx context.Context, e entities.Estimate, lines []entities.EstimateLine) (entities.Estimate, error) {
	expected := e.Version
	e.Version++
	av, err := attributevalue.MarshalMap(toEstimateItem(e, lines))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected_version"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		return entities.Estimate{}, versionConflict(err)
	}
	return e, nil
}

func (r *EstimateDynamoRepository) get(ctx context.Context, id string, withLines bool) (estimateItem, bool, error) {
	in := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	}
	if !withLines {
		projection, names := projectionOf(headerAttributes)
		in.ProjectionExpression = aws.String(projection)
		in.ExpressionAttributeNames = names
	}

	out, err := r.ddb.GetItem(ctx, in)
	if err != nil {
		return estimateItem{}, false, err
	}
	if len(out.Item) == 0 {
		return estimateItem{}, false, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return estimateItem{}, false, err
	}
	return it, true, nil
}

// versionConflict turns a failed write condition into interfaces.ErrVersionConflict.
// A missing item fails the same condition; callers only write documents they
// have just loaded, so it is reported the same way.
func versionConflict(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("%w: %s", interfaces.ErrVersionConflict, cfe.ErrorMessage())
	}
	return err
}

func projectionOf(attrs []string) (string, map[string]string) {
	names := make(map[string]string, len(attrs))
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names["#"+a] = a
		parts = append(parts, "#"+a)
	}
	return strings.Join(parts, ", "), names
}

func toEstimateItem(e entities.Estimate, lines []entities.EstimateLine) estimateItem {
	items := make([]estimateLineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, estimateLineItem{
			ID:             l.ID,
			ParentID:       l.ParentID,
			IsCategory:     l.IsCategory,
			ItemNumber:     l.ItemNumber,
			Label:          l.Label,
			Description:    l.Description,
			Unit:           l.Unit,
			Quantity:       l.Quantity.String(),
			UnitPrice:      int64(l.UnitPrice),
			LineTotal:      int64(l.LineTotal),
			CostCategory:   l.CostCategory,
			CatalogEntryID: l.CatalogEntryID,
			Position:       l.Position,
		})
	}
	return estimateItem{
		ID:              e.ID,
		Title:           e.Title,
		ProjectType:     e.ProjectType,
		ClientName:      e.ClientName,
		Location:        e.Location,
		LinkedProjectID: e.LinkedProjectID,
		TaxPercentage:   e.TaxPercentage.String(),
		Subtotal:        int64(e.Subtotal),
		TaxAmount:       int64(e.TaxAmount),
		Total:           int64(e.Total),
		Status:          string(e.Status),
		RejectionReason: e.RejectionReason,
		Version:         e.Version,
		CreatedAt:       formatTime(e.CreatedAt),
		UpdatedAt:       formatTime(e.UpdatedAt),
		Lines:           items,
	}
}

func fromEstimateItem(it estimateItem) (entities.Estimate, []entities.EstimateLine) {
	lines := make([]entities.EstimateLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.EstimateLine{
			ID:             l.ID,
			ParentID:       l.ParentID,
			IsCategory:     l.IsCategory,
			ItemNumber:     l.ItemNumber,
			Label:          l.Label,
			Description:    l.Description,
			Unit:           l.Unit,
			Quantity:       parseDecimal(l.Quantity),
			UnitPrice:      entities.Money(l.UnitPrice),
			LineTotal:      entities.Money(l.LineTotal),
			CostCategory:   l.CostCategory,
			CatalogEntryID: l.CatalogEntryID,
			Position:       l.Position,
		})
	}
	return entities.Estimate{
		ID:              it.ID,
		Title:           it.Title,
		ProjectType:     it.ProjectType,
		ClientName:      it.ClientName,
		Location:        it.Location,
		LinkedProjectID: it.LinkedProjectID,
		TaxPercentage:   parseDecimal(it.TaxPercentage),
		Subtotal:        entities.Money(it.Subtotal),
		TaxAmount:       entities.Money(it.TaxAmount),
		Total:           entities.Money(it.Total),
		Status:          entities.EstimateStatus(it.Status),
		RejectionReason: it.RejectionReason,
		Version:         it.Version,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}, lines
}

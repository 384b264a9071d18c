package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const quoteRequestsRequesterIndex = "requester_id-index"

type quoteRequestItem struct {
	ID          string   `dynamodbav:"id"`
	RequesterID string   `dynamodbav:"requester_id"`
	Status      string   `dynamodbav:"status"`
	VolumeRange string   `dynamodbav:"volume_range,omitempty"`
	Submission  string   `dynamodbav:"submission"`
	Warnings    []string `dynamodbav:"warnings,omitempty"`
	CreatedAt   string   `dynamodbav:"created_at"`
	UpdatedAt   string   `dynamodbav:"updated_at"`
}

// QuoteRequestDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requester_id-index (PK: requester_id)
//
// The submission is stored as its pruned JSON encoding so the stored payload is
// exactly what the buyer finalised.
type QuoteRequestDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	it, err := toQuoteRequestItem(q)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}
	return unmarshalQuoteRequest(out.Item)
}

// ListByRequesterID returns the requester's quote requests, newest first.
func (r *QuoteRequestDynamoRepository) ListByRequesterID(ctx context.Context, requesterID string) ([]entities.QuoteRequest, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quoteRequestsRequesterIndex),
		KeyConditionExpression: aws.String("requester_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requesterID},
		},
	})

	items := []entities.QuoteRequest{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			q, err := unmarshalQuoteRequest(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, q)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *QuoteRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteRequestStatus, at time.Time) (entities.QuoteRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteRequest{}, nil
	}
	return unmarshalQuoteRequest(out.Attributes)
}

func unmarshalQuoteRequest(raw map[string]types.AttributeValue) (entities.QuoteRequest, error) {
	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it)
}

func toQuoteRequestItem(q entities.QuoteRequest) (quoteRequestItem, error) {
	sub, err := json.Marshal(q.Submission)
	if err != nil {
		return quoteRequestItem{}, fmt.Errorf("encode submission: %w", err)
	}
	return quoteRequestItem{
		ID:          q.ID,
		RequesterID: q.RequesterID,
		Status:      string(q.Status),
		VolumeRange: q.Submission.MonthlyVolume.VolumeRange,
		Submission:  string(sub),
		Warnings:    q.Warnings,
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
	}, nil
}

func fromQuoteRequestItem(it quoteRequestItem) (entities.QuoteRequest, error) {
	var sub entities.Submission
	if it.Submission != "" {
		if err := json.Unmarshal([]byte(it.Submission), &sub); err != nil {
			return entities.QuoteRequest{}, fmt.Errorf("decode submission %s: %w", it.ID, err)
		}
	}
	warnings := it.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return entities.QuoteRequest{
		ID:          it.ID,
		RequesterID: it.RequesterID,
		Status:      entities.QuoteRequestStatus(it.Status),
		Submission:  sub,
		Warnings:    warnings,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}, nil
}

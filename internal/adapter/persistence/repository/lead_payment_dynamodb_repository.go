package repository

import (
	"context"

	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const leadPaymentsQuoteRequestIndex = "quote_request_id-index"

type leadPaymentItem struct {
	ID                 string         `dynamodbav:"id"`
	QuoteRequestID     string         `dynamodbav:"quote_request_id"`
	VendorID           string         `dynamodbav:"vendor_id"`
	Amount             float64        `dynamodbav:"amount"`
	Date               string         `dynamodbav:"date"`
	Status             string         `dynamodbav:"status"`
	ProviderPayload    map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string         `dynamodbav:"provider_payload_raw,omitempty"`
}

// LeadPaymentDynamoRepository persists LeadPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_request_id-index (PK: quote_request_id)
type LeadPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ILeadPaymentRepository = (*LeadPaymentDynamoRepository)(nil)

func NewLeadPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *LeadPaymentDynamoRepository {
	return &LeadPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LeadPaymentDynamoRepository) Create(ctx context.Context, p entities.LeadPayment) (entities.LeadPayment, error) {
	av, err := attributevalue.MarshalMap(toLeadPaymentItem(p))
	if err != nil {
		return entities.LeadPayment{}, err
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
		return entities.LeadPayment{}, err
	}
	return p, nil
}

func (r *LeadPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.LeadPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LeadPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.LeadPayment{}, nil
	}

	var it leadPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LeadPayment{}, err
	}
	return fromLeadPaymentItem(it), nil
}

func (r *LeadPaymentDynamoRepository) ListByQuoteRequestID(ctx context.Context, quoteRequestID string) ([]entities.LeadPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(leadPaymentsQuoteRequestIndex),
		KeyConditionExpression: aws.String("quote_request_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteRequestID},
		},
	})

	items := []entities.LeadPayment{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it leadPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromLeadPaymentItem(it))
		}
	}
	return items, nil
}

func toLeadPaymentItem(p entities.LeadPayment) leadPaymentItem {
	return leadPaymentItem{
		ID:                 p.ID,
		QuoteRequestID:     p.QuoteRequestID,
		VendorID:           p.VendorID,
		Amount:             p.Amount,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromLeadPaymentItem(it leadPaymentItem) entities.LeadPayment {
	var raw []byte
	if it.ProviderPayloadRaw != "" {
		raw = []byte(it.ProviderPayloadRaw)
	}
	return entities.LeadPayment{
		ID:                 it.ID,
		QuoteRequestID:     it.QuoteRequestID,
		VendorID:           it.VendorID,
		Amount:             it.Amount,
		Date:               parseTime(it.Date),
		Status:             entities.LeadPaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: raw,
	}
}

package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table keyed by "id". Queries match the GSI hash key
// named by the index ("<attr>-index") and return one item per page.
type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
	err   error
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func strAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func copyItem(in map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := strAttr(in.Item["id"])
	if _, exists := f.items[id]; exists && aws.ToString(in.ConditionExpression) != "" {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = copyItem(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[strAttr(in.Key["id"])]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(it)}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	attr := strings.TrimSuffix(aws.ToString(in.IndexName), "-index")
	var want string
	for _, v := range in.ExpressionAttributeValues {
		want = strAttr(v)
	}

	ids := []string{}
	for id, it := range f.items {
		if strAttr(it[attr]) == want {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := strAttr(in.ExclusiveStartKey["id"])
		start = sort.SearchStrings(ids, after) + 1
	}
	if start >= len(ids) {
		return &dynamodb.QueryOutput{}, nil
	}

	out := &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{copyItem(f.items[ids[start]])}}
	if start+1 < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ids[start]}}
	}
	return out, nil
}

// UpdateItem understands the single status transition the repositories issue.
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[strAttr(in.Key["id"])]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	vals := in.ExpressionAttributeValues
	if from, ok := vals[":from"]; ok && strAttr(it["status"]) != strAttr(from) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("status")}
	}
	to, ok := vals[":to"]
	if !ok {
		return nil, errors.New("fake: unsupported update")
	}
	it["status"] = to
	it["updated_at"] = vals[":updated_at"]
	return &dynamodb.UpdateItemOutput{Attributes: copyItem(it)}, nil
}

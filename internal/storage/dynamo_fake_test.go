package storage

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI covering the subset of operations
// the stores issue: keyed put/get/delete, ADD updates, and partition queries.
type fakeDynamo struct {
	mu          sync.Mutex
	tables      map[string]map[string]map[string]types.AttributeValue
	describeErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = map[string]map[string]types.AttributeValue{}
	}
	return f.tables[name]
}

// itemKey builds the composite (email, item_id) key; item_id may be absent
func itemKey(attrs map[string]types.AttributeValue) string {
	key := ""
	if email, ok := attrs["email"].(*types.AttributeValueMemberS); ok {
		key = email.Value
	}
	if itemID, ok := attrs["item_id"].(*types.AttributeValueMemberS); ok {
		key += "|" + itemID.Value
	}
	return key
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tbl := f.table(aws.ToString(params.TableName))
	key := itemKey(params.Item)

	if params.ConditionExpression != nil {
		if _, exists := tbl[key]; exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}

	tbl[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tbl := f.table(aws.ToString(params.TableName))
	return &dynamodb.GetItemOutput{Item: tbl[itemKey(params.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tbl := f.table(aws.ToString(params.TableName))
	key := itemKey(params.Key)

	item, ok := tbl[key]
	if !ok {
		item = map[string]types.AttributeValue{}
		for k, v := range params.Key {
			item[k] = v
		}
	}

	// Supports the one update the stores issue: ADD login_count :one
	delta := 0
	if n, ok := params.ExpressionAttributeValues[":one"].(*types.AttributeValueMemberN); ok {
		delta, _ = strconv.Atoi(n.Value)
	}
	current := 0
	if n, ok := item["login_count"].(*types.AttributeValueMemberN); ok {
		current, _ = strconv.Atoi(n.Value)
	}
	item["login_count"] = &types.AttributeValueMemberN{Value: strconv.Itoa(current + delta)}

	tbl[key] = item
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tbl := f.table(aws.ToString(params.TableName))
	delete(tbl, itemKey(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// The stores only query by partition key equality; the expression
	// builder emits a single value to match the email attribute against.
	var email string
	for _, v := range params.ExpressionAttributeValues {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			email = s.Value
		}
	}

	tbl := f.table(aws.ToString(params.TableName))
	out := &dynamodb.QueryOutput{}
	for _, item := range tbl {
		if s, ok := item["email"].(*types.AttributeValueMemberS); ok && s.Value == email {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func (f *fakeDynamo) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

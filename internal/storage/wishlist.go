package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"JEWELVISTA_BACK-END/internal/models"
)

// WishlistStore persists wishlist entries keyed by (email, item_id)
type WishlistStore interface {
	Put(ctx context.Context, entry *models.WishlistEntry) error
	List(ctx context.Context, email string) ([]models.WishlistEntry, error)
	Delete(ctx context.Context, email, itemID string) error
}

// DynamoWishlistStore is the DynamoDB-backed WishlistStore
type DynamoWishlistStore struct {
	db    DynamoAPI
	table string
}

// NewDynamoWishlistStore creates a new DynamoWishlistStore instance
func NewDynamoWishlistStore(db DynamoAPI, table string) *DynamoWishlistStore {
	return &DynamoWishlistStore{db: db, table: table}
}

// Put upserts an entry; a re-add with the same item_id overwrites wholesale
func (s *DynamoWishlistStore) Put(ctx context.Context, entry *models.WishlistEntry) error {
	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("marshal wishlist entry: %w", err)
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put wishlist entry: %w", err)
	}

	return nil
}

// List returns every entry in the given user's partition and no others.
// The key condition is always built from the server-side email argument;
// callers must pass the session-derived identity.
func (s *DynamoWishlistStore) List(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	keyCond := expression.Key("email").Equal(expression.Value(email))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("build key condition: %w", err)
	}

	entries := []models.WishlistEntry{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.db.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.table),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query wishlist: %w", err)
		}

		var page []models.WishlistEntry
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal wishlist entries: %w", err)
		}
		entries = append(entries, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return entries, nil
}

// Delete removes the entry keyed by (email, item_id).
// Deleting a key that does not exist is a no-op, not an error.
func (s *DynamoWishlistStore) Delete(ctx context.Context, email, itemID string) error {
	_, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"email":   &types.AttributeValueMemberS{Value: email},
			"item_id": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	if err != nil {
		return fmt.Errorf("delete wishlist entry: %w", err)
	}

	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"JEWELVISTA_BACK-END/internal/models"
)

var (
	// ErrUserExists is returned when registering an email that is already taken
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no record matches the email
	ErrUserNotFound = errors.New("user not found")
)

// UserStore persists user records keyed by normalized email
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, email string) (*models.User, error)
	IncrementLoginCount(ctx context.Context, email string) error
}

// DynamoUserStore is the DynamoDB-backed UserStore
type DynamoUserStore struct {
	db    DynamoAPI
	table string
}

// NewDynamoUserStore creates a new DynamoUserStore instance
func NewDynamoUserStore(db DynamoAPI, table string) *DynamoUserStore {
	return &DynamoUserStore{db: db, table: table}
}

// Create writes a new user record. Registration is create-only: an existing
// email is rejected with ErrUserExists rather than silently overwritten.
func (s *DynamoUserStore) Create(ctx context.Context, user *models.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrUserExists
		}
		return fmt.Errorf("put user: %w", err)
	}

	return nil
}

// Get fetches a user record by exact key lookup
func (s *DynamoUserStore) Get(ctx context.Context, email string) (*models.User, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}

	return &user, nil
}

// IncrementLoginCount bumps login_count by one with an atomic ADD,
// so concurrent logins by the same user never lose an update.
func (s *DynamoUserStore) IncrementLoginCount(ctx context.Context, email string) error {
	_, err := s.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		UpdateExpression: aws.String("ADD login_count :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	if err != nil {
		return fmt.Errorf("increment login count: %w", err)
	}

	return nil
}

// Ping verifies connectivity by describing the user table
func (s *DynamoUserStore) Ping(ctx context.Context) error {
	_, err := s.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	return err
}

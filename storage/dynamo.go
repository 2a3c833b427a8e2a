package storage

import (
	"context"
	"time"

	"github.com/alex-pricope/idea-board/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoClient is the subset of *dynamodb.Client the key-value store needs.
type DynamoClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type DynamoKeyValueStore struct {
	Client    DynamoClient
	TableName string
}

func (s *DynamoKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	k, err := attributevalue.MarshalMap(map[string]string{"PK": key})
	if err != nil {
		logging.Log.Errorf("KV: failed to marshal key %s: %v", key, err)
		return "", err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.TableName,
		Key:            k,
		ConsistentRead: boolPtr(true),
	})
	if err != nil {
		logging.Log.Errorf("KV: GetItem for %s failed: %v", key, err)
		return "", err
	}
	if out.Item == nil {
		return "", ErrKeyNotFound
	}

	var item KeyValueItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		logging.Log.Errorf("KV: failed to unmarshal item %s: %v", key, err)
		return "", err
	}
	return item.Value, nil
}

func (s *DynamoKeyValueStore) Set(ctx context.Context, key, value string) error {
	item, err := attributevalue.MarshalMap(&KeyValueItem{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		logging.Log.Errorf("KV: failed to marshal item %s: %v", key, err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("KV: failed to put item %s: %v", key, err)
		return err
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

package storage

import "time"

// KeyValueItem is the DynamoDB shape of a single stored key.
type KeyValueItem struct {
	Key       string    `dynamodbav:"PK"`
	Value     string    `dynamodbav:"Value"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}

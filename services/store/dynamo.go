package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
)

// ErrStoreUnavailable indicates the backing table call failed.
var ErrStoreUnavailable = errors.New("hotel store unavailable")

const pageSize = 10

// DynamoReader is the production Reader backed by a DynamoDB table.
type DynamoReader struct {
	DB        *dynamodb.DynamoDB
	TableName string
}

// NewDynamoReader builds a DynamoReader for the given region and table.
func NewDynamoReader(region, tableName string) *DynamoReader {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(region),
	}))
	return &DynamoReader{
		DB:        dynamodb.New(sess),
		TableName: tableName,
	}
}

func (r *DynamoReader) List(ctx context.Context, lastKey string) ([]Item, string, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.TableName),
		Limit:     aws.Int64(pageSize),
	}

	if lastKey != "" {
		startKey, err := decodeCursor(lastKey)
		if err != nil {
			return nil, "", fmt.Errorf("%w: bad page cursor: %v", ErrStoreUnavailable, err)
		}
		input.ExclusiveStartKey = startKey
	}

	res, err := r.DB.ScanWithContext(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	items, err := unmarshalItems(res.Items)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	next := ""
	if len(res.LastEvaluatedKey) > 0 {
		next, err = encodeCursor(res.LastEvaluatedKey)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}
	return items, next, nil
}

func (r *DynamoReader) SearchByName(ctx context.Context, name string) ([]Item, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Contains(expression.Name("name"), name)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return r.filterScan(ctx, expr)
}

func (r *DynamoReader) FilterByRegion(ctx context.Context, region string) ([]Item, error) {
	// region.name is a nested attribute; the expression builder treats the
	// dotted name as a document path.
	expr, err := expression.NewBuilder().
		WithFilter(expression.Contains(expression.Name("region.name"), region)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return r.filterScan(ctx, expr)
}

func (r *DynamoReader) filterScan(ctx context.Context, expr expression.Expression) ([]Item, error) {
	res, err := r.DB.ScanWithContext(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.TableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	items, err := unmarshalItems(res.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return items, nil
}

func unmarshalItems(avs []map[string]*dynamodb.AttributeValue) ([]Item, error) {
	items := make([]Item, 0, len(avs))
	if err := dynamodbattribute.UnmarshalListOfMaps(avs, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// decodeCursor turns the URL-encoded JSON page token back into a DynamoDB
// exclusive start key.
func decodeCursor(cursor string) (map[string]*dynamodb.AttributeValue, error) {
	raw, err := url.QueryUnescape(cursor)
	if err != nil {
		return nil, err
	}
	var key map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return nil, err
	}
	return dynamodbattribute.MarshalMap(key)
}

// encodeCursor renders the last evaluated key as an opaque URL-encoded JSON
// token the client can pass back.
func encodeCursor(key map[string]*dynamodb.AttributeValue) (string, error) {
	var plain map[string]interface{}
	if err := dynamodbattribute.UnmarshalMap(key, &plain); err != nil {
		return "", err
	}
	raw, err := json.Marshal(plain)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(raw)), nil
}

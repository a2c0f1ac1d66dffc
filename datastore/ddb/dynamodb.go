/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/epistemic/datastore"
	"github.com/suparena/epistemic/models"
)

// KeySchema describes how constant items are keyed in the table.
type KeySchema struct {
	// IndexName is optional; set it to read through a secondary index.
	IndexName string
	// PartitionKeyName is the partition key attribute (e.g. "PK").
	PartitionKeyName string
	// SortKeyName is the sort key attribute (e.g. "SK").
	SortKeyName string
	// PartitionPrefix is prepended to the store name (e.g. "STORE#").
	PartitionPrefix string
	// SortPrefix is the common prefix of constant sort keys (e.g. "CONST#").
	SortPrefix string
}

// DefaultKeySchema is the single-table layout PK = STORE#<store>, SK = CONST#<name>.
var DefaultKeySchema = KeySchema{
	PartitionKeyName: "PK",
	SortKeyName:      "SK",
	PartitionPrefix:  "STORE#",
	SortPrefix:       "CONST#",
}

// Credentials configures the DynamoDB client.
// Empty keys fall back to the default AWS credential chain.
type Credentials struct {
	AccessKey string
	SecretKey string
	Region    string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// NewDynamoDBClient initializes a DynamoDB client.
func NewDynamoDBClient(ctx context.Context, creds Credentials) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(creds.Region),
	}
	if creds.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if creds.Endpoint != "" {
			o.BaseEndpoint = aws.String(creds.Endpoint)
		}
	}), nil
}

// Source reads one store's constants from a DynamoDB table.
type Source struct {
	client    sdk.QueryAPIClient
	tableName string
	store     string
	schema    KeySchema
	logger    *slog.Logger
	streamOpt []models.StreamOption
}

var _ datastore.Streamer = (*Source)(nil)

// Option configures a Source.
type Option func(*Source)

// WithKeySchema overrides DefaultKeySchema.
func WithKeySchema(schema KeySchema) Option {
	return func(s *Source) {
		s.schema = schema
	}
}

// WithLogger sets the logger used for retries and page progress.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStreamOptions sets the stream options Rows reads with.
func WithStreamOptions(opts ...models.StreamOption) Option {
	return func(s *Source) {
		s.streamOpt = append(s.streamOpt, opts...)
	}
}

// NewSource constructs a Source over the given table and store partition.
func NewSource(client sdk.QueryAPIClient, tableName, store string, opts ...Option) *Source {
	s := &Source{
		client:    client,
		tableName: tableName,
		store:     store,
		schema:    DefaultKeySchema,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Origin identifies the table and store partition.
func (s *Source) Origin() string {
	return fmt.Sprintf("dynamodb://%s/%s", s.tableName, s.store)
}

// Rows drains Stream. The first item or page error aborts the read.
func (s *Source) Rows(ctx context.Context) ([]models.Row, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var rows []models.Row
	for result := range s.Stream(ctx, s.streamOpt...) {
		if result.Error != nil {
			return nil, fmt.Errorf("reading %s: %w", s.Origin(), result.Error)
		}
		rows = append(rows, result.Row)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// queryInput builds the partition query for one page.
func (s *Source) queryInput(pageSize int32) *sdk.QueryInput {
	input := &sdk.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :sk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": s.schema.PartitionKeyName,
			"#sk": s.schema.SortKeyName,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: s.schema.PartitionPrefix + s.store},
			":sk": &types.AttributeValueMemberS{Value: s.schema.SortPrefix},
		},
		Limit: aws.Int32(pageSize),
	}
	if s.schema.IndexName != "" {
		input.IndexName = aws.String(s.schema.IndexName)
	}
	return input
}

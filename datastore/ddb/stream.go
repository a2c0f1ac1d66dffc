/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/epistemic/models"
)

// Stream pages through the store partition with configurable options.
// The channel is closed when the partition is exhausted, the context is
// cancelled, or a page fails for good: the error handler declines to
// continue, or has continued MaxRetries times on that page.
func (s *Source) Stream(ctx context.Context, opts ...models.StreamOption) <-chan models.StreamResult {
	options := models.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan models.StreamResult, options.BufferSize)
	go s.streamWorker(ctx, options, resultCh)
	return resultCh
}

// streamWorker handles the actual paging
func (s *Source) streamWorker(ctx context.Context, options models.StreamOptions, resultCh chan<- models.StreamResult) {
	defer close(resultCh)

	var (
		rows      int64
		page      int
		handled   []error
		startTime = time.Now()
	)

	send := func(result models.StreamResult) bool {
		select {
		case <-ctx.Done():
			return false
		case resultCh <- result:
			return true
		}
	}

	input := s.queryInput(options.PageSize)

	for {
		out, err := s.queryPage(ctx, input, options, &handled)
		if err != nil {
			if ctx.Err() == nil {
				send(models.StreamResult{Page: page + 1, Error: err})
			}
			return
		}

		page++
		for i, item := range out.Items {
			row, err := decodeItem(item, rows+int64(i)+1)
			if !send(models.StreamResult{Row: row, Page: page, Error: err}) {
				return
			}
		}
		rows += int64(len(out.Items))

		if options.ProgressHandler != nil {
			options.ProgressHandler(models.StreamProgress{
				RowsProcessed:  rows,
				PagesProcessed: page,
				Errors:         handled,
				Elapsed:        time.Since(startTime),
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	s.logger.Debug("Read constant partition",
		slog.String("origin", s.Origin()),
		slog.Int64("rows", rows),
		slog.Int("pages", page))
}

// queryPage fetches one page. A failure the ErrorHandler continues past is
// recorded in handled and the page is queried again after a backoff, at
// most MaxRetries times.
func (s *Source) queryPage(ctx context.Context, input *sdk.QueryInput, options models.StreamOptions, handled *[]error) (*sdk.QueryOutput, error) {
	for attempt := 1; ; attempt++ {
		out, err := s.queryWithRetry(ctx, input, options)
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if options.ErrorHandler == nil || !options.ErrorHandler(err) {
			return nil, fmt.Errorf("query failed: %w", err)
		}
		*handled = append(*handled, err)
		if attempt > options.MaxRetries {
			return nil, fmt.Errorf("query failed %d times on one page: %w", attempt, err)
		}

		backoff := time.Duration(attempt) * options.RetryBackoff
		s.logger.Warn("Querying page again after handled error",
			slog.String("origin", s.Origin()),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// queryWithRetry executes a query with configurable retry logic
func (s *Source) queryWithRetry(ctx context.Context, input *sdk.QueryInput, options models.StreamOptions) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := s.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			s.logger.Warn("Retrying DynamoDB query",
				slog.String("origin", s.Origin()),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
				slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

// decodeItem decodes a DynamoDB item into a row with the given 1-based index.
func decodeItem(item map[string]types.AttributeValue, index int64) (models.Row, error) {
	var row models.Row
	if err := attributevalue.UnmarshalMap(item, &row); err != nil {
		return row, fmt.Errorf("failed to unmarshal item %d: %w", index, err)
	}
	row.Index = int(index)
	return row, nil
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var (
		throughput *types.ProvisionedThroughputExceededException
		limit      *types.RequestLimitExceeded
		internal   *types.InternalServerError
	)
	if errors.As(err, &throughput) || errors.As(err, &limit) || errors.As(err, &internal) {
		return true
	}

	var retryable interface{ IsRetryable() bool }
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

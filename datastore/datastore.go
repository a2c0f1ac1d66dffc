/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/epistemic/models"
)

// Source yields the rows of one bulk constant table.
type Source interface {
	// Origin names the table for diagnostics, e.g. a file path or "dynamodb://table/store".
	Origin() string

	// Rows returns every row in table order, each with its 1-based Index set.
	Rows(ctx context.Context) ([]models.Row, error)
}

// Streamer is implemented by paged sources that can deliver rows incrementally.
type Streamer interface {
	Source

	Stream(ctx context.Context, opts ...models.StreamOption) <-chan models.StreamResult
}

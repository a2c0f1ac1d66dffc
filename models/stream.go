/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"time"
)

// StreamResult is one row read from a paged source, or the error that
// ended the read.
type StreamResult struct {
	Row   Row
	Page  int // 1-based page the row arrived on
	Error error
}

// StreamProgress is reported after every page.
type StreamProgress struct {
	RowsProcessed  int64
	PagesProcessed int
	// Errors the ErrorHandler chose to continue past.
	Errors  []error
	Elapsed time.Duration
}

// StreamOptions configures a paged read.
type StreamOptions struct {
	BufferSize   int
	PageSize     int32
	MaxRetries   int           // per page, for throttling errors and for errors the ErrorHandler continues past
	RetryBackoff time.Duration // multiplied by the attempt number

	ProgressHandler func(StreamProgress)
	// ErrorHandler decides whether a failed page is queried again.
	ErrorHandler func(error) bool
}

// StreamOption is a functional option for StreamOptions.
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize:   100,
		PageSize:     100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
	}
}

func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) { opts.BufferSize = size }
}

func WithPageSize(size int32) StreamOption {
	return func(opts *StreamOptions) { opts.PageSize = size }
}

func WithMaxRetries(retries int) StreamOption {
	return func(opts *StreamOptions) { opts.MaxRetries = retries }
}

func WithRetryBackoff(backoff time.Duration) StreamOption {
	return func(opts *StreamOptions) { opts.RetryBackoff = backoff }
}

func WithProgressHandler(handler func(StreamProgress)) StreamOption {
	return func(opts *StreamOptions) { opts.ProgressHandler = handler }
}

// WithErrorHandler sets a handler that may ask for a failed page to be
// queried again. Continues count against MaxRetries for that page.
func WithErrorHandler(handler func(error) bool) StreamOption {
	return func(opts *StreamOptions) { opts.ErrorHandler = handler }
}

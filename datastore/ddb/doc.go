/*
Package ddb provides a DynamoDB implementation of datastore.Source.

Constants live in a single table, one partition per store:

	PK             SK          Name   Value      Unit  Label     Source
	STORE#baseline CONST#c     c      299792458  m/s   baseline  CODATA 2018
	STORE#proposed CONST#k_edc k_edc  0.5              proposed  EDC §5

The key attributes and prefixes are configurable through KeySchema, and
IndexName allows reading through a secondary index.

Streaming:
Stream pages through the partition with retry on throttling errors:

	results := src.Stream(ctx,
	    models.WithPageSize(25),
	    models.WithMaxRetries(3),
	    models.WithProgressHandler(func(p models.StreamProgress) {
	        logger.Info("progress", "rows", p.RowsProcessed)
	    }),
	)

Rows drains the stream and is what the loader uses. The source never writes
to the table.
*/
package ddb

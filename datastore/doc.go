/*
Package datastore defines where bulk constant tables come from.

The main interface is Source, which returns the rows of one table:

	type Source interface {
	    Origin() string
	    Rows(ctx context.Context) ([]models.Row, error)
	}

Rows are not validated here. Label tokens stay raw so that the loader can
report an unknown token against the row and origin that carried it.

Implementations:
  - file: YAML documents and delimited (CSV/TSV) tables
  - ddb: DynamoDB single-table layout, with paged streaming (Streamer)
  - mock: in-memory source for testing

Sources are read once at start-up; nothing is ever written back.
*/
package datastore

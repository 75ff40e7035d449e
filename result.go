// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscylla

import "sync"

// RawResult is the executed-query result a driver hands over. It is read
// once, at QueryResult construction.
type RawResult interface {
	// TracingID returns the server-side tracing identifier, if tracing was
	// enabled for the query.
	TracingID() (UUID, bool)

	// Warnings returns any warning strings the server attached.
	Warnings() []string

	// RowsResult returns the rows portion of the result, or nil when the
	// statement produced none (writes, DDL).
	RowsResult() RowsResult
}

// RowsResult is the rows portion of an executed query.
type RowsResult interface {
	// NumRows reports the row count without converting rows.
	NumRows() int

	// Rows converts the raw payload into rows of optional values. A nil
	// value is a null cell.
	Rows() ([][]*Value, error)

	// ColumnSpecs describes the result columns.
	ColumnSpecs() []ColumnSpec
}

// ColumnSpec describes one result column: its origin, name and wire type.
// TypeText carries the driver's textual rendering, covering types the Type
// enum cannot represent structurally.
type ColumnSpec struct {
	Keyspace string
	Table    string
	Name     string
	Type     Type
	TypeText string
}

// QueryResultConfig carries the optional collaborators of a QueryResult.
type QueryResultConfig struct {
	// Decoder decodes row values. Nil means a default Decoder.
	Decoder *Decoder

	// Logger receives server warnings at construction. Nil disables logging.
	Logger   AdvancedLogger
	LogLevel LogLevel
}

// QueryResult is a cursor over one executed query. The row buffer is built
// once, at first row access, and is immutable afterwards; bulk accessors are
// then safe for concurrent readers. The streaming position used by Next is
// the only mutable state and needs external serialization if shared.
type QueryResult struct {
	rowsResult RowsResult
	tracingID  UUID
	hasTracing bool
	warnings   []string
	dec        *Decoder

	materialize sync.Once
	rows        []Row
	err         error
	pos         int
}

// NewQueryResult wraps an executed query result with default collaborators.
func NewQueryResult(raw RawResult) *QueryResult {
	return NewQueryResultWithConfig(raw, QueryResultConfig{})
}

// NewQueryResultWithConfig wraps an executed query result. The raw result's
// tracing id and warnings are snapshotted immediately; rows are converted
// lazily.
func NewQueryResultWithConfig(raw RawResult, cfg QueryResultConfig) *QueryResult {
	dec := cfg.Decoder
	if dec == nil {
		dec = defaultDecoder
	}
	r := &QueryResult{
		rowsResult: raw.RowsResult(),
		warnings:   raw.Warnings(),
		dec:        dec,
	}
	r.tracingID, r.hasTracing = raw.TracingID()

	if len(r.warnings) > 0 && cfg.Logger != nil {
		logger := newInternalLoggerFromAdvancedLogger(cfg.Logger, cfg.LogLevel)
		for _, w := range r.warnings {
			logger.Warning("rscylla: server warning", NewLogField("warning", w))
		}
	}
	return r
}

// materializeRows converts the raw rows exactly once. A conversion failure
// is remembered and returned from every subsequent row access; there is no
// partial result.
func (r *QueryResult) materializeRows() ([]Row, error) {
	r.materialize.Do(func() {
		if r.rowsResult == nil {
			return
		}
		raw, err := r.rowsResult.Rows()
		if err != nil {
			r.err = &DecodeError{Err: err}
			return
		}
		rows := make([]Row, len(raw))
		for i, columns := range raw {
			rows[i] = Row{columns: columns, dec: r.dec}
		}
		r.rows = rows
	})
	return r.rows, r.err
}

// Rows returns every row of the result, the empty slice when the statement
// produced no rows result.
func (r *QueryResult) Rows() ([]Row, error) {
	return r.materializeRows()
}

// FirstRow returns the first row, or nil when the result has none.
func (r *QueryResult) FirstRow() (*Row, error) {
	rows, err := r.materializeRows()
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// SingleRow returns the sole row of the result. It returns a
// CardinalityError when the result holds zero rows or more than one.
func (r *QueryResult) SingleRow() (Row, error) {
	rows, err := r.materializeRows()
	if err != nil {
		return Row{}, err
	}
	if len(rows) != 1 {
		return Row{}, &CardinalityError{Count: len(rows)}
	}
	return rows[0], nil
}

// RowsTyped returns every row in dictionary form (see Row.AsDict).
func (r *QueryResult) RowsTyped() ([]map[string]interface{}, error) {
	rows, err := r.materializeRows()
	if err != nil {
		return nil, err
	}
	typed := make([]map[string]interface{}, len(rows))
	for i := range rows {
		d, err := rows[i].AsDict()
		if err != nil {
			return nil, err
		}
		typed[i] = d
	}
	return typed, nil
}

// FirstRowTyped returns the first row in dictionary form, or nil when the
// result has none.
func (r *QueryResult) FirstRowTyped() (map[string]interface{}, error) {
	row, err := r.FirstRow()
	if err != nil || row == nil {
		return nil, err
	}
	return row.AsDict()
}

// Next advances the streaming position and returns the next row, or nil
// once the result is exhausted. Iteration is single-pass and forward-only;
// obtain a fresh cursor to iterate again.
//
// Next mutates the cursor and must not be called concurrently; the bulk
// accessors do not touch the position and stay safe alongside it.
func (r *QueryResult) Next() (*Row, error) {
	rows, err := r.materializeRows()
	if err != nil {
		return nil, err
	}
	if r.pos >= len(rows) {
		return nil, nil
	}
	row := &rows[r.pos]
	r.pos++
	return row, nil
}

// Len returns the total row count, 0 when the statement produced no rows
// result.
func (r *QueryResult) Len() int {
	if r.rowsResult == nil {
		return 0
	}
	return r.rowsResult.NumRows()
}

// NonEmpty reports whether the result holds at least one row.
func (r *QueryResult) NonEmpty() bool {
	return r.Len() > 0
}

// TracingID returns the tracing identifier captured at construction.
func (r *QueryResult) TracingID() (UUID, bool) {
	return r.tracingID, r.hasTracing
}

// Warnings returns the warning strings captured at construction.
func (r *QueryResult) Warnings() []string {
	return r.warnings
}

// ColumnSpecs describes the result columns, nil when the statement produced
// no rows result.
func (r *QueryResult) ColumnSpecs() []ColumnSpec {
	if r.rowsResult == nil {
		return nil
	}
	return r.rowsResult.ColumnSpecs()
}

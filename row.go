// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscylla

import "fmt"

// Row is an ordered, positional snapshot of one result row. A nil column is
// a null cell. Column names are result metadata, not row data; dictionary
// access uses synthetic col_<i> keys (see ColumnSpecs for the real names).
//
// Rows are immutable after construction and safe for concurrent readers.
type Row struct {
	columns []*Value
	dec     *Decoder
}

// NewRow builds a row decoding with a default Decoder. Rows obtained from a
// QueryResult inherit the cursor's Decoder instead.
func NewRow(columns []*Value) Row {
	return Row{columns: columns, dec: defaultDecoder}
}

// Len returns the number of columns. Fixed at construction.
func (r Row) Len() int {
	return len(r.columns)
}

// Get decodes the column at index. Unlike At, it does not accept negative
// indices.
func (r Row) Get(index int) (interface{}, error) {
	if index < 0 || index >= len(r.columns) {
		return nil, &IndexError{Index: index, Len: len(r.columns)}
	}
	return r.decoder().Decode(r.columns[index])
}

// At decodes the column at index, counting from the end when index is
// negative (-1 is the last column).
func (r Row) At(index int) (interface{}, error) {
	idx := index
	if idx < 0 {
		idx += len(r.columns)
	}
	if idx < 0 || idx >= len(r.columns) {
		return nil, &IndexError{Index: index, Len: len(r.columns)}
	}
	return r.decoder().Decode(r.columns[idx])
}

// Columns decodes every column in order, null cells included as nil.
func (r Row) Columns() ([]interface{}, error) {
	cols := make([]interface{}, len(r.columns))
	for i, c := range r.columns {
		v, err := r.decoder().Decode(c)
		if err != nil {
			return nil, err
		}
		cols[i] = v
	}
	return cols, nil
}

// AsDict decodes the row into a map keyed col_0, col_1, ...
func (r Row) AsDict() (map[string]interface{}, error) {
	dict := make(map[string]interface{}, len(r.columns))
	for i, c := range r.columns {
		v, err := r.decoder().Decode(c)
		if err != nil {
			return nil, err
		}
		dict[fmt.Sprintf("col_%d", i)] = v
	}
	return dict, nil
}

func (r Row) String() string {
	return fmt.Sprintf("Row(columns=%d)", len(r.columns))
}

func (r Row) decoder() *Decoder {
	if r.dec == nil {
		return defaultDecoder
	}
	return r.dec
}

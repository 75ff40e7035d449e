// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscylla

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded is returned by the decoder when a value nests deeper than
// the decoder's MaxDepth.
var ErrDepthExceeded = errors.New("rscylla: maximum decode depth exceeded")

// DecodeError wraps a driver-side row deserialization failure. The rows are
// already fetched, so retrying the access cannot succeed; re-execute the
// query instead.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("rscylla: row deserialization error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// CardinalityError is returned by SingleRow when the result does not hold
// exactly one row.
type CardinalityError struct {
	Count int
}

func (e *CardinalityError) Error() string {
	if e.Count == 0 {
		return "rscylla: no rows"
	}
	return fmt.Sprintf("rscylla: expected single row, got %d rows", e.Count)
}

// IndexError is returned by positional column access when the index, after
// normalizing a negative index, is out of range.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("rscylla: column index %d out of range", e.Index)
}

// TypeError is returned by Encode when no probe recognizes the Go value.
type TypeError struct {
	GoType string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("rscylla: cannot encode Go type %s", e.GoType)
}

// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rscylla converts between CQL values and plain Go values.

The package sits between a CQL driver and a dynamically typed consumer.
On the read path the driver hands over an executed query result; rscylla
wraps it in a QueryResult cursor whose rows decode, on demand, into plain
Go scalars, slices and maps:

	res := rscylla.NewQueryResult(raw)
	row, err := res.SingleRow()
	if err != nil {
		// handle err
	}
	name, err := row.Get(0)

On the write path Encode infers a bindable CQL value from a plain Go value,
and EncodeNamedValues produces the named parameter map a driver binds into
a prepared statement.

Transport, pooling, query execution, retries and authentication are the
driver's business; rscylla only ever sees already-fetched results and
already-named parameters.
*/
package rscylla

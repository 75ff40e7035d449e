// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscylla

// DefaultMaxDepth bounds decode recursion when Decoder.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Decoder renders CQL values into plain Go values. The zero Decoder is
// usable and silent.
//
// Decoding is total over the known wire types: every variant maps to a Go
// value and unknown variants degrade to their textual rendering. The only
// failure mode is exceeding MaxDepth on pathologically nested input.
type Decoder struct {
	// MaxDepth bounds recursion into nested collections, tuples and UDTs.
	// Zero means DefaultMaxDepth.
	MaxDepth int

	// Logger receives a debug line whenever an unknown wire type falls back
	// to its textual rendering. Nil disables logging.
	Logger   AdvancedLogger
	LogLevel LogLevel
}

var defaultDecoder = &Decoder{}

// DecodeValue decodes v with a default Decoder.
func DecodeValue(v *Value) (interface{}, error) {
	return defaultDecoder.Decode(v)
}

// Decode converts v into a plain Go value:
//
//	ascii/text/varchar        string
//	boolean                   bool
//	tinyint/smallint/int      int32
//	bigint/counter            int64
//	float                     float32
//	double                    float64
//	blob                      []byte (copied)
//	uuid/timeuuid             string (canonical form)
//	inet                      string
//	timestamp                 int64 (milliseconds since epoch)
//	date                      uint32 (raw day count)
//	time                      int64 (nanoseconds since midnight)
//	list/set                  []interface{}
//	map                       map[interface{}]interface{}
//	tuple                     []interface{}, nil for null slots
//	udt                       map[string]interface{}, nil for null fields
//	duration                  map with "months", "days", "nanoseconds"
//	varint/decimal/custom     string (textual rendering)
//	null                      nil
//
// A nil *Value decodes to nil.
func (d *Decoder) Decode(v *Value) (interface{}, error) {
	return d.decode(v, 0)
}

func (d *Decoder) decode(v *Value, depth int) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if depth > maxDepth {
		return nil, ErrDepthExceeded
	}

	switch v.Type() {
	case TypeEmpty:
		return nil, nil
	case TypeAscii, TypeText, TypeVarchar:
		return v.textVal, nil
	case TypeBoolean:
		return v.boolVal, nil
	case TypeTinyInt, TypeSmallInt, TypeInt:
		return int32(v.intVal), nil
	case TypeBigInt, TypeCounter:
		return v.intVal, nil
	case TypeFloat:
		return float32(v.floatVal), nil
	case TypeDouble:
		return v.floatVal, nil
	case TypeBlob:
		b := make([]byte, len(v.blobVal))
		copy(b, v.blobVal)
		return b, nil
	case TypeUUID, TypeTimeUUID:
		return v.uuidVal.String(), nil
	case TypeInet:
		return v.inetVal.String(), nil
	case TypeTimestamp, TypeTime:
		return v.intVal, nil
	case TypeDate:
		return v.dateVal, nil
	case TypeList, TypeSet:
		seq := make([]interface{}, len(v.elems))
		for i := range v.elems {
			item, err := d.decode(&v.elems[i], depth+1)
			if err != nil {
				return nil, err
			}
			seq[i] = item
		}
		return seq, nil
	case TypeMap:
		m := make(map[interface{}]interface{}, len(v.entries))
		for i := range v.entries {
			key, err := d.decodeMapKey(&v.entries[i].Key, depth+1)
			if err != nil {
				return nil, err
			}
			val, err := d.decode(&v.entries[i].Value, depth+1)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case TypeTuple:
		seq := make([]interface{}, len(v.slots))
		for i, slot := range v.slots {
			item, err := d.decode(slot, depth+1)
			if err != nil {
				return nil, err
			}
			seq[i] = item
		}
		return seq, nil
	case TypeUDT:
		m := make(map[string]interface{}, len(v.fields))
		for _, f := range v.fields {
			val, err := d.decode(f.Value, depth+1)
			if err != nil {
				return nil, err
			}
			m[f.Name] = val
		}
		return m, nil
	case TypeDuration:
		return map[string]interface{}{
			"months":      v.duration.Months,
			"days":        v.duration.Days,
			"nanoseconds": v.duration.Nanoseconds,
		}, nil
	case TypeVarint, TypeDecimal:
		// The numeric payload is rendered textually rather than decoded into
		// an arbitrary-precision Go value; see the package docs.
		return v.String(), nil
	default:
		d.logger().Debug("rscylla: unknown CQL type, decoding to textual form",
			NewLogField("type", v.Type().String()))
		return v.String(), nil
	}
}

// decodeMapKey decodes a map key, substituting the textual rendering for
// composite keys that Go cannot hash.
func (d *Decoder) decodeMapKey(v *Value, depth int) (interface{}, error) {
	switch v.Type() {
	case TypeBlob, TypeList, TypeSet, TypeMap, TypeTuple, TypeUDT, TypeDuration:
		return v.String(), nil
	}
	return d.decode(v, depth)
}

func (d *Decoder) logger() internalLogger {
	if d == nil || d.Logger == nil {
		return nilInternalLogger
	}
	return newInternalLoggerFromAdvancedLogger(d.Logger, d.LogLevel)
}

// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscylla

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// Timestamp sniffing windows, both covering the years 2001 to 2100. Integers
// and floats falling inside them are reclassified as timestamps. The bounds
// are a compatibility contract; see the package docs for the ambiguity this
// buys into.
const (
	timestampMillisMin = int64(1_000_000_000_000)
	timestampMillisMax = int64(4_102_444_800_000)
	timestampSecsMin   = int64(1_000_000_000)
	timestampSecsMax   = int64(4_102_444_800)
)

// EncodableType tags the variants the write path can produce. It is narrower
// than Type: the encoder only emits values a driver can bind, it does not
// reproduce every wire type.
type EncodableType int

const (
	EncodableNull EncodableType = iota
	EncodableBoolean
	EncodableInt
	EncodableBigInt
	EncodableFloat
	EncodableDouble
	EncodableText
	EncodableBlob
	EncodableTimestamp
	EncodableList
	EncodableSet
	EncodableTextMap
	EncodableIntMap
)

func (t EncodableType) String() string {
	switch t {
	case EncodableNull:
		return "null"
	case EncodableBoolean:
		return "boolean"
	case EncodableInt:
		return "int"
	case EncodableBigInt:
		return "bigint"
	case EncodableFloat:
		return "float"
	case EncodableDouble:
		return "double"
	case EncodableText:
		return "text"
	case EncodableBlob:
		return "blob"
	case EncodableTimestamp:
		return "timestamp"
	case EncodableList:
		return "list"
	case EncodableSet:
		return "set"
	case EncodableTextMap:
		return "map<text,text>"
	case EncodableIntMap:
		return "map<text,bigint>"
	default:
		return fmt.Sprintf("unknown_encodable_%d", int(t))
	}
}

// Encodable is a value the driver can bind into a statement, tagged with the
// CQL type it was inferred as.
type Encodable struct {
	typ      EncodableType
	boolVal  bool
	intVal   int64
	floatVal float64
	textVal  string
	blobVal  []byte
	timeVal  time.Time
	elems    []Encodable
	textMap  map[string]string
	intMap   map[string]int64
}

// Type reports which variant the encoder inferred.
func (e Encodable) Type() EncodableType { return e.typ }

// Time returns the timestamp payload; the zero time for other variants.
func (e Encodable) Time() time.Time { return e.timeVal }

func NullEncodable() Encodable { return Encodable{typ: EncodableNull} }

func BooleanEncodable(b bool) Encodable { return Encodable{typ: EncodableBoolean, boolVal: b} }

func IntEncodable(i int32) Encodable { return Encodable{typ: EncodableInt, intVal: int64(i)} }

func BigIntEncodable(i int64) Encodable { return Encodable{typ: EncodableBigInt, intVal: i} }

func FloatEncodable(f float32) Encodable {
	return Encodable{typ: EncodableFloat, floatVal: float64(f)}
}

func DoubleEncodable(f float64) Encodable { return Encodable{typ: EncodableDouble, floatVal: f} }

func TextEncodable(s string) Encodable { return Encodable{typ: EncodableText, textVal: s} }

func BlobEncodable(b []byte) Encodable { return Encodable{typ: EncodableBlob, blobVal: b} }

func TimestampEncodable(t time.Time) Encodable {
	return Encodable{typ: EncodableTimestamp, timeVal: t}
}

func ListEncodable(elems []Encodable) Encodable { return Encodable{typ: EncodableList, elems: elems} }

// SetEncodable builds a set value. The encoder never infers a set; callers
// that want set semantics build one explicitly.
func SetEncodable(elems []Encodable) Encodable { return Encodable{typ: EncodableSet, elems: elems} }

func TextMapEncodable(m map[string]string) Encodable {
	return Encodable{typ: EncodableTextMap, textMap: m}
}

func IntMapEncodable(m map[string]int64) Encodable {
	return Encodable{typ: EncodableIntMap, intMap: m}
}

// Encoder infers Encodable values from plain Go values. The zero Encoder is
// usable and silent.
type Encoder struct {
	// Logger receives a debug line when a number is reclassified as a
	// timestamp and a warning when map inference falls back to an empty
	// text map. Nil disables logging.
	Logger   AdvancedLogger
	LogLevel LogLevel
}

var defaultEncoder = &Encoder{}

// Encode infers an Encodable from v with a default Encoder.
func Encode(v interface{}) (Encodable, error) {
	return defaultEncoder.Encode(v)
}

// EncodeNamedValues encodes every entry of params with a default Encoder,
// producing the named parameter map a driver binds into a statement.
func EncodeNamedValues(params map[string]interface{}) (map[string]Encodable, error) {
	return defaultEncoder.EncodeNamedValues(params)
}

// encodeProbe is one entry of the ordered inference table. A probe either
// claims the value (ok), passes (not ok), or aborts the whole encode (err,
// for container elements that failed to encode).
type encodeProbe struct {
	name string
	fn   func(e *Encoder, v interface{}) (Encodable, bool, error)
}

// The probe order is a documented contract, not an accident. Booleans must
// precede integers, explicit time.Time must precede the numeric heuristics,
// and the 32-bit integer probe must precede the 64-bit one so that small
// integers are never sniffed as timestamps.
var encodeProbes []encodeProbe

func init() {
	encodeProbes = []encodeProbe{
		{"null", (*Encoder).probeNull},
		{"boolean", (*Encoder).probeBoolean},
		{"timestamp", (*Encoder).probeTimestamp},
		{"int", (*Encoder).probeInt},
		{"bigint", (*Encoder).probeBigInt},
		{"float", (*Encoder).probeFloat},
		{"double", (*Encoder).probeDouble},
		{"text", (*Encoder).probeText},
		{"blob", (*Encoder).probeBlob},
		{"list", (*Encoder).probeList},
		{"map", (*Encoder).probeMap},
	}
}

// Encode infers an Encodable from v by running the probe table in order and
// taking the first match. It returns a TypeError naming v's Go type when no
// probe matches.
func (e *Encoder) Encode(v interface{}) (Encodable, error) {
	for _, p := range encodeProbes {
		enc, ok, err := p.fn(e, v)
		if err != nil {
			return Encodable{}, err
		}
		if ok {
			return enc, nil
		}
	}
	return Encodable{}, &TypeError{GoType: fmt.Sprintf("%T", v)}
}

// EncodeNamedValues encodes every entry of params. Any entry failing to
// encode fails the whole map.
func (e *Encoder) EncodeNamedValues(params map[string]interface{}) (map[string]Encodable, error) {
	encoded := make(map[string]Encodable, len(params))
	for name, v := range params {
		enc, err := e.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		encoded[name] = enc
	}
	return encoded, nil
}

func (e *Encoder) probeNull(v interface{}) (Encodable, bool, error) {
	if v == nil {
		return NullEncodable(), true, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return NullEncodable(), true, nil
		}
	}
	return Encodable{}, false, nil
}

func (e *Encoder) probeBoolean(v interface{}) (Encodable, bool, error) {
	if b, ok := v.(bool); ok {
		return BooleanEncodable(b), true, nil
	}
	return Encodable{}, false, nil
}

// probeTimestamp claims explicit time.Time values, the escape hatch from the
// magnitude heuristics below.
func (e *Encoder) probeTimestamp(v interface{}) (Encodable, bool, error) {
	if t, ok := v.(time.Time); ok {
		return TimestampEncodable(t), true, nil
	}
	return Encodable{}, false, nil
}

// asInt64 widens any Go integer kind to int64. It does not match a uint64
// beyond MaxInt64; such a value falls through every probe and fails encode.
func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func (e *Encoder) probeInt(v interface{}) (Encodable, bool, error) {
	i, ok := asInt64(v)
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return Encodable{}, false, nil
	}
	return IntEncodable(int32(i)), true, nil
}

func (e *Encoder) probeBigInt(v interface{}) (Encodable, bool, error) {
	i, ok := asInt64(v)
	if !ok {
		return Encodable{}, false, nil
	}
	if (i >= timestampMillisMin && i < timestampMillisMax) ||
		(i >= timestampSecsMin && i < timestampSecsMax) {
		var secs, nanos int64
		if i >= timestampMillisMin {
			secs, nanos = i/1000, (i%1000)*1_000_000
		} else {
			secs = i
		}
		e.logger().Debug("rscylla: integer reclassified as timestamp",
			NewLogField("value", i))
		return TimestampEncodable(time.Unix(secs, nanos).UTC()), true, nil
	}
	return BigIntEncodable(i), true, nil
}

func (e *Encoder) probeFloat(v interface{}) (Encodable, bool, error) {
	if f, ok := v.(float32); ok {
		return FloatEncodable(f), true, nil
	}
	return Encodable{}, false, nil
}

func (e *Encoder) probeDouble(v interface{}) (Encodable, bool, error) {
	f, ok := v.(float64)
	if !ok {
		return Encodable{}, false, nil
	}
	if f > 0 && f < float64(timestampSecsMax) {
		secs, frac := math.Modf(f)
		e.logger().Debug("rscylla: float reclassified as timestamp",
			NewLogField("value", f))
		return TimestampEncodable(time.Unix(int64(secs), int64(frac*1e9)).UTC()), true, nil
	}
	return DoubleEncodable(f), true, nil
}

func (e *Encoder) probeText(v interface{}) (Encodable, bool, error) {
	if s, ok := v.(string); ok {
		return TextEncodable(s), true, nil
	}
	return Encodable{}, false, nil
}

func (e *Encoder) probeBlob(v interface{}) (Encodable, bool, error) {
	if b, ok := v.([]byte); ok {
		return BlobEncodable(b), true, nil
	}
	return Encodable{}, false, nil
}

func (e *Encoder) probeList(v interface{}) (Encodable, bool, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Encodable{}, false, nil
	}
	elems := make([]Encodable, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		enc, err := e.Encode(rv.Index(i).Interface())
		if err != nil {
			return Encodable{}, false, err
		}
		elems[i] = enc
	}
	return ListEncodable(elems), true, nil
}

// probeMap runs uniform type inference over a Go map: a text map candidate
// and an int map candidate are tracked in one pass and invalidated
// independently; the text map wins ties. A map that fits neither (or is
// empty) becomes an empty text map rather than an error, matching the wire
// compatibility contract even though it silently drops the entries.
func (e *Encoder) probeMap(v interface{}) (Encodable, bool, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return Encodable{}, false, nil
	}

	textMap := make(map[string]string)
	intMap := make(map[string]int64)
	isTextMap := true
	isIntMap := true

	iter := rv.MapRange()
	for iter.Next() {
		key, keyOK := iter.Key().Interface().(string)
		if keyOK {
			val := iter.Value().Interface()
			if isTextMap {
				if s, ok := val.(string); ok {
					textMap[key] = s
				} else {
					isTextMap = false
				}
			}
			if isIntMap {
				if i, ok := asInt64(val); ok {
					intMap[key] = i
				} else {
					isIntMap = false
				}
			}
		} else {
			isTextMap = false
			isIntMap = false
		}

		if !isTextMap && !isIntMap {
			break
		}
	}

	if isTextMap && len(textMap) > 0 {
		return TextMapEncodable(textMap), true, nil
	}
	if isIntMap && len(intMap) > 0 {
		return IntMapEncodable(intMap), true, nil
	}
	if rv.Len() > 0 {
		e.logger().Warning("rscylla: map fits neither map<text,text> nor map<text,bigint>, encoding as empty map",
			NewLogField("go_type", fmt.Sprintf("%T", v)),
			NewLogField("entries", rv.Len()))
	}
	return TextMapEncodable(map[string]string{}), true, nil
}

func (e *Encoder) logger() internalLogger {
	if e == nil || e.Logger == nil {
		return nilInternalLogger
	}
	return newInternalLoggerFromAdvancedLogger(e.Logger, e.LogLevel)
}

// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscylla

import (
	"fmt"
	"math/big"
	"net"
	"strconv"
	"strings"

	"gopkg.in/inf.v0"
)

// Type is the identifier of a CQL internal datatype.
type Type int

const (
	TypeCustom    Type = 0x0000
	TypeAscii     Type = 0x0001
	TypeBigInt    Type = 0x0002
	TypeBlob      Type = 0x0003
	TypeBoolean   Type = 0x0004
	TypeCounter   Type = 0x0005
	TypeDecimal   Type = 0x0006
	TypeDouble    Type = 0x0007
	TypeFloat     Type = 0x0008
	TypeInt       Type = 0x0009
	TypeText      Type = 0x000A
	TypeTimestamp Type = 0x000B
	TypeUUID      Type = 0x000C
	TypeVarchar   Type = 0x000D
	TypeVarint    Type = 0x000E
	TypeTimeUUID  Type = 0x000F
	TypeInet      Type = 0x0010
	TypeDate      Type = 0x0011
	TypeTime      Type = 0x0012
	TypeSmallInt  Type = 0x0013
	TypeTinyInt   Type = 0x0014
	TypeDuration  Type = 0x0015
	TypeList      Type = 0x0020
	TypeMap       Type = 0x0021
	TypeSet       Type = 0x0022
	TypeUDT       Type = 0x0030
	TypeTuple     Type = 0x0031

	// TypeEmpty is not a wire type; it tags a null cell carried as a Value.
	TypeEmpty Type = -1
)

// String returns the name of the identifier.
func (t Type) String() string {
	switch t {
	case TypeCustom:
		return "custom"
	case TypeAscii:
		return "ascii"
	case TypeBigInt:
		return "bigint"
	case TypeBlob:
		return "blob"
	case TypeBoolean:
		return "boolean"
	case TypeCounter:
		return "counter"
	case TypeDecimal:
		return "decimal"
	case TypeDouble:
		return "double"
	case TypeFloat:
		return "float"
	case TypeInt:
		return "int"
	case TypeText:
		return "text"
	case TypeTimestamp:
		return "timestamp"
	case TypeUUID:
		return "uuid"
	case TypeVarchar:
		return "varchar"
	case TypeTimeUUID:
		return "timeuuid"
	case TypeInet:
		return "inet"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	case TypeSmallInt:
		return "smallint"
	case TypeTinyInt:
		return "tinyint"
	case TypeDuration:
		return "duration"
	case TypeList:
		return "list"
	case TypeMap:
		return "map"
	case TypeSet:
		return "set"
	case TypeVarint:
		return "varint"
	case TypeUDT:
		return "udt"
	case TypeTuple:
		return "tuple"
	case TypeEmpty:
		return "empty"
	default:
		return fmt.Sprintf("unknown_type_%d", int(t))
	}
}

// MapEntry is one key/value pair of a CQL map value. Entries keep the order
// the driver produced them in; map semantics do not depend on it.
type MapEntry struct {
	Key   Value
	Value Value
}

// UDTField is one named, optionally-null field of a user defined type value.
type UDTField struct {
	Name  string
	Value *Value
}

// Value is a CQL value tagged with its wire type. The zero Value is a null.
//
// Values are built by a driver adapter through the New*Value constructors and
// consumed through Decoder.Decode. Every known wire type has a constructor;
// anything else is carried by NewCustomValue, which decodes to a textual
// rendering instead of failing.
type Value struct {
	typ Type

	boolVal  bool
	intVal   int64 // tinyint, smallint, int, bigint, counter, timestamp, time
	dateVal  uint32
	floatVal float64 // float, double
	textVal  string  // ascii, text, varchar and the custom class name
	blobVal  []byte  // blob and the raw bytes of a custom value
	uuidVal  UUID
	inetVal  net.IP
	elems    []Value
	entries  []MapEntry
	slots    []*Value
	udtName  string
	fields   []UDTField
	duration Duration
	varint   *big.Int
	decimal  *inf.Dec
}

// Type reports which variant of the union this value holds.
func (v Value) Type() Type {
	if v.typ == 0 && v.textVal == "" && v.blobVal == nil {
		// The zero Value reads as a null, not as an empty custom value.
		return TypeEmpty
	}
	return v.typ
}

func NewNullValue() Value { return Value{typ: TypeEmpty} }

func NewBooleanValue(b bool) Value { return Value{typ: TypeBoolean, boolVal: b} }

func NewTinyIntValue(i int8) Value { return Value{typ: TypeTinyInt, intVal: int64(i)} }

func NewSmallIntValue(i int16) Value { return Value{typ: TypeSmallInt, intVal: int64(i)} }

func NewIntValue(i int32) Value { return Value{typ: TypeInt, intVal: int64(i)} }

func NewBigIntValue(i int64) Value { return Value{typ: TypeBigInt, intVal: i} }

func NewCounterValue(i int64) Value { return Value{typ: TypeCounter, intVal: i} }

func NewFloatValue(f float32) Value { return Value{typ: TypeFloat, floatVal: float64(f)} }

func NewDoubleValue(f float64) Value { return Value{typ: TypeDouble, floatVal: f} }

func NewAsciiValue(s string) Value { return Value{typ: TypeAscii, textVal: s} }

func NewTextValue(s string) Value { return Value{typ: TypeVarchar, textVal: s} }

func NewBlobValue(b []byte) Value { return Value{typ: TypeBlob, blobVal: b} }

func NewUUIDValue(u UUID) Value { return Value{typ: TypeUUID, uuidVal: u} }

func NewTimeUUIDValue(u UUID) Value { return Value{typ: TypeTimeUUID, uuidVal: u} }

func NewInetValue(ip net.IP) Value { return Value{typ: TypeInet, inetVal: ip} }

func NewListValue(elems []Value) Value { return Value{typ: TypeList, elems: elems} }

func NewSetValue(elems []Value) Value { return Value{typ: TypeSet, elems: elems} }

func NewMapValue(entries []MapEntry) Value { return Value{typ: TypeMap, entries: entries} }

// NewTupleValue builds a tuple value. A nil slot is a null slot.
func NewTupleValue(slots []*Value) Value { return Value{typ: TypeTuple, slots: slots} }

// NewUDTValue builds a user defined type value from its ordered fields.
// A nil field value is a null field.
func NewUDTValue(name string, fields []UDTField) Value {
	return Value{typ: TypeUDT, udtName: name, fields: fields}
}

// NewTimestampValue builds a timestamp from milliseconds since the Unix epoch.
func NewTimestampValue(msec int64) Value { return Value{typ: TypeTimestamp, intVal: msec} }

// NewDateValue builds a date from days since -5877641-06-23, the CQL date
// representation with the epoch at 2^31.
func NewDateValue(days uint32) Value { return Value{typ: TypeDate, dateVal: days} }

// NewTimeValue builds a time-of-day value from nanoseconds since midnight.
func NewTimeValue(nanos int64) Value { return Value{typ: TypeTime, intVal: nanos} }

func NewDurationValue(d Duration) Value { return Value{typ: TypeDuration, duration: d} }

func NewVarintValue(i *big.Int) Value { return Value{typ: TypeVarint, varint: i} }

func NewDecimalValue(d *inf.Dec) Value { return Value{typ: TypeDecimal, decimal: d} }

// NewCustomValue carries a wire type this package does not know about. It
// keeps the server-side class name and the raw bytes so the value can still
// be rendered textually.
func NewCustomValue(class string, raw []byte) Value {
	return Value{typ: TypeCustom, textVal: class, blobVal: raw}
}

// String renders the value for debugging. It is also the decoded form of
// varint, decimal and custom values, whose exact representation this package
// does not reproduce numerically.
func (v Value) String() string {
	switch v.Type() {
	case TypeEmpty:
		return "null"
	case TypeBoolean:
		return strconv.FormatBool(v.boolVal)
	case TypeTinyInt, TypeSmallInt, TypeInt, TypeBigInt:
		return strconv.FormatInt(v.intVal, 10)
	case TypeCounter:
		return "counter(" + strconv.FormatInt(v.intVal, 10) + ")"
	case TypeFloat:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 32)
	case TypeDouble:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case TypeAscii, TypeText, TypeVarchar:
		return strconv.Quote(v.textVal)
	case TypeBlob:
		return fmt.Sprintf("0x%x", v.blobVal)
	case TypeUUID, TypeTimeUUID:
		return v.uuidVal.String()
	case TypeInet:
		return v.inetVal.String()
	case TypeTimestamp:
		return "timestamp(" + strconv.FormatInt(v.intVal, 10) + ")"
	case TypeDate:
		return "date(" + strconv.FormatUint(uint64(v.dateVal), 10) + ")"
	case TypeTime:
		return "time(" + strconv.FormatInt(v.intVal, 10) + ")"
	case TypeDuration:
		return "duration(" + v.duration.String() + ")"
	case TypeVarint:
		if v.varint == nil {
			return "varint(0)"
		}
		return "varint(" + v.varint.String() + ")"
	case TypeDecimal:
		if v.decimal == nil {
			return "decimal(0)"
		}
		return "decimal(" + v.decimal.String() + ")"
	case TypeList, TypeSet:
		var sb strings.Builder
		sb.WriteString(v.typ.String())
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case TypeMap:
		var sb strings.Builder
		sb.WriteString("map{")
		for i, e := range v.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.Key.String())
			sb.WriteString(": ")
			sb.WriteString(e.Value.String())
		}
		sb.WriteByte('}')
		return sb.String()
	case TypeTuple:
		var sb strings.Builder
		sb.WriteString("tuple(")
		for i, s := range v.slots {
			if i > 0 {
				sb.WriteString(", ")
			}
			if s == nil {
				sb.WriteString("null")
			} else {
				sb.WriteString(s.String())
			}
		}
		sb.WriteByte(')')
		return sb.String()
	case TypeUDT:
		var sb strings.Builder
		sb.WriteString(v.udtName)
		sb.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			if f.Value == nil {
				sb.WriteString("null")
			} else {
				sb.WriteString(f.Value.String())
			}
		}
		sb.WriteByte('}')
		return sb.String()
	case TypeCustom:
		return fmt.Sprintf("custom(%s, 0x%x)", v.textVal, v.blobVal)
	default:
		return fmt.Sprintf("%s(?)", v.typ)
	}
}

// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscylla

import (
	"time"

	"github.com/r4fek/rscylla/internal/wire"
)

// Marshal returns the CQL binary cell for the value, ready for the driver to
// bind. A null encodes to a nil slice, which the driver writes as a null
// cell. Collections use the v3+ framing with 4-byte counts and lengths.
func (e Encodable) Marshal() ([]byte, error) {
	switch e.typ {
	case EncodableNull:
		return nil, nil
	case EncodableBoolean:
		return wire.EncBool(e.boolVal), nil
	case EncodableInt:
		return wire.EncInt(int32(e.intVal)), nil
	case EncodableBigInt:
		return wire.EncBigInt(e.intVal), nil
	case EncodableFloat:
		return wire.EncFloat(float32(e.floatVal)), nil
	case EncodableDouble:
		return wire.EncDouble(e.floatVal), nil
	case EncodableText:
		return []byte(e.textVal), nil
	case EncodableBlob:
		return e.blobVal, nil
	case EncodableTimestamp:
		ms := e.timeVal.In(time.UTC).UnixNano() / int64(time.Millisecond)
		return wire.EncBigInt(ms), nil
	case EncodableList, EncodableSet:
		buf := wire.AppendInt(nil, int32(len(e.elems)))
		for _, elem := range e.elems {
			data, err := elem.Marshal()
			if err != nil {
				return nil, err
			}
			buf = wire.AppendBytes(buf, data)
		}
		return buf, nil
	case EncodableTextMap:
		buf := wire.AppendInt(nil, int32(len(e.textMap)))
		for k, v := range e.textMap {
			buf = wire.AppendBytes(buf, []byte(k))
			buf = wire.AppendBytes(buf, []byte(v))
		}
		return buf, nil
	case EncodableIntMap:
		buf := wire.AppendInt(nil, int32(len(e.intMap)))
		for k, v := range e.intMap {
			buf = wire.AppendBytes(buf, []byte(k))
			buf = wire.AppendBytes(buf, wire.EncBigInt(v))
		}
		return buf, nil
	default:
		return nil, &TypeError{GoType: e.typ.String()}
	}
}

// MarshalNamedValues marshals an encoded parameter map into the cells a
// driver binds by name. Any cell failing to marshal fails the whole map.
func MarshalNamedValues(params map[string]Encodable) (map[string][]byte, error) {
	cells := make(map[string][]byte, len(params))
	for name, enc := range params {
		data, err := enc.Marshal()
		if err != nil {
			return nil, err
		}
		cells[name] = data
	}
	return cells, nil
}

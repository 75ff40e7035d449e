// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire implements the big-endian primitive encodings of the CQL
// binary protocol, as used for bound statement parameters.
package wire

import "math"

func EncInt(x int32) []byte {
	return []byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
}

func DecInt(x []byte) int32 {
	if len(x) != 4 {
		return 0
	}
	return int32(x[0])<<24 | int32(x[1])<<16 | int32(x[2])<<8 | int32(x[3])
}

func EncBigInt(x int64) []byte {
	return []byte{byte(x >> 56), byte(x >> 48), byte(x >> 40), byte(x >> 32),
		byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
}

func DecBigInt(data []byte) int64 {
	if len(data) != 8 {
		return 0
	}
	return int64(data[0])<<56 | int64(data[1])<<48 |
		int64(data[2])<<40 | int64(data[3])<<32 |
		int64(data[4])<<24 | int64(data[5])<<16 |
		int64(data[6])<<8 | int64(data[7])
}

func EncBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func DecBool(v []byte) bool {
	if len(v) == 0 {
		return false
	}
	return v[0] != 0
}

func EncFloat(f float32) []byte {
	return EncInt(int32(math.Float32bits(f)))
}

func DecFloat(data []byte) float32 {
	return math.Float32frombits(uint32(DecInt(data)))
}

func EncDouble(f float64) []byte {
	return EncBigInt(int64(math.Float64bits(f)))
}

func DecDouble(data []byte) float64 {
	return math.Float64frombits(uint64(DecBigInt(data)))
}

// AppendInt appends a protocol [int] to buf.
func AppendInt(buf []byte, x int32) []byte {
	return append(buf, byte(x>>24), byte(x>>16), byte(x>>8), byte(x))
}

// AppendBytes appends a protocol [bytes] to buf: a signed 4-byte length
// followed by the payload, with a nil slice written as length -1 (null).
func AppendBytes(buf, b []byte) []byte {
	if b == nil {
		return AppendInt(buf, -1)
	}
	buf = AppendInt(buf, int32(len(b)))
	return append(buf, b...)
}

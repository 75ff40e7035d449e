// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"math"
	"testing"
)

func TestIntRoundtrip(t *testing.T) {
	for _, x := range []int32{0, 1, -1, 16909060, math.MaxInt32, math.MinInt32} {
		if got := DecInt(EncInt(x)); got != x {
			t.Errorf("DecInt(EncInt(%d)) = %d", x, got)
		}
	}
	if !bytes.Equal(EncInt(16909060), []byte{1, 2, 3, 4}) {
		t.Errorf("EncInt(16909060) = %x", EncInt(16909060))
	}
	if DecInt([]byte{1, 2}) != 0 {
		t.Error("DecInt of short input should be 0")
	}
}

func TestBigIntRoundtrip(t *testing.T) {
	for _, x := range []int64{0, 1, -1, 72623859790382856, math.MaxInt64, math.MinInt64} {
		if got := DecBigInt(EncBigInt(x)); got != x {
			t.Errorf("DecBigInt(EncBigInt(%d)) = %d", x, got)
		}
	}
	if !bytes.Equal(EncBigInt(72623859790382856), []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("EncBigInt(72623859790382856) = %x", EncBigInt(72623859790382856))
	}
}

func TestBool(t *testing.T) {
	if !bytes.Equal(EncBool(true), []byte{1}) || !bytes.Equal(EncBool(false), []byte{0}) {
		t.Error("EncBool framing")
	}
	if !DecBool([]byte{1}) || DecBool([]byte{0}) || DecBool(nil) {
		t.Error("DecBool")
	}
}

func TestFloatRoundtrip(t *testing.T) {
	for _, f := range []float32{0, 1.5, -2.25, math.MaxFloat32} {
		if got := DecFloat(EncFloat(f)); got != f {
			t.Errorf("DecFloat(EncFloat(%v)) = %v", f, got)
		}
	}
	for _, f := range []float64{0, 1.5, -2.25, math.MaxFloat64} {
		if got := DecDouble(EncDouble(f)); got != f {
			t.Errorf("DecDouble(EncDouble(%v)) = %v", f, got)
		}
	}
}

func TestAppendBytes(t *testing.T) {
	buf := AppendBytes(nil, []byte("ab"))
	if !bytes.Equal(buf, []byte{0, 0, 0, 2, 'a', 'b'}) {
		t.Errorf("AppendBytes = %x", buf)
	}

	// nil payload is a null cell, length -1.
	buf = AppendBytes(nil, nil)
	if !bytes.Equal(buf, []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("AppendBytes(nil) = %x", buf)
	}

	// empty but non-nil payload keeps length 0.
	buf = AppendBytes(nil, []byte{})
	if !bytes.Equal(buf, []byte{0, 0, 0, 0}) {
		t.Errorf("AppendBytes(empty) = %x", buf)
	}
}

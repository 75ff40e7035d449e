// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscyllazerolog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/r4fek/rscylla"
	"github.com/rs/zerolog"
)

const logLineEnding = "%%%\n%%%"

func TestRscyllaZeroLog(t *testing.T) {
	b := &bytes.Buffer{}
	output := zerolog.ConsoleWriter{Out: b}
	output.NoColor = true
	output.FormatExtra = func(m map[string]interface{}, buffer *bytes.Buffer) error {
		buffer.WriteString(logLineEnding)
		return nil
	}
	logger := zerolog.New(output)

	enc := &rscylla.Encoder{
		Logger:   NewZerologLogger(logger),
		LogLevel: rscylla.LogLevelWarn,
	}
	// A map with mixed value types triggers the empty-map fallback warning.
	if _, err := enc.Encode(map[string]interface{}{"a": 1, "b": "x"}); err != nil {
		t.Fatal("encode failed:", err)
	}

	logOutput := strings.Split(b.String(), logLineEnding+"\n")
	found := false
	for _, logEntry := range logOutput {
		if len(logEntry) == 0 {
			continue
		}
		if !strings.Contains(logEntry, "rscylla: map fits neither map<text,text> nor map<text,bigint>, "+
			"encoding as empty map") ||
			!strings.Contains(logEntry, "entries=2") ||
			!strings.Contains(logEntry, "logger=rscylla") {
			continue
		} else {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("log output didn't match expectations: ", strings.Join(logOutput, "\n"))
	}
}

func TestUnnamedZerologLogger(t *testing.T) {
	b := &bytes.Buffer{}
	logger := NewUnnamedZerologLogger(zerolog.New(b))
	logger.Info("hello", rscylla.NewLogField("k", "v"))
	if out := b.String(); strings.Contains(out, "logger=") || !strings.Contains(out, `"k":"v"`) {
		t.Fatal("unexpected log output: ", out)
	}
}

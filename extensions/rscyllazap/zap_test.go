// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscyllazap

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/r4fek/rscylla"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logLineEnding = "%%%\n%%%"

func NewCustomLogger(pipeTo io.Writer) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.LineEnding = logLineEnding
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(pipeTo),
		zapcore.DebugLevel,
	)
}

func TestRscyllaZapLog(t *testing.T) {
	b := &bytes.Buffer{}
	logger := zap.New(NewCustomLogger(b))

	enc := &rscylla.Encoder{
		Logger:   NewZapLogger(logger),
		LogLevel: rscylla.LogLevelWarn,
	}
	// A map with mixed value types triggers the empty-map fallback warning.
	if _, err := enc.Encode(map[string]interface{}{"a": 1, "b": "x"}); err != nil {
		t.Fatal("encode failed:", err)
	}

	if err := logger.Sync(); err != nil {
		t.Fatal("logger sync failed")
	}
	logOutput := strings.Split(b.String(), logLineEnding)
	found := false
	for _, logEntry := range logOutput {
		if len(logEntry) == 0 {
			continue
		}
		if !strings.Contains(logEntry, "warn\trscylla\trscylla: map fits neither map<text,text> nor "+
			"map<text,bigint>, encoding as empty map\t{\"go_type\": \"map[string]interface {}\", \"entries\": 2}") {
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

func TestNamedAndUnnamed(t *testing.T) {
	logger := zap.New(NewCustomLogger(&bytes.Buffer{}))
	if got := NewZapLogger(logger).Name(); got != DefaultName {
		t.Fatalf("expected name %q, got %q", DefaultName, got)
	}
	if got := NewUnnamedZapLogger(logger).Name(); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

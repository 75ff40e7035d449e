// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscyllazap

import (
	"github.com/r4fek/rscylla"
	"go.uber.org/zap"
)

const DefaultName = "rscylla"

type Logger interface {
	rscylla.AdvancedLogger
	ZapLogger() *zap.Logger
	Name() string
}

type logger struct {
	zapLogger *zap.Logger
}

// NewZapLogger creates a new zap based logger with the logger name set to DefaultName
func NewZapLogger(l *zap.Logger) Logger {
	return &logger{zapLogger: l.Named(DefaultName)}
}

// NewUnnamedZapLogger doesn't set the logger name so the user can set the name of the logger
// before providing it to this function (or just leave it unset)
func NewUnnamedZapLogger(l *zap.Logger) Logger {
	return &logger{zapLogger: l}
}

func (rec *logger) ZapLogger() *zap.Logger {
	return rec.zapLogger
}

func (rec *logger) Name() string {
	return rec.zapLogger.Name()
}

func (rec *logger) log(fields []rscylla.LogField) *zap.Logger {
	childLogger := rec.zapLogger
	for _, field := range fields {
		childLogger = childLogger.WithLazy(zap.Any(field.Name, field.Value))
	}
	return childLogger
}

func (rec *logger) Error(msg string, fields ...rscylla.LogField) {
	rec.log(fields).Error(msg)
}

func (rec *logger) Warning(msg string, fields ...rscylla.LogField) {
	rec.log(fields).Warn(msg)
}

func (rec *logger) Info(msg string, fields ...rscylla.LogField) {
	rec.log(fields).Info(msg)
}

func (rec *logger) Debug(msg string, fields ...rscylla.LogField) {
	rec.log(fields).Debug(msg)
}

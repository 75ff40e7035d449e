// Copyright (c) The rscylla Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rscylla

import (
	"strconv"
	"strings"
)

// StdLogger is the subset of the standard library log.Logger used when a
// structured logger is not supplied.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

type LogLevel int

const (
	LogLevelDebug = LogLevel(5)
	LogLevelInfo  = LogLevel(4)
	LogLevelWarn  = LogLevel(3)
	LogLevelError = LogLevel(2)
	LogLevelNone  = LogLevel(0)
)

func (recv LogLevel) String() string {
	switch recv {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelNone:
		return "none"
	default:
		// fmt.sprintf allocates so use strings.Join instead
		temp := [2]string{"invalid level ", strconv.Itoa(int(recv))}
		return strings.Join(temp[:], "")
	}
}

type LogField struct {
	Name  string
	Value interface{}
}

func NewLogField(name string, value interface{}) LogField {
	return LogField{
		Name:  name,
		Value: value,
	}
}

// AdvancedLogger is the structured logging interface. Adapters for zap and
// zerolog live under extensions/.
type AdvancedLogger interface {
	Error(msg string, fields ...LogField)
	Warning(msg string, fields ...LogField)
	Info(msg string, fields ...LogField)
	Debug(msg string, fields ...LogField)
}

type internalLogger interface {
	AdvancedLogger
	MinimumLogLevel() LogLevel
}

type nopLogger struct{}

func (n nopLogger) Error(_ string, _ ...LogField) {}

func (n nopLogger) Warning(_ string, _ ...LogField) {}

func (n nopLogger) Info(_ string, _ ...LogField) {}

func (n nopLogger) Debug(_ string, _ ...LogField) {}

var nilInternalLogger internalLogger = loggerAdapter{
	minimumLogLevel: LogLevelNone,
	advLogger:       nopLogger{},
	legacyLogger:    nil,
}

type loggerAdapter struct {
	minimumLogLevel LogLevel
	advLogger       AdvancedLogger
	legacyLogger    StdLogger
}

func (recv loggerAdapter) logLegacy(msg string, fields ...LogField) {
	var values []interface{}
	var small [5]interface{}
	l := len(fields)
	if l <= 5 { // small stack array optimization
		values = small[:l]
	} else {
		values = make([]interface{}, l)
	}
	var i int
	for _, v := range fields {
		values[i] = v.Value
		i++
	}
	recv.legacyLogger.Printf(msg, values...)
}

func (recv loggerAdapter) Error(msg string, fields ...LogField) {
	if LogLevelError <= recv.minimumLogLevel {
		if recv.advLogger != nil {
			recv.advLogger.Error(msg, fields...)
		} else {
			recv.logLegacy(msg, fields...)
		}
	}
}

func (recv loggerAdapter) Warning(msg string, fields ...LogField) {
	if LogLevelWarn <= recv.minimumLogLevel {
		if recv.advLogger != nil {
			recv.advLogger.Warning(msg, fields...)
		} else {
			recv.logLegacy(msg, fields...)
		}
	}
}

func (recv loggerAdapter) Info(msg string, fields ...LogField) {
	if LogLevelInfo <= recv.minimumLogLevel {
		if recv.advLogger != nil {
			recv.advLogger.Info(msg, fields...)
		} else {
			recv.logLegacy(msg, fields...)
		}
	}
}

func (recv loggerAdapter) Debug(msg string, fields ...LogField) {
	if LogLevelDebug <= recv.minimumLogLevel {
		if recv.advLogger != nil {
			recv.advLogger.Debug(msg, fields...)
		} else {
			recv.logLegacy(msg, fields...)
		}
	}
}

func (recv loggerAdapter) MinimumLogLevel() LogLevel {
	return recv.minimumLogLevel
}

func newInternalLoggerFromAdvancedLogger(logger AdvancedLogger, level LogLevel) loggerAdapter {
	return loggerAdapter{
		minimumLogLevel: level,
		advLogger:       logger,
		legacyLogger:    nil,
	}
}

func newInternalLoggerFromStdLogger(logger StdLogger, level LogLevel) loggerAdapter {
	return loggerAdapter{
		minimumLogLevel: level,
		advLogger:       nil,
		legacyLogger:    logger,
	}
}

/*
 * Copyright 2018-2020 the original author or authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Logger is the interface buildpack callbacks log through.
type Logger interface {
	Debug(a ...interface{})
	Debugf(format string, a ...interface{})
	DebugWriter() io.Writer
	IsDebugEnabled() bool

	Info(a ...interface{})
	Infof(format string, a ...interface{})
	InfoWriter() io.Writer
}

// PlainLogger implements Logger and logs messages to a writer.
type PlainLogger struct {
	debug io.Writer
	info  io.Writer
}

// New creates a new instance of PlainLogger that writes informational messages to writer. It additionally writes
// debug messages to writer if $BP_DEBUG is set or $BP_LOG_LEVEL is DEBUG.
func New(writer io.Writer) PlainLogger {
	l := PlainLogger{info: writer}

	if strings.ToLower(os.Getenv("BP_LOG_LEVEL")) == "debug" || os.Getenv("BP_DEBUG") != "" {
		l.debug = writer
	}

	return l
}

// NewDiscard creates a new instance of PlainLogger that discards all log messages. Useful in testing.
func NewDiscard() PlainLogger {
	return PlainLogger{}
}

// Debug formats using the default formats for its operands and writes to the configured debug writer. Spaces are added
// between operands when neither is a string.
func (l PlainLogger) Debug(a ...interface{}) {
	if !l.IsDebugEnabled() {
		return
	}

	writeLine(l.debug, fmt.Sprint(a...))
}

// Debugf formats according to a format specifier and writes to the configured debug writer.
func (l PlainLogger) Debugf(format string, a ...interface{}) {
	if !l.IsDebugEnabled() {
		return
	}

	writeLine(l.debug, fmt.Sprintf(format, a...))
}

// DebugWriter returns the configured debug writer, or io.Discard if debug logging is disabled.
func (l PlainLogger) DebugWriter() io.Writer {
	if l.debug == nil {
		return io.Discard
	}

	return l.debug
}

// IsDebugEnabled indicates whether debug logging is enabled.
func (l PlainLogger) IsDebugEnabled() bool {
	return l.debug != nil
}

// Info formats using the default formats for its operands and writes to the configured info writer.
func (l PlainLogger) Info(a ...interface{}) {
	if l.info == nil {
		return
	}

	writeLine(l.info, fmt.Sprint(a...))
}

// Infof formats according to a format specifier and writes to the configured info writer.
func (l PlainLogger) Infof(format string, a ...interface{}) {
	if l.info == nil {
		return
	}

	writeLine(l.info, fmt.Sprintf(format, a...))
}

// InfoWriter returns the configured info writer, or io.Discard if none is configured.
func (l PlainLogger) InfoWriter() io.Writer {
	if l.info == nil {
		return io.Discard
	}

	return l.info
}

func writeLine(w io.Writer, s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	_, _ = fmt.Fprint(w, s)
}

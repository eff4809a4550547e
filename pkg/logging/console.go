package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

var (
	infoLabel  = color.New(color.FgGreen).Sprint("[INFO]")
	debugLabel = color.New(color.FgCyan).Sprint("[DEBUG]")
	traceLabel = color.New(color.FgYellow).Sprint("[TRACE]")
	errorLabel = color.New(color.FgRed).Sprint("[ERROR]")
)

// ConsoleSink is a logr.LogSink that writes single-line, colored,
// human-readable output. It is intended for the CLI tools, not for
// structured log collection.
type ConsoleSink struct {
	writer       io.Writer
	minVerbosity int
	name         string
	keyValues    []interface{}
	mutex        sync.Mutex
}

// NewConsoleSink creates a ConsoleSink writing to the given writer (stderr
// when nil). minVerbosity is the highest logr V level that will be emitted.
func NewConsoleSink(writer io.Writer, minVerbosity int) *ConsoleSink {
	if writer == nil {
		writer = os.Stderr
	}
	return &ConsoleSink{writer: writer, minVerbosity: minVerbosity}
}

// NewConsoleLogger returns a logr.Logger backed by a ConsoleSink.
func NewConsoleLogger(writer io.Writer, minVerbosity int) logr.Logger {
	return logr.New(NewConsoleSink(writer, minVerbosity))
}

func (s *ConsoleSink) Init(info logr.RuntimeInfo) {}

func (s *ConsoleSink) Enabled(level int) bool {
	return level <= s.minVerbosity
}

func (s *ConsoleSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(level) {
		return
	}
	var label string
	switch level {
	case LEVEL_DEBUG:
		label = debugLabel
	case LEVEL_TRACE:
		label = traceLabel
	default:
		label = infoLabel
	}
	s.write(label, msg, keysAndValues)
}

func (s *ConsoleSink) Error(err error, msg string, keysAndValues ...interface{}) {
	kvs := append(append([]interface{}{}, keysAndValues...), "error", err)
	s.write(errorLabel, msg, kvs)
}

func (s *ConsoleSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &ConsoleSink{
		writer:       s.writer,
		minVerbosity: s.minVerbosity,
		name:         s.name,
		keyValues:    append(append([]interface{}{}, s.keyValues...), keysAndValues...),
	}
}

func (s *ConsoleSink) WithName(name string) logr.LogSink {
	if s.name != "" {
		name = s.name + "." + name
	}
	return &ConsoleSink{
		writer:       s.writer,
		minVerbosity: s.minVerbosity,
		name:         name,
		keyValues:    append([]interface{}{}, s.keyValues...),
	}
}

func (s *ConsoleSink) write(label, msg string, keysAndValues []interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var b strings.Builder
	b.WriteString(label)
	b.WriteByte(' ')
	if s.name != "" {
		fmt.Fprintf(&b, "[%s] ", s.name)
	}
	b.WriteString(msg)

	all := append(append([]interface{}{}, s.keyValues...), keysAndValues...)
	for i := 0; i+1 < len(all); i += 2 {
		key, ok := all[i].(string)
		if !ok {
			key = fmt.Sprintf("key%d", i/2)
		}
		fmt.Fprintf(&b, " %s=%v", key, all[i+1])
	}
	fmt.Fprintln(s.writer, b.String())
}

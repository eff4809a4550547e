package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

// Test that if writer is nil, the sink defaults to os.Stderr.
func TestDefaultWriter(t *testing.T) {
	s := NewConsoleSink(nil, 1)
	if s.writer != os.Stderr {
		t.Errorf("expected default writer to be os.Stderr, got %v", s.writer)
	}
}

// Test that Enabled returns true only for levels up to the minimum verbosity.
func TestEnabled(t *testing.T) {
	s := NewConsoleSink(&bytes.Buffer{}, LEVEL_DEBUG)
	if !s.Enabled(LEVEL_INFO) {
		t.Error("expected info level to be enabled")
	}
	if !s.Enabled(LEVEL_DEBUG) {
		t.Error("expected debug level to be enabled")
	}
	if s.Enabled(LEVEL_TRACE) {
		t.Error("expected trace level to be disabled")
	}
}

// Test that Info writes a labeled message with inline key-value pairs.
func TestInfoLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, LEVEL_DEBUG)
	s.Info(0, "Hello world", "key", "value")
	output := buf.String()

	if !strings.Contains(output, "Hello world") {
		t.Errorf("expected output to contain 'Hello world', got %q", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected output to contain key-value pair, got %q", output)
	}
	if !strings.Contains(output, "[INFO]") {
		t.Errorf("expected output to contain [INFO] label, got %q", output)
	}
}

// Test that a message above the minimum verbosity is not written.
func TestInfoNotLoggedWhenDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, LEVEL_INFO)
	s.Info(LEVEL_DEBUG, "This should not be logged", "foo", "bar")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// Test that debug and trace levels get their own labels.
func TestLevelLabels(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, LEVEL_TRACE)
	s.Info(LEVEL_DEBUG, "dbg")
	s.Info(LEVEL_TRACE, "trc")
	output := buf.String()

	if !strings.Contains(output, "[DEBUG]") {
		t.Errorf("expected [DEBUG] label, got %q", output)
	}
	if !strings.Contains(output, "[TRACE]") {
		t.Errorf("expected [TRACE] label, got %q", output)
	}
}

// Test that Error writes the error label and appends the error key.
func TestErrorLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, LEVEL_INFO)
	err := errors.New("sample error")
	s.Error(err, "An error occurred", "context", "testing")
	output := buf.String()

	if !strings.Contains(output, "[ERROR]") {
		t.Errorf("expected output to contain [ERROR] label, got %q", output)
	}
	if !strings.Contains(output, "An error occurred") {
		t.Errorf("expected error message, got %q", output)
	}
	if !strings.Contains(output, "context=testing") {
		t.Errorf("expected context key-value, got %q", output)
	}
	if !strings.Contains(output, "error=sample error") {
		t.Errorf("expected error key-value, got %q", output)
	}
}

// Test that WithName prefixes messages and that names chain.
func TestWithName(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, LEVEL_INFO)
	named := s.WithName("rule").WithName("cells")
	named.Info(0, "Test message")
	output := buf.String()

	if !strings.Contains(output, "[rule.cells]") {
		t.Errorf("expected output to contain [rule.cells], got %q", output)
	}
}

// Test that WithValues carries pairs into every message.
func TestWithValues(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewConsoleSink(buf, LEVEL_INFO)
	sink := s.WithValues("platform", "linux")
	sink.Info(0, "msg", "flag", "i")
	output := buf.String()

	if !strings.Contains(output, "platform=linux") {
		t.Errorf("expected bound key-value, got %q", output)
	}
	if !strings.Contains(output, "flag=i") {
		t.Errorf("expected call key-value, got %q", output)
	}
}

// Test the Logger wrapper level routing against a counting sink.
func TestLoggerWrapper(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(NewConsoleLogger(buf, LEVEL_DEBUG))

	log.Info("info msg")
	log.Debug("debug msg")
	log.Trace("trace msg") // above verbosity, dropped

	output := buf.String()
	if !strings.Contains(output, "info msg") || !strings.Contains(output, "debug msg") {
		t.Errorf("expected info and debug messages, got %q", output)
	}
	if strings.Contains(output, "trace msg") {
		t.Errorf("trace message should have been dropped, got %q", output)
	}
}

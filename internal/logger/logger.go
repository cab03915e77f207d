// Package logger provides structured JSON logging and per-run metrics for
// the peco-outages CLI.
//
// Log lines are single JSON objects with a timestamp, level, message, and
// optional structured fields, so verbose CLI runs stay machine-parseable.
// Metrics track request counters and timings for one invocation.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// Fields holds structured log fields.
type Fields map[string]any

// Logger writes structured JSON log lines to a single destination.
// Messages below the minimum level are discarded.
type Logger struct {
	mu  sync.Mutex
	min Level
	w   io.Writer
}

// New creates a Logger writing to w at the given minimum level.
func New(min Level, w io.Writer) *Logger {
	return &Logger{min: min, w: w}
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if level < l.min {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		e.Error = err.Error()
	}

	data, marshalErr := json.Marshal(e)

	l.mu.Lock()
	defer l.mu.Unlock()
	if marshalErr != nil {
		// Fall back to plain text rather than dropping the line.
		fmt.Fprintf(l.w, "[%s] %s: %s\n", e.Timestamp, e.Level, e.Message)
		return
	}
	fmt.Fprintln(l.w, string(data))
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs an operational message.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a potential problem that did not stop the run.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs a failure together with its error.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Metrics tracks counters and timings for a single run. Safe for concurrent
// use.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

// NewMetrics creates an empty metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// Incr increments the named counter by one.
func (m *Metrics) Incr(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// Time starts a timing measurement and returns the function that records it.
//
//	defer metrics.Time("fetch")()
func (m *Metrics) Time(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		m.mu.Lock()
		defer m.mu.Unlock()
		m.timings[name] = append(m.timings[name], d)
	}
}

// Snapshot returns the current counters and timing statistics as log fields.
func (m *Metrics) Snapshot() Fields {
	m.mu.Lock()
	defer m.mu.Unlock()

	counters := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		counters[k] = v
	}

	timings := make(map[string]Fields, len(m.timings))
	for name, durations := range m.timings {
		var total time.Duration
		for _, d := range durations {
			total += d
		}
		timings[name] = Fields{
			"count":   len(durations),
			"total":   total.String(),
			"average": (total / time.Duration(len(durations))).String(),
		}
	}

	return Fields{"counters": counters, "timings": timings}
}

/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package record provides a test-friendly logr.Logger.
package record

import (
	"sync"

	"github.com/go-logr/logr"
)

// LogEntry defines the information that can be used for composing a log line.
type LogEntry struct {
	// Prefix of the log line, composed of the hierarchy of log.WithName values.
	Prefix string

	// LogFunc of the log entry, e.g. "Info", "Error"
	LogFunc string

	// Level of the LogEntry.
	Level int

	// Values of the log line, composed of the concatenation of log.WithValues and KeyValue pairs passed to log.Info,
	// followed by "msg" and, for errors, "error".
	Values []interface{}
}

// Recorder collects the entries written through the loggers it creates.
type Recorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogger returns a logger whose entries are kept by the returned Recorder.
func NewLogger() (logr.Logger, *Recorder) {
	r := &Recorder{}
	return logr.New(&sink{recorder: r}), r
}

// Entries returns a copy of the recorded log entries.
func (r *Recorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the "msg" value of every recorded entry, in order.
func (r *Recorder) Messages() []string {
	entries := r.Entries()
	msgs := make([]string, 0, len(entries))
	for _, e := range entries {
		for i := 0; i+1 < len(e.Values); i += 2 {
			if e.Values[i] == "msg" {
				if msg, ok := e.Values[i+1].(string); ok {
					msgs = append(msgs, msg)
				}
			}
		}
	}
	return msgs
}

func (r *Recorder) add(entry LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
}

type sink struct {
	recorder *Recorder
	prefix   string
	values   []interface{}
}

var _ logr.LogSink = (*sink)(nil)

// Init is a no-op.
func (s *sink) Init(_ logr.RuntimeInfo) {}

// Enabled is always enabled.
func (s *sink) Enabled(_ int) bool {
	return true
}

// Info records a non-error message with the given key/value pairs as context.
func (s *sink) Info(level int, msg string, kvs ...interface{}) {
	values := copySlice(s.values)
	values = append(values, kvs...)
	values = append(values, "msg", msg)
	s.recorder.add(LogEntry{Prefix: s.prefix, LogFunc: "Info", Level: level, Values: values})
}

// Error records an error message with the given key/value pairs as context.
func (s *sink) Error(err error, msg string, kvs ...interface{}) {
	values := copySlice(s.values)
	values = append(values, kvs...)
	values = append(values, "msg", msg, "error", err)
	s.recorder.add(LogEntry{Prefix: s.prefix, LogFunc: "Error", Values: values})
}

// WithName adds a new element to the logger's name.
func (s *sink) WithName(name string) logr.LogSink {
	prefix := name
	if s.prefix != "" {
		prefix = s.prefix + "/" + name
	}
	return &sink{recorder: s.recorder, prefix: prefix, values: copySlice(s.values)}
}

// WithValues adds some key-value pairs of context to a logger.
func (s *sink) WithValues(kvList ...interface{}) logr.LogSink {
	return &sink{recorder: s.recorder, prefix: s.prefix, values: append(copySlice(s.values), kvList...)}
}

func copySlice(in []interface{}) []interface{} {
	out := make([]interface{}, len(in))
	copy(out, in)
	return out
}

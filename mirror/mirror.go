// Package mirror bridges a ring log to a host logger. Device builds
// keep the ring alone; host and debug builds attach a sink so every
// append also lands on a real logger, and Dump replays a ring's
// retained entries post mortem.
package mirror

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/ACIDBURN2501/embedded-log/ringlog"
)

// Sink receives entries as they are appended.
type Sink interface {
	Emit(e ringlog.Entry)
}

// NoopSink drops all entries.
type NoopSink struct{}

// Emit ignores the entry.
func (NoopSink) Emit(ringlog.Entry) {}

// ZerologSink forwards entries to a zerolog logger, mapping FAULT to
// the error level and carrying the device tick as a field.
type ZerologSink struct {
	Logger zerolog.Logger
}

// Emit writes one entry to the logger.
func (s ZerologSink) Emit(e ringlog.Entry) {
	s.Logger.WithLevel(zlevel(e.Level)).
		Uint32("tick", e.Timestamp).
		Msg(e.Message)
}

func zlevel(l ringlog.Level) zerolog.Level {
	switch l {
	case ringlog.LevelWarn:
		return zerolog.WarnLevel
	case ringlog.LevelFault:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Log tees appends into a ring and a sink. It also carries the single
// lock the core deliberately omits, so hosts with concurrent callers
// can share one instance.
type Log struct {
	mu   sync.Mutex
	ring *ringlog.Log
	sink Sink
}

// New couples ring with sink. A nil sink falls back to NoopSink.
func New(ring *ringlog.Log, sink Sink) *Log {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Log{ring: ring, sink: sink}
}

// Append records the message on the ring and mirrors the stored entry
// to the sink. The sink sees exactly what the ring retained, truncation
// and tick stamp included. Appends the ring would drop (inert ring,
// empty message) reach neither side.
func (m *Log) Append(level ringlog.Level, message string) {
	if m == nil || !m.ring.Ready() || message == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ring.Append(level, message)
	if e := m.ring.Entry(m.ring.Count() - 1); e != nil {
		m.sink.Emit(*e)
	}
}

// Appendf is Append with rendering.
func (m *Log) Appendf(level ringlog.Level, format string, args ...any) {
	if m == nil || format == "" {
		return
	}
	m.Append(level, ringlog.Render(format, args...))
}

// Ring returns the underlying ring log for read access.
func (m *Log) Ring() *ringlog.Log {
	if m == nil {
		return nil
	}
	return m.ring
}

// Dump replays the retained entries of l, oldest first, through logger.
// Typical use is a post-mortem pull: snapshot the ring, dump it to the
// host log, move on.
func Dump(l *ringlog.Log, logger zerolog.Logger) {
	sink := ZerologSink{Logger: logger}
	for _, e := range l.Snapshot() {
		sink.Emit(e)
	}
}

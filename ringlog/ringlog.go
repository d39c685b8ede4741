// Package ringlog provides a fixed-capacity in-RAM circular log for
// firmware-style event and fault recording. Entries are stamped with a
// caller-supplied tick source, stored in a ring that overwrites the
// oldest entry once full, and read back by logical age (0 = oldest
// survivor). Every operation is bounded, allocation-free on the append
// path, and safe to call unconditionally: invalid input to a mutator is
// a silent no-op, an out-of-range query returns nil.
package ringlog

// TickFunc returns the current tick count. The unit (milliseconds,
// scheduler ticks) is defined by the caller; the log stores the value
// without interpreting it.
type TickFunc func() uint32

// Log stores the most recent entries in a fixed-capacity ring.
//
// A Log assumes a single writer and a non-concurrent reader. Callers
// that need concurrent access must add their own synchronization around
// the whole instance; the mirror package carries one such layer.
type Log struct {
	entries []Entry
	head    int // next physical slot to write
	count   int // valid entries, saturates at capacity
	now     TickFunc
}

// New returns a Log holding at most capacity entries, stamping each
// append with now. A non-positive capacity falls back to
// DefaultCapacity. A nil now leaves the log inert: appends are dropped
// until Reset installs a tick source.
func New(capacity int, now TickFunc) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		entries: make([]Entry, capacity),
		now:     now,
	}
}

// Reset clears the cursor, the count, and every slot, and replaces the
// tick source with now. This is the only way the count returns to zero.
// It does nothing on a nil or zero-value log.
func (l *Log) Reset(now TickFunc) {
	if l == nil {
		return
	}
	l.head = 0
	l.count = 0
	for i := range l.entries {
		l.entries[i] = Entry{}
	}
	l.now = now
}

// Ready reports whether appends will be recorded: the log exists, has
// storage, and has a tick source.
func (l *Log) Ready() bool {
	return l != nil && l.now != nil && len(l.entries) > 0
}

// Append records message at the given level, stamped with the current
// tick. It is safe to call from any code path, fault handlers included:
// on a nil log, a log without a tick source, a zero-value log, or an
// empty message it does nothing. The message is truncated to the fixed
// field width if needed. Once the ring is full the oldest entry is
// overwritten; that is normal operation, not a failure.
func (l *Log) Append(level Level, message string) {
	if !l.Ready() || message == "" {
		return
	}
	l.entries[l.head] = Entry{
		Timestamp: l.now(),
		Level:     level,
		Message:   clip(message),
	}
	l.head = (l.head + 1) % len(l.entries)
	if l.count < len(l.entries) {
		l.count++
	}
}

// Appendf renders format with args, bounded to the message field, and
// appends the result. An empty format is dropped like an empty message.
func (l *Log) Appendf(level Level, format string, args ...any) {
	if !l.Ready() || format == "" {
		return
	}
	l.Append(level, Render(format, args...))
}

// Count returns the number of entries currently retained. It is zero
// for a nil, never-initialized, or freshly reset log.
func (l *Log) Count() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Entry returns the idx-th oldest retained entry, with 0 addressing the
// oldest survivor and Count()-1 the most recent. It returns nil when
// idx is out of range, however far out. The pointer aliases the backing
// storage and is valid only until the next Append or Reset.
func (l *Log) Entry(idx int) *Entry {
	if l == nil || idx < 0 || idx >= l.count {
		return nil
	}
	n := len(l.entries)
	return &l.entries[(l.head+n-l.count+idx)%n]
}

// Cursor returns the physical index of the next slot to be written.
// Together with Count it lets a caller reconstruct chronological order
// from the Raw view.
func (l *Log) Cursor() int {
	if l == nil {
		return 0
	}
	return l.head
}

// Raw returns the live backing array in physical slot order plus the
// retained entry count. Once the ring has wrapped, slot 0 is not the
// oldest entry; callers that need chronological order should use Entry
// or Snapshot, or reorder with Cursor and Count. The trade is
// deliberate: Raw is O(1) and allocation-free, for bulk transfer and
// debugger dumps. A nil log yields (nil, 0).
func (l *Log) Raw() ([]Entry, int) {
	if l == nil {
		return nil, 0
	}
	return l.entries, l.count
}

// Snapshot returns a copy of the retained entries in chronological
// order, oldest first. It allocates, so it is a host-side helper rather
// than a hot-path operation. A nil or empty log yields nil.
func (l *Log) Snapshot() []Entry {
	if l == nil || l.count == 0 {
		return nil
	}
	n := len(l.entries)
	start := (l.head + n - l.count) % n
	out := make([]Entry, l.count)
	for i := range out {
		out[i] = l.entries[(start+i)%n]
	}
	return out
}

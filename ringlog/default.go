package ringlog

// std is the process-wide default instance, nil until Init.
var std *Log

// Init constructs (or replaces) the process-wide default log and
// returns it. Call it once at startup. The package-level helpers below
// forward to this instance and follow the core's silent no-op contract
// before Init: appends do nothing, queries report empty.
func Init(capacity int, now TickFunc) *Log {
	std = New(capacity, now)
	return std
}

// Default returns the process-wide log, or nil before Init.
func Default() *Log {
	return std
}

// Append records an entry on the default log.
func Append(level Level, message string) {
	std.Append(level, message)
}

// Appendf renders and records an entry on the default log.
func Appendf(level Level, format string, args ...any) {
	std.Appendf(level, format, args...)
}

// Count returns the default log's retained entry count.
func Count() int {
	return std.Count()
}

// At returns the idx-th oldest entry of the default log, nil when out
// of range.
func At(idx int) *Entry {
	return std.Entry(idx)
}

// Snapshot returns the default log's entries in chronological order.
func Snapshot() []Entry {
	return std.Snapshot()
}

package ringlog

// Level classifies a recorded event. The log imposes no severity
// ordering or filtering; that is a caller concern.
type Level uint16

const (
	LevelInfo Level = iota
	LevelWarn
	LevelFault
)

// String returns the level name used in dumps.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelFault:
		return "FAULT"
	default:
		return "UNKNOWN"
	}
}

const (
	// DefaultCapacity is the entry count used when New is given a
	// non-positive capacity.
	DefaultCapacity = 128

	// MessageWidth is the width of the message field in bytes,
	// including the terminator byte the field reserves on-device.
	// Usable text is MessageWidth-1 bytes.
	MessageWidth = 48
)

// Entry is one recorded event. Timestamp is whatever the injected tick
// source returned at append time; the log does not interpret it.
type Entry struct {
	Timestamp uint32
	Level     Level
	Message   string
}

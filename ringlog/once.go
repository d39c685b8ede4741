package ringlog

// Once gates a call site to a single append, for suppressing repeated
// logs from frequently revisited code paths such as state machine tick
// functions. The zero value is ready to use; declare one per call site
// with a lifetime matching the suppression you want, and Reset it to
// re-arm. Like the Log it feeds, Once carries no synchronization.
type Once struct {
	logged bool
}

// Append records the message on the first call and nothing on later
// calls until Reset. The gate arms even when the log itself drops the
// append (no tick source, empty message), so the suppression state
// never depends on log readiness.
func (o *Once) Append(l *Log, level Level, message string) {
	if o == nil || o.logged {
		return
	}
	o.logged = true
	l.Append(level, message)
}

// Appendf is Append with rendering.
func (o *Once) Appendf(l *Log, level Level, format string, args ...any) {
	if o == nil || o.logged {
		return
	}
	o.logged = true
	l.Appendf(level, format, args...)
}

// Logged reports whether the gate has fired.
func (o *Once) Logged() bool {
	return o != nil && o.logged
}

// Reset re-arms the gate so the next Append records again.
func (o *Once) Reset() {
	if o == nil {
		return
	}
	o.logged = false
}

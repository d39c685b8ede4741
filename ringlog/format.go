package ringlog

import (
	"fmt"
	"unicode/utf8"
)

// maxMessage is the usable text in the message field; the last byte of
// MessageWidth is the reserved terminator.
const maxMessage = MessageWidth - 1

// Render formats like fmt.Sprintf but bounds the result to the message
// field, so the output stays fixed-cost no matter what the arguments
// expand to. Append applies the same bound itself, so pre-rendering
// with Render is never required, only available.
func Render(format string, args ...any) string {
	if len(args) == 0 {
		return clip(format)
	}
	return clip(fmt.Sprintf(format, args...))
}

// clip truncates s to the usable field width, then strips any trailing
// bytes of a rune the cut split, so the stored prefix is always valid
// UTF-8 and never overflows the field.
func clip(s string) string {
	if len(s) <= maxMessage {
		return s
	}
	s = s[:maxMessage]
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r != utf8.RuneError || size > 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}

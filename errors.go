package counties

import "fmt"

// FormatError reports an input row that could not be interpreted
type FormatError struct {
	Line   int    // 1-based line number in the source
	Text   string // the offending row, whitespace trimmed
	Reason string
	Err    error // underlying conversion error, if any
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

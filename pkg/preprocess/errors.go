package preprocess

import "fmt"

// LineError is a per-line expansion error: a malformed invocation, a failed
// argument resolution, or an unknown template placeholder. It carries the
// source location so diagnostics and embedded error blocks can point at the
// offending line. Configuration errors are not LineErrors; they abort registry
// construction outright.
type LineError struct {
	Where string // "path:line", or "line N" when no path is known
	Msg   string
}

func (e *LineError) Error() string {
	return e.Where + ": " + e.Msg
}

func lineErrorf(where, format string, args ...any) *LineError {
	return &LineError{Where: where, Msg: fmt.Sprintf(format, args...)}
}

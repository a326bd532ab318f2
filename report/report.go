package report

// Report extends the standard error interface with a backtrace captured at
// construction time and optional context metadata.
//
// Reports are immutable once created and remain compatible with standard
// library error handling (errors.Is, errors.As, errors.Unwrap).
type Report interface {
	error

	// Message returns this report's own message, without the cause text.
	Message() string

	// Context returns attached metadata as a read-only copy.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Backtrace returns the program counters captured when the report was
	// created, innermost call first. The counters resolve through
	// runtime.CallersFrames.
	Backtrace() []uintptr

	// Unwrap returns the wrapped cause for errors.Is and errors.As
	// compatibility. Returns nil for root reports.
	Unwrap() error
}

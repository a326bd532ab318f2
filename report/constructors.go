package report

import "fmt"

// New creates a new root Report with the given message, capturing the
// backtrace at the call site.
//
// Example:
//
//	err := report.New("manifest is corrupt")
func New(message string) Report {
	return &capturedReport{
		message: message,
		context: nil,
		cause:   nil,
		stack:   callers(1),
	}
}

// Newf creates a new root Report with a formatted message, capturing the
// backtrace at the call site.
//
// Example:
//
//	err := report.Newf("manifest is corrupt at offset %d", off)
func Newf(format string, args ...interface{}) Report {
	return &capturedReport{
		message: fmt.Sprintf(format, args...),
		context: nil,
		cause:   nil,
		stack:   callers(1),
	}
}

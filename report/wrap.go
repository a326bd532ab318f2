package report

import "fmt"

// Wrap wraps an error with an additional message while preserving the
// original error, capturing the backtrace at the call site. The wrapped
// error is accessible via Unwrap() and compatible with errors.Is and
// errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := load(path); err != nil {
//	    return report.Wrap(err, "failed to load manifest")
//	}
func Wrap(err error, message string) Report {
	if err == nil {
		return nil
	}

	return &capturedReport{
		message: message,
		context: nil,
		cause:   err,
		stack:   callers(1),
	}
}

// Wrapf wraps an error with a formatted message while preserving the
// original error, capturing the backtrace at the call site.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := connect(addr); err != nil {
//	    return report.Wrapf(err, "failed to connect to %s", addr)
//	}
func Wrapf(err error, format string, args ...interface{}) Report {
	if err == nil {
		return nil
	}

	return &capturedReport{
		message: fmt.Sprintf(format, args...),
		context: nil,
		cause:   err,
		stack:   callers(1),
	}
}

// Package report provides an error wrapper that captures a backtrace at
// construction time and carries optional context metadata.
//
// Plain Go errors know their message and, when wrapped, their cause — but not
// where they were created. A Report additionally records the program counters
// of the call stack at the moment it was constructed, so downstream consumers
// (such as the sentryreport translator in the parent package) can attach a
// resolved stacktrace to telemetry without any cooperation from the code that
// produced the failure.
//
// # Creating Reports
//
// Reports are created through package functions; the concrete type is
// private:
//
//	// Root report
//	err := report.New("manifest is corrupt")
//
//	// Formatted
//	err := report.Newf("manifest is corrupt at offset %d", off)
//
//	// Wrapping an existing error (nil in, nil out)
//	if err := load(path); err != nil {
//	    return report.Wrap(err, "failed to load manifest")
//	}
//
// Every constructor captures the backtrace at its call site.
//
// # Context Metadata
//
// Arbitrary key/value metadata can be attached for debugging. Reports are
// immutable; attaching context returns a new Report:
//
//	err := report.New("upload rejected")
//	err = report.WithContext(err, "bucket", bucket)
//	err = report.WithContext(err, "attempt", attempt)
//
// # Standard Library Compatibility
//
// Report implements the error interface and participates in error chains via
// Unwrap, so errors.Is, errors.As, and errors.Unwrap all work as expected:
//
//	if errors.Is(err, io.ErrUnexpectedEOF) {
//	    // the wrapped cause survived
//	}
//
//	var rep report.Report
//	if errors.As(err, &rep) {
//	    pcs := rep.Backtrace()
//	}
package report

package report

import "errors"

// WithContext adds a single context field to an error.
// Returns a new Report with the context field added.
// Existing context fields are preserved.
//
// If err is not a Report, it is converted to one that preserves err as its
// cause and captures the backtrace at the call site.
// Returns nil if err is nil.
//
// Example:
//
//	err := report.New("upload rejected")
//	err = report.WithContext(err, "bucket", bucket)
//	err = report.WithContext(err, "attempt", attempt)
func WithContext(err error, key string, value interface{}) Report {
	if err == nil {
		return nil
	}

	return withMergedContext(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Returns a new Report with the context fields merged.
// Existing context fields are preserved; new fields override existing ones
// with the same key.
//
// If err is not a Report, it is converted to one that preserves err as its
// cause and captures the backtrace at the call site.
// Returns nil if err is nil.
//
// Example:
//
//	err = report.WithContextMap(err, map[string]interface{}{
//	    "bucket":  bucket,
//	    "attempt": attempt,
//	})
func WithContextMap(err error, ctx map[string]interface{}) Report {
	if err == nil {
		return nil
	}

	return withMergedContext(err, ctx)
}

// withMergedContext rebuilds err as a Report with ctx merged into its
// existing context. New fields override existing ones with the same key.
func withMergedContext(err error, ctx map[string]interface{}) Report {
	// Convert to Report if needed
	var rep Report
	if !errors.As(err, &rep) {
		rep = &capturedReport{
			message: err.Error(),
			context: nil,
			cause:   err,
			stack:   callers(2),
		}
	}

	// Merge existing context with new context
	newContext := make(map[string]interface{})
	if existingCtx := rep.Context(); existingCtx != nil {
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}
	// New fields override existing
	for k, v := range ctx {
		newContext[k] = v
	}

	return &capturedReport{
		message: rep.Message(),
		context: newContext,
		cause:   rep.Unwrap(),
		stack:   rep.Backtrace(),
	}
}

package report

import (
	"fmt"
	"runtime"
)

// maxDepth caps how many program counters are captured per report.
const maxDepth = 64

// capturedReport is the concrete implementation of Report.
// It is private to enforce construction through package functions.
type capturedReport struct {
	message string
	context map[string]interface{}
	cause   error
	stack   []uintptr
}

// Error returns the string representation of the report.
// Format: "message" or "message: cause" if a cause is present.
func (r *capturedReport) Error() string {
	if r.cause != nil {
		return fmt.Sprintf("%s: %v", r.message, r.cause)
	}
	return r.message
}

// Message returns the report's own message.
func (r *capturedReport) Message() string {
	return r.message
}

// Context returns a defensive copy of the context map.
// Returns nil if no context has been attached (maintains immutability).
func (r *capturedReport) Context() map[string]interface{} {
	if r.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(r.context))
	for k, v := range r.context {
		ctx[k] = v
	}
	return ctx
}

// Backtrace returns a copy of the captured program counters, innermost call
// first.
func (r *capturedReport) Backtrace() []uintptr {
	stack := make([]uintptr, len(r.stack))
	copy(stack, r.stack)
	return stack
}

// Unwrap returns the wrapped cause for standard library compatibility.
func (r *capturedReport) Unwrap() error {
	return r.cause
}

// callers captures the current call stack. skip is the number of frames to
// drop beyond runtime.Callers and callers itself, so a constructor passing
// skip=1 starts recording at its own caller.
func callers(skip int) []uintptr {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

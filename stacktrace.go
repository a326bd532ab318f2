package sentryreport

import (
	"errors"
	"runtime"
	"strings"

	sentry "github.com/getsentry/sentry-go"
	pkgerrors "github.com/pkg/errors"
)

// Backtracer is implemented by errors that carry program counters captured at
// construction time, such as the Report type from the companion report
// package. The counters must be in raw runtime.Callers order, innermost call
// first.
type Backtracer interface {
	Backtrace() []uintptr
}

// StackExtractor is a single strategy for obtaining a stacktrace from an
// error chain. A nil result means the strategy yields no frames for this
// chain; extraction is best-effort and never an error. Strategies compose as
// an ordered fallback list on a Reporter.
type StackExtractor func(err error) *sentry.Stacktrace

// ExtractBacktrace is the native extraction strategy. It walks the chain
// outermost first and returns the resolved stacktrace of the first error
// implementing Backtracer whose counters resolve to at least one frame.
func ExtractBacktrace(err error) *sentry.Stacktrace {
	for ; err != nil; err = errors.Unwrap(err) {
		bt, ok := err.(Backtracer)
		if !ok {
			continue
		}
		if st := stacktraceFromPCs(bt.Backtrace()); st != nil {
			return st
		}
	}
	return nil
}

// ExtractPkgErrors is the pkg/errors extraction strategy. It walks the chain
// outermost first and returns the resolved stacktrace of the first error
// exposing pkg/errors' StackTrace method. Errors of any other type fall
// through silently.
func ExtractPkgErrors(err error) *sentry.Stacktrace {
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}

	for ; err != nil; err = errors.Unwrap(err) {
		tracer, ok := err.(stackTracer)
		if !ok {
			continue
		}
		trace := tracer.StackTrace()
		pcs := make([]uintptr, 0, len(trace))
		for _, frame := range trace {
			pcs = append(pcs, uintptr(frame))
		}
		if st := stacktraceFromPCs(pcs); st != nil {
			return st
		}
	}
	return nil
}

// stacktraceFromPCs resolves program counters into Sentry frames. Counters
// arrive innermost call first; Sentry wants the outermost call first, so the
// resolved frames are reversed. Unresolvable and runtime-internal frames are
// dropped. Returns nil when nothing resolves.
func stacktraceFromPCs(pcs []uintptr) *sentry.Stacktrace {
	if len(pcs) == 0 {
		return nil
	}

	var frames []sentry.Frame
	callersFrames := runtime.CallersFrames(pcs)
	for {
		frame, more := callersFrames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			frames = append(frames, sentry.NewFrame(frame))
		}
		if !more {
			break
		}
	}
	if len(frames) == 0 {
		return nil
	}

	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}

	return &sentry.Stacktrace{Frames: frames}
}

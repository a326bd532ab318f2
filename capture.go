package sentryreport

import (
	"errors"

	sentry "github.com/getsentry/sentry-go"

	"github.com/auguwu/sentry-report/report"
)

// exceptionType is the uniform type label used for every exception entry.
// The concrete types of arbitrary wrapped causes are not reliably
// recoverable from an error chain, so no type reflection is attempted.
const exceptionType = "Error"

// Reporter translates error chains into Sentry events and submits them to a
// Sink. The zero-option Reporter submits to sentry.CurrentHub() and uses the
// native backtrace strategy only.
type Reporter struct {
	cfg *config
}

// New creates a Reporter with the given options.
func New(opts ...Option) *Reporter {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Reporter{cfg: cfg}
}

// EventFromReport builds the Sentry event for an error chain without
// submitting it. One exception entry is emitted per error in the chain,
// outermost error first, each carrying that error's Error() string. If a
// stacktrace strategy yields frames, the stacktrace is attached to the first
// (outermost) entry; otherwise no entry carries one. Context metadata from
// report.Report errors in the chain is merged into the event's extra data,
// with the outermost occurrence of a key winning.
//
// Returns nil if err is nil. Never fails: an unresolvable stacktrace is
// absence of data, not an error.
func (r *Reporter) EventFromReport(err error) *sentry.Event {
	if err == nil {
		return nil
	}

	event := sentry.NewEvent()
	event.Level = r.cfg.level

	for e := err; e != nil; e = errors.Unwrap(e) {
		event.Exception = append(event.Exception, sentry.Exception{
			Type:  exceptionType,
			Value: e.Error(),
		})

		if rep, ok := e.(report.Report); ok {
			for k, v := range rep.Context() {
				if _, exists := event.Extra[k]; !exists {
					event.Extra[k] = v
				}
			}
		}
	}

	for _, extract := range r.cfg.extractors {
		if st := extract(err); st != nil {
			event.Exception[0].Stacktrace = st
			break
		}
	}

	return event
}

// CaptureReport translates an error chain and submits the event to the
// Reporter's sink, discarding the returned identifier. Exactly one sink call
// is made per invocation; a nil error is a no-op.
func (r *Reporter) CaptureReport(err error) {
	if err == nil {
		return
	}
	_ = r.cfg.sink.CaptureEvent(r.EventFromReport(err))
}

// defaultReporter backs the package-level functions.
var defaultReporter = New()

// CaptureReport translates an error chain and submits the event to the
// current Sentry hub. See Reporter.CaptureReport.
func CaptureReport(err error) {
	defaultReporter.CaptureReport(err)
}

// EventFromReport builds the Sentry event for an error chain without
// submitting it, using the default Reporter. See Reporter.EventFromReport.
func EventFromReport(err error) *sentry.Event {
	return defaultReporter.EventFromReport(err)
}

// Package sentryreport translates chained Go errors into Sentry events.
//
// The package walks an error chain (anything connected through Unwrap), emits
// one exception entry per error in the chain, attaches a resolved stacktrace
// when one can be extracted from the chain, and hands the finished event to a
// Sentry hub. Transport, batching, retry, and delivery all belong to the
// Sentry SDK; this package is a pure translation layer in front of it.
//
// # Basic Usage
//
// Initialize the Sentry SDK as usual, then capture errors as they surface:
//
//	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
//	    log.Fatal(err)
//	}
//	defer sentry.Flush(2 * time.Second)
//
//	if err := run(); err != nil {
//	    sentryreport.CaptureReport(err)
//	}
//
// CaptureReport never fails and never panics: if no stacktrace can be
// extracted, the event is submitted without one.
//
// # Exception Entries
//
// Each error in the chain becomes one exception entry, outermost error first,
// with the entry's message taken from that error's Error() string. Every
// entry carries the uniform type label "Error": the concrete types of
// arbitrary wrapped causes are not reliably recoverable, so no type
// reflection is attempted.
//
// # Stacktraces
//
// Stacktrace acquisition is an ordered list of strategies, tried until one
// yields frames:
//
//   - The native strategy looks for an error in the chain implementing
//     Backtracer, such as the Report type from the companion report package.
//   - The pkg/errors strategy, enabled with WithPkgErrorsBacktrace, looks for
//     an error exposing pkg/errors' StackTrace method.
//
// A chain that satisfies neither strategy produces an event with no
// stacktrace at all — absence, not an empty frame list:
//
//	r := sentryreport.New(sentryreport.WithPkgErrorsBacktrace())
//	r.CaptureReport(errors.Wrap(cause, "processing failed")) // pkg/errors
//
// # Configuration
//
// Reporters are configured with functional options at creation time:
//
//	r := sentryreport.New(
//	    sentryreport.WithSink(hub),
//	    sentryreport.WithLevel(sentry.LevelFatal),
//	)
//
// The package-level CaptureReport and EventFromReport use a default Reporter
// bound to sentry.CurrentHub().
//
// # Testing
//
// The destination is the single-method Sink interface, satisfied by
// *sentry.Hub. Tests can substitute a capturing stub:
//
//	type captureSink struct{ events []*sentry.Event }
//
//	func (s *captureSink) CaptureEvent(event *sentry.Event) *sentry.EventID {
//	    s.events = append(s.events, event)
//	    return nil
//	}
//
//	sink := &captureSink{}
//	r := sentryreport.New(sentryreport.WithSink(sink))
//	r.CaptureReport(err)
//	// assert on sink.events
package sentryreport

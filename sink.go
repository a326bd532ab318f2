package sentryreport

import (
	sentry "github.com/getsentry/sentry-go"
)

// Sink is the destination for translated events. It is satisfied by
// *sentry.Hub, and test code can substitute a capturing stub.
//
// The returned identifier may be nil when the sink dropped the event.
type Sink interface {
	// CaptureEvent submits a single event for delivery and returns its
	// identifier, or nil if the event was not accepted.
	CaptureEvent(event *sentry.Event) *sentry.EventID
}

// currentHubSink resolves the hub at capture time rather than at Reporter
// construction, so a Reporter created before sentry.Init still submits to
// the initialized hub.
type currentHubSink struct{}

func (currentHubSink) CaptureEvent(event *sentry.Event) *sentry.EventID {
	return sentry.CurrentHub().CaptureEvent(event)
}

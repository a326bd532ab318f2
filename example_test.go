package sentryreport_test

import (
	"fmt"
	"io"

	sentry "github.com/getsentry/sentry-go"

	sentryreport "github.com/auguwu/sentry-report"
	"github.com/auguwu/sentry-report/report"
)

// countingSink discards events and counts submissions.
type countingSink struct {
	captured int
}

func (s *countingSink) CaptureEvent(event *sentry.Event) *sentry.EventID {
	s.captured++
	return nil
}

func ExampleEventFromReport() {
	err := report.Wrap(io.ErrUnexpectedEOF, "failed to read manifest")

	event := sentryreport.EventFromReport(err)
	for _, exc := range event.Exception {
		fmt.Printf("%s: %s\n", exc.Type, exc.Value)
	}
	// Output:
	// Error: failed to read manifest: unexpected EOF
	// Error: unexpected EOF
}

func ExampleReporter_CaptureReport() {
	sink := &countingSink{}
	r := sentryreport.New(sentryreport.WithSink(sink))

	r.CaptureReport(report.New("upload rejected"))
	r.CaptureReport(nil)

	fmt.Println(sink.captured)
	// Output: 1
}

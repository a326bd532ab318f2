package sentryreport

import (
	sentry "github.com/getsentry/sentry-go"
)

// config holds the configuration for a Reporter. Settings are applied at
// creation time and are immutable afterwards.
type config struct {
	sink       Sink
	level      sentry.Level
	extractors []StackExtractor
}

// newConfig creates a new configuration with default values: the current
// Sentry hub as the sink, error-level events, and the native backtrace
// strategy only.
func newConfig() *config {
	return &config{
		sink:       currentHubSink{},
		level:      sentry.LevelError,
		extractors: []StackExtractor{ExtractBacktrace},
	}
}

// Option is a function that configures a Reporter at creation time.
type Option func(*config)

// WithSink returns an Option that sets the destination for translated
// events. The default is the current Sentry hub.
func WithSink(sink Sink) Option {
	return func(c *config) {
		c.sink = sink
	}
}

// WithLevel returns an Option that sets the severity level of translated
// events. The default is sentry.LevelError.
func WithLevel(level sentry.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithStackExtractors returns an Option that replaces the stacktrace
// strategy list outright. Strategies are tried in order; the first non-nil
// result wins.
func WithStackExtractors(extractors ...StackExtractor) Option {
	return func(c *config) {
		c.extractors = extractors
	}
}

// WithPkgErrorsBacktrace returns an Option that appends the pkg/errors
// extraction strategy after the strategies already configured.
func WithPkgErrorsBacktrace() Option {
	return func(c *config) {
		c.extractors = append(c.extractors, ExtractPkgErrors)
	}
}

package logging

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RunLogger collects the command identity, configuration, and feature flags
// for one tourkit invocation, then emits a single structured zerolog event
// summarising how the run was configured. One consolidated event is easier
// to grep out of a long generation log than a dozen scattered ones.
type RunLogger struct {
	command string

	s3Buckets map[string]string
	features  map[string]bool
	config    map[string]string
}

// NewRunLogger creates a RunLogger for the given command path
// (e.g. "images fetch", "verify").
func NewRunLogger(command string) *RunLogger {
	return &RunLogger{
		command:   command,
		s3Buckets: make(map[string]string),
		features:  make(map[string]bool),
		config:    make(map[string]string),
	}
}

// S3Bucket registers an S3 bucket used by this run.
func (r *RunLogger) S3Bucket(label, name string) *RunLogger {
	r.s3Buckets[label] = name
	return r
}

// Feature registers a boolean feature flag (e.g. "markers", "strict").
func (r *RunLogger) Feature(name string, enabled bool) *RunLogger {
	r.features[name] = enabled
	return r
}

// Config registers a non-sensitive configuration key-value pair.
// API keys and credentials must never be passed here.
func (r *RunLogger) Config(key, value string) *RunLogger {
	r.config[key] = value
	return r
}

// Log emits a single structured INFO log event with all collected information.
func (r *RunLogger) Log() {
	evt := log.Info()

	runDict := zerolog.Dict().
		Str("command", r.command).
		Str("goVersion", runtime.Version()).
		Str("arch", runtime.GOARCH).
		Str("logLevel", os.Getenv("TOURKIT_LOG_LEVEL"))

	evt = evt.Dict("run", runDict)

	if len(r.s3Buckets) > 0 {
		evt = evt.Dict("s3Buckets", dictFromMap(r.s3Buckets))
	}
	if len(r.features) > 0 {
		d := zerolog.Dict()
		for k, v := range r.features {
			d = d.Bool(k, v)
		}
		evt = evt.Dict("features", d)
	}
	if len(r.config) > 0 {
		evt = evt.Dict("config", dictFromMap(r.config))
	}

	evt.Msg("Run configured")
}

// dictFromMap converts a map[string]string into a zerolog.Event (Dict).
func dictFromMap(m map[string]string) *zerolog.Event {
	d := zerolog.Dict()
	for k, v := range m {
		d = d.Str(k, v)
	}
	return d
}

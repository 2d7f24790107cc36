package engine

import (
	"errors"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Sink transmits a complete frame in wiring order (index 0..N-1).
// Flush blocks until the frame is out. The slice is only valid for the
// duration of the call. A returned error ends the session.
type Sink interface {
	Flush(frame []core.Color) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(frame []core.Color) error

// Flush calls f(frame).
func (f SinkFunc) Flush(frame []core.Color) error {
	return f(frame)
}

// MultiSink flushes every frame to each sink in order.
// All sinks see the frame even if an earlier one fails; the failures are joined.
type MultiSink []Sink

// Flush implements Sink.
func (m MultiSink) Flush(frame []core.Color) error {
	var errs []error
	for _, s := range m {
		if err := s.Flush(frame); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package stopwatch

import "time"

// Sample is one measured section: its name, how long it ran, and the
// error it finished with, if any.
type Sample struct {
	// Name identifies the section, e.g. "reverse" or "load".
	Name string
	// Elapsed is the wall-clock duration of the section.
	Elapsed time.Duration
	// Err is the error the section returned; nil for Start/stop pairs.
	Err error
}

// Sink consumes samples. Implementations must be safe for concurrent
// Observe calls if the Stopwatch is shared between goroutines.
type Sink interface {
	Observe(Sample)
}

// multiSink fans one sample out to several sinks in order.
type multiSink []Sink

// Observe forwards the sample to every wrapped sink.
func (m multiSink) Observe(s Sample) {
	for _, sink := range m {
		sink.Observe(s)
	}
}

// MultiSink combines sinks into one that forwards each sample to all of
// them, in the given order. Nil entries are skipped.
func MultiSink(sinks ...Sink) Sink {
	combined := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			combined = append(combined, s)
		}
	}

	return combined
}

// Option configures a Stopwatch at construction time.
type Option func(*Stopwatch)

// WithClock replaces the wall clock, letting tests supply deterministic
// time. now must never return the zero time.
func WithClock(now func() time.Time) Option {
	return func(sw *Stopwatch) {
		sw.now = now
	}
}

// Stopwatch times named sections and reports each as one Sample to its
// sink. The zero overhead path is two clock reads per section.
type Stopwatch struct {
	sink Sink
	now  func() time.Time
}

// New returns a Stopwatch reporting to sink. A nil sink is allowed: the
// Stopwatch still measures, and drops the samples.
func New(sink Sink, opts ...Option) *Stopwatch {
	sw := &Stopwatch{
		sink: sink,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(sw)
	}

	return sw
}

// Start begins timing a section and returns the matching stop func.
// Calling stop records one Sample; the natural form is
//
//	defer sw.Start("rebuild")()
//
// Each stop func is single-use: call it exactly once.
func (sw *Stopwatch) Start(name string) func() {
	start := sw.now()

	return func() {
		sw.observe(Sample{Name: name, Elapsed: sw.now().Sub(start)})
	}
}

// Time runs fn as a named section, records its duration and error, and
// returns the error unchanged.
func Time(sw *Stopwatch, name string, fn func() error) error {
	start := sw.now()
	err := fn()
	sw.observe(Sample{Name: name, Elapsed: sw.now().Sub(start), Err: err})

	return err
}

// Timed runs fn as a named section and passes its result through, so any
// value-returning call can be wrapped without ceremony:
//
//	pair, err := stopwatch.Timed(sw, "search", func() ([]int, error) { ... })
func Timed[T any](sw *Stopwatch, name string, fn func() (T, error)) (T, error) {
	start := sw.now()
	res, err := fn()
	sw.observe(Sample{Name: name, Elapsed: sw.now().Sub(start), Err: err})

	return res, err
}

// observe hands the sample to the sink, if one is attached.
func (sw *Stopwatch) observe(s Sample) {
	if sw.sink != nil {
		sw.sink.Observe(s)
	}
}

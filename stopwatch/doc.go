// Package stopwatch measures wall-clock durations of named code sections
// and fans the samples out to pluggable sinks.
//
// 🚀 What is stopwatch?
//
//	A Stopwatch wraps a monotonic clock and a Sink.  Each timed section
//	produces one Sample{Name, Elapsed, Err} and hands it to the sink.
//	Sinks decide what a sample means:
//	  • Collector gathers samples in memory (tests, ad-hoc profiling)
//	  • NewWriterSink prints human-readable lines to any io.Writer
//	  • NewZapSink logs structured entries through zap
//	  • NewPromSink feeds Prometheus histograms, labeled by section
//
// ✨ Key features:
//   - Start returns a stop func, natural with defer
//   - Time / Timed wrap error-returning work and record its outcome
//   - MultiSink fans one sample out to several sinks in order
//   - WithClock injects a fake clock for deterministic tests
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/stopwatch"
//
//	sw := stopwatch.New(stopwatch.NewWriterSink(os.Stdout))
//
//	stop := sw.Start("load")
//	load()
//	stop() // → "load took 0.001234 seconds to finish"
//
//	// or, with the outcome captured:
//	err := stopwatch.Time(sw, "flush", flush)
//
// Performance:
//
//   - Overhead per section: one clock pair plus one Observe call
//   - Memory: O(1) per Stopwatch; Collector grows with sample count
//
// The Stopwatch itself is stateless between sections and safe for
// concurrent use whenever its sink is; all bundled sinks are.
package stopwatch

package stopwatch

import (
	"fmt"
	"io"
	"sync"
)

// Collector is an in-memory Sink that keeps every sample it sees, in
// arrival order. The zero value is ready to use and safe for concurrent
// observers.
type Collector struct {
	mu      sync.Mutex
	samples []Sample
}

// Observe appends the sample.
func (c *Collector) Observe(s Sample) {
	c.mu.Lock()
	c.samples = append(c.samples, s)
	c.mu.Unlock()
}

// Samples returns a copy of everything collected so far.
func (c *Collector) Samples() []Sample {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Sample, len(c.samples))
	copy(out, c.samples)

	return out
}

// Len reports how many samples have been collected.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.samples)
}

// Reset discards all collected samples.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.samples = nil
	c.mu.Unlock()
}

// writerSink prints one human-readable line per sample.
type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a Sink that writes lines like
//
//	reverse took 0.000012 seconds to finish
//
// to w, serializing concurrent writes.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

// Observe formats and writes the sample. Write errors are dropped: timing
// output must never fail the timed code.
func (ws *writerSink) Observe(s Sample) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if s.Err != nil {
		fmt.Fprintf(ws.w, "%s took %.6f seconds to finish (error: %v)\n",
			s.Name, s.Elapsed.Seconds(), s.Err)
		return
	}
	fmt.Fprintf(ws.w, "%s took %.6f seconds to finish\n", s.Name, s.Elapsed.Seconds())
}

package stopwatch_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/lvlseq/stopwatch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestCollector verifies copy-on-read, Len and Reset semantics.
func TestCollector(t *testing.T) {
	var c stopwatch.Collector
	c.Observe(stopwatch.Sample{Name: "a"})
	c.Observe(stopwatch.Sample{Name: "b"})

	snap := c.Samples()
	require.Len(t, snap, 2)

	// Mutating the snapshot must not leak back into the collector.
	snap[0].Name = "mutated"
	assert.Equal(t, "a", c.Samples()[0].Name)

	c.Reset()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Samples())
}

// TestCollector_Concurrent verifies the collector tolerates parallel
// observers.
func TestCollector_Concurrent(t *testing.T) {
	var c stopwatch.Collector

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Observe(stopwatch.Sample{Name: "p"})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, c.Len())
}

// TestWriterSink verifies the human-readable line format, with and
// without an error.
func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := stopwatch.NewWriterSink(&buf)

	sink.Observe(stopwatch.Sample{Name: "load", Elapsed: 1234 * time.Microsecond})
	assert.Equal(t, "load took 0.001234 seconds to finish\n", buf.String())

	buf.Reset()
	sink.Observe(stopwatch.Sample{
		Name:    "flush",
		Elapsed: 2 * time.Second,
		Err:     errors.New("disk full"),
	})
	assert.Equal(t, "flush took 2.000000 seconds to finish (error: disk full)\n", buf.String())
}

// TestZapSink verifies log level and fields per sample outcome.
func TestZapSink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := stopwatch.NewZapSink(zap.New(core))

	sink.Observe(stopwatch.Sample{Name: "ok", Elapsed: time.Millisecond})
	sink.Observe(stopwatch.Sample{
		Name:    "bad",
		Elapsed: time.Millisecond,
		Err:     errors.New("boom"),
	})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "timed section", entries[0].Message)
	assert.Equal(t, "ok", entries[0].ContextMap()["section"])

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "timed section failed", entries[1].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

// TestZapSink_NilLogger verifies the nil logger degrades to a no-op.
func TestZapSink_NilLogger(t *testing.T) {
	sink := stopwatch.NewZapSink(nil)
	assert.NotPanics(t, func() {
		sink.Observe(stopwatch.Sample{Name: "quiet"})
	})
}

// TestPromSink verifies histogram counts and the error counter through a
// dedicated registry.
func TestPromSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := stopwatch.NewPromSink(reg)

	sink.Observe(stopwatch.Sample{Name: "reverse", Elapsed: time.Millisecond})
	sink.Observe(stopwatch.Sample{Name: "reverse", Elapsed: 2 * time.Millisecond})
	sink.Observe(stopwatch.Sample{
		Name:    "reverse",
		Elapsed: time.Millisecond,
		Err:     errors.New("boom"),
	})

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawDurations, sawErrors bool
	for _, mf := range families {
		switch mf.GetName() {
		case "lvlseq_section_duration_seconds":
			sawDurations = true
			require.Len(t, mf.GetMetric(), 1, "one series per section label")
			assert.Equal(t, uint64(3), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		case "lvlseq_section_errors_total":
			sawErrors = true
			require.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, float64(1), mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, sawDurations, "duration histogram must be registered")
	assert.True(t, sawErrors, "error counter must be registered")
}

// TestPromSink_RegistersOnce verifies a second sink on the same registry
// panics via promauto, guarding against accidental double registration.
func TestPromSink_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = stopwatch.NewPromSink(reg)

	assert.Panics(t, func() { stopwatch.NewPromSink(reg) })
}

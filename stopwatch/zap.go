package stopwatch

import "go.uber.org/zap"

// zapSink logs each sample as one structured entry.
type zapSink struct {
	log *zap.Logger
}

// NewZapSink returns a Sink that logs samples through log: Info for clean
// sections, Warn when the section returned an error. A nil logger yields
// a no-op sink.
func NewZapSink(log *zap.Logger) Sink {
	if log == nil {
		log = zap.NewNop()
	}

	return zapSink{log: log}
}

// Observe writes the sample as a structured log entry.
func (zs zapSink) Observe(s Sample) {
	fields := []zap.Field{
		zap.String("section", s.Name),
		zap.Duration("elapsed", s.Elapsed),
	}
	if s.Err != nil {
		zs.log.Warn("timed section failed", append(fields, zap.Error(s.Err))...)
		return
	}
	zs.log.Info("timed section", fields...)
}

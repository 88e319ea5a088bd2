package cpu

import "github.com/thelolagemann/gbcore/pkg/log"

// Opt configures a CPU created with NewCPU.
type Opt func(c *CPU)

// Debug logs every executed instruction at debug level.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(c *CPU) {
		c.log = log
	}
}

// WithTracer calls fn with a Snapshot of the CPU after every step.
func WithTracer(fn func(Snapshot)) Opt {
	return func(c *CPU) {
		c.tracers = append(c.tracers, fn)
	}
}

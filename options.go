package spawnpool

import "go.uber.org/zap"

// Resetter interface.
type Resetter interface {
	// Reset may return the object to his initial state.
	Reset()
}

// OnResetCallback type.
// Will be called with a true value if the despawned object is a Resetter and Reset was called.
type OnResetCallback func(called bool)

type poolConfig struct {
	name        string
	logger      *zap.Logger
	metrics     *Metrics
	resetOnPut  bool
	onPutResets []OnResetCallback
}

// Option type.
type Option func(*poolConfig)

// WithLogger is a functional option.
// Sets the logger used to report spawn misses, ignored nil despawns and clears.
// By default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *poolConfig) {
		c.logger = logger
	}
}

// WithMetrics is a functional option.
// Counts spawns, despawns and clears on the given metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(c *poolConfig) {
		c.metrics = metrics
	}
}

// WithName is a functional option.
// Overrides the pool label used in logs and metrics.
func WithName(name string) Option {
	return func(c *poolConfig) {
		c.name = name
	}
}

// WithDefaultResetter is a functional option.
// If the despawned object is a Resetter, Reset() is called before it is cached.
func WithDefaultResetter() Option {
	return func(c *poolConfig) {
		c.resetOnPut = true
	}
}

// WithOnResetCallback is a functional option.
// Includes one or more callbacks to be executed after the default resetter on Despawn.
// Only meaningful together with WithDefaultResetter.
func WithOnResetCallback(onPutResets ...OnResetCallback) Option {
	return func(c *poolConfig) {
		c.onPutResets = append(c.onPutResets, onPutResets...)
	}
}

func newPoolConfig(defaultName string, opts []Option) poolConfig {
	c := poolConfig{name: defaultName}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c *poolConfig) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}

	return c.logger
}

// reset runs the default resetter on a despawned object, if enabled.
func (c *poolConfig) reset(object any) {
	if !c.resetOnPut {
		return
	}

	defaultResetter, ok := object.(Resetter)
	if ok {
		defaultResetter.Reset()
	}

	for _, onReset := range c.onPutResets {
		onReset(ok)
	}
}

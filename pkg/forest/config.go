package forest

import "go.uber.org/zap"

// Config bundles Forest construction options, built up with functional
// options the way the teacher's SLGConfig/DefaultSLGConfig pair does.
type Config struct {
	// MaxSize bounds the term size truncation will tolerate before
	// generalizing a subgoal with fresh existentials.
	MaxSize int
	Logger  *zap.Logger
	Metrics Metrics
}

// Option configures a Config.
type Option func(*Config)

// WithMaxSize sets the truncation bound. The zero value leaves the
// default (3, chalk's own default) in place.
func WithMaxSize(n int) Option {
	return func(c *Config) { c.MaxSize = n }
}

// WithLogger installs a structured logger. A nil logger is replaced with
// zap.NewNop() so Forest never has to nil-check it.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithMetrics installs a Metrics sink. A nil Metrics is replaced with a
// no-op implementation so Forest never has to nil-check it.
func WithMetrics(m Metrics) Option {
	return func(c *Config) { c.Metrics = m }
}

// defaultConfig mirrors DefaultSLGConfig: a usable Config with no
// options applied.
func defaultConfig() Config {
	return Config{MaxSize: 3, Logger: zap.NewNop(), Metrics: noopMetrics{}}
}

func newConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = noopMetrics{}
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 3
	}
	return cfg
}

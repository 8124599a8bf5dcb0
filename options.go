package photonkd

import (
	"log/slog"

	"github.com/hupe1980/photonkd/codec"
	"github.com/hupe1980/photonkd/internal/kdtree"
	"github.com/hupe1980/photonkd/internal/snapshot"
	"github.com/hupe1980/photonkd/resource"
)

type options struct {
	alpha              float64
	split              SplitPolicy
	accounting         Accounting
	parallelThreshold  int
	resourceController *resource.Controller
	codec              codec.Codec
	compression        Compression
	metricsCollector   MetricsCollector
	logger             *Logger
}

// Option configures New, Build and Load.
type Option func(*options)

// WithAlpha sets the imbalance factor. A subtree is rebuilt when one child
// holds more than alpha of its nodes, or when more than alpha of its nodes
// are tombstones. Must be in (0, 1); the default is 0.6.
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// WithSplitPolicy selects the median index used by builds.
func WithSplitPolicy(s SplitPolicy) Option {
	return func(o *options) {
		o.split = s
	}
}

// WithAccounting selects how subtree sizes and tombstone counts are kept.
func WithAccounting(a Accounting) Option {
	return func(o *options) {
		o.accounting = a
	}
}

// WithParallelBuild builds partitions of at least threshold points on
// separate goroutines. Zero disables parallel builds.
//
// Combine with WithResourceController to bound the number of goroutines:
//
//	rc := resource.NewController(resource.Config{MaxBackgroundWorkers: 4})
//	tree, _ := photonkd.Build(ctx, photons,
//	    photonkd.WithParallelBuild(50_000),
//	    photonkd.WithResourceController(rc),
//	)
func WithParallelBuild(threshold int) Option {
	return func(o *options) {
		o.parallelThreshold = threshold
	}
}

// WithResourceController bounds build workers, snapshot memory and snapshot
// I/O bandwidth.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resourceController = rc
	}
}

// WithCodec configures the codec used for snapshot metadata.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression selects snapshot payload compression.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &photonkd.BasicMetricsCollector{}
//	tree, _ := photonkd.New(photonkd.WithMetricsCollector(metrics))
//	// ... use tree ...
//	stats := metrics.GetStats()
//	fmt.Printf("Rebuilds: %d\n", stats.RebuildCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := photonkd.NewJSONLogger(slog.LevelDebug)
//	tree, _ := photonkd.New(photonkd.WithLogger(logger.WithTree("caustics")))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func defaultOptions() options {
	return options{
		alpha:            kdtree.DefaultAlpha,
		split:            kdtree.SplitLegacy,
		accounting:       kdtree.AccountingExact,
		codec:            codec.Default,
		compression:      snapshot.CompressionNone,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

func applyOptions(base options, optFns []Option) options {
	o := base
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o options) config() kdtree.Config {
	cfg := kdtree.Config{
		Alpha:             o.alpha,
		Split:             o.split,
		Accounting:        o.accounting,
		ParallelThreshold: o.parallelThreshold,
	}
	if o.resourceController != nil {
		cfg.Workers = o.resourceController
	}
	return cfg
}

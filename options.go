package vecdist

import (
	"strings"

	"github.com/hupe1980/vecdist/blobstore"
	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/numeric"
	"github.com/hupe1980/vecdist/resource"
)

type options struct {
	axis             numeric.Axis
	metric           distance.Metric
	strategy         distance.Strategy
	parallelism      int
	logger           *Logger
	metricsCollector MetricsCollector
	stores           map[string]blobstore.BlobStore
	resources        *resource.Controller
	memoryLimit      int64
	ioLimit          int64
}

func defaultOptions() options {
	return options{
		axis:             numeric.AxisRows,
		metric:           distance.MetricEuclidean,
		parallelism:      1,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		stores:           make(map[string]blobstore.BlobStore),
	}
}

// Option configures a Calculator.
type Option func(*options)

// WithAxis selects whether rows (default) or columns of an array are the
// points being compared.
func WithAxis(axis numeric.Axis) Option {
	return func(o *options) {
		o.axis = axis
	}
}

// WithMetric selects a built-in distance metric. Euclidean is the default.
// WithStrategy takes precedence when both are given.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithStrategy sets a custom distance strategy.
func WithStrategy(s distance.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithParallelism bounds the goroutines used to fill pairwise matrices.
// Values below 1 are treated as 1.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithLogger sets the logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithBlobStore routes paths below prefix (for example "s3://bucket") to
// store. The rest of the path is the object name.
func WithBlobStore(prefix string, store blobstore.BlobStore) Option {
	return func(o *options) {
		o.stores[strings.TrimSuffix(prefix, "/")] = store
	}
}

// WithResourceController shares a resource controller across calculators.
// It takes precedence over WithMemoryLimit and WithIOLimit.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithMemoryLimit bounds the source bytes held by concurrent file loads.
// Loads that would exceed it fail with ErrMemoryLimitExceeded.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithIOLimit throttles reads from blob stores to bytesPerSec.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}

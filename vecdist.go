package vecdist

import (
	"context"
	"time"

	"github.com/hupe1980/vecdist/classify"
	"github.com/hupe1980/vecdist/dispatch"
	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/loader"
	"github.com/hupe1980/vecdist/normalize"
	"github.com/hupe1980/vecdist/numeric"
	"github.com/hupe1980/vecdist/resource"
	"github.com/hupe1980/vecdist/source"
)

// Result is the outcome of a distance call. Kind tells whether Scalar,
// Vector or Matrix holds the value.
type Result = dispatch.Result

// CalcType is the kind of computation the input shapes selected.
type CalcType = classify.CalcType

// Calculation types.
const (
	Pairwise     = classify.Pairwise
	PointToPoint = classify.PointToPoint
	PointToArray = classify.PointToArray
	ArrayToArray = classify.ArrayToArray
	Mixed        = classify.Mixed
)

// Result kinds.
const (
	ResultScalar = dispatch.ResultScalar
	ResultVector = dispatch.ResultVector
	ResultMatrix = dispatch.ResultMatrix
)

// Axis selects rows or columns as the points of an array.
type Axis = numeric.Axis

// Axes.
const (
	AxisRows    = numeric.AxisRows
	AxisColumns = numeric.AxisColumns
)

// Calculator computes distances with a fixed configuration.
// A Calculator is safe for concurrent use.
type Calculator struct {
	opts       options
	strategy   distance.Strategy
	normalizer *normalize.Normalizer
}

// New creates a Calculator.
func New(optFns ...Option) (*Calculator, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	strategy := opts.strategy
	metricName := "custom"
	if strategy == nil {
		s, err := distance.Provider(opts.metric)
		if err != nil {
			return nil, translateError(err)
		}
		strategy = s
		metricName = opts.metric.String()
	}

	opts.logger = opts.logger.WithMetric(metricName).WithAxis(opts.axis.String())

	rc := opts.resources
	if rc == nil && (opts.memoryLimit > 0 || opts.ioLimit > 0) {
		rc = resource.NewController(resource.Config{
			MemoryLimitBytes:   opts.memoryLimit,
			IOLimitBytesPerSec: opts.ioLimit,
		})
	}

	loaderOpts := []loader.Option{
		loader.WithLogger(opts.logger.Logger),
		loader.WithResourceController(rc),
	}
	for prefix, store := range opts.stores {
		loaderOpts = append(loaderOpts, loader.WithBlobStore(prefix, store))
	}

	return &Calculator{
		opts:       opts,
		strategy:   strategy,
		normalizer: normalize.New(loader.New(loaderOpts...)),
	}, nil
}

// Distance computes distances for x and, if y is not nil, y.
//
// x and y may be numbers, slices, nested slices, *numeric.Array values,
// source.Source values or file paths. A nil y requests pairwise distances
// between the points of x.
func Distance(ctx context.Context, x, y any, optFns ...Option) (*Result, error) {
	c, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	return c.Distance(ctx, x, y)
}

// Euclidean is Distance with the Euclidean metric and default options.
func Euclidean(ctx context.Context, x, y any) (*Result, error) {
	return Distance(ctx, x, y, WithMetric(distance.MetricEuclidean))
}

// Distance computes distances for x and, if y is not nil, y.
func (c *Calculator) Distance(ctx context.Context, x, y any) (*Result, error) {
	start := time.Now()

	res, calcType, err := c.distance(ctx, x, y)
	err = translateError(err)

	invocations := 0
	if res != nil {
		invocations = res.Invocations
	}
	c.opts.metricsCollector.RecordDistance(calcType, invocations, time.Since(start), err)
	c.opts.logger.LogDistance(ctx, calcType, invocations, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Calculator) distance(ctx context.Context, x, y any) (*Result, string, error) {
	xs, err := source.From(x)
	if err != nil {
		return nil, "", err
	}

	var ys source.Source
	if y != nil {
		if ys, err = source.From(y); err != nil {
			return nil, "", err
		}
	}

	classified, err := classify.Classify(ctx, instrumented{c}, xs, ys)
	if err != nil {
		return nil, "", err
	}

	res, err := dispatch.Dispatch(ctx, classified, c.opts.axis, c.strategy,
		dispatch.WithParallelism(c.opts.parallelism),
	)
	return res, classified.Type.String(), err
}

// instrumented records every normalization through the calculator's
// logger and metrics collector.
type instrumented struct {
	c *Calculator
}

func (n instrumented) Normalize(ctx context.Context, src source.Source) (*numeric.Array, error) {
	start := time.Now()
	arr, err := n.c.normalizer.Normalize(ctx, src)

	kind := "unknown"
	if src != nil {
		kind = src.Kind().String()
	}
	shape := ""
	if arr != nil {
		shape = arr.Shape().String()
	}

	n.c.opts.metricsCollector.RecordLoad(kind, time.Since(start), err)
	n.c.opts.logger.LogLoad(ctx, kind, shape, err)

	return arr, err
}

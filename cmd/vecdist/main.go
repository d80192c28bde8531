// Command vecdist prints distances between points, arrays and tabular files.
//
//	vecdist '[0,0]' '[3,4]'
//	vecdist points.csv --metric manhattan --output text
//	vecdist s3://bucket/points.csv.gz '[0,0]' --s3-region eu-central-1
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecdist"
	"github.com/hupe1980/vecdist/blobstore"
	miniostore "github.com/hupe1980/vecdist/blobstore/minio"
	s3store "github.com/hupe1980/vecdist/blobstore/s3"
	"github.com/hupe1980/vecdist/codec"
	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/numeric"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	axis          string
	metric        string
	parallelism   int
	output        string
	codec         string
	logLevel      string
	memoryLimit   int64
	ioLimit       int64
	s3Region      string
	minioEndpoint string
	minioSecure   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "vecdist X [Y]",
		Short: "compute distances between points, arrays and files",
		Long: `
Compute distances between X and Y, or pairwise distances within X when Y is
omitted. Each operand is decoded as a JSON number or array first; anything
else is a path to a .csv, .xlsx, .xls or .txt file, optionally compressed
with .gz, .zst or .lz4.

s3://bucket/key paths use the default AWS credential chain. minio://bucket/key
paths use MINIO_ACCESS_KEY and MINIO_SECRET_KEY with --minio-endpoint.
`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), f, args, stdout, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "vecdist: %v\n", err)
			}
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.axis, "axis", "rows", "compare rows or columns of arrays")
	fl.StringVar(&f.metric, "metric", "euclidean", "distance metric (euclidean, sqeuclidean, manhattan, chebyshev)")
	fl.IntVar(&f.parallelism, "parallelism", 1, "goroutines used for pairwise matrices")
	fl.StringVar(&f.output, "output", "json", "output format (json or text)")
	fl.StringVar(&f.codec, "codec", "go-json", "JSON codec (go-json or json)")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fl.Int64Var(&f.memoryLimit, "memory-limit", 0, "maximum source bytes held at once (0 = unlimited)")
	fl.Int64Var(&f.ioLimit, "io-limit", 0, "maximum remote read throughput in bytes/s (0 = unlimited)")
	fl.StringVar(&f.s3Region, "s3-region", "", "AWS region for s3:// paths")
	fl.StringVar(&f.minioEndpoint, "minio-endpoint", "", "MinIO endpoint (host:port) for minio:// paths")
	fl.BoolVar(&f.minioSecure, "minio-secure", false, "use TLS for MinIO")

	return cmd
}

func run(ctx context.Context, f flags, args []string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if f.output != "json" && f.output != "text" {
		return fmt.Errorf("unknown output format %q", f.output)
	}

	c, err := codec.ByName(f.codec)
	if err != nil {
		return err
	}

	axis, err := numeric.ParseAxis(f.axis)
	if err != nil {
		return err
	}

	metric, err := distance.ParseMetric(f.metric)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", f.logLevel, err)
	}

	opts := []vecdist.Option{
		vecdist.WithAxis(axis),
		vecdist.WithMetric(metric),
		vecdist.WithParallelism(f.parallelism),
		vecdist.WithLogger(vecdist.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))),
		vecdist.WithMemoryLimit(f.memoryLimit),
		vecdist.WithIOLimit(f.ioLimit),
	}

	operands := make([]any, 2)
	for i, arg := range args {
		operands[i] = parseOperand(c, arg)

		path, ok := operands[i].(string)
		if !ok {
			continue
		}
		prefix, store, err := remoteStore(ctx, f, path)
		if err != nil {
			return err
		}
		if store != nil {
			opts = append(opts, vecdist.WithBlobStore(prefix, store))
		}
	}

	res, err := vecdist.Distance(ctx, operands[0], operands[1], opts...)
	if err != nil {
		return err
	}

	if f.output == "text" {
		_, err = io.WriteString(stdout, formatText(res))
		return err
	}

	out, err := c.Marshal(output{
		Type:  res.Type.String(),
		Kind:  res.Kind.String(),
		Value: res.Value(),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", out)
	return err
}

type output struct {
	Type  string `json:"type"`
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

// parseOperand returns the decoded JSON number or array, or arg itself as a
// path.
func parseOperand(c codec.Codec, arg string) any {
	var v any
	if err := c.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	switch v.(type) {
	case float64, []any:
		return v
	default:
		return arg
	}
}

// remoteStore builds the blob store for s3:// and minio:// paths. Local
// paths return a nil store.
func remoteStore(ctx context.Context, f flags, path string) (string, blobstore.BlobStore, error) {
	scheme, rest, ok := strings.Cut(path, "://")
	if !ok {
		return "", nil, nil
	}
	bucket, _, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return "", nil, fmt.Errorf("missing bucket in %q", path)
	}
	prefix := scheme + "://" + bucket

	switch scheme {
	case "s3":
		var optFns []func(*config.LoadOptions) error
		if f.s3Region != "" {
			optFns = append(optFns, config.WithRegion(f.s3Region))
		}
		cfg, err := config.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return "", nil, fmt.Errorf("load AWS config: %w", err)
		}
		return prefix, s3store.NewStore(awss3.NewFromConfig(cfg), bucket, ""), nil
	case "minio":
		if f.minioEndpoint == "" {
			return "", nil, fmt.Errorf("--minio-endpoint is required for %q", path)
		}
		client, err := minio.New(f.minioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: f.minioSecure,
		})
		if err != nil {
			return "", nil, fmt.Errorf("create MinIO client: %w", err)
		}
		return prefix, miniostore.NewStore(client, bucket, ""), nil
	default:
		return "", nil, fmt.Errorf("unsupported scheme %q", scheme)
	}
}

func formatText(res *vecdist.Result) string {
	var sb strings.Builder
	switch res.Kind {
	case vecdist.ResultVector:
		writeRow(&sb, res.Vector)
	case vecdist.ResultMatrix:
		for _, row := range res.Matrix {
			writeRow(&sb, row)
		}
	default:
		sb.WriteString(formatFloat(res.Scalar))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, row []float64) {
	for i, v := range row {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatFloat(v))
	}
	sb.WriteByte('\n')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

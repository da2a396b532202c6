package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log"
	lognoop "go.opentelemetry.io/otel/log/noop"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/medxops/grand/pkg/grand"
)

// ScopeName is the instrumentation scope used for grand's own signals.
const ScopeName = "github.com/medxops/grand"

var userAgent = "grand/" + grand.Version

// Telemetry bundles the providers used to instrument a run.
type Telemetry struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	LoggerProvider log.LoggerProvider

	shutdown []func(context.Context) error
}

// New returns a Telemetry using the given providers. Nil providers are
// replaced with no-op ones.
func New(tp trace.TracerProvider, mp metric.MeterProvider, lp log.LoggerProvider) *Telemetry {
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}
	if lp == nil {
		lp = lognoop.NewLoggerProvider()
	}
	return &Telemetry{TracerProvider: tp, MeterProvider: mp, LoggerProvider: lp}
}

// Noop returns a Telemetry that records nothing.
func Noop() *Telemetry {
	return New(nil, nil, nil)
}

// Tracer returns grand's tracer.
func (t *Telemetry) Tracer() trace.Tracer {
	return t.TracerProvider.Tracer(ScopeName)
}

// Meter returns grand's meter.
func (t *Telemetry) Meter() metric.Meter {
	return t.MeterProvider.Meter(ScopeName)
}

// Logger returns grand's OpenTelemetry logger.
func (t *Telemetry) Logger() log.Logger {
	return t.LoggerProvider.Logger(ScopeName)
}

// Shutdown flushes and stops every provider created by Setup, in reverse
// order of creation.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(t.shutdown) - 1; i >= 0; i-- {
		if err := t.shutdown[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	t.shutdown = nil
	return errors.Join(errs...)
}

// Setup builds the providers described by c.
func Setup(ctx context.Context, c *Config, logger *zap.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !c.Enabled() {
		logger.Debug("telemetry disabled")
		return Noop(), nil
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(c.ServiceName),
		semconv.ServiceVersion(grand.Version),
	)

	if c.Endpoint == Terminal {
		logger.Info("writing spans to the terminal")
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(NewSpanWriter(os.Stderr)),
			sdktrace.WithResource(res),
		)
		t := New(tp, nil, nil)
		t.shutdown = append(t.shutdown, tp.Shutdown)
		return t, nil
	}

	t := New(nil, nil, nil)

	traceExp, err := createTraceExporter(ctx, c, logger)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(res),
	)
	t.TracerProvider = tp
	t.shutdown = append(t.shutdown, tp.Shutdown)

	metricExp, err := createMetricExporter(ctx, c, logger)
	if err != nil {
		_ = t.Shutdown(ctx)
		return nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)
	t.MeterProvider = mp
	t.shutdown = append(t.shutdown, mp.Shutdown)

	logExp, err := createLogExporter(ctx, c, logger)
	if err != nil {
		_ = t.Shutdown(ctx)
		return nil, err
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExp,
			sdklog.WithExportInterval(time.Second),
		)),
		sdklog.WithResource(res),
	)
	t.LoggerProvider = lp
	t.shutdown = append(t.shutdown, lp.Shutdown)

	return t, nil
}

// createTraceExporter initialises the OTLP span exporter based on the configuration.
func createTraceExporter(ctx context.Context, c *Config, logger *zap.Logger) (sdktrace.SpanExporter, error) {
	var exp sdktrace.SpanExporter
	var err error

	if c.UseHTTP {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.Endpoint)}
		if c.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		if len(c.Headers) > 0 {
			opts = append(opts, otlptracehttp.WithHeaders(c.Headers))
		}
		logger.Info("starting HTTP trace exporter", zap.String("endpoint", c.Endpoint))
		exp, err = otlptracehttp.New(ctx, opts...)
	} else {
		opts := []otlptracegrpc.Option{
			otlptracegrpc.WithEndpoint(c.Endpoint),
			otlptracegrpc.WithDialOption(grpc.WithUserAgent(userAgent)),
		}
		if c.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		}
		if len(c.Headers) > 0 {
			opts = append(opts, otlptracegrpc.WithHeaders(c.Headers))
		}
		logger.Info("starting gRPC trace exporter", zap.String("endpoint", c.Endpoint))
		exp, err = otlptracegrpc.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}
	return exp, nil
}

// createMetricExporter initialises the OTLP metric exporter based on the configuration.
func createMetricExporter(ctx context.Context, c *Config, logger *zap.Logger) (sdkmetric.Exporter, error) {
	var exp sdkmetric.Exporter
	var err error

	if c.UseHTTP {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(c.Endpoint)}
		if c.Insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		if len(c.Headers) > 0 {
			opts = append(opts, otlpmetrichttp.WithHeaders(c.Headers))
		}
		logger.Info("starting HTTP metric exporter", zap.String("endpoint", c.Endpoint))
		exp, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		opts := []otlpmetricgrpc.Option{
			otlpmetricgrpc.WithEndpoint(c.Endpoint),
			otlpmetricgrpc.WithDialOption(grpc.WithUserAgent(userAgent)),
		}
		if c.Insecure {
			opts = append(opts, otlpmetricgrpc.WithInsecure())
		}
		if len(c.Headers) > 0 {
			opts = append(opts, otlpmetricgrpc.WithHeaders(c.Headers))
		}
		logger.Info("starting gRPC metric exporter", zap.String("endpoint", c.Endpoint))
		exp, err = otlpmetricgrpc.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}
	return exp, nil
}

// createLogExporter initialises the OTLP log exporter based on the configuration.
func createLogExporter(ctx context.Context, c *Config, logger *zap.Logger) (sdklog.Exporter, error) {
	var exp sdklog.Exporter
	var err error

	if c.UseHTTP {
		opts := []otlploghttp.Option{otlploghttp.WithEndpoint(c.Endpoint)}
		if c.Insecure {
			opts = append(opts, otlploghttp.WithInsecure())
		}
		if len(c.Headers) > 0 {
			opts = append(opts, otlploghttp.WithHeaders(c.Headers))
		}
		logger.Info("starting HTTP log exporter", zap.String("endpoint", c.Endpoint))
		exp, err = otlploghttp.New(ctx, opts...)
	} else {
		opts := []otlploggrpc.Option{
			otlploggrpc.WithEndpoint(c.Endpoint),
			otlploggrpc.WithDialOption(grpc.WithUserAgent(userAgent)),
		}
		if c.Insecure {
			opts = append(opts, otlploggrpc.WithInsecure())
		}
		if len(c.Headers) > 0 {
			opts = append(opts, otlploggrpc.WithHeaders(c.Headers))
		}
		logger.Info("starting gRPC log exporter", zap.String("endpoint", c.Endpoint))
		exp, err = otlploggrpc.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}
	return exp, nil
}

package cli

import (
	"context"
	"fmt"
	"time"

	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap"

	"github.com/medxops/grand/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func telemetryConfig(c *cli.Context) (*telemetry.Config, error) {
	tc := telemetry.NewConfig()
	tc.ServiceName = c.String("service-name")
	tc.Endpoint = c.String("otel-exporter-otlp-endpoint")
	tc.Insecure = c.Bool("insecure")

	switch p := c.String("protocol"); p {
	case "grpc":
	case "http":
		tc.UseHTTP = true
	default:
		return nil, fmt.Errorf("unknown protocol %q, expected one of: grpc, http", p)
	}

	for _, h := range c.StringSlice("header") {
		if err := tc.Headers.Set(h); err != nil {
			return nil, fmt.Errorf("invalid header %q: %w", h, err)
		}
	}
	return tc, nil
}

func setupTelemetry(c *cli.Context) (*telemetry.Telemetry, error) {
	tc, err := telemetryConfig(c)
	if err != nil {
		return nil, err
	}

	if tc.Enabled() && tc.Endpoint != telemetry.Terminal && c.String("log-level") == "debug" {
		grpcZap.ReplaceGrpcLoggerV2(logger.WithOptions(
			zap.AddCallerSkip(3),
		))
	}

	tel, err := telemetry.Setup(c.Context, tc, logger)
	if err != nil {
		logger.Error("failed to set up telemetry", zap.Error(err))
		return nil, err
	}

	otel.SetTracerProvider(tel.TracerProvider)
	otel.SetMeterProvider(tel.MeterProvider)
	global.SetLoggerProvider(tel.LoggerProvider)
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Warn("telemetry export failed", zap.Error(err))
	}))

	return tel, nil
}

func shutdownTelemetry(tel *telemetry.Telemetry) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := tel.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down telemetry", zap.Error(err))
	}
}

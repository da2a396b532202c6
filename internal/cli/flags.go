package cli

import (
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "load global flags from a YAML file",
		},
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of draws per worker, 0 for unbounded",
			Value:   1,
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "duration",
			Aliases: []string{"d"},
			Usage:   "duration in seconds",
			Value:   0,
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format, one of: text, json, yaml",
			Value:   "text",
		}),
		altsrc.NewStringSliceFlag(&cli.StringSliceFlag{
			Name:  "header",
			Usage: "additional headers in 'key=value' format",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "insecure",
			Usage: "whether to enable client transport security",
			Value: false,
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level used by the logger, one of: debug, info, warn, error",
			Value: "info",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  "otel-exporter-otlp-endpoint",
			Usage: "target URL to exporter endpoint, or 'terminal' to print spans to stderr",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  "protocol",
			Usage: "the transport protocol, one of: grpc, http",
			Value: "grpc",
		}),
		altsrc.NewFloat64Flag(&cli.Float64Flag{
			Name:    "rate",
			Aliases: []string{"r"},
			Usage:   "draws per second per worker, 0 for unthrottled",
			Value:   0,
		}),
		altsrc.NewInt64Flag(&cli.Int64Flag{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "seed for reproducible draws, worker i uses seed+i (default: random)",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  "service-name",
			Usage: "service name to use",
			Value: "grand",
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "number of concurrent workers, each with its own source",
			Value:   1,
		}),
	}
}

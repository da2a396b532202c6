package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/medxops/grand/pkg/grand"
)

var logger *zap.Logger

func initLogger(c *cli.Context) error {
	var cfg zap.Config

	switch c.String("log-level") {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(c.String("log-level"))
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l

	return nil
}

// rainbow colors each letter of s with a shuffled palette.
func rainbow(s string) string {
	palette := []color.Attribute{color.FgRed, color.FgGreen, color.FgYellow, color.FgMagenta, color.FgCyan, color.FgWhite, color.FgHiRed, color.FgHiGreen, color.FgHiYellow, color.FgHiBlue, color.FgHiMagenta, color.FgHiCyan, color.FgHiWhite}
	grand.Shuffle(grand.New(), palette)

	var out string
	for i, r := range s {
		out += color.New(palette[i%len(palette)]).Sprint(string(r))
	}
	return out
}

// New returns the grand command line application.
func New(version, commit, date string) *cli.App {
	flags := getGlobalFlags()

	v := fmt.Sprintf("v%v-%v (%v)", version, commit, date)
	app := &cli.App{
		Name:    rainbow("grand"),
		Usage:   "Draw uniformly distributed integers, doubles and booleans from a Mersenne Twister",
		Version: v,
		Flags:   flags,
		Commands: []*cli.Command{
			genIntCommand(),
			genDoubleCommand(),
			genBoolCommand(),
			genWordCommand(),
			genShuffleCommand(),
			genBenchCommand(),
			genDiagnosticsCommand(),
		},
		Before: func(c *cli.Context) error {
			if err := altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))(c); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return initLogger(c)
		},
		After: func(*cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
	}

	app.EnableBashCompletion = true

	return app
}

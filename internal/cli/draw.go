package cli

import (
	"errors"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/medxops/grand/internal/draw"
	"github.com/medxops/grand/internal/render"
)

func genIntCommand() *cli.Command {
	return &cli.Command{
		Name:    "int",
		Usage:   "draw integers uniformly from [0, bound)",
		Aliases: []string{"i"},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "bound",
				Usage: "exclusive upper bound, values below 1 always draw 0",
				Value: 2,
			},
		},
		Action: func(c *cli.Context) error {
			cfg := drawConfig(c, draw.KindInt)
			cfg.N = c.Int("bound")
			return runDraw(c, cfg)
		},
	}
}

func genDoubleCommand() *cli.Command {
	return &cli.Command{
		Name:    "double",
		Usage:   "draw doubles uniformly from [0, bound), or (bound, 0] for a negative bound",
		Aliases: []string{"d"},
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "bound",
				Usage: "exclusive bound",
				Value: 1.0,
			},
		},
		Action: func(c *cli.Context) error {
			cfg := drawConfig(c, draw.KindDouble)
			cfg.Bound = c.Float64("bound")
			return runDraw(c, cfg)
		},
	}
}

func genBoolCommand() *cli.Command {
	return &cli.Command{
		Name:    "bool",
		Usage:   "draw booleans that are true with the given probability",
		Aliases: []string{"b"},
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "probability",
				Aliases: []string{"p"},
				Usage:   "probability of true, clamped to [0, 1]",
				Value:   0.5,
			},
		},
		Action: func(c *cli.Context) error {
			cfg := drawConfig(c, draw.KindBool)
			cfg.Probability = c.Float64("probability")
			return runDraw(c, cfg)
		},
	}
}

func genWordCommand() *cli.Command {
	return &cli.Command{
		Name:    "word",
		Usage:   "draw raw 32-bit engine words",
		Aliases: []string{"w"},
		Action: func(c *cli.Context) error {
			return runDraw(c, drawConfig(c, draw.KindWord))
		},
	}
}

func genShuffleCommand() *cli.Command {
	return &cli.Command{
		Name:      "shuffle",
		Usage:     "print a random permutation of the given items",
		Aliases:   []string{"s"},
		ArgsUsage: "ITEM...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("shuffle needs at least one item")
			}
			cfg := drawConfig(c, draw.KindShuffle)
			cfg.Items = c.Args().Slice()
			return runDraw(c, cfg)
		},
	}
}

// drawConfig builds a draw.Config from the global flags.
func drawConfig(c *cli.Context, kind draw.Kind) *draw.Config {
	cfg := draw.NewConfig()
	cfg.Kind = kind
	cfg.Count = c.Int("count")
	cfg.Workers = c.Int("workers")
	cfg.Rate = c.Float64("rate")
	cfg.TotalDuration = time.Duration(c.Int("duration")) * time.Second

	// a duration without an explicit count draws until it elapses
	if cfg.TotalDuration > 0 && !c.IsSet("count") {
		cfg.Count = 0
	}

	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
		cfg.HasSeed = true
	}
	return cfg
}

func runDraw(c *cli.Context, cfg *draw.Config) error {
	enc, err := render.New(c.String("format"), c.App.Writer)
	if err != nil {
		return err
	}

	tel, err := setupTelemetry(c)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(tel)

	summary, err := draw.Run(c.Context, cfg, enc, tel, logger)
	if err != nil {
		logger.Error("draw failed", zap.Error(err))
		return err
	}
	logger.Debug("run summary", zap.String("run", summary.RunID), zap.Int64("draws", summary.Draws))

	return enc.Close()
}

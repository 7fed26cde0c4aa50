// Package rpgassist wires the rpgassist command tree.
package rpgassist

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/logging"
)

type app struct {
	cfg     Config
	out     io.Writer
	errOut  io.Writer
	verbose bool
	logger  *zap.Logger
}

// NewRootCommand builds the command tree. Output goes to out and logs to
// errOut.
func NewRootCommand(cfg Config, out, errOut io.Writer) *cobra.Command {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	a := &app{cfg: cfg, out: out, errOut: errOut, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "rpgassist",
		Short: "Roll random character details for tabletop games",
		Long: `rpgassist rolls NPCs and character details from weighted tables.

Examples:
  rpgassist generate npcs.yaml --count 3
  rpgassist generate npcs.json --seed 42 --format json --store npcs.db
  rpgassist roll pet --times 5
  rpgassist roll 3d6+1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.generateCommand())
	root.AddCommand(a.listCommand())
	root.AddCommand(a.rollCommand())
	return root
}

// Run executes the command tree with args.
func Run(ctx context.Context, cfg Config, args []string, out, errOut io.Writer) error {
	root := NewRootCommand(cfg, out, errOut)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) initLogger() error {
	logger, err := a.newLogger(a.cfg.loggingConfig(a.verbose))
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("loaded config", zap.Stringer("config", a.cfg))
	return nil
}

// newLogger writes to the command's error stream unless an output is
// configured.
func (a *app) newLogger(lc logging.Config) (*zap.Logger, error) {
	if lc.Output != "" {
		return logging.New(lc)
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return logging.NewWithWriter(level, lc.Format, a.errOut)
}

// roller returns a seeded roller; seed 0 draws a fresh seed and logs it so
// the run can be replayed.
func (a *app) roller(seed int64) (*dice.Seeded, error) {
	if seed != 0 {
		return dice.New(seed), nil
	}
	r, err := dice.NewRandom()
	if err != nil {
		return nil, err
	}
	a.logger.Info("using seed", zap.Int64("seed", r.Seed()))
	return r, nil
}

// Package cli implements the drainflow command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/drainflow/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// gridNoData is written for missing cells of integer output grids.
const gridNoData int32 = -9999

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives the human-readable summaries.
	Out io.Writer

	configPath string
	verbose    bool
	quiet      bool
}

// New creates a CLI logging to w at level and printing summaries to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "drainflow",
		Short: "Drainflow routes flow over elevation grids and delineates basins",
		Long: `Drainflow computes flow directions (D8, Rho8, D-infinity, MFD), flow
accumulation and drainage basins from ESRI ASCII elevation grids.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if c.quiet {
				c.Out = io.Discard
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML run configuration")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log routing and delineation progress")
	root.PersistentFlags().BoolVarP(&c.quiet, "quiet", "q", false, "suppress result summaries")

	root.AddCommand(c.directionCommand())
	root.AddCommand(c.accumulateCommand())
	root.AddCommand(c.basinsCommand())

	return root
}

// ExitCode maps a command error to a process exit status: 0 on success, 130
// after an interrupt, 2 for an invalid configuration and 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, config.ErrUnknownModel),
		errors.Is(err, config.ErrBadValue),
		errors.Is(err, config.ErrUnknownKey):
		return 2
	}

	return 1
}

// config loads the configuration file, if any, and applies the flags the
// user set explicitly.
func (c *CLI) config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("model") {
		cfg.Flow.Model, _ = fs.GetString("model")
	}
	if fs.Changed("converge") {
		cfg.Flow.Converge, _ = fs.GetFloat64("converge")
	}
	if fs.Changed("seed") {
		cfg.Flow.Seed, _ = fs.GetInt64("seed")
	}
	if fs.Changed("clamp-negative") {
		cfg.Accumulation.ClampNegative, _ = fs.GetBool("clamp-negative")
	}
	if fs.Changed("loss") {
		cfg.Accumulation.Loss, _ = fs.GetBool("loss")
	}
	if fs.Changed("path-length") {
		cfg.Accumulation.PathLength, _ = fs.GetBool("path-length")
	}
	if fs.Changed("threshold") {
		cfg.Basins.ChannelThreshold, _ = fs.GetFloat64("threshold")
	}
	if fs.Changed("subbasins") {
		cfg.Basins.Subbasins, _ = fs.GetBool("subbasins")
	}
	if fs.Changed("distance") {
		cfg.Basins.Distance, _ = fs.GetBool("distance")
	}

	return cfg, cfg.Validate()
}

// addFlowFlags registers the routing model flags.
func addFlowFlags(cmd *cobra.Command) {
	def := config.Default().Flow
	cmd.Flags().StringP("model", "m", def.Model, "flow model: d8, rho8, dinf, mfd")
	cmd.Flags().Float64("converge", def.Converge, "MFD convergence exponent")
	cmd.Flags().Int64("seed", def.Seed, "Rho8 random seed")
}

// outputPath returns explicit, or input with its extension replaced by
// suffix.
func outputPath(explicit, input, suffix string) string {
	if explicit != "" {
		return explicit
	}

	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

// sibling derives a companion file name from an output grid path.
func sibling(output, suffix string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + suffix
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drainflow/accum"
	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/internal/config"
	"github.com/katalvlaran/drainflow/internal/rasterio"
	"github.com/katalvlaran/drainflow/raster"
)

// accumulateCommand creates the accumulate command writing flow
// accumulation and its optional companion grids.
func (c *CLI) accumulateCommand() *cobra.Command {
	var output, weight string

	cmd := &cobra.Command{
		Use:   "accumulate <dem.asc>",
		Short: "Compute upslope flow accumulation",
		Long: `Compute upslope flow accumulation of an elevation grid.

Each cell receives its own weight (1, or the --weight grid) plus the shares of
all upslope cells draining into it. With --loss and --path-length the loss
grid (<output>.loss.asc) and the mean upslope path length grid
(<output>.len.asc) are written next to the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			return c.runAccumulate(cmd.Context(), args[0], weight, outputPath(output, args[0], ".acc.asc"), cfg)
		},
	}
	def := config.Default().Accumulation
	cmd.Flags().StringVarP(&output, "output", "o", "", "output grid (default: <dem>.acc.asc)")
	cmd.Flags().StringVarP(&weight, "weight", "w", "", "per-cell weight grid")
	cmd.Flags().Bool("clamp-negative", def.ClampNegative, "count negative weights as loss, keep flow >= 0")
	cmd.Flags().Bool("loss", def.Loss, "write the loss grid")
	cmd.Flags().Bool("path-length", def.PathLength, "write the mean upslope path length grid")
	addFlowFlags(cmd)

	return cmd
}

func (c *CLI) runAccumulate(ctx context.Context, input, weightPath, output string, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	dem, err := rasterio.ReadFile(input)
	if err != nil {
		return err
	}

	opts := []accum.Option{
		accum.WithContext(ctx),
		accum.WithProgress(steps(logger, "accumulating")),
	}
	if weightPath != "" {
		w, err := rasterio.ReadFile(weightPath)
		if err != nil {
			return err
		}
		opts = append(opts, accum.WithWeight(w))
	}
	if cfg.Accumulation.ClampNegative {
		opts = append(opts, accum.WithClampNegative())
	}
	if cfg.Accumulation.Loss {
		opts = append(opts, accum.WithLoss())
	}
	if cfg.Accumulation.PathLength {
		opts = append(opts, accum.WithPathLength())
	}

	m := cfg.Model()
	p := newProgress(logger)
	f, err := flowdir.ComputeField(dem, m, flowdir.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("route %s: %w", input, err)
	}
	res, err := accum.Accumulate(f, opts...)
	if err != nil {
		return fmt.Errorf("accumulate %s: %w", input, err)
	}
	p.done(fmt.Sprintf("Accumulated %d cells with %s", dem.CountValid(), m.Name()))

	outputs := []struct {
		path string
		grid *raster.Grid[float64]
	}{
		{output, res.Flow},
		{sibling(output, ".loss.asc"), res.Loss},
		{sibling(output, ".len.asc"), res.PathLength},
	}
	c.printSuccess("Flow accumulation (%s)", m.Name())
	for _, o := range outputs {
		if o.grid == nil {
			continue
		}
		if err := rasterio.WriteFile(o.path, o.grid); err != nil {
			return err
		}
		c.printFile(o.path)
	}

	return nil
}

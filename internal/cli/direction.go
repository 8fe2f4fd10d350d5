package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drainflow/flowdir"
	"github.com/katalvlaran/drainflow/internal/config"
	"github.com/katalvlaran/drainflow/internal/rasterio"
)

// directionCommand creates the direction command writing a direction code
// grid.
func (c *CLI) directionCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "direction <dem.asc>",
		Short: "Compute flow directions",
		Long: `Compute flow directions of an elevation grid.

Codes run clockwise from north: 0=N 1=NE 2=E 3=SE 4=S 5=SW 6=W 7=NW, -1 marks
cells without a lower neighbour. Fractional models (dinf, mfd) write the
direction receiving the largest share.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			return c.runDirection(cmd.Context(), args[0], outputPath(output, args[0], ".dir.asc"), cfg)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output grid (default: <dem>.dir.asc)")
	addFlowFlags(cmd)

	return cmd
}

func (c *CLI) runDirection(ctx context.Context, input, output string, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	dem, err := rasterio.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded DEM", "path", input, "geometry", dem.Geometry.String())

	m := cfg.Model()
	p := newProgress(logger)
	f, err := flowdir.ComputeField(dem, m,
		flowdir.WithContext(ctx),
		flowdir.WithProgress(steps(logger, "routing")))
	if err != nil {
		return fmt.Errorf("route %s: %w", input, err)
	}
	p.done(fmt.Sprintf("Routed %d cells with %s", dem.CountValid(), m.Name()))

	if err := rasterio.WriteFile(output, f.Codes(gridNoData)); err != nil {
		return err
	}
	c.printSuccess("Flow directions (%s)", m.Name())
	c.printFile(output)

	return nil
}

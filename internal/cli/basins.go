package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drainflow/basin"
	"github.com/katalvlaran/drainflow/internal/config"
	"github.com/katalvlaran/drainflow/internal/rasterio"
	"github.com/katalvlaran/drainflow/internal/shpsink"
	"github.com/katalvlaran/drainflow/raster"
)

type basinsArgs struct {
	input    string
	output   string
	channels string
	shp      string
}

// basinsCommand creates the basins command writing basin IDs, optional
// subbasin and distance grids, and basin polygons.
func (c *CLI) basinsCommand() *cobra.Command {
	var a basinsArgs

	cmd := &cobra.Command{
		Use:   "basins <dem.asc>",
		Short: "Delineate drainage basins",
		Long: `Delineate drainage basins of an elevation grid.

The channel network is read from --channels (non-zero cells) or derived from
D8 flow accumulation at --threshold cells. Every channel outlet roots one
basin. --subbasins splits basins at confluences (<output>.sub.asc),
--distance writes the flow distance to the outlet (<output>.dist.asc) and
--shp writes basin polygons with their statistics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			a.input = args[0]
			a.output = outputPath(a.output, a.input, ".basins.asc")
			return c.runBasins(cmd.Context(), a, cfg)
		},
	}
	def := config.Default().Basins
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "basin ID grid (default: <dem>.basins.asc)")
	cmd.Flags().StringVar(&a.channels, "channels", "", "channel mask grid (non-zero cells)")
	cmd.Flags().StringVar(&a.shp, "shp", "", "basin polygon shapefile")
	cmd.Flags().Float64P("threshold", "t", def.ChannelThreshold, "channel accumulation threshold in cells")
	cmd.Flags().Bool("subbasins", def.Subbasins, "split basins at confluences")
	cmd.Flags().Bool("distance", def.Distance, "write the distance-to-outlet grid")

	return cmd
}

func (c *CLI) runBasins(ctx context.Context, a basinsArgs, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	dem, err := rasterio.ReadFile(a.input)
	if err != nil {
		return err
	}

	var (
		mask *raster.Grid[bool]
		n    int
	)
	if a.channels != "" {
		g, err := rasterio.ReadFile(a.channels)
		if err != nil {
			return err
		}
		mask, n = gridChannels(g)
	} else {
		mask, n, err = thresholdChannels(ctx, dem, cfg.Basins.ChannelThreshold)
		if err != nil {
			return fmt.Errorf("channels: %w", err)
		}
	}
	logger.Debug("channel network", "cells", n, "threshold", cfg.Basins.ChannelThreshold)

	opts := []basin.Option{
		basin.WithContext(ctx),
		basin.WithProgress(steps(logger, "filling basins")),
	}
	if cfg.Basins.Subbasins {
		opts = append(opts, basin.WithSubbasins())
	}
	if cfg.Basins.Distance {
		opts = append(opts, basin.WithDistance())
	}

	p := newProgress(logger)
	res, err := basin.Delineate(dem, mask, opts...)
	if err != nil {
		return fmt.Errorf("delineate %s: %w", a.input, err)
	}
	p.done(fmt.Sprintf("Delineated %d basins", len(res.Outlets)))
	for _, e := range res.BoundaryErrors {
		logger.Warn("boundary not traced", "err", e)
	}

	if err := rasterio.WriteFile(a.output, res.IDs); err != nil {
		return err
	}
	c.printSuccess("Drainage basins: %d outlets, %d measured", len(res.Outlets), len(res.Basins))
	c.printFile(a.output)
	if res.Distance != nil {
		path := sibling(a.output, ".dist.asc")
		if err := rasterio.WriteFile(path, res.Distance); err != nil {
			return err
		}
		c.printFile(path)
	}
	if res.SubbasinIDs != nil {
		path := sibling(a.output, ".sub.asc")
		if err := rasterio.WriteFile(path, res.SubbasinIDs); err != nil {
			return err
		}
		c.printFile(path)
		if order, err := res.Order(); err == nil && len(order) > 0 {
			c.printDetail("%d subbasins, headwaters first from %d", len(order), order[0])
		}
	}
	if a.shp != "" {
		written, err := shpsink.Write(a.shp, res.Basins)
		if err != nil {
			return err
		}
		c.printFile(a.shp)
		c.printDetail("%d basin polygons", written)
		if res.SubbasinIDs != nil {
			path := sibling(a.shp, "_sub.shp")
			if _, err := shpsink.Write(path, res.Subbasins); err != nil {
				return err
			}
			c.printFile(path)
		}
	}

	if len(res.Basins) > 0 {
		fmt.Fprintln(c.Out)
		fmt.Fprintln(c.Out, basinTable("Basins", res.Basins))
	}

	return nil
}

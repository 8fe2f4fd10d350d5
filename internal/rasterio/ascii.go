// Package rasterio reads and writes ESRI ASCII grids through go-spatial.
//
// Files list rows north first; grids in memory keep row 0 in the south, so
// rows are flipped on the way in and out. Cell centres are derived from
// xllcorner/yllcorner (or xllcenter/yllcenter). Files must carry the full
// six-line header including NODATA_value.
package rasterio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	gsr "github.com/jblindsay/go-spatial/geospatialfiles/raster"

	"github.com/katalvlaran/drainflow/raster"
)

// headerLines is the number of header lines go-spatial consumes.
const headerLines = 6

var (
	// ErrHeader indicates a missing or malformed header entry.
	ErrHeader = errors.New("rasterio: bad header")
	// ErrData indicates a malformed data section.
	ErrData = errors.New("rasterio: bad data")
)

var headerKeys = map[string]bool{
	"ncols": true, "nrows": true, "cellsize": true, "nodata_value": true,
	"xllcorner": true, "yllcorner": true, "xllcenter": true, "yllcenter": true,
}

// ReadFile reads the ESRI ASCII grid at path.
func ReadFile(path string) (g *raster.Grid[float64], err error) {
	hdr, err := readHeader(path)
	if err != nil {
		return nil, err
	}

	// go-spatial panics on malformed input.
	defer func() {
		if r := recover(); r != nil {
			g, err = nil, fmt.Errorf("read %s: %w: %v", path, ErrData, r)
		}
	}()

	cfg := gsr.NewDefaultRasterConfig()
	cfg.RasterFormat = gsr.RT_ArcGisAsciiRaster
	src, err := gsr.CreateRasterFromFile(path, *cfg)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	g, err = fromRaster(src, hdr)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return g, nil
}

// fromRaster copies src into a south-first grid.
func fromRaster(src *gsr.Raster, hdr map[string]float64) (*raster.Grid[float64], error) {
	west, south := src.West, src.South
	// go-spatial takes a zero xllcorner for a centre-registered header and
	// loses the corner origin.
	if v, ok := hdr["xllcorner"]; ok && v == 0 {
		west, south = 0, hdr["yllcorner"]
	}

	geo := raster.Geometry{NX: src.Columns, NY: src.Rows, CellSize: hdr["cellsize"]}
	geo.XMin = west + geo.CellSize/2
	geo.YMin = south + geo.CellSize/2

	g, err := raster.New(geo, src.NoDataValue, src.NoDataValue)
	if err != nil {
		return nil, err
	}
	data, err := src.Data()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrData, err)
	}
	if len(data) != geo.Len() {
		return nil, fmt.Errorf("%w: %d of %d values", ErrData, len(data), geo.Len())
	}
	for row := 0; row < geo.NY; row++ {
		y := geo.NY - 1 - row
		for x := 0; x < geo.NX; x++ {
			g.Set(x, y, data[row*geo.NX+x])
		}
	}

	return g, nil
}

// readHeader checks that the first lines of path form a complete header and
// returns its values.
func readHeader(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hdr := make(map[string]float64, headerLines)
	sc := bufio.NewScanner(f)
	for line := 1; line <= headerLines && sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 || !headerKeys[strings.ToLower(fields[0])] {
			return nil, fmt.Errorf("read %s: %w: line %d: %q", path, ErrHeader, line, sc.Text())
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w: %s: %v", path, ErrHeader, fields[0], err)
		}
		hdr[strings.ToLower(fields[0])] = v
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for _, k := range []string{"ncols", "nrows", "cellsize", "nodata_value"} {
		if _, ok := hdr[k]; !ok {
			return nil, fmt.Errorf("read %s: %w: missing %s", path, ErrHeader, k)
		}
	}

	return hdr, nil
}

// Number is the cell type WriteFile can serialize.
type Number interface {
	~int32 | ~float64
}

// WriteFile writes g to path as a corner-registered ESRI ASCII grid,
// replacing any existing file.
func WriteFile[T Number](path string, g *raster.Grid[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("write %s: %v", path, r)
		}
	}()

	xmin, ymin, xmax, ymax := g.Extent()
	cfg := gsr.NewDefaultRasterConfig()
	cfg.RasterFormat = gsr.RT_ArcGisAsciiRaster
	cfg.NoDataValue = float64(g.NoData)
	cfg.InitialValue = float64(g.NoData)
	dst, err := gsr.CreateNewRaster(path, g.NY, g.NX, ymax, ymin, xmax, xmin, cfg)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	values := make([]float64, g.Len())
	for y := 0; y < g.NY; y++ {
		row := g.NY - 1 - y
		for x := 0; x < g.NX; x++ {
			values[row*g.NX+x] = float64(g.At(x, y))
		}
	}
	dst.SetData(values)
	if err := dst.Save(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Package shpsink writes basin polygons and their statistics to ESRI
// shapefiles.
package shpsink

import (
	"fmt"
	"os"
	"strings"

	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"

	"github.com/katalvlaran/drainflow/basin"
)

// Fields lists the attribute columns written for every basin, in order.
var Fields = []goshp.Field{
	goshp.NumberField("id", 10),
	goshp.FloatField("outlet_x", 18, 3),
	goshp.FloatField("outlet_y", 18, 3),
	goshp.NumberField("cells", 10),
	goshp.FloatField("area", 18, 2),
	goshp.FloatField("perimeter", 18, 2),
	goshp.FloatField("z_mean", 12, 3),
	goshp.FloatField("relief", 12, 3),
	goshp.FloatField("dist_mean", 14, 2),
	goshp.FloatField("dist_max", 14, 2),
	goshp.FloatField("kc", 8, 4),
	goshp.StringField("shape", 40),
	goshp.FloatField("rect_len", 14, 2),
	goshp.FloatField("rect_wid", 14, 2),
	goshp.FloatField("tc_hours", 12, 4),
	goshp.NumberField("down", 10),
	goshp.NumberField("up", 10),
}

// Write stores basins as polygons in the shapefile path (".shp" is added if
// missing). Existing files of the same name are replaced. Basins without a
// boundary are skipped; the number of written records is returned.
func Write(path string, basins []basin.Basin) (int, error) {
	if !strings.HasSuffix(path, ".shp") {
		path += ".shp"
	}
	base := strings.TrimSuffix(path, ".shp")
	for _, ext := range []string{".shp", ".prj", ".dbf", ".shx"} {
		os.Remove(base + ext)
	}

	enc, err := shp.NewEncoderFromFields(path, goshp.POLYGON, Fields...)
	if err != nil {
		return 0, fmt.Errorf("shpsink: %w", err)
	}
	n := 0
	for _, b := range basins {
		if len(b.Boundary) == 0 {
			continue
		}
		if err := enc.EncodeFields(b.Boundary, attributes(b)...); err != nil {
			enc.Close()
			return n, fmt.Errorf("shpsink: basin %d: %w", b.ID, err)
		}
		n++
	}
	enc.Close()

	return n, nil
}

func attributes(b basin.Basin) []interface{} {
	return []interface{}{
		int(b.ID),
		b.OutletPoint.X,
		b.OutletPoint.Y,
		b.Cells,
		b.Area,
		b.Perimeter,
		b.ZMean,
		b.Relief(),
		b.DistMean,
		b.DistMax,
		b.Gravelius,
		b.Shape.String(),
		b.RectLength,
		b.RectWidth,
		b.Tc,
		int(b.Downstream),
		b.Upstream,
	}
}

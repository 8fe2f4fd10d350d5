package shpsink

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drainflow/basin"
)

func square(x0, y0, s float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0}, {X: x0, Y: y0 + s}, {X: x0 + s, Y: y0 + s}, {X: x0 + s, Y: y0}, {X: x0, Y: y0},
	}}
}

// trim drops dBase padding.
func trim(s string) string {
	return strings.Trim(s, " \x00")
}

func TestWrite(t *testing.T) {
	basins := []basin.Basin{
		{ID: 1, Cells: 4, Boundary: square(0, 0, 2), Shape: basin.ShapeRound, Tc: -1},
		{ID: 2, Cells: 1},
		{ID: 3, Cells: 9, Boundary: square(5, 5, 3), Downstream: 1, Shape: basin.ShapeOvalOblong},
	}
	path := filepath.Join(t.TempDir(), "basins")

	n, err := Write(path, basins)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "basin without boundary skipped")

	dec, err := shp.NewDecoder(path + ".shp")
	require.NoError(t, err)
	defer dec.Close()

	var ids, shapes, downs []string
	for {
		g, fields, more := dec.DecodeRowFields("id", "shape", "down")
		if !more {
			break
		}
		assert.NotNil(t, g)
		ids = append(ids, trim(fields["id"]))
		shapes = append(shapes, trim(fields["shape"]))
		downs = append(downs, trim(fields["down"]))
	}
	require.NoError(t, dec.Error())
	assert.Equal(t, []string{"1", "3"}, ids)
	assert.Equal(t, []string{basin.ShapeRound.String(), basin.ShapeOvalOblong.String()}, shapes)
	assert.Equal(t, []string{"0", "1"}, downs)
}

package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/drainflow/basin"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

func (c *CLI) printSuccess(format string, args ...any) {
	fmt.Fprintln(c.Out, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (c *CLI) printFile(path string) {
	fmt.Fprintln(c.Out, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func (c *CLI) printDetail(format string, args ...any) {
	fmt.Fprintln(c.Out, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// maxTableRows caps the basin summary; the shapefile holds every record.
const maxTableRows = 20

// basinTable renders the largest basins as a table.
func basinTable(title string, basins []basin.Basin) string {
	rows := make([][]string, 0, min(len(basins), maxTableRows))
	for _, b := range largest(basins, maxTableRows) {
		rows = append(rows, []string{
			strconv.Itoa(int(b.ID)),
			strconv.Itoa(b.Cells),
			strconv.FormatFloat(b.Area, 'f', 0, 64),
			strconv.FormatFloat(b.Relief(), 'f', 1, 64),
			strconv.FormatFloat(b.DistMax, 'f', 0, 64),
			strconv.FormatFloat(b.Gravelius, 'f', 2, 64),
			b.Shape.String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Cells", "Area", "Relief", "Longest path", "Kc", "Shape").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return styleTitle.Render(title) + "\n" + t.Render()
}

// largest returns up to n basins by descending cell count, ties by ID.
func largest(basins []basin.Basin, n int) []basin.Basin {
	out := append([]basin.Basin(nil), basins...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cells != out[j].Cells {
			return out[i].Cells > out[j].Cells
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > n {
		out = out[:n]
	}

	return out
}

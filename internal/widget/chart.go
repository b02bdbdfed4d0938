package widget

import (
	"fmt"
	"strings"

	"MarketBoard/internal/model"
)

// LineChart plots a cumulative-change series as a fixed-height block chart,
// one point per column, trimmed to the trailing `width` points. The zero
// baseline is drawn across empty cells; gap points leave their column
// blank.
func LineChart(points []model.ChartPoint, width, height int) string {
	if width <= 0 {
		width = 72
	}
	if height <= 0 {
		height = 10
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}

	vmin, vmax := 0.0, 0.0
	plotted := 0
	for _, p := range points {
		if !p.IsPlottable() {
			continue
		}
		plotted++
		if p.Value < vmin {
			vmin = p.Value
		}
		if p.Value > vmax {
			vmax = p.Value
		}
	}
	if plotted == 0 {
		return UnavailableText
	}
	if vmax == vmin {
		vmax = vmin + 1
	}

	row := func(v float64) int {
		r := int((vmax - v) / (vmax - vmin) * float64(height-1))
		if r < 0 {
			r = 0
		}
		if r > height-1 {
			r = height - 1
		}
		return r
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", len(points)))
	}
	for col, p := range points {
		if p.IsPlottable() {
			grid[row(p.Value)][col] = '•'
		}
	}
	baseline := row(0)
	for col, c := range grid[baseline] {
		if c == ' ' {
			grid[baseline][col] = '┈'
		}
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		switch r {
		case 0:
			fmt.Fprintf(&b, "%+7.2f%% ┤", vmax)
		case height - 1:
			fmt.Fprintf(&b, "%+7.2f%% ┤", vmin)
		case baseline:
			fmt.Fprintf(&b, "%8s ┼", "0")
		default:
			b.WriteString(strings.Repeat(" ", 9) + "│")
		}
		b.WriteString(string(grid[r]))
		if r < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

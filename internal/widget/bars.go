package widget

import (
	"fmt"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"MarketBoard/internal/model"
)

// Bar is one labelled entry of a signed horizontal bar chart.
type Bar struct {
	Label   string
	Value   float64 // percent
	Missing bool    // no reading for this entry
}

// SignedBars renders labelled bars around a shared zero axis, negative
// values growing left, positive growing right. `halfWidth` is the maximum
// bar length per side.
func SignedBars(bars []Bar, halfWidth int) string {
	if len(bars) == 0 {
		return UnavailableText
	}
	if halfWidth <= 0 {
		halfWidth = 24
	}

	labelWidth := 0
	maxAbs := 0.0
	for _, bar := range bars {
		if len(bar.Label) > labelWidth {
			labelWidth = len(bar.Label)
		}
		if !bar.Missing && finite(bar.Value) && math.Abs(bar.Value) > maxAbs {
			maxAbs = math.Abs(bar.Value)
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	var b strings.Builder
	for i, bar := range bars {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s ", labelWidth, bar.Label)
		if bar.Missing || !finite(bar.Value) {
			b.WriteString(strings.Repeat(" ", halfWidth) + "│" + strings.Repeat(" ", halfWidth+1) + "--")
			continue
		}
		n := int(math.Abs(bar.Value)/maxAbs*float64(halfWidth) + 0.5)
		if bar.Value < 0 {
			b.WriteString(strings.Repeat(" ", halfWidth-n))
			b.WriteString(text.FgRed.Sprint(strings.Repeat("█", n)))
			b.WriteString("│" + strings.Repeat(" ", halfWidth+1))
		} else {
			b.WriteString(strings.Repeat(" ", halfWidth) + "│")
			b.WriteString(text.FgGreen.Sprint(strings.Repeat("█", n)))
			b.WriteString(strings.Repeat(" ", halfWidth-n+1))
		}
		fmt.Fprintf(&b, "%+.2f%%", bar.Value)
	}
	return b.String()
}

// BreadthBar renders the advancers/decliners/neutral split as a single
// proportional bar with a count legend.
func BreadthBar(b *model.Breadth, width int) string {
	if b == nil || b.Counted() == 0 {
		return UnavailableText
	}
	if width <= 0 {
		width = 40
	}

	total := b.Counted()
	advW := b.Advancers * width / total
	decW := b.Decliners * width / total
	neuW := width - advW - decW

	var sb strings.Builder
	sb.WriteString(text.FgGreen.Sprint(strings.Repeat("█", advW)))
	sb.WriteString(text.FgHiBlack.Sprint(strings.Repeat("█", neuW)))
	sb.WriteString(text.FgRed.Sprint(strings.Repeat("█", decW)))
	fmt.Fprintf(&sb, "\n↑%d  →%d  ↓%d  (%d/%d)", b.Advancers, b.Neutral, b.Decliners, total, b.TotalSymbols)
	return sb.String()
}

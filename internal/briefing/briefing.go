// Package briefing builds the markdown morning briefing from a snapshot
// and renders it for the terminal.
package briefing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"MarketBoard/internal/calculator"
	"MarketBoard/internal/model"
	"MarketBoard/internal/widget"
)

// Markdown formats the briefing. Each section degrades to the fixed
// fallback text on its own; one missing dataset never empties the page.
func Markdown(snap *model.Snapshot, indices []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# 市场晨报 | %s\n\n", snap.FetchedAt.Format("2006-01-02")))

	b.WriteString("## 核心指数\n\n")
	if snap.Market == nil || len(indices) == 0 {
		b.WriteString(widget.UnavailableText + "\n")
	} else {
		for _, symbol := range indices {
			price, change, ok := calculator.LatestChange(snap.Market.History(symbol))
			if !ok {
				continue
			}
			if !math.IsNaN(change) && !math.IsInf(change, 0) {
				b.WriteString(fmt.Sprintf("- **%s** %.2f (%+.2f%%)\n", symbol, price, change))
			} else {
				b.WriteString(fmt.Sprintf("- **%s** %.2f\n", symbol, price))
			}
		}
	}

	b.WriteString("\n## 市场情绪\n\n")
	if s := snap.Sentiment; s != nil {
		b.WriteString(fmt.Sprintf("恐惧贪婪指数 **%.0f** · %s\n", s.Value, s.Classification))
	} else {
		b.WriteString(widget.UnavailableText + "\n")
	}

	b.WriteString("\n## 市场宽度\n\n")
	if br := snap.Breadth; br != nil {
		b.WriteString(fmt.Sprintf("上涨 %d · 下跌 %d · 平盘 %d (共 %d)\n",
			br.Advancers, br.Decliners, br.Neutral, br.TotalSymbols))
	} else {
		b.WriteString(widget.UnavailableText + "\n")
	}

	b.WriteString("\n## HIBOR\n\n")
	if r := snap.Rates; r != nil && len(r.Rates) > 0 {
		tenors := make([]string, 0, len(r.Rates))
		for tenor := range r.Rates {
			tenors = append(tenors, tenor)
		}
		sort.Strings(tenors)
		parts := make([]string, 0, len(tenors))
		for _, tenor := range tenors {
			parts = append(parts, fmt.Sprintf("%s %.2f%%", tenor, r.Rates[tenor]))
		}
		b.WriteString(strings.Join(parts, " · ") + "\n")
	} else {
		b.WriteString(widget.UnavailableText + "\n")
	}

	b.WriteString("\n## 观点\n\n")
	if a := snap.Analysis; a != nil {
		b.WriteString(a.Analysis + "\n\n")
		if a.Prediction7d != "" {
			b.WriteString(fmt.Sprintf("> 7日展望: %s", a.Prediction7d))
			if a.Confidence != "" {
				b.WriteString(fmt.Sprintf(" (%s)", a.Confidence))
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString(widget.UnavailableText + "\n")
	}

	return b.String()
}

// Render renders the briefing markdown with the configured standard style
// ("dark" or "light"). On renderer failure the raw markdown comes back, the
// content matters more than the styling.
func Render(markdown, theme string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

package dashboard

import (
	"fmt"
	"strings"

	"MarketBoard/internal/calculator"
	"MarketBoard/internal/model"
	"MarketBoard/internal/widget"
)

// rangeDays is the trailing window scanned for the overview range column.
const rangeDays = 60

// Options selects what the board renders. Symbol lists come from config;
// Period applies to every windowed computation on the page.
type Options struct {
	Indices  []string
	Thematic []string
	Sectors  []string
	Funds    []string
	Period   model.Period
	Width    int
}

// Board renders pages from one immutable snapshot. Changing the period
// yields a new Board over the same snapshot; no render method performs I/O,
// so user-triggered filter changes are synchronous recomputations.
type Board struct {
	snap *model.Snapshot
	opts Options
}

func New(snap *model.Snapshot, opts Options) *Board {
	if opts.Width <= 0 {
		opts.Width = 72
	}
	return &Board{snap: snap, opts: opts}
}

// WithPeriod returns a board over the same snapshot with a new period.
func (b *Board) WithPeriod(p model.Period) *Board {
	opts := b.opts
	opts.Period = p
	return &Board{snap: b.snap, opts: opts}
}

// Overview renders the headline page: index cards, market breadth, and a
// one-line sentiment summary.
func (b *Board) Overview() string {
	sections := []string{
		b.quoteSection("核心指数", b.opts.Indices, true),
	}
	if len(b.opts.Thematic) > 0 {
		sections = append(sections, b.quoteSection("主题板块", b.opts.Thematic, true))
	}
	sections = append(sections,
		"市场宽度\n"+widget.BreadthBar(b.snap.Breadth, b.opts.Width/2),
		b.sentimentLine(),
	)
	return strings.Join(sections, "\n\n")
}

// Sectors renders the fund-flow page: daily signed bars plus the windowed
// cumulative change per sector.
func (b *Board) Sectors() string {
	if b.snap.Market == nil || len(b.opts.Sectors) == 0 {
		return widget.Unavailable("行业资金流向")
	}

	bars := make([]widget.Bar, 0, len(b.opts.Sectors))
	periodBars := make([]widget.Bar, 0, len(b.opts.Sectors))
	for _, symbol := range b.opts.Sectors {
		h := b.snap.Market.History(symbol)
		_, dayChange, ok := calculator.LatestChange(h)
		bars = append(bars, widget.Bar{Label: symbol, Value: dayChange, Missing: !ok})

		periodChange, ok := calculator.PeriodChange(h, b.opts.Period)
		periodBars = append(periodBars, widget.Bar{Label: symbol, Value: periodChange, Missing: !ok})
	}

	var sb strings.Builder
	sb.WriteString("行业资金流向 | 当日\n")
	sb.WriteString(widget.SignedBars(bars, b.opts.Width/3))
	fmt.Fprintf(&sb, "\n\n累计涨跌 | %s\n", b.opts.Period)
	sb.WriteString(widget.SignedBars(periodBars, b.opts.Width/3))
	return sb.String()
}

// Funds renders the money-market fund quote page.
func (b *Board) Funds() string {
	return b.quoteSection("货币基金", b.opts.Funds, false)
}

// Rates renders the HIBOR card.
func (b *Board) Rates() string {
	return widget.RatesCard(b.snap.Rates)
}

// Sentiment renders the fear/greed page: gauge plus the history sparkline.
func (b *Board) Sentiment() string {
	if b.snap.Sentiment == nil {
		return widget.Unavailable("恐惧贪婪指数")
	}
	s := b.snap.Sentiment

	var sb strings.Builder
	sb.WriteString("恐惧贪婪指数\n")
	sb.WriteString(widget.Gauge(s.Value, s.Classification, b.opts.Width/2))

	if len(b.snap.SentimentHistory) > 0 {
		values := make([]float64, len(b.snap.SentimentHistory))
		for i, pt := range b.snap.SentimentHistory {
			values[i] = pt.Value
		}
		windowed := calculator.Window(values, b.opts.Period)
		if spark := widget.Sparkline(windowed, b.opts.Width); spark != "" {
			fmt.Fprintf(&sb, "\n\n历史走势 | %s\n%s", b.opts.Period, spark)
		}
	}
	return sb.String()
}

// Chart renders a windowed cumulative-change chart per requested symbol.
func (b *Board) Chart(symbols []string) string {
	if b.snap.Market == nil || len(symbols) == 0 {
		return widget.Unavailable("走势图")
	}

	sections := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		series := b.CumulativeSeries(symbol)
		if len(series) == 0 {
			sections = append(sections, widget.Unavailable(symbol))
			continue
		}
		header := fmt.Sprintf("%s | %s", symbol, b.opts.Period)
		if change, ok := calculator.PeriodChange(b.snap.Market.History(symbol), b.opts.Period); ok {
			header = fmt.Sprintf("%s | %s | %+.2f%%", symbol, b.opts.Period, change)
		}
		sections = append(sections, header+"\n"+widget.LineChart(series, b.opts.Width, 10))
	}
	return strings.Join(sections, "\n\n")
}

// CumulativeSeries computes the windowed cumulative-change series for one
// symbol, for charting and for the export command.
func (b *Board) CumulativeSeries(symbol string) []model.ChartPoint {
	h := b.snap.Market.History(symbol)
	return calculator.Cumulative(calculator.Window(h, b.opts.Period))
}

// Full renders every page; watch mode prints this on each refresh.
func (b *Board) Full() string {
	return strings.Join([]string{
		b.Overview(),
		b.Sectors(),
		b.Funds(),
		b.Rates(),
		b.Sentiment(),
	}, "\n\n")
}

// quoteSection builds one quote table over the given symbols. A missing
// market dataset or an empty symbol list renders the fallback widget.
func (b *Board) quoteSection(title string, symbols []string, showRange bool) string {
	if b.snap.Market == nil || len(symbols) == 0 {
		return widget.Unavailable(title)
	}

	rows := make([]widget.QuoteRow, 0, len(symbols))
	for _, symbol := range symbols {
		h := b.snap.Market.History(symbol)
		price, dayChange, ok := calculator.LatestChange(h)
		if !ok {
			continue // absent symbol: rendered identically to no data at all
		}
		row := widget.QuoteRow{
			Symbol:    symbol,
			Price:     price,
			DayChange: dayChange,
			Spark:     widget.Sparkline(calculator.Window(h, b.opts.Period).Closes(), 20),
		}
		if change, ok := calculator.PeriodChange(h, b.opts.Period); ok {
			row.PeriodChange = change
			row.HasPeriod = true
		}
		if showRange {
			if pos, err := calculator.RangePosition(h, rangeDays); err == nil {
				row.RangePos = pos
				row.HasRange = true
			}
		}
		rows = append(rows, row)
	}
	return widget.QuoteTable(widget.QuoteTableOptions{
		Title:       title,
		PeriodLabel: string(b.opts.Period),
		ShowRange:   showRange,
	}, rows)
}

// sentimentLine is the one-line summary shown on the overview page.
func (b *Board) sentimentLine() string {
	if b.snap.Sentiment == nil {
		return "市场情绪: " + widget.UnavailableText
	}
	s := b.snap.Sentiment
	return fmt.Sprintf("市场情绪: %.0f · %s", s.Value, s.Classification)
}

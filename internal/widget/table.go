package widget

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"MarketBoard/internal/model"
)

// QuoteRow is one symbol's line of a quote table.
type QuoteRow struct {
	Symbol       string
	Price        float64
	DayChange    float64 // percent; NaN when the feed had no reading
	PeriodChange float64
	HasPeriod    bool
	RangePos     float64 // 0.0~1.0 within the trailing range
	HasRange     bool
	Spark        string
}

// QuoteTableOptions configures the one parameterized quote-table renderer;
// the index board and the fund board are the same widget with different
// options.
type QuoteTableOptions struct {
	Title       string
	PeriodLabel string // header of the period-change column
	ShowRange   bool   // show the trailing-range position column
}

// QuoteTable renders symbol rows into a bordered table. An empty row set
// renders the fallback widget.
func QuoteTable(opts QuoteTableOptions, rows []QuoteRow) string {
	if len(rows) == 0 {
		return Unavailable(opts.Title)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if opts.Title != "" {
		t.SetTitle(opts.Title)
	}

	header := table.Row{"SYMBOL", "CLOSE", "DAY %", opts.PeriodLabel + " %"}
	if opts.ShowRange {
		header = append(header, "60D RANGE")
	}
	header = append(header, "TREND")
	t.AppendHeader(header)

	for _, r := range rows {
		row := table.Row{r.Symbol, fmt.Sprintf("%.2f", r.Price), fmtChange(r.DayChange, true)}
		if r.HasPeriod {
			row = append(row, fmtChange(r.PeriodChange, true))
		} else {
			row = append(row, "--")
		}
		if opts.ShowRange {
			if r.HasRange {
				row = append(row, rangeBar(r.RangePos, 10))
			} else {
				row = append(row, "--")
			}
		}
		row = append(row, r.Spark)
		t.AppendRow(row)
	}
	return t.Render()
}

// RatesCard renders the HIBOR tenor table with its date and source.
func RatesCard(r *model.Rates) string {
	if r == nil || len(r.Rates) == 0 {
		return Unavailable("HIBOR")
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	title := "HIBOR"
	if r.Date != "" {
		title += " | " + r.Date
	}
	t.SetTitle(title)
	t.AppendHeader(table.Row{"TENOR", "RATE"})

	for _, tenor := range sortedTenors(r.Rates) {
		t.AppendRow(table.Row{tenor, fmt.Sprintf("%.2f%%", r.Rates[tenor])})
	}
	out := t.Render()
	if r.Source != "" {
		out += "\n" + text.FgHiBlack.Sprint(r.Source)
	}
	return out
}

// tenorOrder fixes display order for the usual HIBOR tenor tokens; unknown
// tokens sort after them alphabetically.
var tenorOrder = map[string]int{
	"O/N": 0, "1W": 1, "2W": 2, "1M": 3, "2M": 4, "3M": 5, "6M": 6, "12M": 7,
}

func sortedTenors(rates map[string]float64) []string {
	tenors := make([]string, 0, len(rates))
	for tenor := range rates {
		tenors = append(tenors, tenor)
	}
	sort.Slice(tenors, func(i, j int) bool {
		oi, iok := tenorOrder[tenors[i]]
		oj, jok := tenorOrder[tenors[j]]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return tenors[i] < tenors[j]
	})
	return tenors
}

// fmtChange formats a percentage change, green for gains, red for losses,
// "--" for an unknown reading.
func fmtChange(v float64, colored bool) string {
	if !finite(v) {
		return "--"
	}
	s := fmt.Sprintf("%+.2f%%", v)
	if !colored || v == 0 {
		return s
	}
	if v > 0 {
		return text.FgGreen.Sprint(s)
	}
	return text.FgRed.Sprint(s)
}

// rangeBar marks where a 0~1 position sits on a short track.
func rangeBar(pos float64, width int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	idx := int(math.Round(pos * float64(width-1)))
	track := []rune(strings.Repeat("─", width))
	track[idx] = '◆'
	return string(track)
}

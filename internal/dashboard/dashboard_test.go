package dashboard

import (
	"fmt"
	"strings"
	"testing"

	"MarketBoard/internal/model"
	"MarketBoard/internal/widget"
)

func testSnapshot() *model.Snapshot {
	h := make(model.History, 30)
	for i := range h {
		h[i] = model.HistoryPoint{
			Date:          fmt.Sprintf("2024-01-%02d", i+1),
			Close:         100 + float64(i),
			High:          101 + float64(i),
			Low:           99 + float64(i),
			ChangePercent: 0.5,
		}
	}
	return &model.Snapshot{
		Market: model.MarketHistory{
			"SPY": h,
			"XLK": h,
		},
		Sentiment: &model.Sentiment{Value: 62, Classification: "Greed", Timestamp: 1700000000},
		Breadth:   &model.Breadth{Date: "2024-01-30", Advancers: 10, Decliners: 5, Neutral: 5, TotalSymbols: 20},
		Rates:     &model.Rates{Date: "2024-01-30", Rates: map[string]float64{"1M": 4.85}},
	}
}

func defaultOptions() Options {
	return Options{
		Indices: []string{"SPY"},
		Sectors: []string{"XLK"},
		Funds:   []string{"VFIAX"},
		Period:  model.PeriodAll,
	}
}

func TestOverview_RendersQuotesAndSentiment(t *testing.T) {
	b := New(testSnapshot(), defaultOptions())
	got := b.Overview()
	for _, want := range []string{"SPY", "核心指数", "市场宽度", "Greed"} {
		if !strings.Contains(got, want) {
			t.Errorf("overview missing %q:\n%s", want, got)
		}
	}
}

func TestOverview_OneFailedDatasetDoesNotBlockSiblings(t *testing.T) {
	snap := testSnapshot()
	snap.Sentiment = nil // this resource failed to load
	b := New(snap, defaultOptions())

	got := b.Overview()
	if !strings.Contains(got, widget.UnavailableText) {
		t.Error("failed dataset must render the fixed fallback text")
	}
	if !strings.Contains(got, "SPY") {
		t.Error("independent widgets must still render")
	}
	if !strings.Contains(got, "↑10") {
		t.Error("breadth widget must still render")
	}
}

func TestOverview_NoMarketDataFallsBackPerWidget(t *testing.T) {
	snap := testSnapshot()
	snap.Market = nil
	got := New(snap, defaultOptions()).Overview()
	if !strings.Contains(got, widget.UnavailableText) {
		t.Error("missing market data must render the fallback text")
	}
	if !strings.Contains(got, "Greed") {
		t.Error("sentiment line must still render")
	}
}

func TestSectors(t *testing.T) {
	b := New(testSnapshot(), defaultOptions())
	got := b.Sectors()
	if !strings.Contains(got, "XLK") {
		t.Errorf("sector page missing symbol:\n%s", got)
	}
	if !strings.Contains(got, "ALL") {
		t.Errorf("sector page missing period header:\n%s", got)
	}
}

func TestFunds_MissingSymbolRendersLikeNoData(t *testing.T) {
	// VFIAX is configured but absent from the snapshot.
	got := New(testSnapshot(), defaultOptions()).Funds()
	if !strings.Contains(got, widget.UnavailableText) {
		t.Errorf("expected fallback for a fund table with no quotable rows:\n%s", got)
	}
}

func TestChart_PeriodHeaderAndSeries(t *testing.T) {
	b := New(testSnapshot(), defaultOptions())
	got := b.Chart([]string{"SPY", "UNKNOWN"})
	if !strings.Contains(got, "SPY | ALL") {
		t.Errorf("chart missing header:\n%s", got)
	}
	if !strings.Contains(got, widget.UnavailableText) {
		t.Error("unknown symbol must render the fallback widget")
	}
}

func TestWithPeriod_RecomputesWithoutRefetch(t *testing.T) {
	snap := testSnapshot()
	b := New(snap, defaultOptions())

	windowed := b.WithPeriod(model.Period1M)
	series := windowed.CumulativeSeries("SPY")
	if len(series) != 21 {
		t.Fatalf("expected 21 windowed points, got %d", len(series))
	}
	if series[0].Value != 0 {
		t.Errorf("windowed series must rebase at its first point, got %f", series[0].Value)
	}
	// Original board and snapshot are untouched.
	if got := b.CumulativeSeries("SPY"); len(got) != 30 {
		t.Errorf("original board changed: expected 30 points, got %d", len(got))
	}
	if len(snap.Market.History("SPY")) != 30 {
		t.Error("snapshot history must never be mutated")
	}
}

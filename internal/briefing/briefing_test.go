package briefing

import (
	"strings"
	"testing"
	"time"

	"MarketBoard/internal/model"
	"MarketBoard/internal/widget"
)

func TestMarkdown_FullSnapshot(t *testing.T) {
	snap := &model.Snapshot{
		Market: model.MarketHistory{
			"SPY": {{Date: "2024-01-05", Close: 512.34, ChangePercent: 1.2}},
		},
		Sentiment: &model.Sentiment{Value: 62, Classification: "Greed"},
		Breadth:   &model.Breadth{Advancers: 10, Decliners: 5, Neutral: 5, TotalSymbols: 20},
		Rates:     &model.Rates{Rates: map[string]float64{"1M": 4.85, "3M": 5.05}},
		Analysis: &model.Analysis{
			Analysis:     "The S&P 500 has shown a positive trend.",
			Prediction7d: "Slightly Bullish",
			Confidence:   "Medium",
		},
		FetchedAt: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
	}

	md := Markdown(snap, []string{"SPY"})
	for _, want := range []string{
		"# 市场晨报 | 2024-01-05",
		"**SPY** 512.34 (+1.20%)",
		"恐惧贪婪指数 **62** · Greed",
		"上涨 10 · 下跌 5",
		"1M 4.85%",
		"Slightly Bullish",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("briefing missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, widget.UnavailableText) {
		t.Error("a full snapshot must not render any fallback text")
	}
}

func TestMarkdown_MissingSectionsFallBackIndependently(t *testing.T) {
	snap := &model.Snapshot{
		Sentiment: &model.Sentiment{Value: 30, Classification: "Fear"},
		FetchedAt: time.Now(),
	}
	md := Markdown(snap, []string{"SPY"})
	if n := strings.Count(md, widget.UnavailableText); n != 4 {
		t.Errorf("expected 4 fallback sections, got %d:\n%s", n, md)
	}
	if !strings.Contains(md, "Fear") {
		t.Error("present sections must still render")
	}
}

func TestRender_FallsBackToRawMarkdown(t *testing.T) {
	md := "# title\n\nbody\n"
	out := Render(md, "dark")
	if out == "" {
		t.Fatal("render must never return empty output")
	}
	if !strings.Contains(out, "title") {
		t.Errorf("rendered output lost the content:\n%q", out)
	}
}

package recorder

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"MarketBoard/internal/model"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	rec := &RefreshRecord{
		FetchedAt: time.Now(),
		Quotes: []QuoteRecord{
			{Symbol: "SPY", Close: 512.34, ChangePercent: 1.2},
			{Symbol: "VIX", Close: 14.2, ChangePercent: math.NaN()},
		},
		Sentiment: &model.Sentiment{Value: 62, Classification: "Greed"},
		Rates:     &model.Rates{Rates: map[string]float64{"1M": 4.85, "3M": 5.05}},
		Breadth:   &model.Breadth{Advancers: 10, Decliners: 5, Neutral: 5, TotalSymbols: 20},
	}
	if err := r.RecordRefresh(rec); err != nil {
		t.Fatalf("record refresh: %v", err)
	}

	var quotes, nullChanges, tenors int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM quotes`).Scan(&quotes); err != nil {
		t.Fatal(err)
	}
	if quotes != 2 {
		t.Errorf("expected 2 quote rows, got %d", quotes)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM quotes WHERE change_percent IS NULL`).Scan(&nullChanges); err != nil {
		t.Fatal(err)
	}
	if nullChanges != 1 {
		t.Errorf("NaN change must be stored as NULL, got %d null rows", nullChanges)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM hibor_readings`).Scan(&tenors); err != nil {
		t.Fatal(err)
	}
	if tenors != 2 {
		t.Errorf("expected 2 tenor rows, got %d", tenors)
	}
}

func TestFromSnapshot_SkipsUnquotableSymbols(t *testing.T) {
	snap := &model.Snapshot{
		Market: model.MarketHistory{
			"SPY": {{Date: "2024-01-05", Close: 512.34, ChangePercent: 1.2}},
		},
		FetchedAt: time.Now(),
	}
	rec := FromSnapshot(snap, []string{"SPY", "MISSING"})
	if len(rec.Quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(rec.Quotes))
	}
	if rec.Quotes[0].Symbol != "SPY" {
		t.Errorf("expected SPY, got %s", rec.Quotes[0].Symbol)
	}
}

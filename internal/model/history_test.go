package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestHistoryPoint_CanonicalKeys(t *testing.T) {
	doc := `{"date": "2024-01-05", "open": 99.5, "high": 101, "low": 99, "close": 100.5,
		"volume": 1200000, "change_percent": 0.8, "volume_change_percent": -3.2}`
	var p HistoryPoint
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Date != "2024-01-05" || p.Close != 100.5 || p.Volume != 1200000 {
		t.Errorf("unexpected point: %+v", p)
	}
	if p.ChangePercent != 0.8 || p.VolumeChangePercent != -3.2 {
		t.Errorf("unexpected changes: %+v", p)
	}
}

func TestHistoryPoint_LegacyPandasKeys(t *testing.T) {
	doc := `{"Date": "2024-01-05", "Open": 99.5, "High": 101, "Low": 99, "Close": 100.5,
		"Volume": 1200000.0, "Change_Pct": 0.8}`
	var p HistoryPoint
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Date != "2024-01-05" {
		t.Errorf("expected legacy Date to bind, got %q", p.Date)
	}
	if p.Close != 100.5 {
		t.Errorf("expected legacy Close to bind, got %f", p.Close)
	}
	if p.Volume != 1200000 {
		t.Errorf("expected float Volume to decode, got %d", p.Volume)
	}
	if p.ChangePercent != 0.8 {
		t.Errorf("expected legacy Change_Pct to bind, got %f", p.ChangePercent)
	}
}

func TestHistoryPoint_MissingChangeIsNaN(t *testing.T) {
	doc := `{"date": "2024-01-05", "close": 100, "change_percent": null}`
	var p HistoryPoint
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !math.IsNaN(p.ChangePercent) {
		t.Errorf("a missing change means unknown, not unchanged: got %f", p.ChangePercent)
	}
}

func TestHistoryPoint_Day(t *testing.T) {
	p := HistoryPoint{Date: "2024-01-05"}
	day, err := p.Day()
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if day.Year() != 2024 || day.Month() != 1 || day.Day() != 5 {
		t.Errorf("unexpected day: %v", day)
	}

	ts := HistoryPoint{Date: "2024-01-05T00:00:00Z"}
	if _, err := ts.Day(); err != nil {
		t.Errorf("timestamp form must be tolerated: %v", err)
	}

	bad := HistoryPoint{Date: "05/01/2024"}
	if _, err := bad.Day(); err == nil {
		t.Error("expected error for an unparseable date")
	}
}

func TestMarketHistory_AbsentSymbol(t *testing.T) {
	var m MarketHistory
	if got := m.History("SPY"); got != nil {
		t.Errorf("nil map must yield nil history, got %v", got)
	}
	m = MarketHistory{"SPY": {{Date: "2024-01-05", Close: 100}}}
	if got := m.History("QQQ"); got != nil {
		t.Errorf("absent symbol must yield nil history, got %v", got)
	}
}

func TestSentiment_ValueForms(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want float64
	}{
		{"number", `{"value": 62, "classification": "Greed"}`, 62},
		{"string", `{"value": "62", "classification": "Greed"}`, 62},
		{"null", `{"value": null, "classification": "Greed"}`, 0},
	}
	for _, tt := range tests {
		var s Sentiment
		if err := json.Unmarshal([]byte(tt.doc), &s); err != nil {
			t.Errorf("%s: unmarshal: %v", tt.name, err)
			continue
		}
		if s.Value != tt.want {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, s.Value)
		}
	}
}

func TestSentimentPoint_Day(t *testing.T) {
	byDate := SentimentPoint{Date: "2024-01-05"}
	if _, ok := byDate.Day(); !ok {
		t.Error("expected day from date field")
	}
	byTS := SentimentPoint{Timestamp: 1704412800}
	if day, ok := byTS.Day(); !ok || day.Year() != 2024 {
		t.Errorf("expected day from timestamp, got %v %v", day, ok)
	}
	if _, ok := (SentimentPoint{}).Day(); ok {
		t.Error("expected no day for an empty point")
	}
}

package model

import (
	"encoding/json"
	"math"
	"time"
)

// HistoryPoint is one trading day's observation for a single symbol.
//
// The canonical schema uses lower-case keys (date, close, change_percent).
// The sync process historically emitted pandas-cased keys (Date, Close,
// Change_Pct); UnmarshalJSON accepts both spellings and normalizes here.
type HistoryPoint struct {
	Date                string  `json:"date"`
	Open                float64 `json:"open"`
	High                float64 `json:"high"`
	Low                 float64 `json:"low"`
	Close               float64 `json:"close"`
	Volume              int64   `json:"volume"`
	ChangePercent       float64 `json:"change_percent"`
	VolumeChangePercent float64 `json:"volume_change_percent"`
}

// historyPointJSON carries both canonical and legacy keys. Matching is
// case-insensitive, so "date" also binds "Date" and "change_pct" binds
// "Change_Pct"; only genuinely different names need a second field.
type historyPointJSON struct {
	Date                string       `json:"date"`
	Open                *float64     `json:"open"`
	High                *float64     `json:"high"`
	Low                 *float64     `json:"low"`
	Close               *float64     `json:"close"`
	Volume              *json.Number `json:"volume"`
	ChangePercent       *float64     `json:"change_percent"`
	ChangePct           *float64     `json:"change_pct"`
	VolumeChangePercent *float64     `json:"volume_change_percent"`
	VolumeChangePct     *float64     `json:"volume_change_pct"`
}

func (p *HistoryPoint) UnmarshalJSON(data []byte) error {
	var raw historyPointJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Date = raw.Date
	p.Open = floatOrZero(raw.Open)
	p.High = floatOrZero(raw.High)
	p.Low = floatOrZero(raw.Low)
	p.Close = floatOrZero(raw.Close)

	if raw.Volume != nil {
		// pandas serializes Volume as a float; accept either form.
		if f, err := raw.Volume.Float64(); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			p.Volume = int64(f)
		}
	}

	// A missing change is NaN, not zero: zero means "unchanged".
	p.ChangePercent = floatOrNaN(raw.ChangePercent, raw.ChangePct)
	p.VolumeChangePercent = floatOrNaN(raw.VolumeChangePercent, raw.VolumeChangePct)
	return nil
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrNaN(canonical, legacy *float64) float64 {
	if canonical != nil {
		return *canonical
	}
	if legacy != nil {
		return *legacy
	}
	return math.NaN()
}

// Day parses the point's calendar date. Dates are day-precision ISO-8601;
// a full timestamp form is tolerated for older snapshot revisions.
func (p HistoryPoint) Day() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", p.Date); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, p.Date)
}

// History is the ordered daily series for one symbol, ascending by date with
// unique dates. It is read-only input: nothing downstream may mutate it.
type History []HistoryPoint

// Closes extracts the close column.
func (h History) Closes() []float64 {
	closes := make([]float64, len(h))
	for i, p := range h {
		closes[i] = p.Close
	}
	return closes
}

// Last returns the most recent point, if any.
func (h History) Last() (HistoryPoint, bool) {
	if len(h) == 0 {
		return HistoryPoint{}, false
	}
	return h[len(h)-1], true
}

// MarketHistory keys each symbol's daily series, mirroring the layout of
// market_data_history.json.
type MarketHistory map[string]History

// History returns the series for symbol, or nil when the symbol is absent.
// Absent and empty are rendered identically downstream.
func (m MarketHistory) History(symbol string) History {
	if m == nil {
		return nil
	}
	return m[symbol]
}

// ChartPoint is one plotted point of a derived series.
type ChartPoint struct {
	TS    int64   `json:"x"` // epoch milliseconds
	Value float64 `json:"y"` // percent deviation from the series base
	Gap   bool    `json:"-"` // value is undefined; draw a gap, not a zero
}

// IsPlottable reports whether the point carries a drawable value.
func (c ChartPoint) IsPlottable() bool {
	return !c.Gap && !math.IsNaN(c.Value) && !math.IsInf(c.Value, 0)
}

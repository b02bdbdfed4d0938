package calculator

import (
	"errors"
	"math"

	"MarketBoard/internal/model"
)

// LatestChange returns the most recent close and its daily change percent.
// ok is false for an empty series. A missing change decodes as NaN and is
// passed through; table renderers blank it rather than printing 0.
func LatestChange(history model.History) (price, changePercent float64, ok bool) {
	last, ok := history.Last()
	if !ok {
		return 0, 0, false
	}
	return last.Close, last.ChangePercent, true
}

// RangePosition scans the most recent `days` points and returns where the
// latest close sits within that high/low range (0.0~1.0).
func RangePosition(history model.History, days int) (float64, error) {
	if len(history) == 0 {
		return 0, errors.New("no history provided")
	}
	if days <= 0 {
		return 0, errors.New("days must be positive")
	}
	n := len(history)
	start := n - days
	if start < 0 {
		start = 0
	}
	high := math.Inf(-1)
	low := math.Inf(1)
	for i := start; i < n; i++ {
		h, l := history[i].High, history[i].Low
		// Mutual-fund rows carry only a close.
		if h == 0 && l == 0 {
			h, l = history[i].Close, history[i].Close
		}
		if h > high {
			high = h
		}
		if l < low {
			low = l
		}
	}
	if high == low {
		return 0.5, nil
	}
	pos := (history[n-1].Close - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}

// PeriodChange returns the cumulative percentage change over the windowed
// period: the last value of Cumulative(Window(history, p)). ok is false for
// an empty series or an undefined (zero-base) change.
func PeriodChange(history model.History, p model.Period) (float64, bool) {
	series := Cumulative(Window(history, p))
	if len(series) == 0 {
		return 0, false
	}
	last := series[len(series)-1]
	if !last.IsPlottable() {
		return 0, false
	}
	return last.Value, true
}

// AdvancerRatio returns the advancing share of counted symbols (0.0~1.0).
func AdvancerRatio(b *model.Breadth) (float64, bool) {
	if b == nil || b.Counted() == 0 {
		return 0, false
	}
	return float64(b.Advancers) / float64(b.Counted()), true
}

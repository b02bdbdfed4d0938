package calculator

import (
	"math"

	"MarketBoard/internal/model"
)

// Cumulative converts a close series into percentage deviation from its
// first point. The output parallels the input: same length, same order,
// and the first value is exactly 0 (it is its own baseline).
//
// A zero base price makes every deviation undefined; such points carry the
// Gap flag so chart renderers draw a hole instead of a plotted zero.
func Cumulative(history model.History) []model.ChartPoint {
	if len(history) == 0 {
		return nil
	}
	base := history[0].Close
	out := make([]model.ChartPoint, len(history))
	for i, pt := range history {
		var ts int64
		if day, err := pt.Day(); err == nil {
			ts = day.UTC().UnixMilli()
		}
		v := (pt.Close - base) / base * 100
		out[i] = model.ChartPoint{
			TS:    ts,
			Value: v,
			Gap:   math.IsNaN(v) || math.IsInf(v, 0),
		}
	}
	return out
}

package calculator

import "MarketBoard/internal/model"

// Window returns the trailing sub-series for the requested period: the last
// TradingDays(p) elements, or the whole input when it is shorter or the
// period is ALL. The result is a contiguous suffix sharing the input's
// backing array; callers must treat both slices as read-only.
//
// It is total: no error cases, empty in means empty out.
func Window[S ~[]E, E any](points S, p model.Period) S {
	days := p.TradingDays()
	if days <= 0 || len(points) <= days {
		return points
	}
	return points[len(points)-days:]
}

package model

import "strings"

// Period selects the trailing window of a daily series.
type Period string

const (
	Period1M  Period = "1M"
	Period3M  Period = "3M"
	Period6M  Period = "6M"
	PeriodAll Period = "ALL"
)

// tradingDays maps each period token to its trailing trading-day count.
// These approximate trading days, not calendar days; chart parity with the
// original dashboard depends on the exact values.
var tradingDays = map[Period]int{
	Period1M: 21,
	Period3M: 63,
	Period6M: 126,
}

// TradingDays returns the trailing trading-day count for p.
// It returns 0 for ALL, meaning the entire series.
func (p Period) TradingDays() int {
	return tradingDays[p]
}

// ParsePeriod normalizes a period token. Unknown tokens map to ALL: an
// unrecognized filter must never trim data.
func ParsePeriod(s string) Period {
	switch Period(strings.ToUpper(strings.TrimSpace(s))) {
	case Period1M:
		return Period1M
	case Period3M:
		return Period3M
	case Period6M:
		return Period6M
	default:
		return PeriodAll
	}
}

// Periods lists the selectable tokens in display order.
func Periods() []Period {
	return []Period{Period1M, Period3M, Period6M, PeriodAll}
}

package model

import "testing"

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"1M", Period1M},
		{"3m", Period3M},
		{" 6M ", Period6M},
		{"ALL", PeriodAll},
		{"all", PeriodAll},
		// Unknown defaults to no trimming, by policy.
		{"1Y", PeriodAll},
		{"", PeriodAll},
		{"garbage", PeriodAll},
	}
	for _, tt := range tests {
		if got := ParsePeriod(tt.in); got != tt.want {
			t.Errorf("ParsePeriod(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestTradingDays(t *testing.T) {
	tests := []struct {
		period Period
		want   int
	}{
		{Period1M, 21},
		{Period3M, 63},
		{Period6M, 126},
		{PeriodAll, 0},
	}
	for _, tt := range tests {
		if got := tt.period.TradingDays(); got != tt.want {
			t.Errorf("%s: expected %d trading days, got %d", tt.period, tt.want, got)
		}
	}
}

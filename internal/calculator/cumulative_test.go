package calculator

import (
	"math"
	"testing"

	"MarketBoard/internal/model"
)

func TestCumulative_DeviationFromFirstClose(t *testing.T) {
	h := model.History{
		{Date: "2024-01-01", Close: 100},
		{Date: "2024-01-02", Close: 110},
		{Date: "2024-01-03", Close: 90},
	}
	got := Cumulative(h)
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	want := []float64{0, 10, -10}
	for i, w := range want {
		if math.Abs(got[i].Value-w) > 1e-9 {
			t.Errorf("point %d: expected %.1f%%, got %f%%", i, w, got[i].Value)
		}
		if got[i].Gap {
			t.Errorf("point %d: unexpected gap", i)
		}
	}
	if got[0].Value != 0 {
		t.Error("first point must be exactly 0, it is its own baseline")
	}
}

func TestCumulative_TimestampsFromDates(t *testing.T) {
	h := model.History{{Date: "2024-01-02", Close: 50}}
	got := Cumulative(h)
	// 2024-01-02T00:00:00Z
	if want := int64(1704153600000); got[0].TS != want {
		t.Errorf("expected epoch millis %d, got %d", want, got[0].TS)
	}
}

func TestCumulative_EmptyInput(t *testing.T) {
	if got := Cumulative(nil); len(got) != 0 {
		t.Errorf("expected empty output, got %d points", len(got))
	}
	if got := Cumulative(model.History{}); len(got) != 0 {
		t.Errorf("expected empty output, got %d points", len(got))
	}
}

func TestCumulative_SameLengthAsInput(t *testing.T) {
	for _, n := range []int{1, 5, 200} {
		h := makeHistory(n)
		if got := Cumulative(h); len(got) != n {
			t.Errorf("length %d: expected parallel series, got %d points", n, len(got))
		}
	}
}

func TestCumulative_ZeroBaseMarksGaps(t *testing.T) {
	h := model.History{
		{Date: "2024-01-01", Close: 0},
		{Date: "2024-01-02", Close: 5},
		{Date: "2024-01-03", Close: 0},
	}
	got := Cumulative(h)
	for i, pt := range got {
		if !pt.Gap {
			t.Errorf("point %d: zero base must flag a gap, got value %f", i, pt.Value)
		}
		if pt.IsPlottable() {
			t.Errorf("point %d: gap points must not be plottable", i)
		}
	}
}

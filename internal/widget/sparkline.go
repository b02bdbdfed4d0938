package widget

import (
	"math"
	"strings"
)

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders one value per character, trimmed to the trailing
// `width` values. Non-finite values leave a gap instead of plotting a
// false zero. An all-gap series renders empty.
func Sparkline(values []float64, width int) string {
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}

	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		return ""
	}

	var b strings.Builder
	for _, v := range values {
		if !finite(v) {
			b.WriteByte(' ')
			continue
		}
		if hi == lo {
			b.WriteRune(sparkTicks[len(sparkTicks)/2])
			continue
		}
		idx := int((v - lo) / (hi - lo) * float64(len(sparkTicks)-1))
		b.WriteRune(sparkTicks[idx])
	}
	return b.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

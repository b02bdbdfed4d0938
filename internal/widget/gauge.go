package widget

import (
	"fmt"
	"strings"
)

// Gauge renders a 0~100 reading as a horizontal track with a position
// marker, followed by the value and its label.
func Gauge(value float64, label string, width int) string {
	if width <= 0 {
		width = 40
	}
	v := value
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	pos := int(v / 100 * float64(width-1))

	track := []rune(strings.Repeat("░", width))
	track[pos] = '█'

	var b strings.Builder
	b.WriteString("0 " + string(track) + " 100\n")
	fmt.Fprintf(&b, "%.0f · %s", value, label)
	return b.String()
}

package feed

import "testing"

func TestSanitizeNonFinite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare NaN", `{"v": NaN}`, `{"v": null}`},
		{"bare Infinity", `{"v": Infinity}`, `{"v": null}`},
		{"bare -Infinity", `{"v": -Infinity}`, `{"v": null}`},
		{"NaN inside a string survives", `{"note": "NaN means missing"}`, `{"note": "NaN means missing"}`},
		{"mixed", `[NaN, 1.5, "Infinity", -Infinity]`, `[null, 1.5, "Infinity", null]`},
		{"escaped quote in string", `{"s": "say \"NaN\"", "v": NaN}`, `{"s": "say \"NaN\"", "v": null}`},
		{"clean document untouched", `{"v": 1}`, `{"v": 1}`},
		{"negative number untouched", `{"v": -1.5}`, `{"v": -1.5}`},
	}
	for _, tt := range tests {
		if got := string(sanitizeNonFinite([]byte(tt.in))); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}
